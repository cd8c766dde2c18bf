package mocks

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/clubops/ledger/internal/domain"
	"github.com/clubops/ledger/internal/usecase"
)

// MockAccountRepository is a mock implementation of AccountRepository.
type MockAccountRepository struct {
	mu       sync.RWMutex
	accounts map[string]*domain.Account

	CreateFunc   func(ctx context.Context, account *domain.Account) error
	GetByIDFunc  func(ctx context.Context, id string) (*domain.Account, error)
	GetByIDsFunc func(ctx context.Context, ids []string) ([]*domain.Account, error)
	ListFunc     func(ctx context.Context, limit, offset int) ([]*domain.Account, error)
}

func NewMockAccountRepository() *MockAccountRepository {
	return &MockAccountRepository{
		accounts: make(map[string]*domain.Account),
	}
}

// Seed stores accounts directly, bypassing the funcs.
func (m *MockAccountRepository) Seed(accounts ...*domain.Account) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, a := range accounts {
		m.accounts[a.ID] = a
	}
}

func (m *MockAccountRepository) Create(ctx context.Context, account *domain.Account) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, account)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.accounts[account.ID] = account
	return nil
}

func (m *MockAccountRepository) GetByID(ctx context.Context, id string) (*domain.Account, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if acc, ok := m.accounts[id]; ok {
		return acc, nil
	}
	return nil, domain.ErrAccountNotFound
}

func (m *MockAccountRepository) GetByIDs(ctx context.Context, ids []string) ([]*domain.Account, error) {
	if m.GetByIDsFunc != nil {
		return m.GetByIDsFunc(ctx, ids)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var accounts []*domain.Account
	for _, id := range ids {
		if acc, ok := m.accounts[id]; ok {
			accounts = append(accounts, acc)
		}
	}
	return accounts, nil
}

func (m *MockAccountRepository) List(ctx context.Context, limit, offset int) ([]*domain.Account, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, limit, offset)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var accounts []*domain.Account
	for _, acc := range m.accounts {
		accounts = append(accounts, acc)
	}
	return accounts, nil
}

// MockBranchRepository is a mock implementation of BranchRepository.
type MockBranchRepository struct {
	mu       sync.RWMutex
	branches map[string]*domain.Branch

	GetByIDFunc func(ctx context.Context, id string) (*domain.Branch, error)
	ListFunc    func(ctx context.Context) ([]*domain.Branch, error)
}

func NewMockBranchRepository() *MockBranchRepository {
	return &MockBranchRepository{
		branches: make(map[string]*domain.Branch),
	}
}

func (m *MockBranchRepository) Seed(branches ...*domain.Branch) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, b := range branches {
		m.branches[b.ID] = b
	}
}

func (m *MockBranchRepository) GetByID(ctx context.Context, id string) (*domain.Branch, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if b, ok := m.branches[id]; ok {
		return b, nil
	}
	return nil, domain.ErrBranchUnknown
}

func (m *MockBranchRepository) List(ctx context.Context) ([]*domain.Branch, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var branches []*domain.Branch
	for _, b := range m.branches {
		branches = append(branches, b)
	}
	return branches, nil
}

// MockPeriodRepository is a mock implementation of PeriodRepository.
type MockPeriodRepository struct {
	mu      sync.RWMutex
	periods map[string]*domain.PostingPeriod

	GetByIDFunc func(ctx context.Context, id string) (*domain.PostingPeriod, error)
	ListFunc    func(ctx context.Context) ([]*domain.PostingPeriod, error)
	CloseFunc   func(ctx context.Context, tx usecase.Transaction, id string, closedAt time.Time) error
}

func NewMockPeriodRepository() *MockPeriodRepository {
	return &MockPeriodRepository{
		periods: make(map[string]*domain.PostingPeriod),
	}
}

func (m *MockPeriodRepository) Seed(periods ...*domain.PostingPeriod) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, p := range periods {
		m.periods[p.ID] = p
	}
}

func (m *MockPeriodRepository) GetByID(ctx context.Context, id string) (*domain.PostingPeriod, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if p, ok := m.periods[id]; ok {
		return p, nil
	}
	return nil, domain.ErrPeriodNotFound
}

func (m *MockPeriodRepository) List(ctx context.Context) ([]*domain.PostingPeriod, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var periods []*domain.PostingPeriod
	for _, p := range m.periods {
		periods = append(periods, p)
	}
	return periods, nil
}

func (m *MockPeriodRepository) Close(ctx context.Context, tx usecase.Transaction, id string, closedAt time.Time) error {
	if m.CloseFunc != nil {
		return m.CloseFunc(ctx, tx, id, closedAt)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if p, ok := m.periods[id]; ok {
		p.Status = domain.PeriodStatusClosed
		p.ClosedAt = &closedAt
	}
	return nil
}

// MockTransactionRepository is a mock implementation of TransactionRepository.
type MockTransactionRepository struct {
	mu           sync.RWMutex
	transactions map[string]*domain.Transaction

	GetByReferenceFunc             func(ctx context.Context, reference string) (*domain.Transaction, error)
	ListEntriesByAccountFunc       func(ctx context.Context, accountID string, limit, offset int) ([]domain.LedgerEntry, error)
	ListEntriesByAccountPeriodFunc func(ctx context.Context, accountID, periodID string) ([]domain.LedgerEntry, error)
	OpeningBalanceFunc             func(ctx context.Context, accountID string, before time.Time) (decimal.Decimal, error)
	TrialBalanceFunc               func(ctx context.Context, periodID string) ([]usecase.TrialBalanceRow, error)
	CheckConsistencyFunc           func(ctx context.Context) (decimal.Decimal, decimal.Decimal, error)
}

func NewMockTransactionRepository() *MockTransactionRepository {
	return &MockTransactionRepository{
		transactions: make(map[string]*domain.Transaction),
	}
}

func (m *MockTransactionRepository) Seed(txns ...*domain.Transaction) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, t := range txns {
		m.transactions[t.Reference] = t
	}
}

func (m *MockTransactionRepository) GetByReference(ctx context.Context, reference string) (*domain.Transaction, error) {
	if m.GetByReferenceFunc != nil {
		return m.GetByReferenceFunc(ctx, reference)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if t, ok := m.transactions[reference]; ok {
		return t, nil
	}
	return nil, domain.ErrTransactionNotFound
}

func (m *MockTransactionRepository) ListEntriesByAccount(ctx context.Context, accountID string, limit, offset int) ([]domain.LedgerEntry, error) {
	if m.ListEntriesByAccountFunc != nil {
		return m.ListEntriesByAccountFunc(ctx, accountID, limit, offset)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var entries []domain.LedgerEntry
	for _, t := range m.transactions {
		for _, e := range t.Entries {
			if e.AccountID == accountID {
				entries = append(entries, e)
			}
		}
	}
	return entries, nil
}

func (m *MockTransactionRepository) ListEntriesByAccountPeriod(ctx context.Context, accountID, periodID string) ([]domain.LedgerEntry, error) {
	if m.ListEntriesByAccountPeriodFunc != nil {
		return m.ListEntriesByAccountPeriodFunc(ctx, accountID, periodID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var entries []domain.LedgerEntry
	for _, t := range m.transactions {
		if t.PeriodID != periodID {
			continue
		}
		for _, e := range t.Entries {
			if e.AccountID == accountID {
				entries = append(entries, e)
			}
		}
	}
	return entries, nil
}

func (m *MockTransactionRepository) OpeningBalance(ctx context.Context, accountID string, before time.Time) (decimal.Decimal, error) {
	if m.OpeningBalanceFunc != nil {
		return m.OpeningBalanceFunc(ctx, accountID, before)
	}
	return decimal.Zero, nil
}

func (m *MockTransactionRepository) TrialBalance(ctx context.Context, periodID string) ([]usecase.TrialBalanceRow, error) {
	if m.TrialBalanceFunc != nil {
		return m.TrialBalanceFunc(ctx, periodID)
	}
	return nil, nil
}

func (m *MockTransactionRepository) CheckConsistency(ctx context.Context) (decimal.Decimal, decimal.Decimal, error) {
	if m.CheckConsistencyFunc != nil {
		return m.CheckConsistencyFunc(ctx)
	}
	return decimal.Zero, decimal.Zero, nil
}

// MockOutboxRepository is a mock implementation of OutboxRepository.
type MockOutboxRepository struct {
	mu     sync.Mutex
	events []*domain.OutboxEvent

	CreateFunc func(ctx context.Context, tx usecase.Transaction, event *domain.OutboxEvent) error
}

func NewMockOutboxRepository() *MockOutboxRepository {
	return &MockOutboxRepository{}
}

func (m *MockOutboxRepository) Create(ctx context.Context, tx usecase.Transaction, event *domain.OutboxEvent) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, tx, event)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, event)
	return nil
}

func (m *MockOutboxRepository) GetUnpublished(ctx context.Context, limit int) ([]*domain.OutboxEvent, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var unpublished []*domain.OutboxEvent
	for _, e := range m.events {
		if e.Published {
			continue
		}
		unpublished = append(unpublished, e)
		if limit > 0 && len(unpublished) >= limit {
			break
		}
	}
	return unpublished, nil
}

func (m *MockOutboxRepository) MarkPublished(ctx context.Context, id string, publishedAt time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, e := range m.events {
		if e.ID == id {
			e.Published = true
			e.PublishedAt = &publishedAt
		}
	}
	return nil
}

func (m *MockOutboxRepository) DeletePublished(ctx context.Context, before time.Time) error {
	return nil
}

// Events returns all recorded events.
func (m *MockOutboxRepository) Events() []*domain.OutboxEvent {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]*domain.OutboxEvent(nil), m.events...)
}

// MockAuditRepository is a mock implementation of AuditRepository.
type MockAuditRepository struct {
	mu   sync.Mutex
	logs []*domain.AuditLog

	CreateFunc func(ctx context.Context, log *domain.AuditLog) error
}

func NewMockAuditRepository() *MockAuditRepository {
	return &MockAuditRepository{}
}

func (m *MockAuditRepository) Create(ctx context.Context, log *domain.AuditLog) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, log)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.logs = append(m.logs, log)
	return nil
}

func (m *MockAuditRepository) List(ctx context.Context, filter domain.AuditFilter) ([]*domain.AuditLog, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]*domain.AuditLog(nil), m.logs...), nil
}

func (m *MockAuditRepository) GetByResourceID(ctx context.Context, resourceType, resourceID string) ([]*domain.AuditLog, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var logs []*domain.AuditLog
	for _, l := range m.logs {
		if l.ResourceType == resourceType && l.ResourceID == resourceID {
			logs = append(logs, l)
		}
	}
	return logs, nil
}

// Logs returns all recorded audit logs.
func (m *MockAuditRepository) Logs() []*domain.AuditLog {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]*domain.AuditLog(nil), m.logs...)
}

// MockDBTransaction is a no-op database transaction.
type MockDBTransaction struct {
	Committed  bool
	RolledBack bool
}

func (m *MockDBTransaction) Commit(ctx context.Context) error {
	m.Committed = true
	return nil
}

func (m *MockDBTransaction) Rollback(ctx context.Context) error {
	if !m.Committed {
		m.RolledBack = true
	}
	return nil
}

// MockTransactionManager is a mock implementation of TransactionManager.
type MockTransactionManager struct {
	BeginFunc func(ctx context.Context) (usecase.Transaction, error)

	mu   sync.Mutex
	last *MockDBTransaction
}

func NewMockTransactionManager() *MockTransactionManager {
	return &MockTransactionManager{}
}

func (m *MockTransactionManager) Begin(ctx context.Context) (usecase.Transaction, error) {
	if m.BeginFunc != nil {
		return m.BeginFunc(ctx)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.last = &MockDBTransaction{}
	return m.last, nil
}

// Last returns the most recently begun transaction.
func (m *MockTransactionManager) Last() *MockDBTransaction {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.last
}

// MockIDGenerator generates deterministic sequential IDs.
type MockIDGenerator struct {
	mu      sync.Mutex
	counter int

	GenerateFunc func() string
}

func NewMockIDGenerator() *MockIDGenerator {
	return &MockIDGenerator{}
}

func (m *MockIDGenerator) Generate() string {
	if m.GenerateFunc != nil {
		return m.GenerateFunc()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counter++
	return "id-" + strconv.Itoa(m.counter)
}

// MockCache is an in-memory Cache implementation.
type MockCache struct {
	mu    sync.RWMutex
	items map[string][]byte

	GetFunc func(ctx context.Context, key string) ([]byte, error)
	SetFunc func(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

func NewMockCache() *MockCache {
	return &MockCache{
		items: make(map[string][]byte),
	}
}

func (m *MockCache) Get(ctx context.Context, key string) ([]byte, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, key)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if v, ok := m.items[key]; ok {
		return v, nil
	}
	return nil, nil
}

func (m *MockCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if m.SetFunc != nil {
		return m.SetFunc(ctx, key, value, ttl)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[key] = value
	return nil
}

func (m *MockCache) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.items, key)
	return nil
}
