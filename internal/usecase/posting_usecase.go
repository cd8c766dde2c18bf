package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/shopspring/decimal"

	"github.com/clubops/ledger/internal/domain"
)

// PostingUseCase drives the journal voucher flow: directory lookups, balance
// validation, canonical build, and gateway submission.
type PostingUseCase struct {
	accountRepo AccountRepository
	branchRepo  BranchRepository
	periodRepo  PeriodRepository
	txnRepo     TransactionRepository
	gateway     PostingGateway
	auditRepo   AuditRepository
	idGen       IDGenerator
}

// NewPostingUseCase creates a new PostingUseCase.
func NewPostingUseCase(
	accountRepo AccountRepository,
	branchRepo BranchRepository,
	periodRepo PeriodRepository,
	txnRepo TransactionRepository,
	gateway PostingGateway,
	auditRepo AuditRepository,
	idGen IDGenerator,
) *PostingUseCase {
	return &PostingUseCase{
		accountRepo: accountRepo,
		branchRepo:  branchRepo,
		periodRepo:  periodRepo,
		txnRepo:     txnRepo,
		gateway:     gateway,
		auditRepo:   auditRepo,
		idGen:       idGen,
	}
}

// VoucherLineInput is one proposed line as submitted by a voucher screen.
type VoucherLineInput struct {
	PrincipalAccountID string
	ContraAccountID    string
	DebitAmount        decimal.Decimal
	CreditAmount       decimal.Decimal
	Description        string
}

// PostVoucherInput represents a journal voucher batch with its header.
type PostVoucherInput struct {
	BranchID             string
	PeriodID             string
	Reference            string
	ValueDate            time.Time
	PrimaryDescription   string
	SecondaryDescription string
	Lines                []VoucherLineInput
}

// PostVoucher validates, builds and submits a voucher batch. Every validation
// failure is reported before anything is submitted; the gateway is only ever
// given a transaction that already passed the balance check.
func (uc *PostingUseCase) PostVoucher(ctx context.Context, input PostVoucherInput) (*domain.Transaction, domain.PostedReference, error) {
	txn, err := uc.prepare(ctx, input)
	if err != nil {
		uc.audit(ctx, domain.AuditActionPostingCreate, input.Reference, nil, err)
		return nil, domain.PostedReference{}, err
	}

	ref, err := uc.submit(ctx, txn)
	uc.audit(ctx, domain.AuditActionPostingCreate, input.Reference, txn, err)
	if err != nil {
		return nil, domain.PostedReference{}, err
	}

	txn.ID = ref.TransactionID
	return txn, ref, nil
}

// prepare runs the full validation pipeline and returns the built, not yet
// submitted transaction.
func (uc *PostingUseCase) prepare(ctx context.Context, input PostVoucherInput) (*domain.Transaction, error) {
	if err := domain.ValidateReference(input.Reference); err != nil {
		return nil, err
	}

	rows := make([]domain.EntryRow, 0, len(input.Lines))
	for _, line := range input.Lines {
		row, err := domain.NewEntryRowFromAmounts(
			line.PrincipalAccountID,
			line.ContraAccountID,
			line.DebitAmount,
			line.CreditAmount,
			line.Description,
		)
		if err != nil {
			return nil, err
		}
		if err := domain.ValidateAmount(row.Amount()); err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}

	if _, err := uc.branchRepo.GetByID(ctx, input.BranchID); err != nil {
		return nil, err
	}

	period, err := uc.periodRepo.GetByID(ctx, input.PeriodID)
	if err != nil {
		return nil, err
	}
	if !period.IsOpen() {
		return nil, domain.ErrPeriodClosed
	}

	accounts, err := uc.loadAccounts(ctx, rows)
	if err != nil {
		return nil, err
	}

	set, err := domain.ValidateBatch(rows, accounts)
	if err != nil {
		return nil, err
	}

	return domain.BuildTransaction(set, domain.Header{
		BranchID:             input.BranchID,
		PeriodID:             input.PeriodID,
		Reference:            input.Reference,
		ValueDate:            input.ValueDate,
		PrimaryDescription:   input.PrimaryDescription,
		SecondaryDescription: input.SecondaryDescription,
	}), nil
}

// ReverseInput identifies a posted transaction to reverse.
type ReverseInput struct {
	Reference    string
	NewReference string
	ValueDate    time.Time
	PeriodID     string // optional: post the reversal into a different period
}

// Reverse posts the mirror image of a previously posted transaction. History
// is immutable; this is the only supported correction.
func (uc *PostingUseCase) Reverse(ctx context.Context, input ReverseInput) (*domain.Transaction, domain.PostedReference, error) {
	if err := domain.ValidateReference(input.NewReference); err != nil {
		return nil, domain.PostedReference{}, err
	}

	original, err := uc.txnRepo.GetByReference(ctx, input.Reference)
	if err != nil {
		uc.audit(ctx, domain.AuditActionPostingReverse, input.Reference, nil, err)
		return nil, domain.PostedReference{}, err
	}

	reversal := original.Reversal(input.NewReference, input.ValueDate)
	if input.PeriodID != "" {
		reversal.PeriodID = input.PeriodID
	}

	period, err := uc.periodRepo.GetByID(ctx, reversal.PeriodID)
	if err != nil {
		return nil, domain.PostedReference{}, err
	}
	if !period.IsOpen() {
		return nil, domain.PostedReference{}, domain.ErrPeriodClosed
	}

	ref, err := uc.submit(ctx, reversal)
	uc.audit(ctx, domain.AuditActionPostingReverse, input.Reference, reversal, err)
	if err != nil {
		return nil, domain.PostedReference{}, err
	}

	reversal.ID = ref.TransactionID
	return reversal, ref, nil
}

// GetByReference retrieves a posted transaction with its entries.
func (uc *PostingUseCase) GetByReference(ctx context.Context, reference string) (*domain.Transaction, error) {
	return uc.txnRepo.GetByReference(ctx, reference)
}

// submit hands the transaction to the gateway, retrying only transient
// unavailability. Retries reuse the identical transaction value so the
// reference keeps acting as the gateway's natural idempotency key.
func (uc *PostingUseCase) submit(ctx context.Context, txn *domain.Transaction) (domain.PostedReference, error) {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = SubmitInitialInterval
	b.MaxElapsedTime = SubmitMaxElapsedTime

	var ref domain.PostedReference

	err := backoff.Retry(func() error {
		var err error
		ref, err = uc.gateway.Submit(ctx, txn)
		if err == nil {
			return nil
		}
		if errors.Is(err, domain.ErrGatewayUnavailable) {
			return err
		}
		return backoff.Permanent(err)
	}, backoff.WithContext(b, ctx))
	if err != nil {
		return domain.PostedReference{}, err
	}

	return ref, nil
}

func (uc *PostingUseCase) loadAccounts(ctx context.Context, rows []domain.EntryRow) (map[string]*domain.Account, error) {
	seen := make(map[string]bool)

	var ids []string
	for _, row := range rows {
		if !seen[row.PrincipalAccountID()] {
			seen[row.PrincipalAccountID()] = true
			ids = append(ids, row.PrincipalAccountID())
		}
		if contra := row.ContraAccountID(); contra != "" && !seen[contra] {
			seen[contra] = true
			ids = append(ids, contra)
		}
	}

	accounts, err := uc.accountRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	m := make(map[string]*domain.Account, len(accounts))
	for _, a := range accounts {
		m[a.ID] = a
	}

	return m, nil
}

func (uc *PostingUseCase) audit(ctx context.Context, action domain.AuditAction, reference string, txn *domain.Transaction, opErr error) {
	if uc.auditRepo == nil {
		return
	}

	log := &domain.AuditLog{
		ID:           uc.idGen.Generate(),
		Action:       string(action),
		ResourceType: domain.AggregateTypePosting,
		ResourceID:   reference,
		Status:       string(domain.AuditStatusSuccess),
		AfterState:   domain.MarshalState(txn),
		CreatedAt:    time.Now().UTC(),
	}
	if opErr != nil {
		log.Status = string(domain.AuditStatusFailure)
		log.ErrorMessage = opErr.Error()
		log.AfterState = nil
	}

	// Audit writes never fail a posting.
	_ = uc.auditRepo.Create(ctx, log)
}
