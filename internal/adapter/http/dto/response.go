package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/clubops/ledger/internal/domain"
	"github.com/clubops/ledger/internal/usecase"
)

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// AccountResponse represents an account in responses.
type AccountResponse struct {
	ID                      string    `json:"id"`
	Code                    int64     `json:"code"`
	Name                    string    `json:"name"`
	Type                    string    `json:"type"`
	CostCenterID            string    `json:"cost_center_id,omitempty"`
	IsControlAccount        bool      `json:"is_control_account"`
	IsReconciliationAccount bool      `json:"is_reconciliation_account"`
	PostAutomaticallyOnly   bool      `json:"post_automatically_only"`
	IsLocked                bool      `json:"is_locked"`
	CreatedAt               time.Time `json:"created_at"`
	UpdatedAt               time.Time `json:"updated_at"`
}

// AccountFromDomain converts a domain account to a response.
func AccountFromDomain(a *domain.Account) AccountResponse {
	return AccountResponse{
		ID:                      a.ID,
		Code:                    a.Code,
		Name:                    a.Name,
		Type:                    string(a.Type),
		CostCenterID:            a.CostCenterID,
		IsControlAccount:        a.IsControlAccount,
		IsReconciliationAccount: a.IsReconciliationAccount,
		PostAutomaticallyOnly:   a.PostAutomaticallyOnly,
		IsLocked:                a.IsLocked,
		CreatedAt:               a.CreatedAt,
		UpdatedAt:               a.UpdatedAt,
	}
}

// ListAccountsResponse represents a list of accounts.
type ListAccountsResponse struct {
	Accounts []AccountResponse `json:"accounts"`
	Total    int               `json:"total"`
}

// EntryResponse represents one ledger entry in responses. Amount keeps the
// persisted sign; debit/credit restate it unsigned for display.
type EntryResponse struct {
	ID              string          `json:"id"`
	TransactionID   string          `json:"transaction_id,omitempty"`
	AccountID       string          `json:"account_id"`
	ContraAccountID string          `json:"contra_account_id,omitempty"`
	Amount          decimal.Decimal `json:"amount"`
	Debit           decimal.Decimal `json:"debit"`
	Credit          decimal.Decimal `json:"credit"`
	ValueDate       time.Time       `json:"value_date"`
	Description     string          `json:"description,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
}

// EntryFromDomain converts a domain ledger entry to a response.
func EntryFromDomain(e *domain.LedgerEntry) EntryResponse {
	resp := EntryResponse{
		ID:              e.ID,
		TransactionID:   e.TransactionID,
		AccountID:       e.AccountID,
		ContraAccountID: e.ContraAccountID,
		Amount:          e.Amount,
		Debit:           decimal.Zero,
		Credit:          decimal.Zero,
		ValueDate:       e.ValueDate,
		Description:     e.Description,
		CreatedAt:       e.CreatedAt,
	}
	if e.IsDebit() {
		resp.Debit = e.Amount
	} else {
		resp.Credit = e.Amount.Neg()
	}

	return resp
}

// ListEntriesResponse represents a page of ledger entries.
type ListEntriesResponse struct {
	Entries []EntryResponse `json:"entries"`
	Total   int             `json:"total"`
}

// TransactionResponse represents a posted transaction.
type TransactionResponse struct {
	ID                   string          `json:"id"`
	BranchID             string          `json:"branch_id"`
	PeriodID             string          `json:"period_id"`
	Reference            string          `json:"reference"`
	ValueDate            time.Time       `json:"value_date"`
	TotalValue           decimal.Decimal `json:"total_value"`
	PrimaryDescription   string          `json:"primary_description"`
	SecondaryDescription string          `json:"secondary_description,omitempty"`
	ReversesReference    string          `json:"reverses_reference,omitempty"`
	Entries              []EntryResponse `json:"entries"`
	CreatedAt            time.Time       `json:"created_at"`
}

// TransactionFromDomain converts a domain transaction to a response.
func TransactionFromDomain(t *domain.Transaction) TransactionResponse {
	entries := make([]EntryResponse, len(t.Entries))
	for i := range t.Entries {
		entries[i] = EntryFromDomain(&t.Entries[i])
	}

	return TransactionResponse{
		ID:                   t.ID,
		BranchID:             t.BranchID,
		PeriodID:             t.PeriodID,
		Reference:            t.Reference,
		ValueDate:            t.ValueDate,
		TotalValue:           t.TotalValue,
		PrimaryDescription:   t.PrimaryDescription,
		SecondaryDescription: t.SecondaryDescription,
		ReversesReference:    t.ReversesReference,
		Entries:              entries,
		CreatedAt:            t.CreatedAt,
	}
}

// PostVoucherResponse acknowledges a posted voucher.
type PostVoucherResponse struct {
	TransactionID string              `json:"transaction_id"`
	Reference     string              `json:"reference"`
	PostedAt      time.Time           `json:"posted_at"`
	Transaction   TransactionResponse `json:"transaction"`
}

// PostVoucherFromDomain converts a posted transaction and its gateway
// acknowledgement to a response.
func PostVoucherFromDomain(t *domain.Transaction, ref domain.PostedReference) PostVoucherResponse {
	return PostVoucherResponse{
		TransactionID: ref.TransactionID,
		Reference:     ref.Reference,
		PostedAt:      ref.PostedAt,
		Transaction:   TransactionFromDomain(t),
	}
}

// BalanceSnapshotResponse represents one balance snapshot.
type BalanceSnapshotResponse struct {
	AccountID         string          `json:"account_id"`
	AsOf              time.Time       `json:"as_of"`
	RunningBalance    decimal.Decimal `json:"running_balance"`
	PeriodDebitTotal  decimal.Decimal `json:"period_debit_total"`
	PeriodCreditTotal decimal.Decimal `json:"period_credit_total"`
}

// SnapshotFromDomain converts a domain balance snapshot to a response.
func SnapshotFromDomain(s *domain.BalanceSnapshot) BalanceSnapshotResponse {
	return BalanceSnapshotResponse{
		AccountID:         s.AccountID,
		AsOf:              s.AsOf,
		RunningBalance:    s.RunningBalance,
		PeriodDebitTotal:  s.PeriodDebitTotal,
		PeriodCreditTotal: s.PeriodCreditTotal,
	}
}

// BalanceHistoryResponse represents a page of balance snapshots.
type BalanceHistoryResponse struct {
	AccountID string                    `json:"account_id"`
	Snapshots []BalanceSnapshotResponse `json:"snapshots"`
	Total     int                       `json:"total"`
}

// TrialBalanceRowResponse is one account's aggregate movement in a period.
type TrialBalanceRowResponse struct {
	AccountID   string          `json:"account_id"`
	AccountCode int64           `json:"account_code"`
	AccountName string          `json:"account_name"`
	DebitTotal  decimal.Decimal `json:"debit_total"`
	CreditTotal decimal.Decimal `json:"credit_total"`
}

// TrialBalanceResponse represents a period trial balance with grand totals.
type TrialBalanceResponse struct {
	PeriodID    string                    `json:"period_id"`
	Rows        []TrialBalanceRowResponse `json:"rows"`
	DebitTotal  decimal.Decimal           `json:"debit_total"`
	CreditTotal decimal.Decimal           `json:"credit_total"`
	Balanced    bool                      `json:"balanced"`
}

// TrialBalanceFromDomain converts trial balance rows to a response, summing
// the grand totals.
func TrialBalanceFromDomain(periodID string, rows []usecase.TrialBalanceRow) TrialBalanceResponse {
	resp := TrialBalanceResponse{
		PeriodID:    periodID,
		Rows:        make([]TrialBalanceRowResponse, len(rows)),
		DebitTotal:  decimal.Zero,
		CreditTotal: decimal.Zero,
	}
	for i, row := range rows {
		resp.Rows[i] = TrialBalanceRowResponse{
			AccountID:   row.AccountID,
			AccountCode: row.AccountCode,
			AccountName: row.AccountName,
			DebitTotal:  row.DebitTotal,
			CreditTotal: row.CreditTotal,
		}
		resp.DebitTotal = resp.DebitTotal.Add(row.DebitTotal)
		resp.CreditTotal = resp.CreditTotal.Add(row.CreditTotal)
	}
	resp.Balanced = resp.DebitTotal.Equal(resp.CreditTotal)

	return resp
}

// ConsistencyResponse reports the ledger-wide double-entry check.
type ConsistencyResponse struct {
	Consistent bool      `json:"consistent"`
	CheckedAt  time.Time `json:"checked_at"`
}

// BranchResponse represents a branch in responses.
type BranchResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// BranchFromDomain converts a domain branch to a response.
func BranchFromDomain(b *domain.Branch) BranchResponse {
	return BranchResponse{
		ID:        b.ID,
		Name:      b.Name,
		CreatedAt: b.CreatedAt,
	}
}

// PeriodResponse represents a posting period in responses.
type PeriodResponse struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	StartsOn  time.Time  `json:"starts_on"`
	EndsOn    time.Time  `json:"ends_on"`
	Status    string     `json:"status"`
	ClosedAt  *time.Time `json:"closed_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

// PeriodFromDomain converts a domain posting period to a response.
func PeriodFromDomain(p *domain.PostingPeriod) PeriodResponse {
	return PeriodResponse{
		ID:        p.ID,
		Name:      p.Name,
		StartsOn:  p.StartsOn,
		EndsOn:    p.EndsOn,
		Status:    string(p.Status),
		ClosedAt:  p.ClosedAt,
		CreatedAt: p.CreatedAt,
	}
}
