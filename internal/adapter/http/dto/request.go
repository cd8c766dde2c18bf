package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/clubops/ledger/internal/domain"
	"github.com/clubops/ledger/internal/usecase"
)

// CreateAccountRequest represents a request to create an account.
type CreateAccountRequest struct {
	Code                    int64  `json:"code"`
	Name                    string `json:"name"`
	Type                    string `json:"type"`
	CostCenterID            string `json:"cost_center_id,omitempty"`
	IsControlAccount        bool   `json:"is_control_account,omitempty"`
	IsReconciliationAccount bool   `json:"is_reconciliation_account,omitempty"`
	PostAutomaticallyOnly   bool   `json:"post_automatically_only,omitempty"`
	IsLocked                bool   `json:"is_locked,omitempty"`
}

// ToUseCaseInput converts the request to a usecase input.
func (r *CreateAccountRequest) ToUseCaseInput() usecase.CreateAccountInput {
	return usecase.CreateAccountInput{
		Code:                    r.Code,
		Name:                    r.Name,
		Type:                    domain.AccountType(r.Type),
		CostCenterID:            r.CostCenterID,
		IsControlAccount:        r.IsControlAccount,
		IsReconciliationAccount: r.IsReconciliationAccount,
		PostAutomaticallyOnly:   r.PostAutomaticallyOnly,
		IsLocked:                r.IsLocked,
	}
}

// VoucherLineRequest is one proposed line of a journal voucher.
type VoucherLineRequest struct {
	PrincipalAccountID string          `json:"principal_account_id"`
	ContraAccountID    string          `json:"contra_account_id,omitempty"`
	DebitAmount        decimal.Decimal `json:"debit_amount,omitempty"`
	CreditAmount       decimal.Decimal `json:"credit_amount,omitempty"`
	Description        string          `json:"description,omitempty"`
}

// PostVoucherRequest represents a request to post a journal voucher.
type PostVoucherRequest struct {
	BranchID             string               `json:"branch_id"`
	PeriodID             string               `json:"period_id"`
	Reference            string               `json:"reference"`
	ValueDate            time.Time            `json:"value_date"`
	PrimaryDescription   string               `json:"primary_description"`
	SecondaryDescription string               `json:"secondary_description,omitempty"`
	Lines                []VoucherLineRequest `json:"lines"`
}

// ToUseCaseInput converts the request to a usecase input.
func (r *PostVoucherRequest) ToUseCaseInput() usecase.PostVoucherInput {
	lines := make([]usecase.VoucherLineInput, len(r.Lines))
	for i, l := range r.Lines {
		lines[i] = usecase.VoucherLineInput{
			PrincipalAccountID: l.PrincipalAccountID,
			ContraAccountID:    l.ContraAccountID,
			DebitAmount:        l.DebitAmount,
			CreditAmount:       l.CreditAmount,
			Description:        l.Description,
		}
	}

	return usecase.PostVoucherInput{
		BranchID:             r.BranchID,
		PeriodID:             r.PeriodID,
		Reference:            r.Reference,
		ValueDate:            r.ValueDate,
		PrimaryDescription:   r.PrimaryDescription,
		SecondaryDescription: r.SecondaryDescription,
		Lines:                lines,
	}
}

// ReverseRequest represents a request to reverse a posted transaction.
type ReverseRequest struct {
	NewReference string    `json:"new_reference"`
	ValueDate    time.Time `json:"value_date"`
	PeriodID     string    `json:"period_id,omitempty"`
}

// ToUseCaseInput converts the request to a usecase input. The reference of
// the transaction being reversed comes from the URL, not the body.
func (r *ReverseRequest) ToUseCaseInput(reference string) usecase.ReverseInput {
	return usecase.ReverseInput{
		Reference:    reference,
		NewReference: r.NewReference,
		ValueDate:    r.ValueDate,
		PeriodID:     r.PeriodID,
	}
}
