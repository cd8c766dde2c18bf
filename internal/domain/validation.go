package domain

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// Validation errors
var (
	ErrInvalidAccountName = errors.New("invalid account name")
	ErrInvalidAccountCode = errors.New("invalid account code")
	ErrInvalidAccountType = errors.New("invalid account type")
	ErrInvalidReference   = errors.New("invalid transaction reference")
	ErrAmountTooLarge     = errors.New("amount exceeds maximum allowed")
)

// Validation constants
const (
	MaxAccountNameLength = 255
	MinAccountNameLength = 1
	MaxReferenceLength   = 64
	MaxPostingAmount     = "1000000000000" // 1 trillion
)

var referenceRegex = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9/_-]*$`)

// ValidateAccountName validates a chart-of-accounts display name.
func ValidateAccountName(name string) error {
	name = strings.TrimSpace(name)

	if len(name) < MinAccountNameLength {
		return fmt.Errorf("%w: name cannot be empty", ErrInvalidAccountName)
	}

	if len(name) > MaxAccountNameLength {
		return fmt.Errorf("%w: name exceeds %d characters", ErrInvalidAccountName, MaxAccountNameLength)
	}

	return nil
}

// ValidateAccountCode validates the numeric account code.
func ValidateAccountCode(code int64) error {
	if code <= 0 {
		return fmt.Errorf("%w: code must be positive", ErrInvalidAccountCode)
	}
	return nil
}

// ValidateReference validates the voucher reference, which doubles as the
// posting's natural idempotency key at the gateway.
func ValidateReference(reference string) error {
	reference = strings.TrimSpace(reference)

	if reference == "" {
		return fmt.Errorf("%w: reference cannot be empty", ErrInvalidReference)
	}

	if len(reference) > MaxReferenceLength {
		return fmt.Errorf("%w: reference exceeds %d characters", ErrInvalidReference, MaxReferenceLength)
	}

	if !referenceRegex.MatchString(reference) {
		return fmt.Errorf("%w: contains forbidden characters", ErrInvalidReference)
	}

	return nil
}

// ValidateAmount validates an entry row amount against posting bounds.
func ValidateAmount(amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}

	maxAmount, _ := decimal.NewFromString(MaxPostingAmount)
	if amount.GreaterThan(maxAmount) {
		return fmt.Errorf("%w: maximum amount is %s", ErrAmountTooLarge, MaxPostingAmount)
	}

	return nil
}

// ValidatePagination validates and limits pagination parameters
func ValidatePagination(limit, offset int) (int, int, error) {
	const MaxPageSize = 1000
	const DefaultPageSize = 50

	if limit <= 0 {
		limit = DefaultPageSize
	}

	if limit > MaxPageSize {
		limit = MaxPageSize
	}

	if offset < 0 {
		offset = 0
	}

	return limit, offset, nil
}
