package domain

import "github.com/shopspring/decimal"

// BuildTransaction converts a validated row set plus header fields into a
// canonical ledger transaction. It is pure: no I/O, no errors (every failure
// mode was resolved by ValidateBatch), and it never mutates its inputs.
//
// An ordinary row becomes one signed entry on its principal account. A
// self-balanced row becomes two entries, the contra account receiving the
// exact negation, each side cross-referencing the other. Both sides are
// emitted adjacently so a projection pass never inverts their order.
//
// TotalValue is the debit-side sum of the ordinary rows; the credit side
// matches to within tolerance once validation has passed, and self-balanced
// rows are excluded, matching the validator's partition.
func BuildTransaction(set ValidatedSet, header Header) *Transaction {
	entries := make([]LedgerEntry, 0, len(set.rows))
	totalValue := decimal.Zero

	for _, row := range set.rows {
		signed := row.SignedAmount()

		if row.IsSelfBalanced() {
			entries = append(entries,
				LedgerEntry{
					AccountID:       row.PrincipalAccountID(),
					ContraAccountID: row.ContraAccountID(),
					Amount:          signed,
					ValueDate:       header.ValueDate,
					Description:     row.Description(),
				},
				LedgerEntry{
					AccountID:       row.ContraAccountID(),
					ContraAccountID: row.PrincipalAccountID(),
					Amount:          signed.Neg(),
					ValueDate:       header.ValueDate,
					Description:     row.Description(),
				},
			)
			continue
		}

		entries = append(entries, LedgerEntry{
			AccountID:       row.PrincipalAccountID(),
			ContraAccountID: row.ContraAccountID(),
			Amount:          signed,
			ValueDate:       header.ValueDate,
			Description:     row.Description(),
		})
		if row.IsDebit() {
			totalValue = totalValue.Add(row.Amount())
		}
	}

	return &Transaction{
		BranchID:             header.BranchID,
		PeriodID:             header.PeriodID,
		Reference:            header.Reference,
		ValueDate:            header.ValueDate,
		TotalValue:           totalValue,
		PrimaryDescription:   header.PrimaryDescription,
		SecondaryDescription: header.SecondaryDescription,
		Entries:              entries,
	}
}
