package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/clubops/ledger/internal/domain"
	"github.com/clubops/ledger/internal/usecase"
)

// TransactionRepository implements usecase.TransactionRepository. It only
// reads; the posting gateway owns every write to the transaction stream.
type TransactionRepository struct {
	pool *pgxpool.Pool
}

// NewTransactionRepository creates a new TransactionRepository.
func NewTransactionRepository(pool *pgxpool.Pool) *TransactionRepository {
	return &TransactionRepository{pool: pool}
}

const entryColumns = `id, transaction_id, account_id, contra_account_id, amount,
	value_date, description, created_at`

// GetByReference retrieves a posted transaction and its entries.
func (r *TransactionRepository) GetByReference(ctx context.Context, reference string) (*domain.Transaction, error) {
	var (
		txn            domain.Transaction
		totalValue     pgtype.Numeric
		valueDate      pgtype.Date
		reversesRef    pgtype.Text
		secondaryDescr pgtype.Text
		createdAt      pgtype.Timestamptz
	)

	err := r.pool.QueryRow(ctx, `
		SELECT id, branch_id, period_id, reference, value_date, total_value,
		       primary_description, secondary_description, reverses_reference, created_at
		FROM gl_transactions
		WHERE reference = $1`, reference).Scan(
		&txn.ID,
		&txn.BranchID,
		&txn.PeriodID,
		&txn.Reference,
		&valueDate,
		&totalValue,
		&txn.PrimaryDescription,
		&secondaryDescr,
		&reversesRef,
		&createdAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTransactionNotFound
		}

		return nil, err
	}

	txn.ValueDate = valueDate.Time
	txn.TotalValue = numericToDecimal(totalValue)
	txn.SecondaryDescription = secondaryDescr.String
	txn.ReversesReference = reversesRef.String
	txn.CreatedAt = createdAt.Time

	rows, err := r.pool.Query(ctx, `
		SELECT `+entryColumns+` FROM gl_entries
		WHERE transaction_id = $1
		ORDER BY position`, txn.ID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	txn.Entries, err = scanEntries(rows)
	if err != nil {
		return nil, err
	}

	return &txn, nil
}

// ListEntriesByAccount lists persisted entries for an account in posting
// order. A non-positive limit returns the full stream.
func (r *TransactionRepository) ListEntriesByAccount(ctx context.Context, accountID string, limit, offset int) ([]domain.LedgerEntry, error) {
	query := `
		SELECT ` + entryColumns + ` FROM gl_entries
		WHERE account_id = $1
		ORDER BY created_at, position`
	args := []any{accountID}

	if limit > 0 {
		query += ` LIMIT $2 OFFSET $3`
		args = append(args, limit, offset)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanEntries(rows)
}

// ListEntriesByAccountPeriod lists all entries for an account within one
// posting period.
func (r *TransactionRepository) ListEntriesByAccountPeriod(ctx context.Context, accountID, periodID string) ([]domain.LedgerEntry, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT e.id, e.transaction_id, e.account_id, e.contra_account_id, e.amount,
		       e.value_date, e.description, e.created_at
		FROM gl_entries e
		JOIN gl_transactions t ON t.id = e.transaction_id
		WHERE e.account_id = $1 AND t.period_id = $2
		ORDER BY e.created_at, e.position`, accountID, periodID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanEntries(rows)
}

// OpeningBalance returns the signed sum of everything posted to an account
// before the given instant.
func (r *TransactionRepository) OpeningBalance(ctx context.Context, accountID string, before time.Time) (decimal.Decimal, error) {
	var total pgtype.Numeric

	err := r.pool.QueryRow(ctx, `
		SELECT COALESCE(SUM(amount), 0)
		FROM gl_entries
		WHERE account_id = $1 AND created_at < $2`,
		accountID, timeToPgTimestamptz(before)).Scan(&total)
	if err != nil {
		return decimal.Zero, err
	}

	return numericToDecimal(total), nil
}

// TrialBalance aggregates per-account debit and credit totals for one period.
func (r *TransactionRepository) TrialBalance(ctx context.Context, periodID string) ([]usecase.TrialBalanceRow, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT a.id, a.code, a.name,
		       COALESCE(SUM(CASE WHEN e.amount > 0 THEN e.amount ELSE 0 END), 0),
		       COALESCE(SUM(CASE WHEN e.amount < 0 THEN -e.amount ELSE 0 END), 0)
		FROM gl_entries e
		JOIN gl_transactions t ON t.id = e.transaction_id
		JOIN accounts a ON a.id = e.account_id
		WHERE t.period_id = $1
		GROUP BY a.id, a.code, a.name
		ORDER BY a.code`, periodID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []usecase.TrialBalanceRow
	for rows.Next() {
		var (
			row    usecase.TrialBalanceRow
			debit  pgtype.Numeric
			credit pgtype.Numeric
		)
		if err := rows.Scan(&row.AccountID, &row.AccountCode, &row.AccountName, &debit, &credit); err != nil {
			return nil, err
		}
		row.DebitTotal = numericToDecimal(debit)
		row.CreditTotal = numericToDecimal(credit)
		result = append(result, row)
	}

	return result, rows.Err()
}

// CheckConsistency sums all debits and all credits across the whole ledger.
// The two totals match unless the stream has been tampered with.
func (r *TransactionRepository) CheckConsistency(ctx context.Context) (decimal.Decimal, decimal.Decimal, error) {
	var totalDebit, totalCredit pgtype.Numeric

	err := r.pool.QueryRow(ctx, `
		SELECT COALESCE(SUM(CASE WHEN amount > 0 THEN amount ELSE 0 END), 0),
		       COALESCE(SUM(CASE WHEN amount < 0 THEN -amount ELSE 0 END), 0)
		FROM gl_entries`).Scan(&totalDebit, &totalCredit)
	if err != nil {
		return decimal.Zero, decimal.Zero, err
	}

	return numericToDecimal(totalDebit), numericToDecimal(totalCredit), nil
}

func scanEntries(rows pgx.Rows) ([]domain.LedgerEntry, error) {
	var entries []domain.LedgerEntry
	for rows.Next() {
		var (
			entry     domain.LedgerEntry
			contra    pgtype.Text
			amount    pgtype.Numeric
			valueDate pgtype.Date
			createdAt pgtype.Timestamptz
		)
		err := rows.Scan(
			&entry.ID,
			&entry.TransactionID,
			&entry.AccountID,
			&contra,
			&amount,
			&valueDate,
			&entry.Description,
			&createdAt,
		)
		if err != nil {
			return nil, err
		}

		entry.ContraAccountID = contra.String
		entry.Amount = numericToDecimal(amount)
		entry.ValueDate = valueDate.Time
		entry.CreatedAt = createdAt.Time
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}
