package integration

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/clubops/ledger/internal/adapter/repository/postgres"
	"github.com/clubops/ledger/internal/domain"
	"github.com/clubops/ledger/internal/usecase"
	"github.com/clubops/ledger/tests/testutil"
)

// ledgerEnv bundles a migrated database with the wired posting stack.
type ledgerEnv struct {
	db        *testutil.TestDB
	postingUC *usecase.PostingUseCase
	balanceUC *usecase.BalanceUseCase
	ledgerUC  *usecase.LedgerUseCase
	periodUC  *usecase.PeriodUseCase

	branch *domain.Branch
	period *domain.PostingPeriod
	cash   *domain.Account
	fees   *domain.Account
}

func newLedgerEnv(t *testing.T) *ledgerEnv {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping integration test")
	}

	ctx := context.Background()
	db := testutil.NewTestDB(t)
	t.Cleanup(db.Cleanup)
	db.TruncateAll(ctx)

	pool := db.Pool
	accountRepo := postgres.NewAccountRepository(pool)
	branchRepo := postgres.NewBranchRepository(pool)
	periodRepo := postgres.NewPeriodRepository(pool)
	txnRepo := postgres.NewTransactionRepository(pool)
	outboxRepo := postgres.NewOutboxRepository(pool)
	auditRepo := postgres.NewAuditRepository(pool)
	txManager := postgres.NewTxManager(pool)
	idGen := postgres.NewULIDGenerator()
	gateway := postgres.NewPostingGateway(pool, idGen)

	env := &ledgerEnv{
		db:        db,
		postingUC: usecase.NewPostingUseCase(accountRepo, branchRepo, periodRepo, txnRepo, gateway, auditRepo, idGen),
		balanceUC: usecase.NewBalanceUseCase(accountRepo, txnRepo, nil),
		ledgerUC:  usecase.NewLedgerUseCase(txnRepo),
		periodUC:  usecase.NewPeriodUseCase(branchRepo, periodRepo, outboxRepo, txManager, idGen),
	}

	env.branch = db.CreateTestBranch(ctx, "Headquarters")
	env.period = db.CreateTestPeriod(ctx, "January 2024",
		time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC))
	env.cash = db.CreateTestAccount(ctx, 1910, "Bank", domain.AccountTypeAsset)
	env.fees = db.CreateTestAccount(ctx, 3010, "Membership fees", domain.AccountTypeRevenue)

	return env
}

// simpleVoucher builds a two-line balanced voucher moving amount from fees
// into cash.
func (env *ledgerEnv) simpleVoucher(reference string, amount decimal.Decimal) usecase.PostVoucherInput {
	return usecase.PostVoucherInput{
		BranchID:           env.branch.ID,
		PeriodID:           env.period.ID,
		Reference:          reference,
		ValueDate:          time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		PrimaryDescription: "Membership fees",
		Lines: []usecase.VoucherLineInput{
			{PrincipalAccountID: env.cash.ID, DebitAmount: amount},
			{PrincipalAccountID: env.fees.ID, CreditAmount: amount},
		},
	}
}
