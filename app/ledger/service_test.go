package ledger_test

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/joefazee/surebook/app/ledger"
	"github.com/joefazee/surebook/internal/logger"
	"github.com/joefazee/surebook/models"
	"github.com/joefazee/surebook/tests/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func newTestDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, sqlMock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 db,
		PreferSimpleProtocol: true,
	}), &gorm.Config{SkipDefaultTransaction: true})
	require.NoError(t, err)
	return gormDB, sqlMock
}

func testBookmaker(balance string) *models.Bookmaker {
	return &models.Bookmaker{
		ID:           uuid.New(),
		PartnerID:    uuid.New(),
		Name:         "betfair",
		CurrencyCode: "BRL",
		Balance:      dec(balance),
	}
}

func TestService_PostStake(t *testing.T) {
	ctx := context.Background()

	t.Run("derives the before balance from the debited one", func(t *testing.T) {
		db, _ := newTestDB(t)
		repo := new(mocks.MockLedgerRepository)
		srv := ledger.NewService(repo, db, logger.NewNullLogger())

		bookmaker := testBookmaker("900") // after a 100 debit
		bet := &models.Bet{
			ID: uuid.New(), TicketID: uuid.New(), BookmakerID: bookmaker.ID,
			Odd: dec("2.1"), Stake: dec("100"), CurrencyCode: "BRL",
		}

		repo.On("WithTx", mock.Anything).Return(repo)
		repo.On("CreateTransaction", ctx, mock.MatchedBy(func(txn *models.Transaction) bool {
			return txn.Type == models.TransactionTypeBetStake &&
				txn.Amount.Equal(dec("-100")) &&
				txn.BalanceBefore.Equal(dec("1000")) &&
				txn.BalanceAfter.Equal(dec("900")) &&
				txn.BetID != nil && *txn.BetID == bet.ID
		})).Return(nil)

		err := srv.PostStake(ctx, db, bookmaker, bet)
		require.NoError(t, err)
		repo.AssertExpectations(t)
	})
}

func TestService_PostSettlement(t *testing.T) {
	ctx := context.Background()

	t.Run("records the payout credit with the leg result", func(t *testing.T) {
		db, _ := newTestDB(t)
		repo := new(mocks.MockLedgerRepository)
		srv := ledger.NewService(repo, db, logger.NewNullLogger())

		bookmaker := testBookmaker("1110") // after a 210 credit
		bet := &models.Bet{
			ID: uuid.New(), TicketID: uuid.New(), BookmakerID: bookmaker.ID,
			Odd: dec("2.1"), Stake: dec("100"), CurrencyCode: "BRL",
			Result: models.LegResultGreen,
		}

		repo.On("WithTx", mock.Anything).Return(repo)
		repo.On("CreateTransaction", ctx, mock.MatchedBy(func(txn *models.Transaction) bool {
			return txn.Type == models.TransactionTypeBetSettlement &&
				txn.Amount.Equal(dec("210")) &&
				txn.BalanceBefore.Equal(dec("900")) &&
				txn.Metadata.LegResult == string(models.LegResultGreen)
		})).Return(nil)

		err := srv.PostSettlement(ctx, db, bookmaker, bet, dec("210"))
		require.NoError(t, err)
		repo.AssertExpectations(t)
	})
}

func TestService_CreateAdjustment(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T) (ledger.Service, *mocks.MockLedgerRepository, sqlmock.Sqlmock) {
		db, sqlMock := newTestDB(t)
		repo := new(mocks.MockLedgerRepository)
		return ledger.NewService(repo, db, logger.NewNullLogger()), repo, sqlMock
	}

	t.Run("deposit credits the bookmaker", func(t *testing.T) {
		srv, repo, sqlMock := setup(t)
		bookmaker := testBookmaker("100")

		sqlMock.ExpectBegin()
		sqlMock.ExpectCommit()
		repo.On("WithTx", mock.Anything).Return(repo)
		repo.On("GetBookmakerByID", ctx, bookmaker.ID).Return(bookmaker, nil)
		repo.On("UpdateBookmaker", ctx, bookmaker).Return(nil)
		repo.On("CreateTransaction", ctx, mock.Anything).Return(nil)

		resp, err := srv.CreateAdjustment(ctx, &ledger.AdjustmentRequest{
			BookmakerID: bookmaker.ID,
			Type:        models.TransactionTypeDeposit,
			Amount:      dec("50"),
		})
		require.NoError(t, err)
		assert.True(t, bookmaker.Balance.Equal(dec("150")))
		assert.True(t, resp.Amount.Equal(dec("50")))
		assert.True(t, resp.BalanceBefore.Equal(dec("100")))
		assert.True(t, resp.BalanceAfter.Equal(dec("150")))
	})

	t.Run("withdrawal debits the bookmaker", func(t *testing.T) {
		srv, repo, sqlMock := setup(t)
		bookmaker := testBookmaker("100")

		sqlMock.ExpectBegin()
		sqlMock.ExpectCommit()
		repo.On("WithTx", mock.Anything).Return(repo)
		repo.On("GetBookmakerByID", ctx, bookmaker.ID).Return(bookmaker, nil)
		repo.On("UpdateBookmaker", ctx, bookmaker).Return(nil)
		repo.On("CreateTransaction", ctx, mock.Anything).Return(nil)

		resp, err := srv.CreateAdjustment(ctx, &ledger.AdjustmentRequest{
			BookmakerID: bookmaker.ID,
			Type:        models.TransactionTypeWithdrawal,
			Amount:      dec("30"),
		})
		require.NoError(t, err)
		assert.True(t, bookmaker.Balance.Equal(dec("70")))
		assert.True(t, resp.Amount.Equal(dec("-30")))
	})

	t.Run("freebet deposit moves the freebet balance only", func(t *testing.T) {
		srv, repo, sqlMock := setup(t)
		bookmaker := testBookmaker("100")
		bookmaker.FreebetBalance = dec("20")

		sqlMock.ExpectBegin()
		sqlMock.ExpectCommit()
		repo.On("WithTx", mock.Anything).Return(repo)
		repo.On("GetBookmakerByID", ctx, bookmaker.ID).Return(bookmaker, nil)
		repo.On("UpdateBookmaker", ctx, bookmaker).Return(nil)
		repo.On("CreateTransaction", ctx, mock.MatchedBy(func(txn *models.Transaction) bool {
			return txn.Metadata.Freebet
		})).Return(nil)

		resp, err := srv.CreateAdjustment(ctx, &ledger.AdjustmentRequest{
			BookmakerID: bookmaker.ID,
			Type:        models.TransactionTypeDeposit,
			Amount:      dec("50"),
			Freebet:     true,
		})
		require.NoError(t, err)
		assert.True(t, bookmaker.Balance.Equal(dec("100")))
		assert.True(t, bookmaker.FreebetBalance.Equal(dec("70")))
		assert.True(t, resp.BalanceBefore.Equal(dec("20")))
		assert.True(t, resp.BalanceAfter.Equal(dec("70")))
	})

	t.Run("overdraft is rejected", func(t *testing.T) {
		srv, repo, sqlMock := setup(t)
		bookmaker := testBookmaker("10")

		sqlMock.ExpectBegin()
		sqlMock.ExpectRollback()
		repo.On("WithTx", mock.Anything).Return(repo)
		repo.On("GetBookmakerByID", ctx, bookmaker.ID).Return(bookmaker, nil)

		_, err := srv.CreateAdjustment(ctx, &ledger.AdjustmentRequest{
			BookmakerID: bookmaker.ID,
			Type:        models.TransactionTypeWithdrawal,
			Amount:      dec("30"),
		})
		assert.ErrorIs(t, err, models.ErrInsufficientBalance)
		repo.AssertNotCalled(t, "CreateTransaction", mock.Anything, mock.Anything)
	})

	t.Run("bet postings cannot be forged manually", func(t *testing.T) {
		srv, _, _ := setup(t)
		_, err := srv.CreateAdjustment(ctx, &ledger.AdjustmentRequest{
			BookmakerID: uuid.New(),
			Type:        models.TransactionTypeBetStake,
			Amount:      dec("10"),
		})
		assert.ErrorIs(t, err, models.ErrInvalidTransactionType)
	})

	t.Run("zero adjustment is rejected", func(t *testing.T) {
		srv, _, _ := setup(t)
		_, err := srv.CreateAdjustment(ctx, &ledger.AdjustmentRequest{
			BookmakerID: uuid.New(),
			Type:        models.TransactionTypeAdjustment,
			Amount:      decimal.Zero,
		})
		assert.ErrorIs(t, err, models.ErrInvalidTransactionAmount)
	})
}
