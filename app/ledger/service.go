package ledger

import (
	"context"
	"errors"
	"fmt"

	"github.com/joefazee/surebook/internal/formatter"
	"github.com/joefazee/surebook/internal/logger"
	"github.com/joefazee/surebook/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type service struct {
	repo   Repository
	db     *gorm.DB
	logger logger.Logger
}

// NewService creates a new ledger service
func NewService(repo Repository, db *gorm.DB, log logger.Logger) Service {
	return &service{
		repo:   repo,
		db:     db,
		logger: log,
	}
}

// PostStake records the stake debit when a bet settles and its
// committed stake leaves the balance. The bookmaker balance already
// reflects the debit; the posting derives the before figure from it.
func (s *service) PostStake(ctx context.Context, tx *gorm.DB, bookmaker *models.Bookmaker, bet *models.Bet) error {
	transaction := &models.Transaction{
		BookmakerID:   bookmaker.ID,
		Type:          models.TransactionTypeBetStake,
		Amount:        bet.Stake.Neg(),
		CurrencyCode:  bookmaker.CurrencyCode,
		BalanceBefore: bookmaker.Balance.Add(bet.Stake),
		BalanceAfter:  bookmaker.Balance,
		BetID:         &bet.ID,
		Description:   "Stake " + formatter.FormatMoney(bet.Stake, bookmaker.CurrencyCode),
	}
	return s.repo.WithTx(tx).CreateTransaction(ctx, transaction)
}

// PostSettlement records the payout credit for a settled bet
func (s *service) PostSettlement(ctx context.Context, tx *gorm.DB, bookmaker *models.Bookmaker, bet *models.Bet, payout decimal.Decimal) error {
	transaction := &models.Transaction{
		BookmakerID:   bookmaker.ID,
		Type:          models.TransactionTypeBetSettlement,
		Amount:        payout,
		CurrencyCode:  bookmaker.CurrencyCode,
		BalanceBefore: bookmaker.Balance.Sub(payout),
		BalanceAfter:  bookmaker.Balance,
		BetID:         &bet.ID,
		Description:   "Settlement " + formatter.FormatMoney(payout, bookmaker.CurrencyCode),
		Metadata: models.TransactionMetadata{
			LegResult: string(bet.Result),
		},
	}
	return s.repo.WithTx(tx).CreateTransaction(ctx, transaction)
}

func (s *service) ListTransactions(ctx context.Context, filters *TransactionFilters) ([]TransactionResponse, int64, error) {
	transactions, total, err := s.repo.GetTransactions(ctx, filters)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list transactions: %w", err)
	}

	responses := make([]TransactionResponse, len(transactions))
	for i := range transactions {
		responses[i] = ToTransactionResponse(&transactions[i])
	}
	return responses, total, nil
}

// CreateAdjustment posts a manual cash movement and mutates the
// bookmaker balance atomically. Deposits and withdrawals take a
// positive amount; adjustments carry their sign.
func (s *service) CreateAdjustment(ctx context.Context, req *AdjustmentRequest) (*TransactionResponse, error) {
	signed, err := signedAmount(req)
	if err != nil {
		return nil, err
	}

	var transaction *models.Transaction
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepo := s.repo.WithTx(tx)

		bookmaker, err := txRepo.GetBookmakerByID(ctx, req.BookmakerID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.ErrRecordNotFound
			}
			return fmt.Errorf("failed to get bookmaker: %w", err)
		}

		before := bookmaker.Balance
		after := func() decimal.Decimal { return bookmaker.Balance }
		credit, debit := bookmaker.Credit, bookmaker.Debit
		if req.Freebet {
			before = bookmaker.FreebetBalance
			after = func() decimal.Decimal { return bookmaker.FreebetBalance }
			credit, debit = bookmaker.CreditFreebet, bookmaker.DebitFreebet
		}

		if signed.GreaterThan(decimal.Zero) {
			err = credit(signed)
		} else {
			err = debit(signed.Neg())
		}
		if err != nil {
			return err
		}
		if err := txRepo.UpdateBookmaker(ctx, bookmaker); err != nil {
			return fmt.Errorf("failed to update bookmaker balance: %w", err)
		}

		transaction = &models.Transaction{
			BookmakerID:   bookmaker.ID,
			Type:          req.Type,
			Amount:        signed,
			CurrencyCode:  bookmaker.CurrencyCode,
			BalanceBefore: before,
			BalanceAfter:  after(),
			Description:   req.Description,
			Metadata:      models.TransactionMetadata{Freebet: req.Freebet},
		}
		return txRepo.CreateTransaction(ctx, transaction)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("adjustment posted", logger.Fields{
		"bookmaker_id": req.BookmakerID,
		"type":         string(req.Type),
		"amount":       signed.String(),
	})
	resp := ToTransactionResponse(transaction)
	return &resp, nil
}

func signedAmount(req *AdjustmentRequest) (decimal.Decimal, error) {
	switch req.Type {
	case models.TransactionTypeDeposit:
		if req.Amount.LessThanOrEqual(decimal.Zero) {
			return decimal.Zero, models.ErrInvalidTransactionAmount
		}
		return req.Amount, nil
	case models.TransactionTypeWithdrawal:
		if req.Amount.LessThanOrEqual(decimal.Zero) {
			return decimal.Zero, models.ErrInvalidTransactionAmount
		}
		return req.Amount.Neg(), nil
	case models.TransactionTypeAdjustment:
		if req.Amount.IsZero() {
			return decimal.Zero, models.ErrInvalidTransactionAmount
		}
		return req.Amount, nil
	default:
		return decimal.Zero, models.ErrInvalidTransactionType
	}
}
