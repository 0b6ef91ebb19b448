package surebet

import (
	"context"

	"github.com/google/uuid"
	"github.com/joefazee/surebook/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type repository struct {
	db *gorm.DB
}

// NewRepository creates a new surebet repository
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	return &repository{db: tx}
}

func (r *repository) CreateBets(ctx context.Context, bets []models.Bet) error {
	for i := range bets {
		if err := bets[i].Validate(); err != nil {
			return err
		}
	}
	return r.db.WithContext(ctx).Create(&bets).Error
}

func (r *repository) GetBetByID(ctx context.Context, id uuid.UUID) (*models.Bet, error) {
	var bet models.Bet
	err := r.db.WithContext(ctx).
		Preload("Bookmaker").
		Where("id = ?", id).
		First(&bet).Error
	if err != nil {
		return nil, err
	}
	return &bet, nil
}

func (r *repository) GetBetsByTicketID(ctx context.Context, ticketID uuid.UUID) ([]models.Bet, error) {
	var bets []models.Bet
	err := r.db.WithContext(ctx).
		Preload("Bookmaker").
		Where("ticket_id = ?", ticketID).
		Order("created_at ASC, id ASC").
		Find(&bets).Error
	return bets, err
}

func (r *repository) UpdateBet(ctx context.Context, bet *models.Bet) error {
	return r.db.WithContext(ctx).Save(bet).Error
}

func (r *repository) ListTickets(ctx context.Context, filters *TicketFilters) ([]TicketSummary, int64, error) {
	filters.Normalize()

	base := r.db.WithContext(ctx).Model(&models.Bet{}).
		Select("ticket_id, count(*) as leg_count, count(*) filter (where result = ?) as pending_legs, min(created_at) as created_at", models.LegResultPending).
		Group("ticket_id")
	if filters.OpenOnly {
		base = base.Having("count(*) filter (where result = ?) > 0", models.LegResultPending)
	}

	var total int64
	if err := r.db.WithContext(ctx).Table("(?) as tickets", base).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var summaries []TicketSummary
	offset := (filters.Page - 1) * filters.PerPage
	err := base.
		Order("min(created_at) DESC").
		Limit(filters.PerPage).
		Offset(offset).
		Scan(&summaries).Error
	return summaries, total, err
}

func (r *repository) GetBookmakersByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*models.Bookmaker, error) {
	var bookmakers []models.Bookmaker
	err := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&bookmakers).Error
	if err != nil {
		return nil, err
	}

	result := make(map[uuid.UUID]*models.Bookmaker, len(bookmakers))
	for i := range bookmakers {
		result[bookmakers[i].ID] = &bookmakers[i]
	}
	return result, nil
}

func (r *repository) UpdateBookmaker(ctx context.Context, bookmaker *models.Bookmaker) error {
	if err := bookmaker.Validate(); err != nil {
		return err
	}
	return r.db.WithContext(ctx).Save(bookmaker).Error
}

// GetCommittedStakes sums the stakes of unsettled bets per bookmaker.
// Bookmakers with no open bets are absent from the map; callers treat
// absence as zero.
func (r *repository) GetCommittedStakes(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]decimal.Decimal, error) {
	type row struct {
		BookmakerID uuid.UUID
		Total       decimal.Decimal
	}
	var rows []row
	err := r.db.WithContext(ctx).Model(&models.Bet{}).
		Select("bookmaker_id, coalesce(sum(stake), 0) as total").
		Where("bookmaker_id IN ? AND result = ?", ids, models.LegResultPending).
		Group("bookmaker_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	result := make(map[uuid.UUID]decimal.Decimal, len(rows))
	for _, r := range rows {
		result[r.BookmakerID] = r.Total
	}
	return result, nil
}
