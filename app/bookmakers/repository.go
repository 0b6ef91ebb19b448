package bookmakers

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

// NewRepository creates a new bookmakers repository
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CreatePartner(ctx context.Context, partner *models.Partner) error {
	if err := partner.Validate(); err != nil {
		return err
	}
	return r.db.WithContext(ctx).Create(partner).Error
}

func (r *repository) GetPartnerByID(ctx context.Context, id uuid.UUID) (*models.Partner, error) {
	var partner models.Partner
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&partner).Error
	if err != nil {
		return nil, err
	}
	return &partner, nil
}

func (r *repository) GetAllPartners(ctx context.Context) ([]models.Partner, error) {
	var partners []models.Partner
	err := r.db.WithContext(ctx).Order("name ASC").Find(&partners).Error
	return partners, err
}

func (r *repository) UpdatePartner(ctx context.Context, partner *models.Partner) error {
	if err := partner.Validate(); err != nil {
		return err
	}
	return r.db.WithContext(ctx).Save(partner).Error
}

func (r *repository) CreateBookmaker(ctx context.Context, bookmaker *models.Bookmaker) error {
	if err := bookmaker.Validate(); err != nil {
		return err
	}
	return r.db.WithContext(ctx).Create(bookmaker).Error
}

func (r *repository) GetBookmakerByID(ctx context.Context, id uuid.UUID) (*models.Bookmaker, error) {
	var bookmaker models.Bookmaker
	err := r.db.WithContext(ctx).
		Preload("Partner").
		Where("id = ?", id).
		First(&bookmaker).Error
	if err != nil {
		return nil, err
	}
	return &bookmaker, nil
}

func (r *repository) GetAllBookmakers(ctx context.Context, partnerID *uuid.UUID) ([]models.Bookmaker, error) {
	query := r.db.WithContext(ctx).Preload("Partner").Order("name ASC")
	if partnerID != nil {
		query = query.Where("partner_id = ?", *partnerID)
	}

	var bookmakers []models.Bookmaker
	err := query.Find(&bookmakers).Error
	return bookmakers, err
}

func (r *repository) UpdateBookmaker(ctx context.Context, bookmaker *models.Bookmaker) error {
	if err := bookmaker.Validate(); err != nil {
		return err
	}
	return r.db.WithContext(ctx).Save(bookmaker).Error
}

// GetCommittedStake sums the stakes of unsettled bets for one bookmaker
func (r *repository) GetCommittedStake(ctx context.Context, bookmakerID uuid.UUID) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.db.WithContext(ctx).Model(&models.Bet{}).
		Select("coalesce(sum(stake), 0)").
		Where("bookmaker_id = ? AND result = ?", bookmakerID, models.LegResultPending).
		Scan(&total).Error
	return total, err
}
