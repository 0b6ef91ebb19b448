package ledger

import (
	"context"

	"github.com/google/uuid"
	"github.com/joefazee/surebook/models"
	"gorm.io/gorm"
)

type repository struct {
	db *gorm.DB
}

// NewRepository creates a new ledger repository
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	return &repository{db: tx}
}

func (r *repository) CreateTransaction(ctx context.Context, transaction *models.Transaction) error {
	if err := transaction.Validate(); err != nil {
		return err
	}
	return r.db.WithContext(ctx).Create(transaction).Error
}

func (r *repository) GetTransactions(ctx context.Context, filters *TransactionFilters) ([]models.Transaction, int64, error) {
	filters.Normalize()

	query := r.db.WithContext(ctx).Model(&models.Transaction{})
	if filters.BookmakerID != nil {
		query = query.Where("bookmaker_id = ?", *filters.BookmakerID)
	}
	if filters.Type != "" {
		query = query.Where("type = ?", filters.Type)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var transactions []models.Transaction
	offset := (filters.Page - 1) * filters.PerPage
	err := query.
		Order("created_at DESC").
		Limit(filters.PerPage).
		Offset(offset).
		Find(&transactions).Error
	return transactions, total, err
}

func (r *repository) GetBookmakerByID(ctx context.Context, id uuid.UUID) (*models.Bookmaker, error) {
	var bookmaker models.Bookmaker
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&bookmaker).Error
	if err != nil {
		return nil, err
	}
	return &bookmaker, nil
}

func (r *repository) UpdateBookmaker(ctx context.Context, bookmaker *models.Bookmaker) error {
	if err := bookmaker.Validate(); err != nil {
		return err
	}
	return r.db.WithContext(ctx).Save(bookmaker).Error
}
