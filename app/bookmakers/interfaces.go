package bookmakers

import (
	"context"

	"github.com/google/uuid"
	"github.com/joefazee/surebook/models"
	"github.com/shopspring/decimal"
)

// Repository defines the interface for partner and bookmaker data access
type Repository interface {
	CreatePartner(ctx context.Context, partner *models.Partner) error
	GetPartnerByID(ctx context.Context, id uuid.UUID) (*models.Partner, error)
	GetAllPartners(ctx context.Context) ([]models.Partner, error)
	UpdatePartner(ctx context.Context, partner *models.Partner) error

	CreateBookmaker(ctx context.Context, bookmaker *models.Bookmaker) error
	GetBookmakerByID(ctx context.Context, id uuid.UUID) (*models.Bookmaker, error)
	GetAllBookmakers(ctx context.Context, partnerID *uuid.UUID) ([]models.Bookmaker, error)
	UpdateBookmaker(ctx context.Context, bookmaker *models.Bookmaker) error
	GetCommittedStake(ctx context.Context, bookmakerID uuid.UUID) (decimal.Decimal, error)
}

// Service defines the interface for partner and bookmaker management
type Service interface {
	CreatePartner(ctx context.Context, req *CreatePartnerRequest) (*PartnerResponse, error)
	GetPartners(ctx context.Context) ([]PartnerResponse, error)
	UpdatePartner(ctx context.Context, id uuid.UUID, req *UpdatePartnerRequest) (*PartnerResponse, error)

	CreateBookmaker(ctx context.Context, req *CreateBookmakerRequest) (*BookmakerResponse, error)
	GetBookmaker(ctx context.Context, id uuid.UUID) (*BookmakerResponse, error)
	GetBookmakers(ctx context.Context, partnerID *uuid.UUID) ([]BookmakerResponse, error)
	UpdateBookmaker(ctx context.Context, id uuid.UUID, req *UpdateBookmakerRequest) (*BookmakerResponse, error)
}
