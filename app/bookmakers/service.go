package bookmakers

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/joefazee/surebook/internal/logger"
	"github.com/joefazee/surebook/internal/sanitizer"
	"github.com/joefazee/surebook/internal/validator"
	"github.com/joefazee/surebook/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type service struct {
	repo      Repository
	sanitizer sanitizer.HTMLStripperer
	logger    logger.Logger
}

// NewService creates a new bookmakers service
func NewService(repo Repository, stripper sanitizer.HTMLStripperer, log logger.Logger) Service {
	return &service{
		repo:      repo,
		sanitizer: stripper,
		logger:    log,
	}
}

func (s *service) CreatePartner(ctx context.Context, req *CreatePartnerRequest) (*PartnerResponse, error) {
	name := s.sanitizer.StripHTML(strings.TrimSpace(req.Name))
	if !validator.NotBlank(name) {
		return nil, models.ErrInvalidPartnerName
	}

	partner := &models.Partner{
		Name:    name,
		Contact: s.sanitizer.StripHTML(req.Contact),
		Notes:   s.sanitizer.StripHTML(req.Notes),
	}
	if err := s.repo.CreatePartner(ctx, partner); err != nil {
		return nil, fmt.Errorf("failed to create partner: %w", err)
	}

	s.logger.Info("partner created", logger.Fields{"partner_id": partner.ID})
	return ToPartnerResponse(partner), nil
}

func (s *service) GetPartners(ctx context.Context) ([]PartnerResponse, error) {
	partners, err := s.repo.GetAllPartners(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get partners: %w", err)
	}

	responses := make([]PartnerResponse, len(partners))
	for i := range partners {
		responses[i] = *ToPartnerResponse(&partners[i])
	}
	return responses, nil
}

func (s *service) UpdatePartner(ctx context.Context, id uuid.UUID, req *UpdatePartnerRequest) (*PartnerResponse, error) {
	partner, err := s.repo.GetPartnerByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrRecordNotFound
		}
		return nil, fmt.Errorf("failed to get partner: %w", err)
	}

	if req.Name != nil {
		name := s.sanitizer.StripHTML(strings.TrimSpace(*req.Name))
		if !validator.NotBlank(name) {
			return nil, models.ErrInvalidPartnerName
		}
		partner.Name = name
	}
	if req.Contact != nil {
		partner.Contact = s.sanitizer.StripHTML(*req.Contact)
	}
	if req.Notes != nil {
		partner.Notes = s.sanitizer.StripHTML(*req.Notes)
	}
	if req.IsActive != nil {
		partner.IsActive = req.IsActive
	}

	if err := s.repo.UpdatePartner(ctx, partner); err != nil {
		return nil, fmt.Errorf("failed to update partner: %w", err)
	}
	return ToPartnerResponse(partner), nil
}

func (s *service) CreateBookmaker(ctx context.Context, req *CreateBookmakerRequest) (*BookmakerResponse, error) {
	code := strings.ToUpper(req.CurrencyCode)
	if !validator.ValidCurrencyCode(code) {
		return nil, models.ErrInvalidCurrencyCode
	}
	if !validator.NonNegative(req.Balance) || !validator.NonNegative(req.FreebetBalance) {
		return nil, models.ErrNegativeBalance
	}

	if _, err := s.repo.GetPartnerByID(ctx, req.PartnerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrRecordNotFound
		}
		return nil, fmt.Errorf("failed to get partner: %w", err)
	}

	name := s.sanitizer.StripHTML(strings.TrimSpace(req.Name))
	if !validator.NotBlank(name) {
		return nil, models.ErrInvalidBookmakerName
	}

	bookmaker := &models.Bookmaker{
		PartnerID:      req.PartnerID,
		Name:           name,
		CurrencyCode:   code,
		Balance:        req.Balance,
		FreebetBalance: req.FreebetBalance,
	}
	if err := s.repo.CreateBookmaker(ctx, bookmaker); err != nil {
		return nil, fmt.Errorf("failed to create bookmaker: %w", err)
	}

	s.logger.Info("bookmaker created", logger.Fields{
		"bookmaker_id": bookmaker.ID,
		"partner_id":   bookmaker.PartnerID,
		"currency":     code,
	})
	return ToBookmakerResponse(bookmaker, decimal.Zero), nil
}

func (s *service) GetBookmaker(ctx context.Context, id uuid.UUID) (*BookmakerResponse, error) {
	bookmaker, err := s.repo.GetBookmakerByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrRecordNotFound
		}
		return nil, fmt.Errorf("failed to get bookmaker: %w", err)
	}

	committed, err := s.repo.GetCommittedStake(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get committed stake: %w", err)
	}
	return ToBookmakerResponse(bookmaker, committed), nil
}

func (s *service) GetBookmakers(ctx context.Context, partnerID *uuid.UUID) ([]BookmakerResponse, error) {
	bookmakers, err := s.repo.GetAllBookmakers(ctx, partnerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get bookmakers: %w", err)
	}

	responses := make([]BookmakerResponse, len(bookmakers))
	for i := range bookmakers {
		committed, err := s.repo.GetCommittedStake(ctx, bookmakers[i].ID)
		if err != nil {
			return nil, fmt.Errorf("failed to get committed stake: %w", err)
		}
		responses[i] = *ToBookmakerResponse(&bookmakers[i], committed)
	}
	return responses, nil
}

func (s *service) UpdateBookmaker(ctx context.Context, id uuid.UUID, req *UpdateBookmakerRequest) (*BookmakerResponse, error) {
	bookmaker, err := s.repo.GetBookmakerByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrRecordNotFound
		}
		return nil, fmt.Errorf("failed to get bookmaker: %w", err)
	}

	if req.Name != nil {
		name := s.sanitizer.StripHTML(strings.TrimSpace(*req.Name))
		if !validator.NotBlank(name) {
			return nil, models.ErrInvalidBookmakerName
		}
		bookmaker.Name = name
	}
	if req.IsActive != nil {
		bookmaker.IsActive = req.IsActive
	}

	if err := s.repo.UpdateBookmaker(ctx, bookmaker); err != nil {
		return nil, fmt.Errorf("failed to update bookmaker: %w", err)
	}

	committed, err := s.repo.GetCommittedStake(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get committed stake: %w", err)
	}
	return ToBookmakerResponse(bookmaker, committed), nil
}
