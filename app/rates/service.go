package rates

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joefazee/surebook/internal/cache"
	"github.com/joefazee/surebook/internal/logger"
	"github.com/joefazee/surebook/internal/validator"
	"github.com/joefazee/surebook/models"
	"github.com/shopspring/decimal"
)

const (
	snapshotCacheKey = "rates:table"
	snapshotCacheTTL = time.Minute
)

type service struct {
	repo   Repository
	cache  cache.Cache[string]
	logger logger.Logger
}

// NewService creates a new rates service
func NewService(repo Repository, c cache.Cache[string], log logger.Logger) Service {
	return &service{
		repo:   repo,
		cache:  c,
		logger: log,
	}
}

func (s *service) ListRates(ctx context.Context) ([]RateResponse, error) {
	rates, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list rates: %w", err)
	}

	responses := make([]RateResponse, len(rates))
	for i := range rates {
		responses[i] = ToRateResponse(&rates[i])
	}
	return responses, nil
}

func (s *service) UpsertRate(ctx context.Context, req *UpsertRateRequest) (*RateResponse, error) {
	code := strings.ToUpper(req.CurrencyCode)
	if !validator.ValidCurrencyCode(code) {
		return nil, models.ErrInvalidCurrencyCode
	}
	if !req.Rate.GreaterThan(decimal.Zero) {
		return nil, models.ErrInvalidRate
	}

	rate := &models.ExchangeRate{
		CurrencyCode: code,
		Rate:         req.Rate,
	}
	if err := s.repo.Upsert(ctx, rate); err != nil {
		return nil, fmt.Errorf("failed to upsert rate: %w", err)
	}

	if err := s.cache.Delete(ctx, snapshotCacheKey); err != nil && !errors.Is(err, cache.ErrCacheMiss) {
		s.logger.Error(err, logger.Fields{"key": snapshotCacheKey})
	}

	s.logger.Info("exchange rate updated", logger.Fields{
		"currency": code,
		"rate":     req.Rate.String(),
	})
	return &RateResponse{CurrencyCode: code, Rate: req.Rate, UpdatedAt: rate.UpdatedAt}, nil
}

func (s *service) DeleteRate(ctx context.Context, currencyCode string) error {
	code := strings.ToUpper(currencyCode)
	if !validator.ValidCurrencyCode(code) {
		return models.ErrInvalidCurrencyCode
	}
	if err := s.repo.Delete(ctx, code); err != nil {
		return err
	}
	if err := s.cache.Delete(ctx, snapshotCacheKey); err != nil && !errors.Is(err, cache.ErrCacheMiss) {
		s.logger.Error(err, logger.Fields{"key": snapshotCacheKey})
	}
	return nil
}

// Snapshot returns an immutable rate table for one evaluation pass.
// The stored table is cached briefly; the dominant currency's parity
// entry is added per call so one cache entry serves any dominant.
func (s *service) Snapshot(ctx context.Context, dominantCode string) (models.RateTable, error) {
	table, err := s.cachedTable(ctx)
	if err != nil {
		return nil, err
	}
	table[dominantCode] = decimal.NewFromInt(1)
	return table, nil
}

func (s *service) cachedTable(ctx context.Context) (models.RateTable, error) {
	if raw, err := s.cache.Get(ctx, snapshotCacheKey); err == nil {
		var table models.RateTable
		if err := json.Unmarshal([]byte(raw), &table); err == nil {
			return table, nil
		}
	}

	rates, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load rates: %w", err)
	}

	table := make(models.RateTable, len(rates))
	for i := range rates {
		table[rates[i].CurrencyCode] = rates[i].Rate
	}

	if raw, err := json.Marshal(table); err == nil {
		if err := s.cache.Set(ctx, snapshotCacheKey, string(raw), snapshotCacheTTL); err != nil {
			s.logger.Error(err, logger.Fields{"key": snapshotCacheKey})
		}
	}
	return table, nil
}
