package surebet

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/joefazee/surebook/internal/formatter"
	"github.com/joefazee/surebook/internal/logger"
	"github.com/joefazee/surebook/internal/sanitizer"
	"github.com/joefazee/surebook/internal/validator"
	"github.com/joefazee/surebook/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type service struct {
	repo      Repository
	engine    AllocationEngine
	scenarios ScenarioEngine
	rates     RateSource
	poster    LedgerPoster
	db        *gorm.DB
	config    *Config
	sanitizer sanitizer.HTMLStripperer
	logger    logger.Logger
}

// NewService creates a new surebet service
func NewService(
	repo Repository,
	engine AllocationEngine,
	scenarios ScenarioEngine,
	rates RateSource,
	poster LedgerPoster,
	db *gorm.DB,
	config *Config,
	stripper sanitizer.HTMLStripperer,
	log logger.Logger,
) Service {
	return &service{
		repo:      repo,
		engine:    engine,
		scenarios: scenarios,
		rates:     rates,
		poster:    poster,
		db:        db,
		config:    config,
		sanitizer: stripper,
		logger:    log,
	}
}

// QuoteTicket solves a stake allocation and evaluates its scenarios
// without persisting anything. Inert legs (odd <= 1) pass through
// untouched so the caller can still render them.
func (s *service) QuoteTicket(ctx context.Context, req *QuoteRequest) (*QuoteResponse, error) {
	if len(req.Legs) > s.config.MaxLegs {
		return nil, models.ErrInvalidMaxLegs
	}

	bookmakers, err := s.loadBookmakers(ctx, req.Legs)
	if err != nil {
		return nil, err
	}

	ticket := s.buildTicket(req.Legs, bookmakers)
	if req.ReferenceIndex != nil {
		if err := ticket.SetReference(*req.ReferenceIndex); err != nil {
			return nil, err
		}
	}

	var solved bool
	if req.TotalStake != nil {
		ticket, solved = s.engine.SolveForTotal(ticket, *req.TotalStake)
	} else {
		ticket, solved = s.engine.SolveFromReference(ticket)
	}

	step := s.config.DefaultRoundingStep
	if req.RoundingStep != nil {
		step = *req.RoundingStep
	}
	if solved && step.GreaterThan(decimal.Zero) {
		ticket, err = s.engine.RoundStakes(ticket, step)
		if err != nil {
			return nil, err
		}
	}

	rates, err := s.rates.Snapshot(ctx, s.config.DominantCurrency)
	if err != nil {
		return nil, fmt.Errorf("failed to load exchange rates: %w", err)
	}

	committed, err := s.repo.GetCommittedStakes(ctx, bookmakerIDs(req.Legs))
	if err != nil {
		return nil, fmt.Errorf("failed to compute committed stakes: %w", err)
	}
	insufficient := s.engine.FindInsufficientLegs(ticket, bookmakers, committed)

	resp := &QuoteResponse{
		Solved:           solved,
		Scenario:         s.scenarios.Evaluate(ticket, rates),
		InsufficientLegs: insufficient,
	}
	if resp.Scenario.HasData {
		resp.MinRoiFormatted = formatter.FormatPercent(resp.Scenario.MinRoi)
	}

	flagged := make(map[int]bool, len(insufficient))
	for _, i := range insufficient {
		flagged[i] = true
	}
	reference := ticket.Reference()
	for i := range ticket.Legs {
		leg := &ticket.Legs[i]
		quoteLeg := QuoteLeg{
			Index:            i,
			BookmakerID:      leg.BookmakerID,
			CurrencyCode:     leg.CurrencyCode,
			Odd:              leg.Odd,
			Stake:            leg.Stake,
			StakeFormatted:   formatter.FormatMoney(leg.Stake, leg.CurrencyCode),
			SelectionLabel:   leg.SelectionLabel,
			IsReference:      i == reference,
			IsDirectedProfit: leg.IsDirectedProfit,
			InsufficientBal:  flagged[i],
		}
		if bm, ok := bookmakers[leg.BookmakerID]; ok {
			quoteLeg.BookmakerName = bm.Name
		}
		resp.Legs = append(resp.Legs, quoteLeg)
	}
	return resp, nil
}

// ConfirmTicket persists a ticket exactly as entered. The stakes are
// not debited: a pending bet holds its stake as committed, and the
// operable balance is the bookmaker balance minus committed stake.
// Cash only moves when a leg settles. A leg that would overcommit its
// bookmaker blocks the whole ticket.
func (s *service) ConfirmTicket(ctx context.Context, req *ConfirmRequest) (*TicketResponse, error) {
	if len(req.Legs) > s.config.MaxLegs {
		return nil, models.ErrInvalidMaxLegs
	}
	for i := range req.Legs {
		if !validator.ValidOdd(req.Legs[i].Odd) {
			return nil, models.ErrInvalidOdd
		}
		if req.Legs[i].Stake.LessThan(s.config.MinStake) {
			return nil, models.ErrInvalidStake
		}
	}

	ticketID := uuid.New()
	var bets []models.Bet

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepo := s.repo.WithTx(tx)

		bookmakers, err := s.loadBookmakersWith(ctx, txRepo, req.Legs)
		if err != nil {
			return err
		}

		ticket := s.buildTicket(req.Legs, bookmakers)
		committed, err := txRepo.GetCommittedStakes(ctx, bookmakerIDs(req.Legs))
		if err != nil {
			return fmt.Errorf("failed to compute committed stakes: %w", err)
		}
		if blocked := s.engine.FindInsufficientLegs(ticket, bookmakers, committed); len(blocked) > 0 {
			return models.ErrInsufficientBalance
		}

		bets = make([]models.Bet, 0, len(req.Legs))
		for i := range req.Legs {
			leg := &req.Legs[i]
			bets = append(bets, models.Bet{
				TicketID:       ticketID,
				BookmakerID:    leg.BookmakerID,
				Odd:            leg.Odd,
				Stake:          leg.Stake,
				CurrencyCode:   bookmakers[leg.BookmakerID].CurrencyCode,
				SelectionLabel: s.sanitizer.StripHTML(leg.SelectionLabel),
				Result:         models.LegResultPending,
			})
		}
		if err := txRepo.CreateBets(ctx, bets); err != nil {
			return fmt.Errorf("failed to create bets: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("ticket confirmed", logger.Fields{
		"ticket_id": ticketID,
		"legs":      len(bets),
	})
	return s.GetTicket(ctx, ticketID)
}

// GetTicket loads a persisted ticket with its settlement progress
func (s *service) GetTicket(ctx context.Context, ticketID uuid.UUID) (*TicketResponse, error) {
	bets, err := s.repo.GetBetsByTicketID(ctx, ticketID)
	if err != nil {
		return nil, fmt.Errorf("failed to get ticket: %w", err)
	}
	if len(bets) == 0 {
		return nil, models.ErrRecordNotFound
	}

	ticket := models.NewTicket(s.config.DominantCurrency)
	for i := range bets {
		ticket.AddLeg(bets[i].ToLeg())
	}

	rates, err := s.rates.Snapshot(ctx, s.config.DominantCurrency)
	if err != nil {
		return nil, fmt.Errorf("failed to load exchange rates: %w", err)
	}

	resp := &TicketResponse{
		TicketID:     ticketID,
		Progress:     s.scenarios.EvaluateProgress(ticket, rates),
		FullySettled: ticket.IsFullySettled(),
	}
	for i := range bets {
		resp.Bets = append(resp.Bets, ToBetResponse(&bets[i]))
	}
	return resp, nil
}

func (s *service) ListTickets(ctx context.Context, filters *TicketFilters) ([]TicketSummary, int64, error) {
	return s.repo.ListTickets(ctx, filters)
}

// LiquidateLeg records a terminal result on one bet. Settlement is
// where the cash actually moves: the committed stake is debited and
// posted, then the realized payout (if any) is credited and posted,
// all in one transaction. A settled bet rejects further transitions.
func (s *service) LiquidateLeg(ctx context.Context, betID uuid.UUID, req *SettleRequest) (*TicketResponse, error) {
	if !req.Result.IsValid() || !req.Result.IsTerminal() {
		return nil, models.ErrInvalidLegResult
	}

	var ticketID uuid.UUID
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepo := s.repo.WithTx(tx)

		bet, err := txRepo.GetBetByID(ctx, betID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.ErrRecordNotFound
			}
			return fmt.Errorf("failed to get bet: %w", err)
		}
		ticketID = bet.TicketID

		payout, err := bet.Liquidate(req.Result)
		if err != nil {
			return err
		}
		if err := txRepo.UpdateBet(ctx, bet); err != nil {
			return fmt.Errorf("failed to update bet: %w", err)
		}

		bookmakers, err := txRepo.GetBookmakersByIDs(ctx, []uuid.UUID{bet.BookmakerID})
		if err != nil {
			return fmt.Errorf("failed to get bookmaker: %w", err)
		}
		bookmaker, ok := bookmakers[bet.BookmakerID]
		if !ok {
			return models.ErrRecordNotFound
		}

		// The stake stayed in the balance while the bet was pending;
		// a withdrawal below the committed total fails here.
		if err := bookmaker.Debit(bet.Stake); err != nil {
			return err
		}
		if err := s.poster.PostStake(ctx, tx, bookmaker, bet); err != nil {
			return fmt.Errorf("failed to post stake: %w", err)
		}
		if payout.GreaterThan(decimal.Zero) {
			if err := bookmaker.Credit(payout); err != nil {
				return err
			}
			if err := s.poster.PostSettlement(ctx, tx, bookmaker, bet, payout); err != nil {
				return fmt.Errorf("failed to post settlement: %w", err)
			}
		}
		if err := txRepo.UpdateBookmaker(ctx, bookmaker); err != nil {
			return fmt.Errorf("failed to update bookmaker balance: %w", err)
		}

		s.logger.Info("bet settled", logger.Fields{
			"bet_id": bet.ID,
			"result": string(req.Result),
			"payout": payout.String(),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.GetTicket(ctx, ticketID)
}

// buildTicket assembles the in-memory ticket, pulling each leg's
// currency from its bookmaker
func (s *service) buildTicket(legs []LegInput, bookmakers map[uuid.UUID]*models.Bookmaker) *models.Ticket {
	ticket := models.NewTicket(s.config.DominantCurrency)
	for i := range legs {
		leg := models.Leg{
			BookmakerID:      legs[i].BookmakerID,
			Odd:              legs[i].Odd,
			Stake:            legs[i].Stake,
			SelectionLabel:   s.sanitizer.StripHTML(legs[i].SelectionLabel),
			IsDirectedProfit: legs[i].IsDirectedProfit,
		}
		if bm, ok := bookmakers[legs[i].BookmakerID]; ok {
			leg.CurrencyCode = bm.CurrencyCode
		}
		ticket.AddLeg(leg)
	}
	return ticket
}

func (s *service) loadBookmakers(ctx context.Context, legs []LegInput) (map[uuid.UUID]*models.Bookmaker, error) {
	return s.loadBookmakersWith(ctx, s.repo, legs)
}

func (s *service) loadBookmakersWith(ctx context.Context, repo Repository, legs []LegInput) (map[uuid.UUID]*models.Bookmaker, error) {
	bookmakers, err := repo.GetBookmakersByIDs(ctx, bookmakerIDs(legs))
	if err != nil {
		return nil, fmt.Errorf("failed to get bookmakers: %w", err)
	}
	for i := range legs {
		if _, ok := bookmakers[legs[i].BookmakerID]; !ok {
			return nil, models.ErrRecordNotFound
		}
	}
	return bookmakers, nil
}

func bookmakerIDs(legs []LegInput) []uuid.UUID {
	seen := make(map[uuid.UUID]bool, len(legs))
	ids := make([]uuid.UUID, 0, len(legs))
	for i := range legs {
		if !seen[legs[i].BookmakerID] {
			seen[legs[i].BookmakerID] = true
			ids = append(ids, legs[i].BookmakerID)
		}
	}
	return ids
}
