package surebet

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/joefazee/surebook/models"
	"github.com/joefazee/surebook/tests/suites"
)

type SurebetRepositoryTestSuite struct {
	suites.RepositoryTestSuite
	repo Repository
}

func TestSurebetRepository(t *testing.T) {
	suite.Run(t, new(SurebetRepositoryTestSuite))
}

func (s *SurebetRepositoryTestSuite) SetupSuite() {
	if testing.Short() {
		s.T().Skip("Skipping database integration test")
	}

	s.RepositoryTestSuite.SetupSuite()
	s.repo = NewRepository(s.DB)
}

func (s *SurebetRepositoryTestSuite) seedBookmaker(currency string, balance string) *models.Bookmaker {
	partner := &models.Partner{Name: "Test Partner"}
	s.Require().NoError(s.DB.Create(partner).Error)

	bookmaker := &models.Bookmaker{
		PartnerID:    partner.ID,
		Name:         "bet365 " + currency,
		CurrencyCode: currency,
		Balance:      decimal.RequireFromString(balance),
	}
	s.Require().NoError(s.DB.Create(bookmaker).Error)
	return bookmaker
}

func (s *SurebetRepositoryTestSuite) seedTicket(bookmaker *models.Bookmaker, stakes ...string) uuid.UUID {
	ticketID := uuid.New()
	for _, stake := range stakes {
		bet := models.Bet{
			TicketID:     ticketID,
			BookmakerID:  bookmaker.ID,
			Odd:          decimal.RequireFromString("2.10"),
			Stake:        decimal.RequireFromString(stake),
			CurrencyCode: bookmaker.CurrencyCode,
			Result:       models.LegResultPending,
		}
		s.Require().NoError(s.repo.CreateBets(context.Background(), []models.Bet{bet}))
		time.Sleep(time.Millisecond)
	}
	return ticketID
}

func (s *SurebetRepositoryTestSuite) TestCreateAndGetBets() {
	ctx := context.Background()
	bookmaker := s.seedBookmaker("BRL", "1000.00")

	ticketID := uuid.New()
	bets := []models.Bet{
		{
			TicketID:       ticketID,
			BookmakerID:    bookmaker.ID,
			Odd:            decimal.RequireFromString("2.10"),
			Stake:          decimal.RequireFromString("100.00"),
			CurrencyCode:   "BRL",
			SelectionLabel: "Team A to win",
			Result:         models.LegResultPending,
		},
		{
			TicketID:     ticketID,
			BookmakerID:  bookmaker.ID,
			Odd:          decimal.RequireFromString("2.05"),
			Stake:        decimal.RequireFromString("102.44"),
			CurrencyCode: "BRL",
			Result:       models.LegResultPending,
		},
	}

	s.Require().NoError(s.repo.CreateBets(ctx, bets))

	got, err := s.repo.GetBetsByTicketID(ctx, ticketID)
	s.Require().NoError(err)
	s.Require().Len(got, 2)
	s.Assert().Equal("Team A to win", got[0].SelectionLabel)
	s.Assert().NotNil(got[0].Bookmaker)
	s.Assert().Equal("bet365 BRL", got[0].Bookmaker.Name)
	s.Assert().True(got[1].Stake.Equal(decimal.RequireFromString("102.44")))
}

func (s *SurebetRepositoryTestSuite) TestCreateBets_RejectsInertOdd() {
	ctx := context.Background()
	bookmaker := s.seedBookmaker("BRL", "1000.00")

	bets := []models.Bet{{
		TicketID:     uuid.New(),
		BookmakerID:  bookmaker.ID,
		Odd:          decimal.RequireFromString("1.00"),
		Stake:        decimal.RequireFromString("100.00"),
		CurrencyCode: "BRL",
		Result:       models.LegResultPending,
	}}

	err := s.repo.CreateBets(ctx, bets)
	s.Assert().Error(err)
	s.Assert().Equal(int64(0), s.CountRecords("bets"))
}

func (s *SurebetRepositoryTestSuite) TestGetBetByID_NotFound() {
	_, err := s.repo.GetBetByID(context.Background(), uuid.New())
	s.Assert().Error(err)
}

func (s *SurebetRepositoryTestSuite) TestUpdateBet_Settlement() {
	ctx := context.Background()
	bookmaker := s.seedBookmaker("BRL", "1000.00")
	ticketID := s.seedTicket(bookmaker, "100.00")

	bets, err := s.repo.GetBetsByTicketID(ctx, ticketID)
	s.Require().NoError(err)
	s.Require().Len(bets, 1)

	payout, err := bets[0].Liquidate(models.LegResultGreen)
	s.Require().NoError(err)
	s.Assert().True(payout.Equal(decimal.RequireFromString("210.00")))

	s.Require().NoError(s.repo.UpdateBet(ctx, &bets[0]))

	got, err := s.repo.GetBetByID(ctx, bets[0].ID)
	s.Require().NoError(err)
	s.Assert().Equal(models.LegResultGreen, got.Result)
	s.Require().NotNil(got.RealizedAmount)
	s.Assert().True(got.RealizedAmount.Equal(payout))
	s.Assert().NotNil(got.SettledAt)
}

func (s *SurebetRepositoryTestSuite) TestListTickets() {
	ctx := context.Background()
	bookmaker := s.seedBookmaker("BRL", "1000.00")

	openTicket := s.seedTicket(bookmaker, "100.00", "102.44")
	settledTicket := s.seedTicket(bookmaker, "50.00")

	bets, err := s.repo.GetBetsByTicketID(ctx, settledTicket)
	s.Require().NoError(err)
	_, err = bets[0].Liquidate(models.LegResultRed)
	s.Require().NoError(err)
	s.Require().NoError(s.repo.UpdateBet(ctx, &bets[0]))

	filters := &TicketFilters{}
	filters.Normalize()
	summaries, total, err := s.repo.ListTickets(ctx, filters)
	s.Require().NoError(err)
	s.Assert().Equal(int64(2), total)
	s.Require().Len(summaries, 2)

	filters = &TicketFilters{OpenOnly: true}
	filters.Normalize()
	summaries, total, err = s.repo.ListTickets(ctx, filters)
	s.Require().NoError(err)
	s.Assert().Equal(int64(1), total)
	s.Require().Len(summaries, 1)
	s.Assert().Equal(openTicket, summaries[0].TicketID)
	s.Assert().Equal(2, summaries[0].LegCount)
	s.Assert().Equal(2, summaries[0].PendingLegs)
}

func (s *SurebetRepositoryTestSuite) TestGetCommittedStakes() {
	ctx := context.Background()
	bookmaker := s.seedBookmaker("BRL", "1000.00")
	idle := s.seedBookmaker("USD", "500.00")

	s.seedTicket(bookmaker, "100.00", "40.00")

	settledTicket := s.seedTicket(bookmaker, "25.00")
	bets, err := s.repo.GetBetsByTicketID(ctx, settledTicket)
	s.Require().NoError(err)
	_, err = bets[0].Liquidate(models.LegResultGreen)
	s.Require().NoError(err)
	s.Require().NoError(s.repo.UpdateBet(ctx, &bets[0]))

	committed, err := s.repo.GetCommittedStakes(ctx, []uuid.UUID{bookmaker.ID, idle.ID})
	s.Require().NoError(err)
	s.Assert().True(committed[bookmaker.ID].Equal(decimal.RequireFromString("140.00")))
	s.Assert().True(committed[idle.ID].IsZero())
}

func (s *SurebetRepositoryTestSuite) TestUpdateBookmaker_Balance() {
	ctx := context.Background()
	bookmaker := s.seedBookmaker("BRL", "1000.00")

	s.Require().NoError(bookmaker.Debit(decimal.RequireFromString("100.00")))
	s.Require().NoError(s.repo.UpdateBookmaker(ctx, bookmaker))

	got, err := s.repo.GetBookmakersByIDs(ctx, []uuid.UUID{bookmaker.ID})
	s.Require().NoError(err)
	s.Require().Contains(got, bookmaker.ID)
	s.Assert().True(got[bookmaker.ID].Balance.Equal(decimal.RequireFromString("900.00")))
}
