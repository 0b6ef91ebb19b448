package bookmakers

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/joefazee/surebook/internal/logger"
	"github.com/joefazee/surebook/internal/sanitizer"
	"github.com/joefazee/surebook/models"
	"github.com/joefazee/surebook/tests/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newService(repo Repository) Service {
	return NewService(repo, sanitizer.NewHTMLStripper(), logger.NewNullLogger())
}

func TestService_CreatePartner(t *testing.T) {
	ctx := context.Background()

	t.Run("strips markup from free text", func(t *testing.T) {
		repo := new(mocks.MockBookmakerRepository)
		srv := newService(repo)

		repo.On("CreatePartner", ctx, mock.MatchedBy(func(p *models.Partner) bool {
			return p.Name == "Alcides" && p.Notes == "main account"
		})).Return(nil)

		resp, err := srv.CreatePartner(ctx, &CreatePartnerRequest{
			Name:  "<b>Alcides</b>",
			Notes: "<script>x</script>main account",
		})
		require.NoError(t, err)
		assert.Equal(t, "Alcides", resp.Name)
		repo.AssertExpectations(t)
	})

	t.Run("name that sanitizes to nothing is rejected", func(t *testing.T) {
		repo := new(mocks.MockBookmakerRepository)
		srv := newService(repo)

		_, err := srv.CreatePartner(ctx, &CreatePartnerRequest{
			Name: "<script>alert(1)</script>",
		})
		assert.ErrorIs(t, err, models.ErrInvalidPartnerName)
		repo.AssertNotCalled(t, "CreatePartner", mock.Anything, mock.Anything)
	})
}

func TestService_CreateBookmaker(t *testing.T) {
	ctx := context.Background()

	t.Run("creates an account under an existing partner", func(t *testing.T) {
		repo := new(mocks.MockBookmakerRepository)
		srv := newService(repo)
		partner := &models.Partner{ID: uuid.New(), Name: "Alcides"}

		repo.On("GetPartnerByID", ctx, partner.ID).Return(partner, nil)
		repo.On("CreateBookmaker", ctx, mock.MatchedBy(func(b *models.Bookmaker) bool {
			return b.PartnerID == partner.ID && b.CurrencyCode == "USD"
		})).Return(nil)

		resp, err := srv.CreateBookmaker(ctx, &CreateBookmakerRequest{
			PartnerID:    partner.ID,
			Name:         "pinnacle",
			CurrencyCode: "usd",
			Balance:      decimal.NewFromInt(500),
		})
		require.NoError(t, err)
		assert.Equal(t, "USD", resp.CurrencyCode)
		assert.True(t, resp.OperableBalance.Equal(decimal.NewFromInt(500)))
	})

	t.Run("unknown partner is rejected", func(t *testing.T) {
		repo := new(mocks.MockBookmakerRepository)
		srv := newService(repo)
		partnerID := uuid.New()

		repo.On("GetPartnerByID", ctx, partnerID).Return(nil, gorm.ErrRecordNotFound)

		_, err := srv.CreateBookmaker(ctx, &CreateBookmakerRequest{
			PartnerID:    partnerID,
			Name:         "pinnacle",
			CurrencyCode: "USD",
		})
		assert.ErrorIs(t, err, models.ErrRecordNotFound)
	})

	t.Run("rejects a malformed currency code", func(t *testing.T) {
		repo := new(mocks.MockBookmakerRepository)
		srv := newService(repo)

		_, err := srv.CreateBookmaker(ctx, &CreateBookmakerRequest{
			PartnerID:    uuid.New(),
			Name:         "pinnacle",
			CurrencyCode: "B2L",
		})
		assert.ErrorIs(t, err, models.ErrInvalidCurrencyCode)
	})

	t.Run("rejects a negative opening balance", func(t *testing.T) {
		repo := new(mocks.MockBookmakerRepository)
		srv := newService(repo)

		_, err := srv.CreateBookmaker(ctx, &CreateBookmakerRequest{
			PartnerID:    uuid.New(),
			Name:         "pinnacle",
			CurrencyCode: "BRL",
			Balance:      decimal.NewFromInt(-1),
		})
		assert.ErrorIs(t, err, models.ErrNegativeBalance)
	})
}

func TestService_GetBookmaker(t *testing.T) {
	ctx := context.Background()

	t.Run("reports the operable balance net of committed stake", func(t *testing.T) {
		repo := new(mocks.MockBookmakerRepository)
		srv := newService(repo)

		bookmaker := &models.Bookmaker{
			ID:           uuid.New(),
			PartnerID:    uuid.New(),
			Name:         "bet365",
			CurrencyCode: "BRL",
			Balance:      decimal.NewFromInt(1000),
		}
		repo.On("GetBookmakerByID", ctx, bookmaker.ID).Return(bookmaker, nil)
		repo.On("GetCommittedStake", ctx, bookmaker.ID).Return(decimal.NewFromInt(300), nil)

		resp, err := srv.GetBookmaker(ctx, bookmaker.ID)
		require.NoError(t, err)
		assert.True(t, resp.CommittedStake.Equal(decimal.NewFromInt(300)))
		assert.True(t, resp.OperableBalance.Equal(decimal.NewFromInt(700)))
	})

	t.Run("unknown bookmaker is not found", func(t *testing.T) {
		repo := new(mocks.MockBookmakerRepository)
		srv := newService(repo)
		id := uuid.New()

		repo.On("GetBookmakerByID", ctx, id).Return(nil, gorm.ErrRecordNotFound)

		_, err := srv.GetBookmaker(ctx, id)
		assert.ErrorIs(t, err, models.ErrRecordNotFound)
	})
}

func TestService_UpdateBookmaker(t *testing.T) {
	ctx := context.Background()

	t.Run("renames and deactivates", func(t *testing.T) {
		repo := new(mocks.MockBookmakerRepository)
		srv := newService(repo)

		bookmaker := &models.Bookmaker{
			ID:           uuid.New(),
			PartnerID:    uuid.New(),
			Name:         "bet365",
			CurrencyCode: "BRL",
		}
		repo.On("GetBookmakerByID", ctx, bookmaker.ID).Return(bookmaker, nil)
		repo.On("UpdateBookmaker", ctx, bookmaker).Return(nil)
		repo.On("GetCommittedStake", ctx, bookmaker.ID).Return(decimal.Zero, nil)

		name := "bet365 br"
		inactive := false
		resp, err := srv.UpdateBookmaker(ctx, bookmaker.ID, &UpdateBookmakerRequest{
			Name:     &name,
			IsActive: &inactive,
		})
		require.NoError(t, err)
		assert.Equal(t, "bet365 br", resp.Name)
		assert.False(t, resp.IsActive)
	})
}
