package services

import (
	"errors"
	"testing"

	"cinema-box-office/internal/database"
	"cinema-box-office/internal/models"
	"cinema-box-office/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type purchaseFixture struct {
	seats    *repositories.SeatRepository
	cards    *repositories.CardRepository
	receipts *MockReceiptService
	service  *PurchaseService
}

func setupPurchaseFixture(t *testing.T) *purchaseFixture {
	t.Helper()

	cinemaDB, err := database.NewConnection(database.Config{Path: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { cinemaDB.Close() })
	require.NoError(t, cinemaDB.RunMigrations(database.StoreCinema))

	bankingDB, err := database.NewConnection(database.Config{Path: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { bankingDB.Close() })
	require.NoError(t, bankingDB.RunMigrations(database.StoreBanking))

	f := &purchaseFixture{
		seats:    repositories.NewSeatRepository(cinemaDB.DB),
		cards:    repositories.NewCardRepository(bankingDB.DB),
		receipts: NewMockReceiptService(),
	}
	f.service = NewPurchaseService(f.seats, f.cards, f.receipts)

	require.NoError(t, f.seats.Create(&models.Seat{ID: "12", Price: 1000}))
	require.NoError(t, f.seats.Create(&models.Seat{ID: "13", Price: 10000}))
	require.NoError(t, f.cards.Create("4111", "123", "John Smith", 5000))

	return f
}

func testUser() *models.User {
	return &models.User{Name: "John Smith"}
}

func testCard() *models.CardDetails {
	return &models.CardDetails{
		Type:   "visa",
		Number: "4111",
		CVC:    "123",
		Holder: "John Smith",
	}
}

func TestPurchaseService_Purchase_Success(t *testing.T) {
	f := setupPurchaseFixture(t)

	result, err := f.service.Purchase(testUser(), "12", testCard())
	require.NoError(t, err)

	assert.Equal(t, OutcomeSuccess, result.Outcome)
	assert.Equal(t, "Purchase Successful!", result.Outcome.Message())
	require.NotNil(t, result.Ticket)
	assert.Equal(t, "12", result.Ticket.SeatID)
	assert.Equal(t, 1000, result.Ticket.Price)
	assert.Equal(t, "John Smith", result.Ticket.HolderName)
	assert.NotEmpty(t, result.ReceiptPath)

	// Seat is now taken and the balance dropped by exactly the price
	free, err := f.seats.IsFree("12")
	require.NoError(t, err)
	assert.False(t, free)

	balance, err := f.cards.Balance("4111")
	require.NoError(t, err)
	assert.Equal(t, 4000, balance)

	require.Len(t, f.receipts.Emitted, 1)

	// Retrying the same purchase must now fail as seat taken
	retry, err := f.service.Purchase(testUser(), "12", testCard())
	require.NoError(t, err)
	assert.Equal(t, OutcomeSeatTaken, retry.Outcome)

	balance, err = f.cards.Balance("4111")
	require.NoError(t, err)
	assert.Equal(t, 4000, balance, "failed retry must not touch the balance")
}

func TestPurchaseService_Purchase_SeatTaken(t *testing.T) {
	f := setupPurchaseFixture(t)
	require.NoError(t, f.seats.Occupy("12"))

	result, err := f.service.Purchase(testUser(), "12", testCard())
	require.NoError(t, err)

	assert.Equal(t, OutcomeSeatTaken, result.Outcome)
	assert.Equal(t, "Seat is taken!", result.Outcome.Message())
	assert.Nil(t, result.Ticket)
	assert.Empty(t, f.receipts.Emitted)

	balance, err := f.cards.Balance("4111")
	require.NoError(t, err)
	assert.Equal(t, 5000, balance, "balance must be untouched")
}

func TestPurchaseService_Purchase_InsufficientFunds(t *testing.T) {
	f := setupPurchaseFixture(t)

	// Seat 13 costs 100.00 but the card only holds 50.00
	result, err := f.service.Purchase(testUser(), "13", testCard())
	require.NoError(t, err)

	assert.Equal(t, OutcomeCardProblem, result.Outcome)
	assert.Equal(t, "There was a problem with your card!", result.Outcome.Message())
	assert.Empty(t, f.receipts.Emitted)

	free, err := f.seats.IsFree("13")
	require.NoError(t, err)
	assert.True(t, free, "seat must be freed again after the failed charge")

	balance, err := f.cards.Balance("4111")
	require.NoError(t, err)
	assert.Equal(t, 5000, balance)
}

func TestPurchaseService_Purchase_CardRejections(t *testing.T) {
	tests := []struct {
		name string
		card *models.CardDetails
	}{
		{
			name: "unknown card number",
			card: &models.CardDetails{Type: "visa", Number: "9999", CVC: "123", Holder: "John Smith"},
		},
		{
			name: "wrong cvc",
			card: &models.CardDetails{Type: "visa", Number: "4111", CVC: "999", Holder: "John Smith"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := setupPurchaseFixture(t)

			result, err := f.service.Purchase(testUser(), "12", tt.card)
			require.NoError(t, err)
			assert.Equal(t, OutcomeCardProblem, result.Outcome)

			free, err := f.seats.IsFree("12")
			require.NoError(t, err)
			assert.True(t, free)

			balance, err := f.cards.Balance("4111")
			require.NoError(t, err)
			assert.Equal(t, 5000, balance)
		})
	}
}

func TestPurchaseService_Purchase_SeatNotFound(t *testing.T) {
	f := setupPurchaseFixture(t)

	// A missing seat is an error, not a "seat is taken" outcome
	result, err := f.service.Purchase(testUser(), "99", testCard())
	require.Error(t, err)
	assert.True(t, errors.Is(err, models.ErrSeatNotFound))
	assert.Nil(t, result)

	balance, err := f.cards.Balance("4111")
	require.NoError(t, err)
	assert.Equal(t, 5000, balance)
}

func TestPurchaseService_Purchase_ReceiptFailureRollsBack(t *testing.T) {
	f := setupPurchaseFixture(t)
	f.receipts.FailErr = errors.New("disk full")

	result, err := f.service.Purchase(testUser(), "12", testCard())
	require.Error(t, err)
	assert.Nil(t, result)

	// The charge and the seat claim are both undone
	free, err := f.seats.IsFree("12")
	require.NoError(t, err)
	assert.True(t, free)

	balance, err := f.cards.Balance("4111")
	require.NoError(t, err)
	assert.Equal(t, 5000, balance)
}

func TestPurchaseService_Purchase_InvalidInput(t *testing.T) {
	tests := []struct {
		name   string
		user   *models.User
		seatID string
		card   *models.CardDetails
	}{
		{
			name:   "empty name",
			user:   &models.User{},
			seatID: "12",
			card:   testCard(),
		},
		{
			name:   "empty seat",
			user:   testUser(),
			seatID: "",
			card:   testCard(),
		},
		{
			name:   "bad cvc",
			user:   testUser(),
			seatID: "12",
			card:   &models.CardDetails{Type: "visa", Number: "4111", CVC: "x", Holder: "John Smith"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := setupPurchaseFixture(t)

			result, err := f.service.Purchase(tt.user, tt.seatID, tt.card)
			require.Error(t, err)
			assert.True(t, errors.Is(err, models.ErrInvalidInput))
			assert.Nil(t, result)
		})
	}
}
