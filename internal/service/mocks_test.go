package service

import (
	"context"

	"escape-booking/internal/model"
	"escape-booking/internal/pricing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/mock"
)

// MockRoomRepository is a mock implementation of RoomRepository.
type MockRoomRepository struct {
	mock.Mock
}

func (m *MockRoomRepository) GetAll(ctx context.Context, limit, offset int) ([]model.Room, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Room), args.Error(1)
}

func (m *MockRoomRepository) GetByID(ctx context.Context, idOrSlug string) (*model.Room, error) {
	args := m.Called(ctx, idOrSlug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Room), args.Error(1)
}

// MockBookingRepository is a mock implementation of BookingRepository.
type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) BeginTx(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	if tx, ok := args.Get(0).(pgx.Tx); ok {
		return tx, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockBookingRepository) CreateBooking(ctx context.Context, tx pgx.Tx, booking *model.Booking) error {
	args := m.Called(ctx, tx, booking)
	return args.Error(0)
}

func (m *MockBookingRepository) IncrementPromoUsage(ctx context.Context, tx pgx.Tx, code string) error {
	args := m.Called(ctx, tx, code)
	return args.Error(0)
}

func (m *MockBookingRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Booking), args.Error(1)
}

func (m *MockBookingRepository) BookedSlots(ctx context.Context, roomID, date string) ([]string, error) {
	args := m.Called(ctx, roomID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

// MockTimeSlotRepository is a mock implementation of TimeSlotRepository.
type MockTimeSlotRepository struct {
	mock.Mock
}

func (m *MockTimeSlotRepository) ListActiveSlots(ctx context.Context) ([]model.TimeSlot, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.TimeSlot), args.Error(1)
}

// MockQuoteEngine is a mock implementation of QuoteEngine.
type MockQuoteEngine struct {
	mock.Mock
}

func (m *MockQuoteEngine) Calculate(ctx context.Context, req model.BookingQuoteRequest) (*model.BookingQuote, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.BookingQuote), args.Error(1)
}

// MockPromoValidator is a mock implementation of PromoValidator.
type MockPromoValidator struct {
	mock.Mock
}

func (m *MockPromoValidator) Validate(ctx context.Context, code string, pctx pricing.PromoContext) pricing.PromoValidation {
	args := m.Called(ctx, code, pctx)
	return args.Get(0).(pricing.PromoValidation)
}

// MockOfferSelector is a mock implementation of OfferSelector.
type MockOfferSelector struct {
	mock.Mock
}

func (m *MockOfferSelector) ActiveOffersForRoom(ctx context.Context, roomID, date string) []model.Offer {
	args := m.Called(ctx, roomID, date)
	return args.Get(0).([]model.Offer)
}

func (m *MockOfferSelector) AllActiveOffers(ctx context.Context) []model.Offer {
	args := m.Called(ctx)
	return args.Get(0).([]model.Offer)
}

func (m *MockOfferSelector) RoomHasActiveOffer(ctx context.Context, roomID string) bool {
	args := m.Called(ctx, roomID)
	return args.Bool(0)
}

// MockTx is a minimal mock implementation of pgx.Tx for testing.
type MockTx struct {
	mock.Mock
}

func (m *MockTx) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTx) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// Stub methods to satisfy pgx.Tx interface - these are not used in our tests
func (m *MockTx) Begin(ctx context.Context) (pgx.Tx, error) { return nil, nil }
func (m *MockTx) CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error) {
	return 0, nil
}
func (m *MockTx) SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults { return nil }
func (m *MockTx) LargeObjects() pgx.LargeObjects                               { return pgx.LargeObjects{} }
func (m *MockTx) Prepare(ctx context.Context, name, sql string) (*pgconn.StatementDescription, error) {
	return nil, nil
}
func (m *MockTx) Exec(ctx context.Context, sql string, arguments ...any) (commandTag pgconn.CommandTag, err error) {
	return
}
func (m *MockTx) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}
func (m *MockTx) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row { return nil }
func (m *MockTx) Conn() *pgx.Conn                                               { return nil }
