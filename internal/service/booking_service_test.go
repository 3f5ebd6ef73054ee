package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"escape-booking/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type bookingFixture struct {
	bookings *MockBookingRepository
	rooms    *MockRoomRepository
	slots    *MockTimeSlotRepository
	engine   *MockQuoteEngine
	tx       *MockTx
	service  BookingService
}

var bookingNow = time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)

func newBookingFixture() *bookingFixture {
	f := &bookingFixture{
		bookings: new(MockBookingRepository),
		rooms:    new(MockRoomRepository),
		slots:    new(MockTimeSlotRepository),
		engine:   new(MockQuoteEngine),
		tx:       new(MockTx),
	}
	svc := NewBookingService(f.bookings, f.rooms, f.slots, f.engine, NewValidator(), zerolog.Nop())
	svc.(*bookingService).now = func() time.Time { return bookingNow }
	f.service = svc
	return f
}

func validBookingRequest() *model.BookingRequest {
	return &model.BookingRequest{
		RoomID:        "the-vault",
		Date:          "2026-03-14",
		TimeSlot:      "18:00",
		PlayerCount:   4,
		CustomerName:  "Alex Morgan",
		CustomerEmail: "alex@example.com",
		CustomerPhone: "+27 82 555 0101",
	}
}

func activeSlots() []model.TimeSlot {
	return []model.TimeSlot{
		{ID: "slot-1600", SlotTime: "16:00", Active: true},
		{ID: "slot-1800", SlotTime: "18:00", Active: true},
		{ID: "slot-2000", SlotTime: "20:00", Active: true},
	}
}

func plainQuote() *model.BookingQuote {
	return &model.BookingQuote{
		BasePricePerPerson:  450,
		FinalPricePerPerson: 450,
		BaseTotal:           1800,
		TotalPrice:          1800,
		DiscountBreakdown:   []model.DiscountLine{},
	}
}

func discountedQuote() *model.BookingQuote {
	return &model.BookingQuote{
		BasePricePerPerson:  450,
		FinalPricePerPerson: 324,
		BaseTotal:           1800,
		TotalPrice:          1296,
		DiscountAmount:      504,
		AppliedOffer: &model.AppliedOffer{
			ID:             "offer-1",
			Name:           "Weekend Deal",
			DiscountType:   model.DiscountTypePercentage,
			DiscountValue:  decimal.NewFromInt(10),
			DiscountAmount: 180,
		},
		AppliedPromo: &model.AppliedPromo{
			Code:           "SPRING",
			DiscountType:   model.DiscountTypePercentage,
			DiscountValue:  decimal.NewFromInt(20),
			DiscountAmount: 324,
		},
		DiscountBreakdown: []model.DiscountLine{
			{Type: model.DiscountSourceOffer, Name: "Weekend Deal", Amount: 180},
			{Type: model.DiscountSourcePromo, Name: "Promo: SPRING", Amount: 324},
		},
	}
}

func TestBookingService_CreateBooking_Success(t *testing.T) {
	f := newBookingFixture()
	ctx := context.Background()

	f.rooms.On("GetByID", ctx, "the-vault").Return(testRoom(), nil)
	f.slots.On("ListActiveSlots", ctx).Return(activeSlots(), nil)
	f.engine.On("Calculate", ctx, mock.MatchedBy(func(req model.BookingQuoteRequest) bool {
		return req.RoomID == "room-1" && req.Date != nil && *req.Date == "2026-03-14" &&
			req.TimeSlot == "18:00" && req.PlayerCount == 4
	})).Return(plainQuote(), nil)
	f.bookings.On("BeginTx", ctx).Return(f.tx, nil)
	f.bookings.On("CreateBooking", ctx, f.tx, mock.AnythingOfType("*model.Booking")).Return(nil)
	f.tx.On("Commit", ctx).Return(nil)

	resp, err := f.service.CreateBooking(ctx, validBookingRequest())

	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.NotEqual(t, uuid.Nil, resp.Booking.ID)
	assert.Equal(t, "room-1", resp.Booking.RoomID)
	assert.Equal(t, "2026-03-14", resp.Booking.BookingDate)
	assert.Equal(t, "18:00", resp.Booking.TimeSlot)
	assert.Equal(t, int64(1800), resp.Booking.TotalPrice)
	assert.Equal(t, int64(450), resp.Booking.FinalPricePerPerson)
	assert.Equal(t, model.BookingStatusPending, resp.Booking.Status)
	assert.Equal(t, bookingNow, resp.Booking.CreatedAt)
	assert.Nil(t, resp.Booking.PromoCode)
	assert.Nil(t, resp.Booking.OfferID)
	assert.Equal(t, plainQuote(), resp.Quote)

	f.bookings.AssertNotCalled(t, "IncrementPromoUsage", mock.Anything, mock.Anything, mock.Anything)
	f.tx.AssertNotCalled(t, "Rollback", mock.Anything)
	f.bookings.AssertExpectations(t)
	f.tx.AssertExpectations(t)
}

func TestBookingService_CreateBooking_RecordsAppliedDiscounts(t *testing.T) {
	f := newBookingFixture()
	ctx := context.Background()

	req := validBookingRequest()
	req.PromoCode = strPtr("spring")

	f.rooms.On("GetByID", ctx, "the-vault").Return(testRoom(), nil)
	f.slots.On("ListActiveSlots", ctx).Return(activeSlots(), nil)
	f.engine.On("Calculate", ctx, mock.Anything).Return(discountedQuote(), nil)
	f.bookings.On("BeginTx", ctx).Return(f.tx, nil)
	f.bookings.On("CreateBooking", ctx, f.tx, mock.MatchedBy(func(b *model.Booking) bool {
		return b.PromoCode != nil && *b.PromoCode == "SPRING" &&
			b.OfferID != nil && *b.OfferID == "offer-1" &&
			b.TotalPrice == 1296 && b.FinalPricePerPerson == 324
	})).Return(nil)
	f.bookings.On("IncrementPromoUsage", ctx, f.tx, "SPRING").Return(nil)
	f.tx.On("Commit", ctx).Return(nil)

	resp, err := f.service.CreateBooking(ctx, req)

	require.NoError(t, err)
	assert.Equal(t, int64(1296), resp.Booking.TotalPrice)
	f.bookings.AssertExpectations(t)
	f.tx.AssertExpectations(t)
}

func TestBookingService_CreateBooking_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(r *model.BookingRequest)
		message string
	}{
		{
			name:    "missing date",
			mutate:  func(r *model.BookingRequest) { r.Date = "" },
			message: "date is required",
		},
		{
			name:    "malformed date",
			mutate:  func(r *model.BookingRequest) { r.Date = "2026-3-14" },
			message: "date must be a date in YYYY-MM-DD format",
		},
		{
			name:    "missing time slot",
			mutate:  func(r *model.BookingRequest) { r.TimeSlot = "" },
			message: "timeSlot is required",
		},
		{
			name:    "missing customer name",
			mutate:  func(r *model.BookingRequest) { r.CustomerName = "" },
			message: "customerName is required",
		},
		{
			name:    "invalid email",
			mutate:  func(r *model.BookingRequest) { r.CustomerEmail = "not-an-email" },
			message: "customerEmail must be a valid email address",
		},
		{
			name:    "zero players",
			mutate:  func(r *model.BookingRequest) { r.PlayerCount = 0 },
			message: "playerCount must be at least 1",
		},
		{
			name:    "too many players",
			mutate:  func(r *model.BookingRequest) { r.PlayerCount = 101 },
			message: "playerCount must be at most 100",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newBookingFixture()
			req := validBookingRequest()
			tt.mutate(req)

			resp, err := f.service.CreateBooking(context.Background(), req)

			assert.Nil(t, resp)
			var domainErr *model.DomainError
			require.ErrorAs(t, err, &domainErr)
			assert.Equal(t, model.ErrCodeInvalidRequest, domainErr.Code)
			assert.Equal(t, tt.message, domainErr.Message)
			f.bookings.AssertNotCalled(t, "BeginTx", mock.Anything)
		})
	}
}

func TestBookingService_CreateBooking_NilRequest(t *testing.T) {
	f := newBookingFixture()

	resp, err := f.service.CreateBooking(context.Background(), nil)

	assert.Nil(t, resp)
	var domainErr *model.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, model.ErrCodeInvalidRequest, domainErr.Code)
}

func TestBookingService_CreateBooking_RoomNotFound(t *testing.T) {
	f := newBookingFixture()
	ctx := context.Background()

	f.rooms.On("GetByID", ctx, "the-vault").Return(nil, nil)

	resp, err := f.service.CreateBooking(ctx, validBookingRequest())

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, model.ErrRoomNotFound)
	f.engine.AssertNotCalled(t, "Calculate", mock.Anything, mock.Anything)
}

func TestBookingService_CreateBooking_RoomInactive(t *testing.T) {
	f := newBookingFixture()
	ctx := context.Background()

	room := testRoom()
	room.Active = false
	f.rooms.On("GetByID", ctx, "the-vault").Return(room, nil)

	resp, err := f.service.CreateBooking(ctx, validBookingRequest())

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, model.ErrRoomInactive)
	f.bookings.AssertNotCalled(t, "BeginTx", mock.Anything)
}

func TestBookingService_CreateBooking_UnknownTimeSlot(t *testing.T) {
	tests := []struct {
		name string
		slot string
	}{
		{name: "not offered", slot: "23:00"},
		{name: "off the grid", slot: "18:30"},
		{name: "free text", slot: "evening"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newBookingFixture()
			ctx := context.Background()

			req := validBookingRequest()
			req.TimeSlot = tt.slot

			f.rooms.On("GetByID", ctx, "the-vault").Return(testRoom(), nil)
			f.slots.On("ListActiveSlots", ctx).Return(activeSlots(), nil)

			resp, err := f.service.CreateBooking(ctx, req)

			require.Error(t, err)
			assert.Nil(t, resp)
			assert.ErrorIs(t, err, model.ErrInvalidTimeSlot)
			f.engine.AssertNotCalled(t, "Calculate", mock.Anything, mock.Anything)
			f.bookings.AssertNotCalled(t, "BeginTx", mock.Anything)
		})
	}
}

func TestBookingService_CreateBooking_TimeSlotStoreError(t *testing.T) {
	f := newBookingFixture()
	ctx := context.Background()

	f.rooms.On("GetByID", ctx, "the-vault").Return(testRoom(), nil)
	f.slots.On("ListActiveSlots", ctx).Return(nil, errors.New("connection refused"))

	resp, err := f.service.CreateBooking(ctx, validBookingRequest())

	require.Error(t, err)
	assert.Nil(t, resp)
	assert.Contains(t, err.Error(), "failed to load time slots")
	var domainErr *model.DomainError
	assert.False(t, errors.As(err, &domainErr))
	f.bookings.AssertNotCalled(t, "BeginTx", mock.Anything)
}

func TestBookingService_CreateBooking_SlotTaken(t *testing.T) {
	f := newBookingFixture()
	ctx := context.Background()

	f.rooms.On("GetByID", ctx, "the-vault").Return(testRoom(), nil)
	f.slots.On("ListActiveSlots", ctx).Return(activeSlots(), nil)
	f.engine.On("Calculate", ctx, mock.Anything).Return(plainQuote(), nil)
	f.bookings.On("BeginTx", ctx).Return(f.tx, nil)
	f.bookings.On("CreateBooking", ctx, f.tx, mock.Anything).Return(model.ErrSlotTaken)
	f.tx.On("Rollback", ctx).Return(nil)

	resp, err := f.service.CreateBooking(ctx, validBookingRequest())

	assert.Nil(t, resp)
	assert.Same(t, model.ErrSlotTaken, err)
	f.tx.AssertCalled(t, "Rollback", ctx)
	f.tx.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestBookingService_CreateBooking_PromoUsageFailureRollsBack(t *testing.T) {
	f := newBookingFixture()
	ctx := context.Background()

	f.rooms.On("GetByID", ctx, "the-vault").Return(testRoom(), nil)
	f.slots.On("ListActiveSlots", ctx).Return(activeSlots(), nil)
	f.engine.On("Calculate", ctx, mock.Anything).Return(discountedQuote(), nil)
	f.bookings.On("BeginTx", ctx).Return(f.tx, nil)
	f.bookings.On("CreateBooking", ctx, f.tx, mock.Anything).Return(nil)
	f.bookings.On("IncrementPromoUsage", ctx, f.tx, "SPRING").Return(errors.New("deadlock detected"))
	f.tx.On("Rollback", ctx).Return(nil)

	resp, err := f.service.CreateBooking(ctx, validBookingRequest())

	assert.Nil(t, resp)
	assert.ErrorContains(t, err, "failed to record promo usage")
	f.tx.AssertCalled(t, "Rollback", ctx)
	f.tx.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestBookingService_CreateBooking_BeginTxError(t *testing.T) {
	f := newBookingFixture()
	ctx := context.Background()

	f.rooms.On("GetByID", ctx, "the-vault").Return(testRoom(), nil)
	f.slots.On("ListActiveSlots", ctx).Return(activeSlots(), nil)
	f.engine.On("Calculate", ctx, mock.Anything).Return(plainQuote(), nil)
	f.bookings.On("BeginTx", ctx).Return(nil, errors.New("pool exhausted"))

	resp, err := f.service.CreateBooking(ctx, validBookingRequest())

	assert.Nil(t, resp)
	assert.ErrorContains(t, err, "failed to create booking")
	f.bookings.AssertNotCalled(t, "CreateBooking", mock.Anything, mock.Anything, mock.Anything)
}

func TestBookingService_CreateBooking_CommitError(t *testing.T) {
	f := newBookingFixture()
	ctx := context.Background()

	f.rooms.On("GetByID", ctx, "the-vault").Return(testRoom(), nil)
	f.slots.On("ListActiveSlots", ctx).Return(activeSlots(), nil)
	f.engine.On("Calculate", ctx, mock.Anything).Return(plainQuote(), nil)
	f.bookings.On("BeginTx", ctx).Return(f.tx, nil)
	f.bookings.On("CreateBooking", ctx, f.tx, mock.Anything).Return(nil)
	f.tx.On("Commit", ctx).Return(errors.New("connection reset"))
	f.tx.On("Rollback", ctx).Return(nil)

	resp, err := f.service.CreateBooking(ctx, validBookingRequest())

	assert.Nil(t, resp)
	assert.ErrorContains(t, err, "failed to create booking")
	f.tx.AssertCalled(t, "Rollback", ctx)
}

func TestBookingService_GetByID(t *testing.T) {
	f := newBookingFixture()
	ctx := context.Background()

	id := uuid.New()
	booking := &model.Booking{ID: id, RoomID: "room-1", Status: model.BookingStatusConfirmed}
	f.bookings.On("GetByID", ctx, id).Return(booking, nil)

	got, err := f.service.GetByID(ctx, id)

	require.NoError(t, err)
	assert.Equal(t, booking, got)
}

func TestBookingService_GetByID_NotFound(t *testing.T) {
	f := newBookingFixture()
	ctx := context.Background()

	id := uuid.New()
	f.bookings.On("GetByID", ctx, id).Return(nil, nil)

	got, err := f.service.GetByID(ctx, id)

	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestBookingService_GetByID_Error(t *testing.T) {
	f := newBookingFixture()
	ctx := context.Background()

	id := uuid.New()
	f.bookings.On("GetByID", ctx, id).Return(nil, errors.New("database error"))

	got, err := f.service.GetByID(ctx, id)

	assert.Nil(t, got)
	assert.ErrorContains(t, err, "failed to get booking")
}

func TestBookingService_BookedSlots(t *testing.T) {
	f := newBookingFixture()
	ctx := context.Background()

	f.rooms.On("GetByID", ctx, "the-vault").Return(testRoom(), nil)
	f.bookings.On("BookedSlots", ctx, "room-1", "2026-03-14").Return([]string{"18:00", "20:00"}, nil)

	resp, err := f.service.BookedSlots(ctx, "the-vault", "2026-03-14")

	require.NoError(t, err)
	assert.Equal(t, &model.BookedSlotsResponse{
		RoomID:    "room-1",
		Date:      "2026-03-14",
		TimeSlots: []string{"18:00", "20:00"},
	}, resp)
	f.bookings.AssertExpectations(t)
}

func TestBookingService_BookedSlots_NoBookings(t *testing.T) {
	f := newBookingFixture()
	ctx := context.Background()

	f.rooms.On("GetByID", ctx, "the-vault").Return(testRoom(), nil)
	f.bookings.On("BookedSlots", ctx, "room-1", "2026-03-14").Return(nil, nil)

	resp, err := f.service.BookedSlots(ctx, "the-vault", "2026-03-14")

	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.NotNil(t, resp.TimeSlots)
	assert.Empty(t, resp.TimeSlots)
}

func TestBookingService_BookedSlots_InvalidDate(t *testing.T) {
	for _, date := range []string{"", "14-03-2026", "2026-02-30"} {
		t.Run(date, func(t *testing.T) {
			f := newBookingFixture()

			resp, err := f.service.BookedSlots(context.Background(), "the-vault", date)

			require.Error(t, err)
			assert.Nil(t, resp)
			var domainErr *model.DomainError
			require.True(t, errors.As(err, &domainErr))
			assert.Equal(t, model.ErrCodeInvalidRequest, domainErr.Code)
			f.rooms.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
		})
	}
}

func TestBookingService_BookedSlots_RoomNotFound(t *testing.T) {
	f := newBookingFixture()
	ctx := context.Background()

	f.rooms.On("GetByID", ctx, "nowhere").Return(nil, nil)

	resp, err := f.service.BookedSlots(ctx, "nowhere", "2026-03-14")

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, model.ErrRoomNotFound)
	f.bookings.AssertNotCalled(t, "BookedSlots", mock.Anything, mock.Anything, mock.Anything)
}

func TestBookingService_BookedSlots_StoreError(t *testing.T) {
	f := newBookingFixture()
	ctx := context.Background()

	f.rooms.On("GetByID", ctx, "the-vault").Return(testRoom(), nil)
	f.bookings.On("BookedSlots", ctx, "room-1", "2026-03-14").Return(nil, errors.New("connection refused"))

	resp, err := f.service.BookedSlots(ctx, "the-vault", "2026-03-14")

	require.Error(t, err)
	assert.Nil(t, resp)
	assert.Contains(t, err.Error(), "failed to list booked slots")
}
