package handler

import (
	"context"

	"escape-booking/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockQuoteService is a mock implementation of QuoteService.
type MockQuoteService struct {
	mock.Mock
}

func (m *MockQuoteService) Quote(ctx context.Context, req *model.QuoteRequest) (*model.BookingQuote, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.BookingQuote), args.Error(1)
}

func (m *MockQuoteService) ValidatePromo(ctx context.Context, req *model.PromoValidationRequest) (*model.PromoValidationResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PromoValidationResponse), args.Error(1)
}

func (m *MockQuoteService) ListOffers(ctx context.Context, roomID, date string) ([]model.Offer, error) {
	args := m.Called(ctx, roomID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Offer), args.Error(1)
}

// MockRoomService is a mock implementation of RoomService.
type MockRoomService struct {
	mock.Mock
}

func (m *MockRoomService) GetAll(ctx context.Context, limit, offset int) ([]model.RoomResponse, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.RoomResponse), args.Error(1)
}

func (m *MockRoomService) GetByID(ctx context.Context, idOrSlug string) (*model.RoomResponse, error) {
	args := m.Called(ctx, idOrSlug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.RoomResponse), args.Error(1)
}

// MockBookingService is a mock implementation of BookingService.
type MockBookingService struct {
	mock.Mock
}

func (m *MockBookingService) CreateBooking(ctx context.Context, req *model.BookingRequest) (*model.BookingResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.BookingResponse), args.Error(1)
}

func (m *MockBookingService) GetByID(ctx context.Context, id uuid.UUID) (*model.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Booking), args.Error(1)
}

func (m *MockBookingService) BookedSlots(ctx context.Context, roomIDOrSlug, date string) (*model.BookedSlotsResponse, error) {
	args := m.Called(ctx, roomIDOrSlug, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.BookedSlotsResponse), args.Error(1)
}

// MockTimeSlotService is a mock implementation of TimeSlotService.
type MockTimeSlotService struct {
	mock.Mock
}

func (m *MockTimeSlotService) ListActive(ctx context.Context) ([]model.TimeSlot, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.TimeSlot), args.Error(1)
}
