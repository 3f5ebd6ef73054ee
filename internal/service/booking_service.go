package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"escape-booking/internal/model"
	"escape-booking/internal/pricing"
	"escape-booking/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/samber/lo"
)

// bookingService implements BookingService.
type bookingService struct {
	bookingRepo repository.BookingRepository
	roomRepo    repository.RoomRepository
	slotRepo    repository.TimeSlotRepository
	engine      pricing.QuoteEngine
	validate    *validator.Validate
	now         func() time.Time
	logger      zerolog.Logger
}

// NewBookingService creates a new booking service.
func NewBookingService(
	bookingRepo repository.BookingRepository,
	roomRepo repository.RoomRepository,
	slotRepo repository.TimeSlotRepository,
	engine pricing.QuoteEngine,
	validate *validator.Validate,
	logger zerolog.Logger,
) BookingService {
	return &bookingService{
		bookingRepo: bookingRepo,
		roomRepo:    roomRepo,
		slotRepo:    slotRepo,
		engine:      engine,
		validate:    validate,
		now:         time.Now,
		logger:      logger.With().Str("service", "booking").Logger(),
	}
}

// CreateBooking prices the booking and persists it with the quote frozen
// into the record. A promo that was applied has its usage recorded in the
// same transaction.
func (s *bookingService) CreateBooking(ctx context.Context, req *model.BookingRequest) (*model.BookingResponse, error) {
	if req == nil {
		return nil, model.NewDomainError(model.ErrCodeInvalidRequest, "Request body is required")
	}
	if err := validateRequest(s.validate, req); err != nil {
		return nil, err
	}

	room, err := loadRoom(ctx, s.roomRepo, req.RoomID)
	if err != nil {
		return nil, err
	}
	if !room.Active {
		s.logger.Warn().Str("room_id", room.ID).Msg("booking attempted for inactive room")
		return nil, model.ErrRoomInactive
	}
	if err := s.checkTimeSlot(ctx, req.TimeSlot); err != nil {
		return nil, err
	}

	date := req.Date
	quote, err := s.engine.Calculate(ctx, model.BookingQuoteRequest{
		RoomID:      room.ID,
		Date:        &date,
		TimeSlot:    req.TimeSlot,
		PlayerCount: req.PlayerCount,
		Pricing:     room.Pricing,
		PromoCode:   req.PromoCode,
	})
	if err != nil {
		return nil, err
	}

	now := s.now()
	booking := &model.Booking{
		ID:                  uuid.New(),
		RoomID:              room.ID,
		BookingDate:         req.Date,
		TimeSlot:            req.TimeSlot,
		PlayerCount:         req.PlayerCount,
		CustomerName:        req.CustomerName,
		CustomerEmail:       req.CustomerEmail,
		CustomerPhone:       req.CustomerPhone,
		TotalPrice:          quote.TotalPrice,
		FinalPricePerPerson: quote.FinalPricePerPerson,
		Status:              model.BookingStatusPending,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
	if quote.AppliedPromo != nil {
		code := quote.AppliedPromo.Code
		booking.PromoCode = &code
	}
	if quote.AppliedOffer != nil {
		id := quote.AppliedOffer.ID
		booking.OfferID = &id
	}

	// Start transaction
	tx, err := s.bookingRepo.BeginTx(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to begin transaction")
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}

	// Ensure transaction is rolled back on error
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				s.logger.Error().Err(rbErr).Msg("failed to rollback transaction")
			}
		}
	}()

	if err = s.bookingRepo.CreateBooking(ctx, tx, booking); err != nil {
		if errors.Is(err, model.ErrSlotTaken) {
			return nil, err
		}
		s.logger.Error().Err(err).Str("booking_id", booking.ID.String()).Msg("failed to create booking")
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}

	if booking.PromoCode != nil {
		if err = s.bookingRepo.IncrementPromoUsage(ctx, tx, *booking.PromoCode); err != nil {
			s.logger.Error().
				Err(err).
				Str("booking_id", booking.ID.String()).
				Str("promo_code", *booking.PromoCode).
				Msg("failed to record promo usage")
			return nil, fmt.Errorf("failed to record promo usage: %w", err)
		}
	}

	if err = tx.Commit(ctx); err != nil {
		s.logger.Error().Err(err).Str("booking_id", booking.ID.String()).Msg("failed to commit transaction")
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}

	s.logger.Info().
		Str("booking_id", booking.ID.String()).
		Str("room_id", booking.RoomID).
		Str("booking_date", booking.BookingDate).
		Str("time_slot", booking.TimeSlot).
		Int64("total_price", booking.TotalPrice).
		Msg("booking created successfully")

	return &model.BookingResponse{
		Booking: *booking,
		Quote:   quote,
	}, nil
}

// GetByID retrieves a booking by its ID.
func (s *bookingService) GetByID(ctx context.Context, id uuid.UUID) (*model.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Str("booking_id", id.String()).Msg("failed to get booking")
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking == nil {
		s.logger.Debug().Str("booking_id", id.String()).Msg("booking not found")
		return nil, nil
	}

	return booking, nil
}

// BookedSlots lists the time slots already held for a room on a date.
func (s *bookingService) BookedSlots(ctx context.Context, roomIDOrSlug, date string) (*model.BookedSlotsResponse, error) {
	if err := s.validate.Var(date, "required,datetime=2006-01-02"); err != nil {
		return nil, model.NewDomainError(model.ErrCodeInvalidRequest, "date must be a date in YYYY-MM-DD format")
	}

	room, err := loadRoom(ctx, s.roomRepo, roomIDOrSlug)
	if err != nil {
		return nil, err
	}

	slots, err := s.bookingRepo.BookedSlots(ctx, room.ID, date)
	if err != nil {
		s.logger.Error().Err(err).Str("room_id", room.ID).Str("booking_date", date).Msg("failed to list booked slots")
		return nil, fmt.Errorf("failed to list booked slots: %w", err)
	}

	return &model.BookedSlotsResponse{
		RoomID:    room.ID,
		Date:      date,
		TimeSlots: lo.Ternary(slots == nil, []string{}, slots),
	}, nil
}

// checkTimeSlot rejects a slot that is not one of the active time slots.
func (s *bookingService) checkTimeSlot(ctx context.Context, slot string) error {
	slots, err := s.slotRepo.ListActiveSlots(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to load time slots")
		return fmt.Errorf("failed to load time slots: %w", err)
	}

	slot = strings.TrimSpace(slot)
	if !lo.ContainsBy(slots, func(ts model.TimeSlot) bool { return ts.SlotTime == slot }) {
		s.logger.Warn().Str("time_slot", slot).Msg("booking attempted for unknown time slot")
		return model.ErrInvalidTimeSlot
	}
	return nil
}
