package service

import (
	"context"
	"fmt"

	"escape-booking/internal/model"
	"escape-booking/internal/repository"

	"github.com/rs/zerolog"
)

type timeSlotService struct {
	repo   repository.TimeSlotRepository
	logger zerolog.Logger
}

// NewTimeSlotService creates a new time slot service.
func NewTimeSlotService(repo repository.TimeSlotRepository, logger zerolog.Logger) TimeSlotService {
	return &timeSlotService{
		repo:   repo,
		logger: logger.With().Str("service", "time_slot").Logger(),
	}
}

func (s *timeSlotService) ListActive(ctx context.Context) ([]model.TimeSlot, error) {
	slots, err := s.repo.ListActiveSlots(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list time slots")
		return nil, fmt.Errorf("failed to list time slots: %w", err)
	}

	if slots == nil {
		return []model.TimeSlot{}, nil
	}
	return slots, nil
}
