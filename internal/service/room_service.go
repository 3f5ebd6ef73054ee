package service

import (
	"context"
	"fmt"

	"escape-booking/internal/model"
	"escape-booking/internal/pricing"
	"escape-booking/internal/repository"

	"github.com/rs/zerolog"
)

// roomService implements RoomService.
type roomService struct {
	repo   repository.RoomRepository
	offers pricing.OfferSelector
	logger zerolog.Logger
}

// NewRoomService creates a new room service.
func NewRoomService(repo repository.RoomRepository, offers pricing.OfferSelector, logger zerolog.Logger) RoomService {
	return &roomService{
		repo:   repo,
		offers: offers,
		logger: logger.With().Str("service", "room").Logger(),
	}
}

// GetAll retrieves all rooms with pagination and flags those with an active offer.
func (s *roomService) GetAll(ctx context.Context, limit, offset int) ([]model.RoomResponse, error) {
	rooms, err := s.repo.GetAll(ctx, limit, offset)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to get rooms")
		return nil, fmt.Errorf("failed to get rooms: %w", err)
	}

	// One offer load serves every room on the page.
	active := s.offers.AllActiveOffers(ctx)

	resp := make([]model.RoomResponse, 0, len(rooms))
	for _, room := range rooms {
		resp = append(resp, model.RoomResponse{
			Room:           room,
			HasActiveOffer: pricing.AnyOfferForRoom(active, room.ID),
		})
	}

	return resp, nil
}

// GetByID retrieves a single room by ID or slug.
func (s *roomService) GetByID(ctx context.Context, idOrSlug string) (*model.RoomResponse, error) {
	room, err := s.repo.GetByID(ctx, idOrSlug)
	if err != nil {
		s.logger.Error().Err(err).Str("room_id", idOrSlug).Msg("failed to get room")
		return nil, fmt.Errorf("failed to get room: %w", err)
	}

	if room == nil {
		s.logger.Debug().Str("room_id", idOrSlug).Msg("room not found")
		return nil, nil
	}

	return &model.RoomResponse{
		Room:           *room,
		HasActiveOffer: s.offers.RoomHasActiveOffer(ctx, room.ID),
	}, nil
}
