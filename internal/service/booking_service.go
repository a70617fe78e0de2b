package service

import (
	"context"
	"time"

	"shareit/internal/database"
	"shareit/internal/domain"
	"shareit/internal/events"
	"shareit/internal/models"

	"github.com/rs/zerolog"
)

// BookingService drives the booking lifecycle: creation with eligibility
// checks, the owner decision, visibility-gated reads and temporal listings.
type BookingService struct {
	bookings domain.BookingRepository
	items    domain.ItemRepository
	users    domain.UserRepository
	eventBus domain.EventPublisher
	clock    domain.Clock
	logger   *zerolog.Logger
}

func NewBookingService(
	bookings domain.BookingRepository,
	items domain.ItemRepository,
	users domain.UserRepository,
	eventBus domain.EventPublisher,
	clock domain.Clock,
	logger *zerolog.Logger,
) *BookingService {
	return &BookingService{
		bookings: bookings,
		items:    items,
		users:    users,
		eventBus: eventBus,
		clock:    clock,
		logger:   logger,
	}
}

// Create validates and persists a new WAITING booking. Preconditions fail
// fast in a fixed order: interval, booker, item, availability, ownership.
// No overlap check is made against other bookings of the same item.
func (s *BookingService) Create(ctx context.Context, bookerID, itemID int64, start, end time.Time) (*models.Booking, error) {
	if !start.Before(end) {
		return nil, ErrInvalidInterval
	}

	if _, err := s.users.GetUser(ctx, bookerID); err != nil {
		return nil, err
	}

	item, err := s.items.GetItem(ctx, itemID)
	if err != nil {
		return nil, err
	}

	if !item.Available {
		return nil, ErrItemNotAvailable
	}

	if item.OwnerID == bookerID {
		return nil, ErrOwnBooking
	}

	booking := &models.Booking{
		Start:    start,
		End:      end,
		ItemID:   itemID,
		BookerID: bookerID,
		Status:   models.StatusWaiting,
	}
	if err := s.bookings.CreateBooking(ctx, booking); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("booking_id", booking.ID).Int64("booker_id", bookerID).
		Int64("item_id", itemID).Msg("booking created")
	s.publishBookingEvent(events.EventBookingCreated, booking, item.OwnerID)

	return booking, nil
}

// Decide moves a WAITING booking to APPROVED or REJECTED. Only the item's
// owner may decide, and only once; repeated decisions are conflicts, not
// no-ops.
func (s *BookingService) Decide(ctx context.Context, ownerID, bookingID int64, approved bool) (*models.Booking, error) {
	booking, err := s.bookings.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	item, err := s.items.GetItem(ctx, booking.ItemID)
	if err != nil {
		return nil, err
	}
	if item.OwnerID != ownerID {
		return nil, ErrAccessDenied
	}

	status := models.StatusRejected
	eventType := events.EventBookingRejected
	if approved {
		status = models.StatusApproved
		eventType = events.EventBookingApproved
	}

	decided, err := s.bookings.DecideBooking(ctx, bookingID, status)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("booking_id", bookingID).Int64("owner_id", ownerID).
		Str("status", string(status)).Msg("booking decided")
	s.publishBookingEvent(eventType, decided, ownerID)

	return decided, nil
}

// GetByID returns a booking to its booker or the item's owner. Anyone else
// gets a not-found failure, indistinguishable from a missing booking.
func (s *BookingService) GetByID(ctx context.Context, userID, bookingID int64) (*models.Booking, error) {
	if _, err := s.users.GetUser(ctx, userID); err != nil {
		return nil, err
	}

	booking, err := s.bookings.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	item, err := s.items.GetItem(ctx, booking.ItemID)
	if err != nil {
		return nil, err
	}

	if booking.BookerID != userID && item.OwnerID != userID {
		return nil, database.ErrBookingNotFound
	}
	return booking, nil
}

// ListByBooker returns the booker's bookings matching the state filter,
// most recently starting first.
func (s *BookingService) ListByBooker(ctx context.Context, bookerID int64, stateRaw string, from, size int) ([]*models.Booking, error) {
	if _, err := s.users.GetUser(ctx, bookerID); err != nil {
		return nil, err
	}

	state, err := models.ParseBookingState(stateRaw)
	if err != nil {
		return nil, err
	}

	return s.bookings.GetBookingsByBooker(ctx, bookerID, state, s.clock.Now(), size, pageOffset(from, size))
}

// ListByOwner returns bookings of the owner's items matching the state
// filter. An owner with no items gets an empty result without touching the
// booking store.
func (s *BookingService) ListByOwner(ctx context.Context, ownerID int64, stateRaw string, from, size int) ([]*models.Booking, error) {
	if _, err := s.users.GetUser(ctx, ownerID); err != nil {
		return nil, err
	}

	state, err := models.ParseBookingState(stateRaw)
	if err != nil {
		return nil, err
	}

	count, err := s.items.CountItemsByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if count == 0 {
		return []*models.Booking{}, nil
	}

	return s.bookings.GetBookingsByOwner(ctx, ownerID, state, s.clock.Now(), size, pageOffset(from, size))
}

// pageOffset converts an item offset to a page-aligned row offset, pages
// being sized by size. Callers are expected to pass from as a multiple of
// size.
func pageOffset(from, size int) int {
	if size <= 0 {
		return 0
	}
	return (from / size) * size
}

func (s *BookingService) publishBookingEvent(eventType string, booking *models.Booking, ownerID int64) {
	if s.eventBus == nil {
		return
	}

	payload := events.BookingEventPayload{
		BookingID: booking.ID,
		ItemID:    booking.ItemID,
		BookerID:  booking.BookerID,
		OwnerID:   ownerID,
		Status:    string(booking.Status),
		Start:     booking.Start,
		End:       booking.End,
	}
	if err := s.eventBus.PublishJSON(eventType, payload); err != nil {
		s.logger.Error().Err(err).Str("event_type", eventType).
			Int64("booking_id", booking.ID).Msg("publish event error")
	}
}
