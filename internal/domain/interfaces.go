package domain

import (
	"context"
	"time"

	"shareit/internal/models"
)

// Clock supplies the current time. Temporal classification and comment
// eligibility depend on it, so it is injected rather than read globally.
type Clock interface {
	Now() time.Time
}

type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUser(ctx context.Context, id int64) (*models.User, error)
	GetAllUsers(ctx context.Context) ([]*models.User, error)
	UpdateUser(ctx context.Context, user *models.User) error
	DeleteUser(ctx context.Context, id int64) error
}

type ItemRepository interface {
	CreateItem(ctx context.Context, item *models.Item) error
	GetItem(ctx context.Context, id int64) (*models.Item, error)
	UpdateItem(ctx context.Context, item *models.Item) error
	GetItemsByOwner(ctx context.Context, ownerID int64, limit, offset int) ([]*models.Item, error)
	CountItemsByOwner(ctx context.Context, ownerID int64) (int, error)
	SearchItems(ctx context.Context, text string, limit, offset int) ([]*models.Item, error)
}

// BookingRepository exposes the booking query families the lifecycle engine
// and the listing layer need. List queries order by start descending and the
// caller passes "now" explicitly.
type BookingRepository interface {
	CreateBooking(ctx context.Context, booking *models.Booking) error
	GetBooking(ctx context.Context, id int64) (*models.Booking, error)
	// DecideBooking atomically moves a WAITING booking to the given
	// terminal status. It reports the booking's prior status so callers
	// can distinguish a repeated decision from a missing booking.
	DecideBooking(ctx context.Context, id int64, status models.BookingStatus) (*models.Booking, error)

	GetBookingsByBooker(ctx context.Context, bookerID int64, state models.BookingState, now time.Time, limit, offset int) ([]*models.Booking, error)
	GetBookingsByOwner(ctx context.Context, ownerID int64, state models.BookingState, now time.Time, limit, offset int) ([]*models.Booking, error)

	// LastBookingForItem is the approved booking with start < now and the
	// greatest end; NextBookingForItem the approved one with start > now
	// and the smallest start. Both return nil without error when absent.
	LastBookingForItem(ctx context.Context, itemID int64, now time.Time) (*models.Booking, error)
	NextBookingForItem(ctx context.Context, itemID int64, now time.Time) (*models.Booking, error)

	// HasCompletedBooking reports whether the booker has an approved
	// booking of the item that already ended.
	HasCompletedBooking(ctx context.Context, itemID, bookerID int64, now time.Time) (bool, error)
}

type CommentRepository interface {
	CreateComment(ctx context.Context, comment *models.Comment) error
	GetCommentsByItem(ctx context.Context, itemID int64) ([]*models.Comment, error)
	GetCommentsByItems(ctx context.Context, itemIDs []int64) (map[int64][]*models.Comment, error)
}

type RequestRepository interface {
	CreateRequest(ctx context.Context, request *models.ItemRequest) error
	GetRequest(ctx context.Context, id int64) (*models.ItemRequest, error)
	GetRequestsByRequestor(ctx context.Context, requestorID int64) ([]*models.ItemRequest, error)
	GetRequestsFromOthers(ctx context.Context, requestorID int64, limit, offset int) ([]*models.ItemRequest, error)
	GetItemsByRequest(ctx context.Context, requestID int64) ([]*models.Item, error)
}

// EventPublisher fans domain events out to in-process subscribers.
type EventPublisher interface {
	PublishJSON(eventType string, payload interface{}) error
}

// Notifier delivers a booking decision notice to the affected booker.
type Notifier interface {
	NotifyBookingDecided(ctx context.Context, booking *models.Booking, approved bool) error
}

// ItemCache is a read-through cache for item records.
type ItemCache interface {
	GetItem(ctx context.Context, id int64) (*models.Item, error)
	SetItem(ctx context.Context, item *models.Item) error
	InvalidateItem(ctx context.Context, id int64) error
}
