package service

import (
	"context"
	"strings"

	"shareit/internal/database"
	"shareit/internal/domain"
	"shareit/internal/events"
	"shareit/internal/models"

	"github.com/rs/zerolog"
)

// ItemDetail is an item enriched for its detail view: comments for every
// viewer, last/next approved bookings for the owner only.
type ItemDetail struct {
	models.Item
	LastBooking *models.Booking
	NextBooking *models.Booking
	Comments    []*models.Comment
}

// ItemPatch carries partial updates; nil fields are left untouched.
type ItemPatch struct {
	Name        *string
	Description *string
	Available   *bool
}

type ItemService struct {
	items    domain.ItemRepository
	users    domain.UserRepository
	bookings domain.BookingRepository
	comments domain.CommentRepository
	requests domain.RequestRepository
	cache    domain.ItemCache
	eventBus domain.EventPublisher
	clock    domain.Clock
	logger   *zerolog.Logger
}

func NewItemService(
	items domain.ItemRepository,
	users domain.UserRepository,
	bookings domain.BookingRepository,
	comments domain.CommentRepository,
	requests domain.RequestRepository,
	cache domain.ItemCache,
	eventBus domain.EventPublisher,
	clock domain.Clock,
	logger *zerolog.Logger,
) *ItemService {
	return &ItemService{
		items:    items,
		users:    users,
		bookings: bookings,
		comments: comments,
		requests: requests,
		cache:    cache,
		eventBus: eventBus,
		clock:    clock,
		logger:   logger,
	}
}

func (s *ItemService) Create(ctx context.Context, ownerID int64, item *models.Item) (*models.Item, error) {
	if _, err := s.users.GetUser(ctx, ownerID); err != nil {
		return nil, err
	}

	if item.RequestID != 0 {
		if _, err := s.requests.GetRequest(ctx, item.RequestID); err != nil {
			return nil, err
		}
	}

	item.OwnerID = ownerID
	if err := s.items.CreateItem(ctx, item); err != nil {
		return nil, err
	}

	s.cacheSet(ctx, item)
	s.logger.Info().Int64("item_id", item.ID).Int64("owner_id", ownerID).Msg("item created")
	return item, nil
}

// Update applies a partial update. A non-owner gets a not-found failure,
// the same as for a missing item.
func (s *ItemService) Update(ctx context.Context, ownerID, itemID int64, patch ItemPatch) (*models.Item, error) {
	if _, err := s.users.GetUser(ctx, ownerID); err != nil {
		return nil, err
	}

	item, err := s.items.GetItem(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item.OwnerID != ownerID {
		// Non-owners cannot learn the item exists through update attempts.
		return nil, database.ErrItemNotFound
	}

	if patch.Name != nil && strings.TrimSpace(*patch.Name) != "" {
		item.Name = *patch.Name
	}
	if patch.Description != nil && strings.TrimSpace(*patch.Description) != "" {
		item.Description = *patch.Description
	}
	if patch.Available != nil {
		item.Available = *patch.Available
	}

	if err := s.items.UpdateItem(ctx, item); err != nil {
		return nil, err
	}

	s.cacheInvalidate(ctx, item.ID)
	return item, nil
}

// GetByID returns the item with its comments. Last/next booking projections
// are attached only when the viewer owns the item; everyone else sees them
// absent regardless of actual bookings.
func (s *ItemService) GetByID(ctx context.Context, viewerID, itemID int64) (*ItemDetail, error) {
	item := s.cacheGet(ctx, itemID)
	if item == nil {
		var err error
		item, err = s.items.GetItem(ctx, itemID)
		if err != nil {
			return nil, err
		}
		s.cacheSet(ctx, item)
	}

	comments, err := s.comments.GetCommentsByItem(ctx, itemID)
	if err != nil {
		return nil, err
	}

	detail := &ItemDetail{Item: *item, Comments: comments}
	if item.OwnerID == viewerID {
		if err := s.attachProjections(ctx, detail); err != nil {
			return nil, err
		}
	}
	return detail, nil
}

// ListByOwner returns the owner's items with projections and comments.
func (s *ItemService) ListByOwner(ctx context.Context, ownerID int64, from, size int) ([]*ItemDetail, error) {
	if _, err := s.users.GetUser(ctx, ownerID); err != nil {
		return nil, err
	}

	items, err := s.items.GetItemsByOwner(ctx, ownerID, size, pageOffset(from, size))
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return []*ItemDetail{}, nil
	}

	itemIDs := make([]int64, len(items))
	for i, item := range items {
		itemIDs[i] = item.ID
	}
	commentsByItem, err := s.comments.GetCommentsByItems(ctx, itemIDs)
	if err != nil {
		return nil, err
	}

	details := make([]*ItemDetail, 0, len(items))
	for _, item := range items {
		detail := &ItemDetail{Item: *item, Comments: commentsByItem[item.ID]}
		if err := s.attachProjections(ctx, detail); err != nil {
			return nil, err
		}
		details = append(details, detail)
	}
	return details, nil
}

// OwnerItemNames maps every item id owned by the user to its name,
// for report rendering.
func (s *ItemService) OwnerItemNames(ctx context.Context, ownerID int64) (map[int64]string, error) {
	items, err := s.items.GetItemsByOwner(ctx, ownerID, ownerItemsLimit, 0)
	if err != nil {
		return nil, err
	}
	names := make(map[int64]string, len(items))
	for _, item := range items {
		names[item.ID] = item.Name
	}
	return names, nil
}

// ownerItemsLimit bounds the lookup backing xlsx exports.
const ownerItemsLimit = 10000

// Search returns available items matching the text. Blank text yields an
// empty result without querying.
func (s *ItemService) Search(ctx context.Context, text string, from, size int) ([]*models.Item, error) {
	if strings.TrimSpace(text) == "" {
		return []*models.Item{}, nil
	}
	return s.items.SearchItems(ctx, text, size, pageOffset(from, size))
}

// AddComment passes the eligibility gate: the author must have an approved
// booking of the item that has already ended. Eligible users may comment
// any number of times.
func (s *ItemService) AddComment(ctx context.Context, authorID, itemID int64, text string) (*models.Comment, error) {
	author, err := s.users.GetUser(ctx, authorID)
	if err != nil {
		return nil, err
	}
	if _, err := s.items.GetItem(ctx, itemID); err != nil {
		return nil, err
	}

	eligible, err := s.bookings.HasCompletedBooking(ctx, itemID, authorID, s.clock.Now())
	if err != nil {
		return nil, err
	}
	if !eligible {
		return nil, ErrNoCompletedBooking
	}

	comment := &models.Comment{
		Text:       text,
		ItemID:     itemID,
		AuthorID:   authorID,
		AuthorName: author.Name,
		Created:    s.clock.Now(),
	}
	if err := s.comments.CreateComment(ctx, comment); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("comment_id", comment.ID).Int64("item_id", itemID).
		Int64("author_id", authorID).Msg("comment added")
	if s.eventBus != nil {
		payload := events.CommentEventPayload{CommentID: comment.ID, ItemID: itemID, AuthorID: authorID}
		if err := s.eventBus.PublishJSON(events.EventCommentAdded, payload); err != nil {
			s.logger.Error().Err(err).Int64("comment_id", comment.ID).Msg("publish event error")
		}
	}
	return comment, nil
}

func (s *ItemService) attachProjections(ctx context.Context, detail *ItemDetail) error {
	now := s.clock.Now()

	last, err := s.bookings.LastBookingForItem(ctx, detail.ID, now)
	if err != nil {
		return err
	}
	next, err := s.bookings.NextBookingForItem(ctx, detail.ID, now)
	if err != nil {
		return err
	}

	detail.LastBooking = last
	detail.NextBooking = next
	return nil
}

// Cache access is best-effort; failures degrade to the database.

func (s *ItemService) cacheGet(ctx context.Context, id int64) *models.Item {
	if s.cache == nil {
		return nil
	}
	item, err := s.cache.GetItem(ctx, id)
	if err != nil {
		s.logger.Debug().Err(err).Int64("item_id", id).Msg("item cache read failed")
		return nil
	}
	return item
}

func (s *ItemService) cacheSet(ctx context.Context, item *models.Item) {
	if s.cache == nil {
		return
	}
	if err := s.cache.SetItem(ctx, item); err != nil {
		s.logger.Debug().Err(err).Int64("item_id", item.ID).Msg("item cache write failed")
	}
}

func (s *ItemService) cacheInvalidate(ctx context.Context, id int64) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateItem(ctx, id); err != nil {
		s.logger.Debug().Err(err).Int64("item_id", id).Msg("item cache invalidate failed")
	}
}
