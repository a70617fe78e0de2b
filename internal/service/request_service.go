package service

import (
	"context"

	"shareit/internal/domain"
	"shareit/internal/models"

	"github.com/rs/zerolog"
)

// RequestDetail is an item request with the items offered in answer to it.
type RequestDetail struct {
	models.ItemRequest
	Items []*models.Item
}

type RequestService struct {
	requests domain.RequestRepository
	users    domain.UserRepository
	clock    domain.Clock
	logger   *zerolog.Logger
}

func NewRequestService(requests domain.RequestRepository, users domain.UserRepository, clock domain.Clock, logger *zerolog.Logger) *RequestService {
	return &RequestService{requests: requests, users: users, clock: clock, logger: logger}
}

func (s *RequestService) Create(ctx context.Context, requestorID int64, description string) (*models.ItemRequest, error) {
	if _, err := s.users.GetUser(ctx, requestorID); err != nil {
		return nil, err
	}

	request := &models.ItemRequest{
		Description: description,
		RequestorID: requestorID,
		Created:     s.clock.Now(),
	}
	if err := s.requests.CreateRequest(ctx, request); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("request_id", request.ID).Int64("requestor_id", requestorID).Msg("item request created")
	return request, nil
}

// ListOwn returns the requestor's requests, newest first, with offered items.
func (s *RequestService) ListOwn(ctx context.Context, requestorID int64) ([]*RequestDetail, error) {
	if _, err := s.users.GetUser(ctx, requestorID); err != nil {
		return nil, err
	}

	requests, err := s.requests.GetRequestsByRequestor(ctx, requestorID)
	if err != nil {
		return nil, err
	}
	return s.withItems(ctx, requests)
}

// ListOthers returns requests created by other users, newest first.
func (s *RequestService) ListOthers(ctx context.Context, userID int64, from, size int) ([]*RequestDetail, error) {
	if _, err := s.users.GetUser(ctx, userID); err != nil {
		return nil, err
	}

	requests, err := s.requests.GetRequestsFromOthers(ctx, userID, size, pageOffset(from, size))
	if err != nil {
		return nil, err
	}
	return s.withItems(ctx, requests)
}

func (s *RequestService) GetByID(ctx context.Context, userID, requestID int64) (*RequestDetail, error) {
	if _, err := s.users.GetUser(ctx, userID); err != nil {
		return nil, err
	}

	request, err := s.requests.GetRequest(ctx, requestID)
	if err != nil {
		return nil, err
	}

	details, err := s.withItems(ctx, []*models.ItemRequest{request})
	if err != nil {
		return nil, err
	}
	return details[0], nil
}

func (s *RequestService) withItems(ctx context.Context, requests []*models.ItemRequest) ([]*RequestDetail, error) {
	details := make([]*RequestDetail, 0, len(requests))
	for _, request := range requests {
		items, err := s.requests.GetItemsByRequest(ctx, request.ID)
		if err != nil {
			return nil, err
		}
		details = append(details, &RequestDetail{ItemRequest: *request, Items: items})
	}
	return details, nil
}
