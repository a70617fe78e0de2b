package api

import (
	"time"

	"shareit/internal/models"
	"shareit/internal/service"
)

// bookingBrief is the compact booking shape embedded in item detail views.
type bookingBrief struct {
	ID       int64     `json:"id"`
	BookerID int64     `json:"booker_id"`
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
}

type itemDetailResponse struct {
	models.Item
	LastBooking *bookingBrief     `json:"last_booking,omitempty"`
	NextBooking *bookingBrief     `json:"next_booking,omitempty"`
	Comments    []*models.Comment `json:"comments"`
}

type requestDetailResponse struct {
	models.ItemRequest
	Items []*models.Item `json:"items"`
}

func toBookingBrief(b *models.Booking) *bookingBrief {
	if b == nil {
		return nil
	}
	return &bookingBrief{ID: b.ID, BookerID: b.BookerID, Start: b.Start, End: b.End}
}

func toItemDetailResponse(detail *service.ItemDetail) *itemDetailResponse {
	comments := detail.Comments
	if comments == nil {
		comments = []*models.Comment{}
	}
	return &itemDetailResponse{
		Item:        detail.Item,
		LastBooking: toBookingBrief(detail.LastBooking),
		NextBooking: toBookingBrief(detail.NextBooking),
		Comments:    comments,
	}
}

func toItemDetailResponses(details []*service.ItemDetail) []*itemDetailResponse {
	out := make([]*itemDetailResponse, 0, len(details))
	for _, detail := range details {
		out = append(out, toItemDetailResponse(detail))
	}
	return out
}

func toRequestDetailResponse(detail *service.RequestDetail) *requestDetailResponse {
	items := detail.Items
	if items == nil {
		items = []*models.Item{}
	}
	return &requestDetailResponse{ItemRequest: detail.ItemRequest, Items: items}
}

func toRequestDetailResponses(details []*service.RequestDetail) []*requestDetailResponse {
	out := make([]*requestDetailResponse, 0, len(details))
	for _, detail := range details {
		out = append(out, toRequestDetailResponse(detail))
	}
	return out
}

func bookingList(bookings []*models.Booking) []*models.Booking {
	if bookings == nil {
		return []*models.Booking{}
	}
	return bookings
}

func itemList(items []*models.Item) []*models.Item {
	if items == nil {
		return []*models.Item{}
	}
	return items
}
