package worker

import (
	"context"

	"shareit/internal/models"

	"github.com/rs/zerolog"
)

// LogNotifier writes decision notices to the log. Stands in for a mail or
// messenger integration.
type LogNotifier struct {
	logger *zerolog.Logger
}

func NewLogNotifier(logger *zerolog.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) NotifyBookingDecided(ctx context.Context, booking *models.Booking, approved bool) error {
	event := n.logger.Info().
		Int64("booking_id", booking.ID).
		Int64("booker_id", booking.BookerID).
		Int64("item_id", booking.ItemID).
		Bool("approved", approved)
	event.Msg("booking decision notification")
	return nil
}
