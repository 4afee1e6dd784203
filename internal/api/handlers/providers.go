package handlers

import (
	"context"

	"github.com/randytsao24/iss-tracker/internal/models"
	"github.com/randytsao24/iss-tracker/internal/tracker"
)

// Tracker abstracts the trajectory queries for testability.
type Tracker interface {
	Header(ctx context.Context) (models.Header, error)
	Metadata(ctx context.Context) (models.Metadata, error)
	Comments(ctx context.Context) ([]string, error)
	List(ctx context.Context, rawLimit, rawOffset string) ([]models.StateVector, error)
	Get(ctx context.Context, epoch string) (models.StateVector, error)
	Speed(ctx context.Context, epoch string) (tracker.SpeedResult, error)
	Location(ctx context.Context, epoch string) (models.LocationFix, error)
	Now(ctx context.Context) (tracker.NowResult, error)
	AverageSpeed(ctx context.Context) (tracker.AverageSpeedResult, error)
}
