// Package tracker composes the trajectory queries with the external
// collaborators. Each operation fetches the feed afresh; nothing is shared
// between calls.
package tracker

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/randytsao24/iss-tracker/internal/location"
	"github.com/randytsao24/iss-tracker/internal/models"
	"github.com/randytsao24/iss-tracker/internal/observability"
	"github.com/randytsao24/iss-tracker/internal/trajectory"
)

// Source supplies the full ephemeris
type Source interface {
	Fetch(ctx context.Context) (*models.Ephemeris, error)
}

// FrameTransformer converts an inertial position at an instant into a
// geodetic point
type FrameTransformer interface {
	ToGeodetic(x, y, z float64, at time.Time) location.Geodetic
}

// ReverseGeocoder names the place at a coordinate, returning
// location.ErrNoData when there is none
type ReverseGeocoder interface {
	Reverse(ctx context.Context, lat, lng float64) (string, error)
}

// Service answers the API's queries
type Service struct {
	source   Source
	frames   FrameTransformer
	geocoder ReverseGeocoder
	metrics  *observability.Collector
	tracer   trace.Tracer
	now      func() time.Time
}

// NewService creates a service over the given collaborators. metrics may be
// nil.
func NewService(source Source, frames FrameTransformer, geocoder ReverseGeocoder, metrics *observability.Collector) *Service {
	return &Service{
		source:   source,
		frames:   frames,
		geocoder: &tracedGeocoder{next: geocoder, metrics: metrics, tracer: observability.Tracer()},
		metrics:  metrics,
		tracer:   observability.Tracer(),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// WithClock replaces the service's source of the current time
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

func (s *Service) fetch(ctx context.Context) (*models.Ephemeris, error) {
	ctx, span := s.tracer.Start(ctx, "feed.fetch")
	defer span.End()

	start := time.Now()
	eph, err := s.source.Fetch(ctx)
	s.metrics.ObserveUpstream("feed", err)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, &UpstreamError{Collaborator: "feed", Err: err}
	}

	span.SetAttributes(attribute.Int("iss.state_vectors", len(eph.StateVectors)))
	s.metrics.SetTrajectorySize(len(eph.StateVectors))
	slog.DebugContext(ctx, "fetched ephemeris",
		"state_vectors", len(eph.StateVectors),
		"duration", time.Since(start).String(),
	)
	return eph, nil
}

// Header returns the feed header
func (s *Service) Header(ctx context.Context) (models.Header, error) {
	eph, err := s.fetch(ctx)
	if err != nil {
		return models.Header{}, err
	}
	return eph.Header, nil
}

// Metadata returns the feed metadata
func (s *Service) Metadata(ctx context.Context) (models.Metadata, error) {
	eph, err := s.fetch(ctx)
	if err != nil {
		return models.Metadata{}, err
	}
	return eph.Metadata, nil
}

// Comments returns the feed's comment lines
func (s *Service) Comments(ctx context.Context) ([]string, error) {
	eph, err := s.fetch(ctx)
	if err != nil {
		return nil, err
	}
	return eph.Comments, nil
}

// List returns a page of state vectors
func (s *Service) List(ctx context.Context, rawLimit, rawOffset string) ([]models.StateVector, error) {
	eph, err := s.fetch(ctx)
	if err != nil {
		return nil, err
	}
	return ListPage(eph.StateVectors, rawLimit, rawOffset)
}

// Get returns the state vector at epoch
func (s *Service) Get(ctx context.Context, epoch string) (models.StateVector, error) {
	eph, err := s.fetch(ctx)
	if err != nil {
		return models.StateVector{}, err
	}
	return trajectory.LookupByEpoch(eph.StateVectors, epoch)
}

// Speed returns the speed at epoch
func (s *Service) Speed(ctx context.Context, epoch string) (SpeedResult, error) {
	eph, err := s.fetch(ctx)
	if err != nil {
		return SpeedResult{}, err
	}
	return SpeedAt(eph.StateVectors, epoch)
}

// Location returns the geographic sub-point at epoch
func (s *Service) Location(ctx context.Context, epoch string) (models.LocationFix, error) {
	eph, err := s.fetch(ctx)
	if err != nil {
		return models.LocationFix{}, err
	}
	return LocateAt(ctx, eph.StateVectors, epoch, s.frames, s.geocoder)
}

// Now returns the sample closest to the current time
func (s *Service) Now(ctx context.Context) (NowResult, error) {
	eph, err := s.fetch(ctx)
	if err != nil {
		return NowResult{}, err
	}
	return Current(ctx, eph.StateVectors, models.WallClockFrom(s.now()), s.frames, s.geocoder)
}

// AverageSpeed returns the mean speed over the whole feed
func (s *Service) AverageSpeed(ctx context.Context) (AverageSpeedResult, error) {
	eph, err := s.fetch(ctx)
	if err != nil {
		return AverageSpeedResult{}, err
	}
	avg, err := trajectory.AverageSpeed(eph.StateVectors)
	if err != nil {
		return AverageSpeedResult{}, err
	}
	return AverageSpeedResult{AverageSpeed: avg, Count: len(eph.StateVectors)}, nil
}

// tracedGeocoder records a span and an upstream metric around each lookup
type tracedGeocoder struct {
	next    ReverseGeocoder
	metrics *observability.Collector
	tracer  trace.Tracer
}

func (g *tracedGeocoder) Reverse(ctx context.Context, lat, lng float64) (string, error) {
	ctx, span := g.tracer.Start(ctx, "geocoder.reverse", trace.WithAttributes(
		attribute.Float64("geo.latitude", lat),
		attribute.Float64("geo.longitude", lng),
	))
	defer span.End()

	place, err := g.next.Reverse(ctx, lat, lng)
	if err != nil && !errors.Is(err, location.ErrNoData) {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		g.metrics.ObserveUpstream("geocoder", err)
		return "", err
	}
	g.metrics.ObserveUpstream("geocoder", nil)
	return place, err
}
