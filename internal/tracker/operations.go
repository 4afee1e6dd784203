package tracker

import (
	"context"
	"errors"
	"fmt"

	"github.com/randytsao24/iss-tracker/internal/epoch"
	"github.com/randytsao24/iss-tracker/internal/location"
	"github.com/randytsao24/iss-tracker/internal/models"
	"github.com/randytsao24/iss-tracker/internal/trajectory"
)

// SpeedResult is the speed of the ISS at one epoch, in km/s
type SpeedResult struct {
	Epoch string  `json:"epoch"`
	Speed float64 `json:"speed"`
}

// NowResult describes the sample closest to the current time
type NowResult struct {
	Epoch    string             `json:"epoch"`
	Speed    float64            `json:"speed"`
	Location models.LocationFix `json:"location"`
}

// AverageSpeedResult is the mean speed over a whole trajectory
type AverageSpeedResult struct {
	AverageSpeed float64 `json:"average_speed"`
	Count        int     `json:"count"`
}

// ErrNoCurrentEpoch reports that no sample lies near the current time
var ErrNoCurrentEpoch = fmt.Errorf("%w: no state vector near the current time", trajectory.ErrNotFound)

// ListPage pages through vectors using raw limit and offset query values
func ListPage(vectors []models.StateVector, rawLimit, rawOffset string) ([]models.StateVector, error) {
	page, err := trajectory.ParsePage(rawLimit, rawOffset, len(vectors))
	if err != nil {
		return nil, err
	}
	return trajectory.Slice(vectors, page), nil
}

// SpeedAt looks up the vector at epochStr and returns its speed
func SpeedAt(vectors []models.StateVector, epochStr string) (SpeedResult, error) {
	sv, err := trajectory.LookupByEpoch(vectors, epochStr)
	if err != nil {
		return SpeedResult{}, err
	}
	speed, err := trajectory.Speed(sv)
	if err != nil {
		return SpeedResult{}, err
	}
	return SpeedResult{Epoch: epochStr, Speed: speed}, nil
}

// Locate computes the geographic sub-point of sv and names the place below
// it. A point the geocoder cannot name is reported with NoDataGeoposition.
func Locate(ctx context.Context, sv models.StateVector, frames FrameTransformer, geocoder ReverseGeocoder) (models.LocationFix, error) {
	x, y, z, err := trajectory.Position(sv)
	if err != nil {
		return models.LocationFix{}, err
	}
	at, err := epoch.Time(sv.Epoch)
	if err != nil {
		return models.LocationFix{}, err
	}

	geo := frames.ToGeodetic(x, y, z, at)

	place, err := geocoder.Reverse(ctx, geo.Latitude, geo.Longitude)
	switch {
	case errors.Is(err, location.ErrNoData):
		place = location.NoDataGeoposition
	case err != nil:
		return models.LocationFix{}, &UpstreamError{Collaborator: "geocoder", Err: err}
	}

	return models.LocationFix{
		Latitude:    geo.Latitude,
		Longitude:   geo.Longitude,
		Altitude:    geo.Altitude,
		Geoposition: place,
	}, nil
}

// LocateAt looks up the vector at epochStr and locates it
func LocateAt(ctx context.Context, vectors []models.StateVector, epochStr string, frames FrameTransformer, geocoder ReverseGeocoder) (models.LocationFix, error) {
	sv, err := trajectory.LookupByEpoch(vectors, epochStr)
	if err != nil {
		return models.LocationFix{}, err
	}
	return Locate(ctx, sv, frames, geocoder)
}

// Current finds the vector nearest to now and reports its epoch, speed and
// location
func Current(ctx context.Context, vectors []models.StateVector, now models.WallClock, frames FrameTransformer, geocoder ReverseGeocoder) (NowResult, error) {
	sv, found, err := trajectory.FindClosest(vectors, now)
	if err != nil {
		return NowResult{}, err
	}
	if !found {
		return NowResult{}, ErrNoCurrentEpoch
	}

	speed, err := trajectory.Speed(sv)
	if err != nil {
		return NowResult{}, err
	}
	fix, err := Locate(ctx, sv, frames, geocoder)
	if err != nil {
		return NowResult{}, err
	}

	return NowResult{Epoch: sv.Epoch, Speed: speed, Location: fix}, nil
}
