package trajectory

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/randytsao24/iss-tracker/internal/models"
)

// Page is a resolved offset/limit window
type Page struct {
	Offset int
	Limit  int
}

// ParsePage resolves raw limit and offset query values against a trajectory
// of length n. An empty limit means all of it; an empty offset means 0.
func ParsePage(rawLimit, rawOffset string, n int) (Page, error) {
	p := Page{Offset: 0, Limit: n}

	if rawLimit != "" {
		v, err := parseBound("limit", rawLimit)
		if err != nil {
			return Page{}, err
		}
		p.Limit = v
	}
	if rawOffset != "" {
		v, err := parseBound("offset", rawOffset)
		if err != nil {
			return Page{}, err
		}
		p.Offset = v
	}

	return p, nil
}

// parseBound reads one integer query value. Integers beyond the range of int
// saturate at its limits and are left for Slice to clamp.
func parseBound(name, raw string) (int, error) {
	v, err := strconv.Atoi(raw)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, fmt.Errorf("%w: %s must be an integer, got %q", ErrInvalidParameter, name, raw)
	}
	return v, nil
}

// Slice returns the vectors in [offset, offset+limit), clamped to the bounds
// of the trajectory. Negative values clamp to zero.
func Slice(vectors []models.StateVector, p Page) []models.StateVector {
	n := len(vectors)

	start := clamp(p.Offset, 0, n)
	limit := max(p.Limit, 0)
	end := n
	if limit < n-start {
		end = start + limit
	}

	return vectors[start:end]
}

// LookupByEpoch returns the first vector whose epoch equals epoch exactly
func LookupByEpoch(vectors []models.StateVector, epoch string) (models.StateVector, error) {
	for _, sv := range vectors {
		if sv.Epoch == epoch {
			return sv, nil
		}
	}
	return models.StateVector{}, fmt.Errorf("%w: %s", ErrNotFound, epoch)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
