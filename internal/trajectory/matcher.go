package trajectory

import (
	"github.com/randytsao24/iss-tracker/internal/epoch"
	"github.com/randytsao24/iss-tracker/internal/models"
)

// The feed samples every four minutes, so any sample within two minutes of
// the target is the nearest one.
const (
	matchWindow  = 2
	roundUpAfter = 30
)

// selection is the accumulator of the nearest-epoch scan
type selection struct {
	index int
	done  bool
}

var noSelection = selection{index: -1}

// step folds one candidate into the selection. Candidates closer than the
// window replace the selection and the scan continues. A candidate exactly
// at the window ends the scan: it is taken when the target's seconds rounded
// down, otherwise the following sample is taken in its place.
func (s selection) step(i, delta, second, n int) selection {
	switch {
	case delta < matchWindow:
		return selection{index: i}
	case delta == matchWindow && second < roundUpAfter:
		return selection{index: i, done: true}
	case delta == matchWindow:
		next := i + 1
		if next >= n {
			next = i
		}
		return selection{index: next, done: true}
	default:
		return s
	}
}

// FindClosest returns the state vector nearest to the wall-clock time now,
// comparing at minute resolution on day-of-year, hour and minute. The year is
// ignored. The boolean is false when no vector lies within two minutes.
func FindClosest(vectors []models.StateVector, now models.WallClock) (models.StateVector, bool, error) {
	target := epoch.FromWallClock(now).Minutes()

	sel := noSelection
	for i, sv := range vectors {
		st, err := epoch.Parse(sv.Epoch)
		if err != nil {
			return models.StateVector{}, false, err
		}

		sel = sel.step(i, abs(st.Minutes()-target), now.Second, len(vectors))
		if sel.done {
			break
		}
	}

	if sel.index < 0 {
		return models.StateVector{}, false, nil
	}
	return vectors[sel.index], true, nil
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
