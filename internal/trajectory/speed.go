package trajectory

import (
	"fmt"
	"math"

	"github.com/randytsao24/iss-tracker/internal/models"
)

// Speed returns the magnitude of the vector's velocity, in the feed's units
// (km/s)
func Speed(sv models.StateVector) (float64, error) {
	components := []struct {
		name string
		q    models.Quantity
	}{
		{"X_DOT", sv.XDot},
		{"Y_DOT", sv.YDot},
		{"Z_DOT", sv.ZDot},
	}

	var sum float64
	for _, c := range components {
		v, err := c.q.Float()
		if err != nil {
			return 0, fmt.Errorf("%w: %s: %v", ErrInvalidInput, c.name, err)
		}
		sum += v * v
	}
	return math.Sqrt(sum), nil
}

// AverageSpeed returns the mean speed over all vectors, or 0 when there are
// none
func AverageSpeed(vectors []models.StateVector) (float64, error) {
	if len(vectors) == 0 {
		return 0, nil
	}

	var total float64
	for _, sv := range vectors {
		s, err := Speed(sv)
		if err != nil {
			return 0, fmt.Errorf("epoch %s: %w", sv.Epoch, err)
		}
		total += s
	}
	return total / float64(len(vectors)), nil
}

// Position returns the vector's X, Y, Z position components
func Position(sv models.StateVector) (x, y, z float64, err error) {
	if x, err = sv.X.Float(); err != nil {
		return 0, 0, 0, fmt.Errorf("%w: X: %v", ErrInvalidInput, err)
	}
	if y, err = sv.Y.Float(); err != nil {
		return 0, 0, 0, fmt.Errorf("%w: Y: %v", ErrInvalidInput, err)
	}
	if z, err = sv.Z.Float(); err != nil {
		return 0, 0, 0, fmt.Errorf("%w: Z: %v", ErrInvalidInput, err)
	}
	return x, y, z, nil
}
