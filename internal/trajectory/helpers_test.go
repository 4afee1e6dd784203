package trajectory

import (
	"fmt"
	"testing"

	"github.com/randytsao24/iss-tracker/internal/models"
)

func km(v float64) models.Quantity {
	return models.Quantity{Units: "km", Text: fmt.Sprintf("%g", v)}
}

func kms(v float64) models.Quantity {
	return models.Quantity{Units: "km/s", Text: fmt.Sprintf("%g", v)}
}

func vectorAt(epoch string) models.StateVector {
	return models.StateVector{Epoch: epoch}
}

// fourMinuteTrajectory builds n vectors four minutes apart starting at
// 2024-048T00:03:00.000Z
func fourMinuteTrajectory(t *testing.T, n int) []models.StateVector {
	t.Helper()
	out := make([]models.StateVector, n)
	for i := range out {
		total := 3 + 4*i
		out[i] = models.StateVector{
			Epoch: fmt.Sprintf("2024-%03dT%02d:%02d:00.000Z", 48+total/1440, (total%1440)/60, total%60),
			X:     km(float64(i)),
			Y:     km(-float64(i)),
			Z:     km(1),
			XDot:  kms(1),
			YDot:  kms(2),
			ZDot:  kms(2),
		}
	}
	return out
}
