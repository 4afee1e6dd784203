package trajectory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/randytsao24/iss-tracker/internal/epoch"
	"github.com/randytsao24/iss-tracker/internal/models"
)

func wallclock(year, month, day, hour, minute, second int) models.WallClock {
	return models.WallClock{Year: year, Month: month, Day: day, Hour: hour, Minute: minute, Second: second}
}

func TestFindClosest(t *testing.T) {
	sparse := []models.StateVector{
		vectorAt("2024-048T00:07:00.000Z"),
		vectorAt("2024-048T00:11:00.000Z"),
		vectorAt("2024-048T00:15:00.000Z"),
	}
	dense := []models.StateVector{
		vectorAt("2024-048T00:07:00.000Z"),
		vectorAt("2024-048T00:08:00.000Z"),
		vectorAt("2024-048T00:09:00.000Z"),
		vectorAt("2024-048T00:20:00.000Z"),
	}

	tests := []struct {
		name    string
		vectors []models.StateVector
		now     models.WallClock
		want    string
		found   bool
	}{
		{
			name:    "two minutes after with seconds rounding down keeps the candidate",
			vectors: sparse,
			now:     wallclock(2024, 2, 17, 0, 9, 0),
			want:    "2024-048T00:07:00.000Z",
			found:   true,
		},
		{
			name:    "two minutes away with seconds rounding up takes the next sample",
			vectors: sparse,
			now:     wallclock(2024, 2, 17, 0, 8, 40),
			want:    "2024-048T00:11:00.000Z",
			found:   true,
		},
		{
			name:    "within one minute",
			vectors: sparse,
			now:     wallclock(2024, 2, 17, 0, 11, 50),
			want:    "2024-048T00:11:00.000Z",
			found:   true,
		},
		{
			name:    "last of several tight matches wins",
			vectors: dense,
			now:     wallclock(2024, 2, 17, 0, 8, 0),
			want:    "2024-048T00:09:00.000Z",
			found:   true,
		},
		{
			name:    "two minutes away at the final sample keeps the final sample",
			vectors: sparse,
			now:     wallclock(2024, 2, 17, 0, 16, 30),
			want:    "2024-048T00:15:00.000Z",
			found:   true,
		},
		{
			name:    "rounding carries into the next day",
			vectors: []models.StateVector{vectorAt("2024-048T00:00:00.000Z")},
			now:     wallclock(2024, 2, 16, 23, 59, 30),
			want:    "2024-048T00:00:00.000Z",
			found:   true,
		},
		{
			name:    "year is not compared",
			vectors: []models.StateVector{vectorAt("2019-048T00:07:00.000Z")},
			now:     wallclock(2024, 2, 17, 0, 7, 0),
			want:    "2019-048T00:07:00.000Z",
			found:   true,
		},
		{
			name:    "nothing within the window",
			vectors: sparse,
			now:     wallclock(2024, 2, 17, 3, 0, 0),
			found:   false,
		},
		{
			name:    "empty trajectory",
			vectors: nil,
			now:     wallclock(2024, 2, 17, 0, 9, 0),
			found:   false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, found, err := FindClosest(tc.vectors, tc.now)
			require.NoError(t, err)
			require.Equal(t, tc.found, found)
			if !tc.found {
				assert.Equal(t, models.StateVector{}, got)
				return
			}
			assert.Equal(t, tc.want, got.Epoch)
		})
	}
}

func TestFindClosestStopsAtWindowEdge(t *testing.T) {
	// A later exact match is never reached once a sample sits at the edge.
	vectors := []models.StateVector{
		vectorAt("2024-048T00:07:00.000Z"),
		vectorAt("2024-048T00:09:00.000Z"),
	}

	got, found, err := FindClosest(vectors, wallclock(2024, 2, 17, 0, 9, 10))
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "2024-048T00:07:00.000Z", got.Epoch)
}

func TestFindClosestOnFeedCadence(t *testing.T) {
	vectors := fourMinuteTrajectory(t, 360)

	for i := 0; i < 60; i++ {
		now := wallclock(2024, 2, 17, 1, i, 0)
		got, found, err := FindClosest(vectors, now)
		require.NoError(t, err)
		require.True(t, found, "minute %d", i)

		st, err := epoch.Parse(got.Epoch)
		require.NoError(t, err)
		target := epoch.FromWallClock(now).Minutes()
		assert.LessOrEqual(t, abs(st.Minutes()-target), 2, "minute %d matched %s", i, got.Epoch)
	}
}

func TestFindClosestMalformedEpoch(t *testing.T) {
	vectors := []models.StateVector{vectorAt("not-an-epoch")}

	_, _, err := FindClosest(vectors, wallclock(2024, 2, 17, 0, 9, 0))
	require.ErrorIs(t, err, epoch.ErrFormat)
}
