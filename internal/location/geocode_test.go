package location

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReverse(t *testing.T) {
	var gotQuery map[string]string
	var gotAgent string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/reverse", r.URL.Path)
		gotQuery = map[string]string{
			"lat":    r.URL.Query().Get("lat"),
			"lon":    r.URL.Query().Get("lon"),
			"format": r.URL.Query().Get("format"),
		}
		gotAgent = r.Header.Get("User-Agent")
		_, _ = w.Write([]byte(`{"display_name":"Houston, Harris County, Texas, United States"}`))
	}))
	defer srv.Close()

	g := NewGeocoder(srv.URL, "iss-tracker-test", 5*time.Second)
	place, err := g.Reverse(context.Background(), 29.76, -95.3698)
	require.NoError(t, err)

	assert.Equal(t, "Houston, Harris County, Texas, United States", place)
	assert.Equal(t, "29.760000", gotQuery["lat"])
	assert.Equal(t, "-95.369800", gotQuery["lon"])
	assert.Equal(t, "jsonv2", gotQuery["format"])
	assert.Equal(t, "iss-tracker-test", gotAgent)
}

func TestReverseNoData(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"error":"Unable to geocode"}`))
	}))
	defer srv.Close()

	g := NewGeocoder(srv.URL, "", 5*time.Second)
	_, err := g.Reverse(context.Background(), 0, -140)
	require.ErrorIs(t, err, ErrNoData)
}

func TestReverseUpstreamFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	g := NewGeocoder(srv.URL, "", 5*time.Second)
	_, err := g.Reverse(context.Background(), 10, 10)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNoData)
	assert.Contains(t, err.Error(), "429")
}

func TestReverseMalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	}))
	defer srv.Close()

	g := NewGeocoder(srv.URL, "", 5*time.Second)
	_, err := g.Reverse(context.Background(), 10, 10)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNoData)
}
