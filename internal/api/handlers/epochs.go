package handlers

import (
	"net/http"

	"github.com/randytsao24/iss-tracker/internal/epoch"
)

type EpochHandler struct {
	tracker Tracker
}

func NewEpochHandler(t Tracker) *EpochHandler {
	return &EpochHandler{tracker: t}
}

// GetHeader returns the feed header
func (h *EpochHandler) GetHeader(w http.ResponseWriter, r *http.Request) {
	header, err := h.tracker.Header(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, header)
}

// GetMetadata returns the feed metadata
func (h *EpochHandler) GetMetadata(w http.ResponseWriter, r *http.Request) {
	meta, err := h.tracker.Metadata(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, meta)
}

// GetComments returns the feed's comment lines
func (h *EpochHandler) GetComments(w http.ResponseWriter, r *http.Request) {
	comments, err := h.tracker.Comments(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, comments)
}

// ListEpochs returns state vectors, paged by the limit and offset query
// parameters
func (h *EpochHandler) ListEpochs(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	vectors, err := h.tracker.List(r.Context(), query.Get("limit"), query.Get("offset"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, vectors)
}

// GetEpoch returns one state vector
func (h *EpochHandler) GetEpoch(w http.ResponseWriter, r *http.Request) {
	ts, ok := epochParam(w, r)
	if !ok {
		return
	}

	sv, err := h.tracker.Get(r.Context(), ts)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, sv)
}

// GetEpochSpeed returns the speed at one epoch
func (h *EpochHandler) GetEpochSpeed(w http.ResponseWriter, r *http.Request) {
	ts, ok := epochParam(w, r)
	if !ok {
		return
	}

	speed, err := h.tracker.Speed(r.Context(), ts)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, speed)
}

// GetEpochLocation returns the geographic sub-point at one epoch
func (h *EpochHandler) GetEpochLocation(w http.ResponseWriter, r *http.Request) {
	ts, ok := epochParam(w, r)
	if !ok {
		return
	}

	fix, err := h.tracker.Location(r.Context(), ts)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, fix)
}

// GetNow returns the sample closest to the current time
func (h *EpochHandler) GetNow(w http.ResponseWriter, r *http.Request) {
	now, err := h.tracker.Now(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, now)
}

// GetAverageSpeed returns the mean speed across the feed
func (h *EpochHandler) GetAverageSpeed(w http.ResponseWriter, r *http.Request) {
	avg, err := h.tracker.AverageSpeed(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, avg)
}

// epochParam validates the {epoch} path value, answering 400 when malformed
func epochParam(w http.ResponseWriter, r *http.Request) (string, bool) {
	ts := r.PathValue("epoch")
	if _, err := epoch.Parse(ts); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"error":   "Invalid epoch format",
			"message": "Epoch must look like <YYYY>-<DDD>T<HH>:<MM>:<SS>.<mmm>Z",
		})
		return "", false
	}
	return ts, true
}
