package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/banshee-data/motion.report/internal/db"
	"github.com/banshee-data/motion.report/internal/mocap"
	"github.com/banshee-data/motion.report/internal/units"
)

// ExtractRequest is the body of the /api/extract endpoints: already-parsed
// frame records plus the channel selection. Exactly one of Index or Label
// selects the channel; FrameCount defaults to all supplied frames.
type ExtractRequest struct {
	Frames     []mocap.Frame `json:"frames"`
	FrameCount *int          `json:"frame_count,omitempty"`
	Index      *int          `json:"index,omitempty"`
	Label      string        `json:"label,omitempty"`

	// SessionLabel, when set, persists the extraction as a series under a
	// new session with this label.
	SessionLabel string  `json:"session_label,omitempty"`
	SampleRateHz float64 `json:"sample_rate_hz,omitempty"`
}

// ExtractResponse carries the extracted matrix and its per-column summary.
type ExtractResponse struct {
	Rows      int                    `json:"rows"`
	Cols      int                    `json:"cols"`
	Units     string                 `json:"units,omitempty"`
	Values    [][]float64            `json:"values"`
	Summary   []mocap.ChannelSummary `json:"summary,omitempty"`
	SessionID string                 `json:"session_id,omitempty"`
	SeriesID  string                 `json:"series_id,omitempty"`
}

func (s *Server) extractJoints(w http.ResponseWriter, r *http.Request) {
	s.handleExtract(w, r, db.KindJoint)
}

func (s *Server) extractSegments(w http.ResponseWriter, r *http.Request) {
	s.handleExtract(w, r, db.KindSegment)
}

func (s *Server) handleExtract(w http.ResponseWriter, r *http.Request, kind string) {
	w.Header().Set("Content-Type", "application/json")

	if r.Method != http.MethodPost {
		s.writeJSONError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var req ExtractRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeJSONError(w, http.StatusBadRequest, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	frameCount := len(req.Frames)
	if req.FrameCount != nil {
		frameCount = *req.FrameCount
	}

	index, label, err := resolveChannel(&req, kind)
	if err != nil {
		s.writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	var matrix mocap.Matrix
	switch kind {
	case db.KindJoint:
		matrix, err = mocap.JointAngles(req.Frames, frameCount, index)
	case db.KindSegment:
		matrix, err = mocap.SegmentOrientations(req.Frames, frameCount, index)
	}
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, mocap.ErrOutOfRange) {
			status = http.StatusBadRequest
		}
		s.writeJSONError(w, status, err.Error())
		return
	}

	resp := ExtractResponse{
		Values: matrix,
	}
	resp.Rows, resp.Cols = matrix.Dims()

	// Joint angles are exported in degrees; quaternions are unitless and
	// never converted.
	if kind == db.KindJoint {
		targetUnits := s.requestUnits(r)
		resp.Units = targetUnits
		resp.Values = units.ConvertMatrix(matrix, targetUnits)
	}

	// Summarise the converted values so the summary carries the same units
	// as the matrix it describes.
	if resp.Rows > 0 {
		summary, err := mocap.Summarize(resp.Values)
		if err != nil {
			s.writeJSONError(w, http.StatusInternalServerError, err.Error())
			return
		}
		resp.Summary = summary
	}

	if req.SessionLabel != "" {
		sessionID, seriesID, err := s.persistExtraction(&req, kind, label, index, matrix)
		if err != nil {
			s.writeJSONError(w, http.StatusInternalServerError,
				fmt.Sprintf("Failed to persist extraction: %v", err))
			return
		}
		resp.SessionID = sessionID
		resp.SeriesID = seriesID
	}

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		s.writeJSONError(w, http.StatusInternalServerError, "Failed to write extraction")
		return
	}
}

// resolveChannel turns the request's Label or Index into a flat-array start
// offset. Label wins if both are supplied.
func resolveChannel(req *ExtractRequest, kind string) (index int, label string, err error) {
	if req.Label != "" {
		switch kind {
		case db.KindJoint:
			index, err = mocap.JointOffset(req.Label)
		case db.KindSegment:
			index, err = mocap.SegmentOffset(req.Label)
		}
		return index, req.Label, err
	}
	if req.Index == nil {
		return 0, "", fmt.Errorf("either 'index' or 'label' is required")
	}
	return *req.Index, "", nil
}

// requestUnits returns the validated units query parameter, falling back to
// the server default.
func (s *Server) requestUnits(r *http.Request) string {
	u := r.URL.Query().Get("units")
	if u == "" {
		return s.units
	}
	if !units.IsValid(u) {
		return s.units
	}
	return u
}

// persistExtraction stores the matrix (always in export units) as a series
// under a freshly created session.
func (s *Server) persistExtraction(req *ExtractRequest, kind, label string, index int, matrix mocap.Matrix) (string, string, error) {
	if s.db == nil {
		return "", "", fmt.Errorf("no database configured")
	}

	sampleRate := req.SampleRateHz
	if sampleRate == 0 {
		sampleRate = 60
	}

	session := &db.Session{
		Label:        req.SessionLabel,
		FrameCount:   len(matrix),
		SampleRateHz: sampleRate,
	}
	if err := s.db.RecordSession(session); err != nil {
		return "", "", err
	}

	_, width := matrix.Dims()
	series := &db.Series{
		SessionID:  session.SessionID,
		Kind:       kind,
		Label:      label,
		StartIndex: index,
		Width:      width,
		Values:     matrix,
	}
	if err := s.db.RecordSeries(series); err != nil {
		return "", "", err
	}
	return session.SessionID, series.SeriesID, nil
}

func (s *Server) listSessions(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if r.Method != http.MethodGet {
		s.writeJSONError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	sessions, err := s.db.ListSessions()
	if err != nil {
		s.writeJSONError(w, http.StatusInternalServerError,
			fmt.Sprintf("Failed to retrieve sessions: %v", err))
		return
	}
	if sessions == nil {
		sessions = []*db.Session{}
	}

	if err := json.NewEncoder(w).Encode(sessions); err != nil {
		s.writeJSONError(w, http.StatusInternalServerError, "Failed to write sessions")
		return
	}
}

// listSessionSeries serves /api/sessions/{id}/series.
func (s *Server) listSessionSeries(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if r.Method != http.MethodGet {
		s.writeJSONError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	rest := strings.TrimPrefix(r.URL.Path, "/api/sessions/")
	parts := strings.Split(rest, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] != "series" {
		s.writeJSONError(w, http.StatusNotFound, "Not found")
		return
	}
	sessionID := parts[0]

	if _, err := s.db.GetSession(sessionID); err != nil {
		s.writeJSONError(w, http.StatusNotFound, err.Error())
		return
	}

	series, err := s.db.ListSeries(sessionID)
	if err != nil {
		s.writeJSONError(w, http.StatusInternalServerError,
			fmt.Sprintf("Failed to retrieve series: %v", err))
		return
	}
	if series == nil {
		series = []*db.Series{}
	}

	if err := json.NewEncoder(w).Encode(series); err != nil {
		s.writeJSONError(w, http.StatusInternalServerError, "Failed to write series")
		return
	}
}
