package api

import (
	"net/http"
	"strings"
	"testing"

	"github.com/banshee-data/motion.report/internal/db"
	"github.com/banshee-data/motion.report/internal/testutil"
)

func TestChartSeries(t *testing.T) {
	s := newTestServer(t)
	mux := s.ServeMux()

	session := &db.Session{Label: "stair-climb", FrameCount: 2, SampleRateHz: 60}
	testutil.AssertNoError(t, s.db.RecordSession(session))
	series := &db.Series{
		SessionID: session.SessionID,
		Kind:      db.KindJoint,
		Label:     "jRightKnee",
		Width:     3,
		Values:    [][]float64{{40, 50, 60}, {42, 52, 62}},
	}
	testutil.AssertNoError(t, s.db.RecordSeries(series))

	req := testutil.NewTestRequest(http.MethodGet, "/api/charts/series?series_id="+series.SeriesID)
	rec := testutil.NewTestRecorder()
	mux.ServeHTTP(rec, req)

	testutil.AssertStatusCode(t, rec.Code, http.StatusOK)
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("Content-Type = %q, want text/html", ct)
	}
	html := rec.Body.String()
	for _, want := range []string{"jRightKnee", "flexion", "abduction", "extension"} {
		if !strings.Contains(html, want) {
			t.Errorf("chart HTML missing %q", want)
		}
	}
}

func TestChartSeriesErrors(t *testing.T) {
	s := newTestServer(t)
	mux := s.ServeMux()

	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
	}{
		{"POST not allowed", http.MethodPost, "/api/charts/series", http.StatusMethodNotAllowed},
		{"missing series_id", http.MethodGet, "/api/charts/series", http.StatusBadRequest},
		{"unknown series", http.MethodGet, "/api/charts/series?series_id=nope", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.NewTestRequest(tt.method, tt.path)
			rec := testutil.NewTestRecorder()
			mux.ServeHTTP(rec, req)
			testutil.AssertStatusCode(t, rec.Code, tt.wantStatus)
			if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
				t.Errorf("error content type = %q, want application/json", ct)
			}
		})
	}
}
