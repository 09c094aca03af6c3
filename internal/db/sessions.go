package db

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// Series kinds. A joint series holds angle triples; a segment series holds
// orientation quaternions.
const (
	KindJoint   = "joint"
	KindSegment = "segment"
)

// Session represents one persisted capture session.
type Session struct {
	SessionID    string  `json:"session_id"`
	Label        string  `json:"label"`
	FrameCount   int     `json:"frame_count"`
	SampleRateHz float64 `json:"sample_rate_hz"`
	CreatedAt    int64   `json:"created_at"`
}

// Series represents one extracted channel matrix stored against a session.
type Series struct {
	SeriesID   string      `json:"series_id"`
	SessionID  string      `json:"session_id"`
	Kind       string      `json:"kind"`
	Label      string      `json:"label"`
	StartIndex int         `json:"start_index"`
	Width      int         `json:"width"`
	FrameCount int         `json:"frame_count"`
	Values     [][]float64 `json:"values"`
	CreatedAt  int64       `json:"created_at"`
}

// RecordSession persists a new session. If SessionID is empty, a UUID is generated.
func (db *DB) RecordSession(s *Session) error {
	if s.SessionID == "" {
		s.SessionID = uuid.New().String()
	}
	if s.CreatedAt == 0 {
		s.CreatedAt = db.clock.Now().UnixNano()
	}

	err := retryOnBusy(func() error {
		_, err := db.Exec(`
			INSERT INTO sessions (session_id, label, frame_count, sample_rate_hz, created_at)
			VALUES (?, ?, ?, ?, ?)`,
			s.SessionID, s.Label, s.FrameCount, s.SampleRateHz, s.CreatedAt,
		)
		return err
	})
	if err != nil {
		return fmt.Errorf("inserting session %s: %w", s.SessionID, err)
	}
	return nil
}

// RecordSeries persists an extracted channel series. If SeriesID is empty, a
// UUID is generated. The matrix rows are stored as JSON.
func (db *DB) RecordSeries(s *Series) error {
	if s.SeriesID == "" {
		s.SeriesID = uuid.New().String()
	}
	if s.CreatedAt == 0 {
		s.CreatedAt = db.clock.Now().UnixNano()
	}
	if s.FrameCount == 0 {
		s.FrameCount = len(s.Values)
	}

	valuesJSON, err := json.Marshal(s.Values)
	if err != nil {
		return fmt.Errorf("marshalling series values: %w", err)
	}

	err = retryOnBusy(func() error {
		_, err := db.Exec(`
			INSERT INTO channel_series (
				series_id, session_id, kind, label, start_index, width,
				frame_count, values_json, created_at
			) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			s.SeriesID, s.SessionID, s.Kind, s.Label, s.StartIndex, s.Width,
			s.FrameCount, string(valuesJSON), s.CreatedAt,
		)
		return err
	})
	if err != nil {
		return fmt.Errorf("inserting series %s: %w", s.SeriesID, err)
	}
	return nil
}

// GetSeries loads one series by id.
func (db *DB) GetSeries(seriesID string) (*Series, error) {
	row := db.QueryRow(`
		SELECT series_id, session_id, kind, label, start_index, width,
		       frame_count, values_json, created_at
		FROM channel_series
		WHERE series_id = ?`, seriesID)

	s, err := scanSeries(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("series %s not found", seriesID)
	}
	if err != nil {
		return nil, fmt.Errorf("query series %s: %w", seriesID, err)
	}
	return s, nil
}

// ListSeries returns all series for a session, newest first. The series
// values are included; sessions are small enough that this is fine.
func (db *DB) ListSeries(sessionID string) ([]*Series, error) {
	rows, err := db.Query(`
		SELECT series_id, session_id, kind, label, start_index, width,
		       frame_count, values_json, created_at
		FROM channel_series
		WHERE session_id = ?
		ORDER BY created_at DESC`, sessionID)
	if err != nil {
		return nil, fmt.Errorf("query series for session %s: %w", sessionID, err)
	}
	defer rows.Close()

	var out []*Series
	for rows.Next() {
		s, err := scanSeries(rows)
		if err != nil {
			return nil, fmt.Errorf("scan series: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// ListSessions returns all sessions, newest first.
func (db *DB) ListSessions() ([]*Session, error) {
	rows, err := db.Query(`
		SELECT session_id, label, frame_count, sample_rate_hz, created_at
		FROM sessions
		ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("query sessions: %w", err)
	}
	defer rows.Close()

	var out []*Session
	for rows.Next() {
		var s Session
		if err := rows.Scan(&s.SessionID, &s.Label, &s.FrameCount, &s.SampleRateHz, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan session: %w", err)
		}
		out = append(out, &s)
	}
	return out, rows.Err()
}

// GetSession loads one session by id.
func (db *DB) GetSession(sessionID string) (*Session, error) {
	var s Session
	err := db.QueryRow(`
		SELECT session_id, label, frame_count, sample_rate_hz, created_at
		FROM sessions
		WHERE session_id = ?`, sessionID).
		Scan(&s.SessionID, &s.Label, &s.FrameCount, &s.SampleRateHz, &s.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("session %s not found", sessionID)
	}
	if err != nil {
		return nil, fmt.Errorf("query session %s: %w", sessionID, err)
	}
	return &s, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanSeries(row rowScanner) (*Series, error) {
	var s Series
	var valuesJSON string
	if err := row.Scan(&s.SeriesID, &s.SessionID, &s.Kind, &s.Label, &s.StartIndex,
		&s.Width, &s.FrameCount, &valuesJSON, &s.CreatedAt); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(valuesJSON), &s.Values); err != nil {
		return nil, fmt.Errorf("unmarshalling series values: %w", err)
	}
	return &s, nil
}
