package storage

import (
	"database/sql"
	"time"
)

// Session is one recorded countdown run: started whenever the user hits
// Start, completed if the countdown reaches zero before being abandoned.
type Session struct {
	ID              int64
	StartedAt       time.Time
	DurationSeconds uint64
	Completed       bool
	CompletedAt     *time.Time
}

// RecordSessionStart inserts a new open session and returns its id.
func (s *Store) RecordSessionStart(start time.Time, durationSeconds uint64) (int64, error) {
	res, err := s.DB.Exec(
		"INSERT INTO sessions (started_at, duration_seconds) VALUES (?, ?)",
		start, durationSeconds,
	)
	if err != nil {
		return 0, wrapSessionErr("record", 0, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, wrapSessionErr("record", 0, err)
	}
	return id, nil
}

// CompleteSession marks the session as having reached zero.
func (s *Store) CompleteSession(id int64, end time.Time) error {
	_, err := s.DB.Exec(
		"UPDATE sessions SET completed = 1, completed_at = ? WHERE id = ?",
		end, id,
	)
	if err != nil {
		return wrapSessionErr("complete", id, err)
	}
	return nil
}

// GetSessions returns all recorded sessions, newest first.
func (s *Store) GetSessions() ([]Session, error) {
	rows, err := s.DB.Query(
		"SELECT id, started_at, duration_seconds, completed, completed_at FROM sessions ORDER BY started_at DESC",
	)
	if err != nil {
		return nil, wrapSessionErr("list", 0, err)
	}
	defer rows.Close()

	var sessions []Session
	for rows.Next() {
		var sess Session
		var completed int
		var completedAt sql.NullTime
		if err := rows.Scan(&sess.ID, &sess.StartedAt, &sess.DurationSeconds, &completed, &completedAt); err != nil {
			return nil, wrapSessionErr("list", 0, err)
		}
		sess.Completed = completed != 0
		if completedAt.Valid {
			t := completedAt.Time
			sess.CompletedAt = &t
		}
		sessions = append(sessions, sess)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapSessionErr("list", 0, err)
	}
	return sessions, nil
}
