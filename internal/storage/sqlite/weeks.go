package sqlite

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/julianstephens/weeklit/internal/models"
	"github.com/julianstephens/weeklit/internal/storage"
)

const upsertWeekSQL = `
	INSERT INTO weeks (week_id, start_date, end_date, data, created_at, last_modified)
	VALUES (?, ?, ?, ?, ?, ?)
	ON CONFLICT(week_id) DO UPDATE SET
		start_date = excluded.start_date,
		end_date = excluded.end_date,
		data = excluded.data,
		created_at = excluded.created_at,
		last_modified = excluded.last_modified`

func (s *Store) GetWeek(weekID string) (models.WeekData, error) {
	var data string
	err := s.db.QueryRow("SELECT data FROM weeks WHERE week_id = ?", weekID).Scan(&data)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.WeekData{}, fmt.Errorf("%w: %s", storage.ErrWeekNotFound, weekID)
		}
		return models.WeekData{}, err
	}
	return decodeWeek(data)
}

func (s *Store) GetAllWeeks() ([]models.WeekData, error) {
	return s.queryWeeks("SELECT data FROM weeks ORDER BY week_id")
}

func (s *Store) SaveWeek(w models.WeekData) error {
	return s.SaveWeeks([]models.WeekData{w})
}

// SaveWeeks upserts all weeks in one transaction.
func (s *Store) SaveWeeks(weeks []models.WeekData) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(upsertWeekSQL)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, w := range weeks {
		if w.WeekID == "" {
			return fmt.Errorf("cannot save week without an id")
		}
		data, err := json.Marshal(w)
		if err != nil {
			return fmt.Errorf("encoding week %s: %w", w.WeekID, err)
		}
		if _, err := stmt.Exec(w.WeekID, w.StartDate, w.EndDate, string(data), w.Metadata.CreatedAt, w.Metadata.LastModified); err != nil {
			return fmt.Errorf("saving week %s: %w", w.WeekID, err)
		}
	}

	return tx.Commit()
}

// FindWeeksOverlapping narrows candidates with the date indexes, then keeps
// weeks that actually contain one of dates.
func (s *Store) FindWeeksOverlapping(dates []string) ([]models.WeekData, error) {
	if len(dates) == 0 {
		return nil, nil
	}
	lo, hi := storage.DateBounds(dates)
	candidates, err := s.queryWeeks(
		"SELECT data FROM weeks WHERE start_date <= ? AND end_date >= ? ORDER BY week_id", hi, lo)
	if err != nil {
		return nil, err
	}

	var weeks []models.WeekData
	for _, w := range candidates {
		if storage.Overlaps(w, dates) {
			weeks = append(weeks, w)
		}
	}
	return weeks, nil
}

func (s *Store) queryWeeks(query string, args ...any) ([]models.WeekData, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var weeks []models.WeekData
	for rows.Next() {
		var data string
		if err := rows.Scan(&data); err != nil {
			return nil, err
		}
		w, err := decodeWeek(data)
		if err != nil {
			return nil, err
		}
		weeks = append(weeks, w)
	}
	return weeks, rows.Err()
}

func decodeWeek(data string) (models.WeekData, error) {
	var w models.WeekData
	if err := json.Unmarshal([]byte(data), &w); err != nil {
		return models.WeekData{}, fmt.Errorf("decoding stored week: %w", err)
	}
	return w, nil
}
