package postgres

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
	VALUES ($1, $2, $3, $4, $5, $6)
	ON CONFLICT (week_id) DO UPDATE SET
		start_date = EXCLUDED.start_date,
		end_date = EXCLUDED.end_date,
		data = EXCLUDED.data,
		created_at = EXCLUDED.created_at,
		last_modified = EXCLUDED.last_modified`

func (s *Store) GetWeek(weekID string) (models.WeekData, error) {
	var data []byte
	err := s.db.QueryRow("SELECT data FROM weeks WHERE week_id = $1", weekID).Scan(&data)
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

func (s *Store) FindWeeksOverlapping(dates []string) ([]models.WeekData, error) {
	if len(dates) == 0 {
		return nil, nil
	}
	lo, hi := storage.DateBounds(dates)
	candidates, err := s.queryWeeks(
		"SELECT data FROM weeks WHERE start_date <= $1 AND end_date >= $2 ORDER BY week_id", hi, lo)
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
		var data []byte
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

func decodeWeek(data []byte) (models.WeekData, error) {
	var w models.WeekData
	if err := json.Unmarshal(data, &w); err != nil {
		return models.WeekData{}, fmt.Errorf("decoding stored week: %w", err)
	}
	return w, nil
}
