package record

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// SQLStore persists the record tree in SQLite or Postgres, sharing one SQL
// dialect ($1 placeholders work on both drivers).
type SQLStore struct {
	db     *sql.DB
	driver string // "sqlite" or "postgres"
}

func NewSQLStore(db *sql.DB, driver string) *SQLStore {
	return &SQLStore{db: db, driver: driver}
}

func (s *SQLStore) PutSubject(ctx context.Context, sub Subject) error {
	if sub.Name == "" {
		return fmt.Errorf("subject needs a name")
	}
	_, err := s.db.ExecContext(ctx, `INSERT INTO subjects (name, type, color)
		VALUES ($1, $2, $3)
		ON CONFLICT (name) DO UPDATE SET type=EXCLUDED.type, color=EXCLUDED.color`,
		sub.Name, NormalizeType(sub.Type), sub.Color)
	return err
}

func (s *SQLStore) GetSubject(ctx context.Context, name string) (Subject, error) {
	row := s.db.QueryRowContext(ctx, `SELECT name, type, color FROM subjects WHERE name=$1`, name)
	var sub Subject
	if err := row.Scan(&sub.Name, &sub.Type, &sub.Color); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Subject{}, fmt.Errorf("%w: subject %q", ErrNotFound, name)
		}
		return Subject{}, err
	}
	return sub, nil
}

func (s *SQLStore) DeleteSubject(ctx context.Context, name string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM subjects WHERE name=$1`, name)
	if err != nil {
		return err
	}
	return requireAffected(res, fmt.Sprintf("subject %q", name))
}

func (s *SQLStore) ListSubjects(ctx context.Context) ([]Subject, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT name, type, color FROM subjects ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Subject
	for rows.Next() {
		var sub Subject
		if err := rows.Scan(&sub.Name, &sub.Type, &sub.Color); err != nil {
			return nil, err
		}
		out = append(out, sub)
	}
	return out, rows.Err()
}

func (s *SQLStore) PutTest(ctx context.Context, season string, t Test) error {
	if season == "" || t.Name == "" {
		return fmt.Errorf("test needs a season and a name")
	}
	if err := t.Validate(); err != nil {
		return err
	}
	if _, err := s.GetSubject(ctx, t.Subject); err != nil {
		return err
	}
	_, err := s.db.ExecContext(ctx, `INSERT INTO tests (season, name, subject, score, score_full, weightage)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (season, name) DO UPDATE SET
			subject=EXCLUDED.subject, score=EXCLUDED.score,
			score_full=EXCLUDED.score_full, weightage=EXCLUDED.weightage`,
		season, t.Name, t.Subject, t.Score, t.Full, t.Weightage)
	return err
}

func (s *SQLStore) GetTest(ctx context.Context, season, name string) (Test, error) {
	row := s.db.QueryRowContext(ctx, `SELECT name, subject, score, score_full, weightage
		FROM tests WHERE season=$1 AND name=$2`, season, name)
	var t Test
	if err := row.Scan(&t.Name, &t.Subject, &t.Score, &t.Full, &t.Weightage); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Test{}, fmt.Errorf("%w: test %s/%s", ErrNotFound, season, name)
		}
		return Test{}, err
	}
	return t, nil
}

func (s *SQLStore) DeleteTest(ctx context.Context, season, name string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM tests WHERE season=$1 AND name=$2`, season, name)
	if err != nil {
		return err
	}
	return requireAffected(res, fmt.Sprintf("test %s/%s", season, name))
}

func (s *SQLStore) DeleteSeason(ctx context.Context, season string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM tests WHERE season=$1`, season)
	if err != nil {
		return err
	}
	return requireAffected(res, fmt.Sprintf("season %q", season))
}

func (s *SQLStore) Snapshot(ctx context.Context) (Snapshot, error) {
	snap := Snapshot{
		Subjects: map[string]Subject{},
		Seasons:  map[string]map[string]Test{},
	}
	subs, err := s.ListSubjects(ctx)
	if err != nil {
		return Snapshot{}, err
	}
	for _, sub := range subs {
		snap.Subjects[sub.Name] = sub
	}

	rows, err := s.db.QueryContext(ctx, `SELECT season, name, subject, score, score_full, weightage FROM tests`)
	if err != nil {
		return Snapshot{}, err
	}
	defer rows.Close()
	for rows.Next() {
		var season string
		var t Test
		if err := rows.Scan(&season, &t.Name, &t.Subject, &t.Score, &t.Full, &t.Weightage); err != nil {
			return Snapshot{}, err
		}
		if snap.Seasons[season] == nil {
			snap.Seasons[season] = map[string]Test{}
		}
		snap.Seasons[season][t.Name] = t
	}
	return snap, rows.Err()
}

func requireAffected(res sql.Result, what string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, what)
	}
	return nil
}
