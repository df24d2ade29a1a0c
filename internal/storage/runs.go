package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Run represents one walk over an input in the database.
type Run struct {
	RunID            string
	StartedAt        time.Time
	InputPath        string
	InputDigest      string
	Mode             string
	CubeSize         *int
	Score            int
	InstructionCount int
	TracePath        *string
}

// RunRepository provides CRUD operations for runs.
type RunRepository struct {
	db *DB
}

// NewRunRepository creates a new run repository.
func NewRunRepository(db *DB) *RunRepository {
	return &RunRepository{db: db}
}

// Create stores a run and returns its generated ID.
func (r *RunRepository) Create(run Run) (string, error) {
	id := uuid.New().String()
	startedAt := run.StartedAt
	if startedAt.IsZero() {
		startedAt = time.Now()
	}

	_, err := r.db.Exec(`
		INSERT INTO runs (run_id, started_at, input_path, input_digest, mode, cube_size, score, instruction_count, trace_path)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, id, startedAt.UTC().Format(time.RFC3339), run.InputPath, run.InputDigest, run.Mode,
		run.CubeSize, run.Score, run.InstructionCount, run.TracePath)

	if err != nil {
		return "", fmt.Errorf("failed to create run: %w", err)
	}

	return id, nil
}

// SetTracePath records where the trace of a run was written.
func (r *RunRepository) SetTracePath(runID, path string) error {
	_, err := r.db.Exec("UPDATE runs SET trace_path = ? WHERE run_id = ?", path, runID)
	if err != nil {
		return fmt.Errorf("failed to set trace path: %w", err)
	}
	return nil
}

const runColumns = `run_id, started_at, input_path, input_digest, mode, cube_size, score, instruction_count, trace_path`

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(s scanner) (Run, error) {
	var run Run
	var startedAtStr string
	err := s.Scan(
		&run.RunID, &startedAtStr, &run.InputPath, &run.InputDigest, &run.Mode,
		&run.CubeSize, &run.Score, &run.InstructionCount, &run.TracePath,
	)
	if err != nil {
		return Run{}, err
	}
	run.StartedAt, _ = time.Parse(time.RFC3339, startedAtStr)
	return run, nil
}

// Get retrieves a run by ID. It returns nil if there is no such run.
func (r *RunRepository) Get(runID string) (*Run, error) {
	row := r.db.QueryRow(`SELECT `+runColumns+` FROM runs WHERE run_id = ?`, runID)

	run, err := scanRun(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get run: %w", err)
	}
	return &run, nil
}

// GetLast retrieves the most recent run.
func (r *RunRepository) GetLast() (*Run, error) {
	runs, err := r.List(1)
	if err != nil {
		return nil, err
	}
	if len(runs) == 0 {
		return nil, nil
	}
	return &runs[0], nil
}

// List retrieves recent runs, newest first.
func (r *RunRepository) List(limit int) ([]Run, error) {
	rows, err := r.db.Query(`
		SELECT `+runColumns+`
		FROM runs
		ORDER BY started_at DESC, rowid DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// ListByDigest retrieves every run over the same input, newest first.
func (r *RunRepository) ListByDigest(digest string) ([]Run, error) {
	rows, err := r.db.Query(`
		SELECT `+runColumns+`
		FROM runs
		WHERE input_digest = ?
		ORDER BY started_at DESC, rowid DESC
	`, digest)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs by digest: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// Count returns the number of stored runs.
func (r *RunRepository) Count() (int, error) {
	var count int
	if err := r.db.QueryRow("SELECT COUNT(*) FROM runs").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count runs: %w", err)
	}
	return count, nil
}

// Delete deletes a run and its faces.
func (r *RunRepository) Delete(runID string) error {
	_, err := r.db.Exec("DELETE FROM runs WHERE run_id = ?", runID)
	if err != nil {
		return fmt.Errorf("failed to delete run: %w", err)
	}
	return nil
}
