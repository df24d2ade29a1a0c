package storage

import (
	"database/sql"
	"fmt"
)

// FaceRecord is one resolved face of the net a run folded.
type FaceRecord struct {
	RunID     string
	Side      string
	OriginRow int
	OriginCol int
	Rotation  string
}

// FaceRepository stores the topology of cube-mode runs.
type FaceRepository struct {
	db *DB
}

// NewFaceRepository creates a new face repository.
func NewFaceRepository(db *DB) *FaceRepository {
	return &FaceRepository{db: db}
}

// CreateAll stores the faces of one run in a single transaction.
func (r *FaceRepository) CreateAll(faces []FaceRecord) error {
	return r.db.Transaction(func(tx *sql.Tx) error {
		stmt, err := tx.Prepare(`
			INSERT INTO run_faces (run_id, side, origin_row, origin_col, rotation)
			VALUES (?, ?, ?, ?, ?)
		`)
		if err != nil {
			return fmt.Errorf("failed to prepare face insert: %w", err)
		}
		defer stmt.Close()

		for _, f := range faces {
			if _, err := stmt.Exec(f.RunID, f.Side, f.OriginRow, f.OriginCol, f.Rotation); err != nil {
				return fmt.Errorf("failed to create face %s: %w", f.Side, err)
			}
		}
		return nil
	})
}

// GetByRun retrieves the faces stored for a run, ordered by position on the
// sheet.
func (r *FaceRepository) GetByRun(runID string) ([]FaceRecord, error) {
	rows, err := r.db.Query(`
		SELECT run_id, side, origin_row, origin_col, rotation
		FROM run_faces
		WHERE run_id = ?
		ORDER BY origin_row, origin_col
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to get faces: %w", err)
	}
	defer rows.Close()

	var faces []FaceRecord
	for rows.Next() {
		var f FaceRecord
		if err := rows.Scan(&f.RunID, &f.Side, &f.OriginRow, &f.OriginCol, &f.Rotation); err != nil {
			return nil, fmt.Errorf("failed to scan face: %w", err)
		}
		faces = append(faces, f)
	}
	return faces, rows.Err()
}
