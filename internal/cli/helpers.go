package cli

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"

	"github.com/SeamusWaldron/cubenet"
	"github.com/SeamusWaldron/cubenet/internal/grid"
	"github.com/SeamusWaldron/cubenet/internal/notation"
	"github.com/SeamusWaldron/cubenet/internal/storage"
	"github.com/SeamusWaldron/cubenet/pkg/types"
)

// input is a parsed puzzle file.
type input struct {
	path         string
	digest       string
	grid         *grid.Grid
	instructions []types.Instruction
}

// loadInput reads and parses a puzzle file.
func loadInput(path string) (*input, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}

	g, instructions, err := cubenet.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	sum := sha256.Sum256(data)
	return &input{
		path:         path,
		digest:       hex.EncodeToString(sum[:]),
		grid:         g,
		instructions: instructions,
	}, nil
}

// summary describes the path of an input, e.g. "13 instructions, 44 cells".
func (in *input) summary() string {
	return fmt.Sprintf("%d instructions, %d cells", len(in.instructions), notation.CountMoves(in.instructions))
}

// openDB opens and migrates the configured database.
func openDB() (*storage.DB, error) {
	var db *storage.DB
	var err error
	if cfg.DBPath == "" {
		db, err = storage.OpenDefault()
	} else {
		db, err = storage.Open(cfg.DBPath)
	}
	if err != nil {
		return nil, err
	}
	log.WithField("db", db.Path()).Debug("database opened")
	if err := db.MigrateUp(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return db, nil
}

// modesFor expands a mode setting into the modes to run.
func modesFor(mode string) ([]string, error) {
	switch mode {
	case "flat":
		return []string{"flat"}, nil
	case "cube":
		return []string{"cube"}, nil
	case "both", "":
		return []string{"flat", "cube"}, nil
	default:
		return nil, fmt.Errorf("unknown mode %q (want flat, cube or both)", mode)
	}
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
