// Package tracelog persists walk traces as zstd-compressed JSON lines.
//
// A trace file holds one header record followed by one step record per
// instruction, in the order they ran.
package tracelog

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/klauspost/compress/zstd"

	"github.com/SeamusWaldron/cubenet/internal/walk"
)

// Version is the trace format version written in every header.
const Version = 1

const (
	typeHeader = "header"
	typeStep   = "step"
)

var (
	ErrMissingHeader = errors.New("cubenet: trace has no header")
	ErrBadRecord     = errors.New("cubenet: malformed trace record")
)

// Header describes the run a trace belongs to.
type Header struct {
	Type      string    `json:"type"`
	Version   int       `json:"version"`
	CreatedAt time.Time `json:"created_at"`
	RunID     string    `json:"run_id,omitempty"`
	Mode      string    `json:"mode"`
	InputPath string    `json:"input_path,omitempty"`
	Score     int       `json:"score"`
}

type stepRecord struct {
	Type string `json:"type"`
	walk.Step
}

// Trace is a loaded trace file.
type Trace struct {
	Header Header
	Steps  []walk.Step
}

// DefaultDir returns the default trace directory in the user's home.
func DefaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".cubenet", "traces"), nil
}

// FileName returns the trace file name for a run.
func FileName(runID, mode string) string {
	return fmt.Sprintf("%s-%s.jsonl.zst", runID, mode)
}

// Writer streams records into one compressed trace file.
type Writer struct {
	f   *os.File
	enc *zstd.Encoder
	w   *bufio.Writer
}

// Create opens path for writing, creating parent directories.
func Create(path string) (*Writer, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create trace directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create trace file: %w", err)
	}
	enc, err := zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedFastest))
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	return &Writer{f: f, enc: enc, w: bufio.NewWriterSize(enc, 64*1024)}, nil
}

// WriteHeader writes the header record. It must come first.
func (w *Writer) WriteHeader(h Header) error {
	h.Type = typeHeader
	if h.Version == 0 {
		h.Version = Version
	}
	if h.CreatedAt.IsZero() {
		h.CreatedAt = time.Now().UTC()
	}
	return w.write(h)
}

// WriteStep appends one step record.
func (w *Writer) WriteStep(s walk.Step) error {
	return w.write(stepRecord{Type: typeStep, Step: s})
}

func (w *Writer) write(v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	if _, err := w.w.Write(b); err != nil {
		return err
	}
	return w.w.WriteByte('\n')
}

// Close flushes and closes the file.
func (w *Writer) Close() error {
	flushErr := w.w.Flush()
	encErr := w.enc.Close()
	fileErr := w.f.Close()
	return errors.Join(flushErr, encErr, fileErr)
}

// Save writes a whole trace to path.
func Save(path string, h Header, steps []walk.Step) error {
	w, err := Create(path)
	if err != nil {
		return err
	}
	if err := w.WriteHeader(h); err != nil {
		_ = w.Close()
		return fmt.Errorf("failed to write trace header: %w", err)
	}
	for _, s := range steps {
		if err := w.WriteStep(s); err != nil {
			_ = w.Close()
			return fmt.Errorf("failed to write trace step %d: %w", s.Index, err)
		}
	}
	return w.Close()
}

// Load reads a trace file written by Save.
func Load(path string) (*Trace, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	dec, err := zstd.NewReader(f)
	if err != nil {
		return nil, err
	}
	defer dec.Close()

	sc := bufio.NewScanner(dec)
	sc.Buffer(make([]byte, 64*1024), 8*1024*1024)

	var t *Trace
	line := 0
	for sc.Scan() {
		line++
		var probe struct {
			Type string `json:"type"`
		}
		if err := json.Unmarshal(sc.Bytes(), &probe); err != nil {
			return nil, fmt.Errorf("%s:%d: %w: %v", filepath.Base(path), line, ErrBadRecord, err)
		}

		switch probe.Type {
		case typeHeader:
			if t != nil {
				return nil, fmt.Errorf("%s:%d: %w: second header", filepath.Base(path), line, ErrBadRecord)
			}
			t = &Trace{}
			if err := json.Unmarshal(sc.Bytes(), &t.Header); err != nil {
				return nil, fmt.Errorf("%s:%d: %w: %v", filepath.Base(path), line, ErrBadRecord, err)
			}
		case typeStep:
			if t == nil {
				return nil, fmt.Errorf("%s: %w", filepath.Base(path), ErrMissingHeader)
			}
			var rec stepRecord
			if err := json.Unmarshal(sc.Bytes(), &rec); err != nil {
				return nil, fmt.Errorf("%s:%d: %w: %v", filepath.Base(path), line, ErrBadRecord, err)
			}
			t.Steps = append(t.Steps, rec.Step)
		default:
			return nil, fmt.Errorf("%s:%d: %w: type %q", filepath.Base(path), line, ErrBadRecord, probe.Type)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if t == nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), ErrMissingHeader)
	}
	return t, nil
}
