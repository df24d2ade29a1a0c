package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubenet/internal/storage"
	"github.com/SeamusWaldron/cubenet/internal/tracelog"
	"github.com/SeamusWaldron/cubenet/internal/walk"
)

var replayCmd = &cobra.Command{
	Use:   "replay [trace-file | run-id]",
	Short: "Step through a recorded walk",
	Long: `Replay a walk recorded with 'cubenet run --trace'.

If no argument is given, lists available trace files. The argument may be a
trace file path, a file name in the trace directory or a run ID.

Usage:
  cubenet replay                       # List available traces
  cubenet replay <trace-file>          # Replay a trace
  cubenet replay <run-id> --step       # Step through a recorded run`,
	Args: cobra.MaximumNArgs(1),
	RunE: runReplay,
}

var (
	replaySpeed float64
	replayStep  bool
)

func init() {
	rootCmd.AddCommand(replayCmd)
	replayCmd.Flags().Float64VarP(&replaySpeed, "speed", "s", 1.0, "Playback speed multiplier")
	replayCmd.Flags().BoolVarP(&replayStep, "step", "t", false, "Step through instructions manually")
}

func runReplay(cmd *cobra.Command, args []string) error {
	traceDir := cfg.TraceDir
	if traceDir == "" {
		d, err := tracelog.DefaultDir()
		if err != nil {
			return err
		}
		traceDir = d
	}

	if len(args) == 0 {
		return listTraces(traceDir)
	}

	path, err := resolveTrace(traceDir, args[0])
	if err != nil {
		return err
	}

	trace, err := tracelog.Load(path)
	if err != nil {
		return fmt.Errorf("failed to load trace: %w", err)
	}
	log.WithField("path", path).Debug("trace loaded")

	model := newReplayModel(trace, replaySpeed, replayStep)
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("replay error: %w", err)
	}
	return nil
}

// resolveTrace finds a trace by path, by name in dir, or by run ID.
func resolveTrace(dir, arg string) (string, error) {
	if _, err := os.Stat(arg); err == nil {
		return arg, nil
	}
	if p := filepath.Join(dir, arg); !filepath.IsAbs(arg) {
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}

	db, err := openDB()
	if err != nil {
		return "", err
	}
	defer db.Close()

	run, err := storage.NewRunRepository(db).Get(arg)
	if err != nil {
		return "", err
	}
	if run == nil {
		return "", fmt.Errorf("no trace file or run named %s", arg)
	}
	if run.TracePath == nil {
		return "", fmt.Errorf("run %s was recorded without --trace", shortID(run.RunID))
	}
	return *run.TracePath, nil
}

func listTraces(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			fmt.Println("No trace files found. Record one with: cubenet run --trace <input>")
			return nil
		}
		return err
	}

	var traces []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".jsonl.zst") {
			traces = append(traces, e.Name())
		}
	}
	if len(traces) == 0 {
		fmt.Println("No trace files found. Record one with: cubenet run --trace <input>")
		return nil
	}

	sort.Strings(traces)

	fmt.Println("Available traces:")
	fmt.Println()
	for _, t := range traces {
		fmt.Printf("  %s\n", t)
	}
	fmt.Println()
	fmt.Println("Usage: cubenet replay <filename>")
	return nil
}

// replayInterval is the delay between instructions at 1x speed.
const replayInterval = 200 * time.Millisecond

// Replay model
type replayModel struct {
	trace    *tracelog.Trace
	index    int // number of steps applied
	speed    float64
	stepMode bool
	paused   bool
	quitting bool
	gen      int // bumped on pause and reset; older ticks are dropped
}

func newReplayModel(trace *tracelog.Trace, speed float64, stepMode bool) *replayModel {
	if speed <= 0 {
		speed = 1
	}
	return &replayModel{
		trace:    trace,
		speed:    speed,
		stepMode: stepMode,
		paused:   stepMode,
	}
}

type replayTickMsg struct{ gen int }

func (m *replayModel) Init() tea.Cmd {
	if m.paused {
		return nil
	}
	return m.tick()
}

func (m *replayModel) tick() tea.Cmd {
	if m.done() {
		return nil
	}
	delay := time.Duration(float64(replayInterval) / m.speed)
	gen := m.gen
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return replayTickMsg{gen: gen}
	})
}

func (m *replayModel) pause() {
	m.paused = true
	m.gen++
}

func (m *replayModel) done() bool {
	return m.index >= len(m.trace.Steps)
}

func (m *replayModel) advance() {
	if !m.done() {
		m.index++
	}
}

func (m *replayModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit

		case " ", "n":
			if m.paused {
				m.advance()
			} else {
				m.pause()
			}

		case "b":
			if m.paused && m.index > 0 {
				m.index--
			}

		case "p":
			if m.stepMode {
				break
			}
			if !m.paused {
				m.pause()
				break
			}
			m.paused = false
			return m, m.tick()

		case "r":
			m.index = 0
			m.gen++
			if !m.paused {
				return m, m.tick()
			}

		case "+", "=":
			m.speed *= 2
			if m.speed > 16 {
				m.speed = 16
			}

		case "-":
			m.speed /= 2
			if m.speed < 0.25 {
				m.speed = 0.25
			}
		}

	case replayTickMsg:
		if !m.paused && msg.gen == m.gen {
			m.advance()
			return m, m.tick()
		}
	}

	return m, nil
}

// current returns the last applied step, or false before the first.
func (m *replayModel) current() (walk.Step, bool) {
	if m.index == 0 {
		return walk.Step{}, false
	}
	return m.trace.Steps[m.index-1], true
}

func (m *replayModel) View() string {
	if m.quitting {
		return "Replay ended.\n"
	}

	var b strings.Builder
	h := m.trace.Header

	b.WriteString(titleStyle.Render(fmt.Sprintf("cubenet replay (%s mode)", h.Mode)))
	b.WriteString("\n\n")

	progress := fmt.Sprintf("Instruction %d/%d", m.index, len(m.trace.Steps))
	if m.paused {
		progress += " [PAUSED]"
	}
	if m.stepMode {
		progress += " [STEP MODE]"
	}
	b.WriteString(statusStyle.Render(progress))
	b.WriteString(fmt.Sprintf(" (%.2gx speed)\n\n", m.speed))

	if s, ok := m.current(); ok {
		b.WriteString(fmt.Sprintf("Last:     %s\n", moveStyle.Render(s.Instruction)))
		b.WriteString(fmt.Sprintf("Position: row %d, col %d facing %s\n", s.Row+1, s.Col+1, s.Facing))
		if s.Face != "" {
			b.WriteString(fmt.Sprintf("Face:     %s\n", s.Face))
		}
		if s.Wraps > 0 {
			b.WriteString(fmt.Sprintf("Wrapped:  %d\n", s.Wraps))
		}
		if s.Blocked {
			b.WriteString(errorStyle.Render("Blocked by a wall"))
			b.WriteString("\n")
		}
	} else {
		b.WriteString("Position: start\n")
	}
	b.WriteString("\n")

	if m.index > 0 {
		start := 0
		b.WriteString("Path: ")
		if m.index > 20 {
			start = m.index - 20
			b.WriteString("... ")
		}
		var notations []string
		for _, s := range m.trace.Steps[start:m.index] {
			notations = append(notations, s.Instruction)
		}
		b.WriteString(moveStyle.Render(strings.Join(notations, " ")))
		b.WriteString("\n")
	}

	if m.done() {
		b.WriteString("\n")
		b.WriteString(scoreStyle.Render(fmt.Sprintf("Password: %d", h.Score)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	help := "SPACE/n=next  b=back  p=pause  r=reset  +/-=speed  q=quit"
	if m.stepMode {
		help = "SPACE/n=next  b=back  r=reset  q=quit"
	}
	b.WriteString(helpStyle.Render(help))
	b.WriteString("\n")

	return b.String()
}
