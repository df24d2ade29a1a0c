package cli

import (
	"fmt"
	"path/filepath"
	"strconv"
	"time"

	"github.com/atotto/clipboard"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubenet"
	"github.com/SeamusWaldron/cubenet/internal/cube"
	"github.com/SeamusWaldron/cubenet/internal/storage"
	"github.com/SeamusWaldron/cubenet/internal/tracelog"
)

var runCmd = &cobra.Command{
	Use:   "run <input>",
	Short: "Walk the path and print the password",
	Long: `Walk the path in an input file and print the final password.

In flat mode the walker wraps to the far end of the current row or column.
In cube mode the map is folded into a cube and the walker crosses its edges.

Examples:
  cubenet run input.txt
  cubenet run input.txt --mode cube --trace
  cubenet run input.txt --copy --no-save`,
	Args: cobra.ExactArgs(1),
	RunE: runRun,
}

var (
	runMode   string
	runTrace  bool
	runCopy   bool
	runNoSave bool
)

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().StringVarP(&runMode, "mode", "m", "", "Wrap mode: flat, cube or both (default from config)")
	runCmd.Flags().BoolVarP(&runTrace, "trace", "t", false, "Write a step trace for replay")
	runCmd.Flags().BoolVar(&runCopy, "copy", false, "Copy the last password to the clipboard")
	runCmd.Flags().BoolVar(&runNoSave, "no-save", false, "Do not record the run in the database")
}

// outcome is one finished walk.
type outcome struct {
	mode   string
	net    *cube.Net
	result cubenet.Result
}

func runRun(cmd *cobra.Command, args []string) error {
	in, err := loadInput(args[0])
	if err != nil {
		return err
	}

	mode := runMode
	if mode == "" {
		mode = cfg.Mode
	}
	modes, err := modesFor(mode)
	if err != nil {
		return err
	}

	log.WithFields(logrus.Fields{
		"input":        in.path,
		"rows":         in.grid.Height(),
		"cols":         in.grid.Width(),
		"instructions": len(in.instructions),
	}).Debug("input parsed")

	var outcomes []outcome
	for _, m := range modes {
		o, err := walkMode(in, m)
		if err != nil {
			return fmt.Errorf("%s mode: %w", m, err)
		}
		outcomes = append(outcomes, o)
	}

	fmt.Println(titleStyle.Render("cubenet " + filepath.Base(in.path)))
	fmt.Println(statusStyle.Render(in.summary()))
	for _, o := range outcomes {
		fmt.Printf("%-5s %s  %s\n", o.mode,
			scoreStyle.Render(strconv.Itoa(o.result.Score)),
			statusStyle.Render("at "+o.result.Final.String()))
	}

	if !runNoSave && cfg.SaveRuns {
		if err := saveRuns(in, outcomes); err != nil {
			log.WithError(err).Warn("failed to record run")
		}
	} else if runTrace {
		for _, o := range outcomes {
			name := time.Now().UTC().Format("20060102T150405")
			if _, err := writeTrace(name, in, o); err != nil {
				log.WithError(err).Warn("failed to write trace")
			}
		}
	}

	if runCopy {
		last := outcomes[len(outcomes)-1]
		if err := clipboard.WriteAll(strconv.Itoa(last.result.Score)); err != nil {
			log.WithError(err).Warn("failed to copy password to clipboard")
		} else {
			fmt.Println(helpStyle.Render("Copied " + last.mode + " password to clipboard"))
		}
	}

	return nil
}

func walkMode(in *input, mode string) (outcome, error) {
	o := outcome{mode: mode}
	if mode == "cube" {
		net, err := cubenet.Fold(in.grid)
		if err != nil {
			return o, err
		}
		o.net = net
		for _, f := range net.Faces() {
			log.WithFields(logrus.Fields{
				"side":     f.Side,
				"origin":   fmt.Sprintf("(%d,%d)", f.Row, f.Col),
				"rotation": f.Rotation,
			}).Debug("face resolved")
		}
	}

	res, err := cubenet.Walk(in.grid, in.instructions, o.net, cubenet.WithTrace(runTrace))
	if err != nil {
		return o, err
	}
	o.result = res
	return o, nil
}

func saveRuns(in *input, outcomes []outcome) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	runs := storage.NewRunRepository(db)
	faces := storage.NewFaceRepository(db)

	for _, o := range outcomes {
		run := storage.Run{
			StartedAt:        time.Now(),
			InputPath:        in.path,
			InputDigest:      in.digest,
			Mode:             o.mode,
			Score:            o.result.Score,
			InstructionCount: len(in.instructions),
		}
		if o.net != nil {
			size := o.net.Size()
			run.CubeSize = &size
		}

		runID, err := runs.Create(run)
		if err != nil {
			return err
		}
		log.WithFields(logrus.Fields{"run": runID, "mode": o.mode}).Debug("run recorded")

		if o.net != nil {
			if err := faces.CreateAll(faceRecords(runID, o.net)); err != nil {
				return err
			}
		}

		if runTrace {
			path, err := writeTrace(runID, in, o)
			if err != nil {
				log.WithError(err).Warn("failed to write trace")
				continue
			}
			if err := runs.SetTracePath(runID, path); err != nil {
				return err
			}
		}
	}
	return nil
}

func faceRecords(runID string, net *cube.Net) []storage.FaceRecord {
	faces := net.Faces()
	records := make([]storage.FaceRecord, 0, len(faces))
	for _, f := range faces {
		records = append(records, storage.FaceRecord{
			RunID:     runID,
			Side:      f.Side.String(),
			OriginRow: f.Row,
			OriginCol: f.Col,
			Rotation:  f.Rotation.String(),
		})
	}
	return records
}

func writeTrace(runID string, in *input, o outcome) (string, error) {
	dir := cfg.TraceDir
	if dir == "" {
		d, err := tracelog.DefaultDir()
		if err != nil {
			return "", err
		}
		dir = d
	}

	path := filepath.Join(dir, tracelog.FileName(runID, o.mode))
	h := tracelog.Header{
		RunID:     runID,
		Mode:      o.mode,
		InputPath: in.path,
		Score:     o.result.Score,
	}
	if err := tracelog.Save(path, h, o.result.Trace); err != nil {
		return "", err
	}
	log.WithField("path", path).Info("trace written")
	return path, nil
}
