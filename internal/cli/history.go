package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubenet/internal/storage"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recorded runs",
	Long: `List recorded runs, newest first. Use --run to show one run with the faces it
folded, or --delete to remove a run together with its faces and trace file.`,
	RunE: runHistory,
}

var (
	historyLimit  int
	historyRun    string
	historyDelete string
)

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "Maximum number of runs to list")
	historyCmd.Flags().StringVar(&historyRun, "run", "", "Show details for one run ID")
	historyCmd.Flags().StringVar(&historyDelete, "delete", "", "Delete one run ID")
}

func runHistory(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	runs := storage.NewRunRepository(db)

	if historyDelete != "" {
		if err := deleteRun(runs, historyDelete); err != nil {
			return err
		}
		fmt.Printf("Deleted run %s\n", shortID(historyDelete))
		return nil
	}

	if historyRun != "" {
		return showRun(db, runs, historyRun)
	}

	list, err := runs.List(historyLimit)
	if err != nil {
		return err
	}
	if len(list) == 0 {
		fmt.Println("No runs recorded. Walk a map first with: cubenet run <input>")
		return nil
	}

	fmt.Printf("%-8s  %-20s  %-4s  %8s  %s\n", "RUN", "STARTED", "MODE", "SCORE", "INPUT")
	for _, r := range list {
		fmt.Printf("%-8s  %-20s  %-4s  %s  %s\n",
			shortID(r.RunID),
			r.StartedAt.Local().Format("2006-01-02 15:04:05"),
			r.Mode,
			scoreStyle.Render(fmt.Sprintf("%8d", r.Score)),
			filepath.Base(r.InputPath))
	}
	return nil
}

// deleteRun removes a run, its faces and its trace file.
func deleteRun(runs *storage.RunRepository, runID string) error {
	run, err := runs.Get(runID)
	if err != nil {
		return err
	}
	if run == nil {
		return fmt.Errorf("run not found: %s", runID)
	}
	if err := runs.Delete(runID); err != nil {
		return err
	}
	if run.TracePath != nil {
		if err := os.Remove(*run.TracePath); err != nil && !errors.Is(err, os.ErrNotExist) {
			log.WithError(err).WithField("path", *run.TracePath).Warn("failed to remove trace")
		}
	}
	return nil
}

func showRun(db *storage.DB, runs *storage.RunRepository, runID string) error {
	run, err := runs.Get(runID)
	if err != nil {
		return err
	}
	if run == nil {
		return fmt.Errorf("run not found: %s", runID)
	}

	fmt.Println(titleStyle.Render("Run " + run.RunID))
	fmt.Printf("Started:      %s\n", run.StartedAt.Local().Format(time.RFC3339))
	fmt.Printf("Input:        %s\n", run.InputPath)
	fmt.Printf("Digest:       %s\n", run.InputDigest)
	fmt.Printf("Mode:         %s\n", run.Mode)
	fmt.Printf("Instructions: %d\n", run.InstructionCount)
	fmt.Printf("Score:        %s\n", scoreStyle.Render(strconv.Itoa(run.Score)))
	if run.TracePath != nil {
		fmt.Printf("Trace:        %s\n", *run.TracePath)
	}

	same, err := runs.ListByDigest(run.InputDigest)
	if err == nil && len(same) > 1 {
		fmt.Printf("Other runs over this input: %d\n", len(same)-1)
	}

	if run.CubeSize == nil {
		return nil
	}

	faces, err := storage.NewFaceRepository(db).GetByRun(run.RunID)
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Printf("Faces (size %d):\n", *run.CubeSize)
	for _, f := range faces {
		fmt.Printf("  %-8s (%d,%d) %s\n", f.Side, f.OriginRow, f.OriginCol, f.Rotation)
	}
	return nil
}
