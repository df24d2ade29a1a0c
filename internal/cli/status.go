package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubenet/internal/storage"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show configuration and run history summary",
	Long:  `Display the active configuration, the database location and a summary of recorded runs.`,
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	fmt.Println("cubenet Status")
	fmt.Println("==============")
	fmt.Println()

	fmt.Printf("Mode:       %s\n", cfg.Mode)
	fmt.Printf("Save runs:  %t\n", cfg.SaveRuns)
	fmt.Printf("Trace dir:  %s\n", cfg.TraceDir)

	db, err := openDB()
	if err != nil {
		fmt.Println(errorStyle.Render(fmt.Sprintf("Database unavailable: %v", err)))
		return nil
	}
	defer db.Close()

	fmt.Printf("Database:   %s\n", db.Path())

	if v, err := db.CurrentVersion(); err == nil {
		fmt.Printf("Schema:     v%d\n", v)
	}

	runs := storage.NewRunRepository(db)
	count, err := runs.Count()
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Printf("Total runs: %d\n", count)

	last, err := runs.GetLast()
	if err != nil {
		return err
	}
	if last != nil {
		fmt.Printf("Last run:   %s (%s, %s mode, score %d)\n",
			shortID(last.RunID), last.StartedAt.Local().Format(time.RFC3339), last.Mode, last.Score)
	}
	return nil
}
