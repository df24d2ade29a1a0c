package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubenet"
)

var facesCmd = &cobra.Command{
	Use:   "faces <input>",
	Short: "Show how the map folds into a cube",
	Long: `Resolve the cube net drawn by an input map and print which side of the
cube each face becomes, where it sits on the map and how it is rotated.`,
	Args: cobra.ExactArgs(1),
	RunE: runFaces,
}

func init() {
	rootCmd.AddCommand(facesCmd)
}

func runFaces(cmd *cobra.Command, args []string) error {
	in, err := loadInput(args[0])
	if err != nil {
		return err
	}

	net, err := cubenet.Fold(in.grid)
	if err != nil {
		return err
	}

	fmt.Println(titleStyle.Render(fmt.Sprintf("Cube net (face size %d)", net.Size())))
	fmt.Println()
	for _, line := range strings.Split(strings.TrimRight(net.Mask().String(), "\n"), "\n") {
		fmt.Println("  " + moveStyle.Render(line))
	}
	fmt.Println()

	fmt.Printf("%-8s %-10s %s\n", "SIDE", "ORIGIN", "ROTATION")
	for _, f := range net.Faces() {
		fmt.Printf("%-8s %-10s %s\n", f.Side, fmt.Sprintf("(%d,%d)", f.Row, f.Col), f.Rotation)
	}
	return nil
}
