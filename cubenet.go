// Package cubenet walks paths over maps drawn as the unfolded net of a cube.
//
// # Features
//
//   - Parsing of the map and path notation (digits, L and R)
//   - Flat walks that wrap around to the far end of a row or column
//   - Cube walks that fold the net and carry the walker across face edges
//   - Optional per-instruction trace
//
// # Quick Start
//
//	f, err := os.Open("input.txt")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer f.Close()
//
//	g, path, err := cubenet.Parse(f)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	flat, _ := cubenet.SimulateFlat(g, path)
//	folded, err := cubenet.SimulateCube(g, path)
//	if err != nil {
//	    log.Fatal(err) // the map is not a cube net
//	}
//	fmt.Println(flat, folded)
//
// # Input Format
//
// Map lines use ' ' for cells off the net, '.' for open cells and '#' for
// walls. A blank line separates the map from a single path line such as
// "10R5L5R10L4R5L5".
//
// # Password
//
// Both simulations return 1000*(row+1) + 4*(col+1) + facing, with rows and
// columns counted from zero and facing East=0, South=1, West=2, North=3.
package cubenet
