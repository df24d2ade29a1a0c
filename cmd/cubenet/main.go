// cubenet - walk a path over a monkey map, flat or folded into a cube.
package main

import (
	"github.com/SeamusWaldron/cubenet/internal/cli"
)

func main() {
	cli.Execute()
}
