// cubetrainer drills algorithm sets on a GoCube smart cube.
package main

import (
	"github.com/SeamusWaldron/cubetrainer/internal/cli"
)

func main() {
	cli.Execute()
}
