// Command mapgen writes a number-field map: every cell holds its row index,
// start on the middle row at the right edge, finish at the left edge
//
//	mapgen <path> <height> <width>
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/lixenwraith/cellui/mapfile"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

func run(args []string, stderr io.Writer) int {
	prog := filepath.Base(os.Args[0])
	if len(args) != 3 {
		fmt.Fprintf(stderr, "%s: invalid argument count: %d\nusage: %s <path> <height> <width>\n", prog, len(args), prog)
		return 2
	}

	h, err := strconv.Atoi(args[1])
	if err != nil || h <= 0 {
		fmt.Fprintf(stderr, "%s: invalid height: %s\n", prog, args[1])
		return 2
	}
	w, err := strconv.Atoi(args[2])
	if err != nil || w <= 1 {
		fmt.Fprintf(stderr, "%s: invalid width: %s\n", prog, args[2])
		return 2
	}

	m, err := mapfile.NumberField(h, w)
	if err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", prog, err)
		return 1
	}
	if err := mapfile.Save(args[0], m); err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", prog, err)
		return 1
	}
	return 0
}
