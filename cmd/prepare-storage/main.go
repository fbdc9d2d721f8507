// Storage preparation utility: brings the database schema up to
// date, or with --reset drops and rebuilds it and flushes the
// cache.  Run it once before first serving, and after pulling a
// version that changes the schema.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/Groberts93/sudoku-solver/dbprep"
)

func main() {
	reset := flag.Bool("reset", false, "drop all stored solutions and rebuild the schema")
	flag.Parse()

	var err error
	if *reset {
		err = dbprep.ReinitializeAll()
	} else {
		err = dbprep.EnsureData()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Storage preparation failed: %v\n", err)
		os.Exit(1)
	}
}
