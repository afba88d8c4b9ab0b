// Command tsumego generates life-and-death puzzles and re-solves a
// directory of previously generated ones.
package main

import (
	"fmt"
	"log"
	"os"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "generate":
		err = runGenerate(os.Args[2:])
	case "solve":
		err = runSolve(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
	if err != nil {
		log.Fatal(err)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: tsumego <generate|solve> [flags]")
	fmt.Fprintln(os.Stderr, "  generate  generate puzzles and write them as SGF files")
	fmt.Fprintln(os.Stderr, "  solve     re-solve a directory of puzzle SGF files")
}
