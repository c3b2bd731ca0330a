package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/bradleyombachi/cpusched/scheduler"
	"github.com/bradleyombachi/cpusched/taskfile"
)

var ErrInvalidArgs = errors.New("invalid args")

func main() {
	if err := run(os.Stdout, os.Args[1:]); err != nil {
		log.Fatal(err)
	}
}

func run(w io.Writer, args []string) error {
	fs := flag.NewFlagSet("cpusched", flag.ContinueOnError)
	algorithm := fs.String("algorithm", "", "algorithm to run (default: all of them)")
	quantum := fs.Int("quantum", 2, "Round-Robin time quantum")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidArgs, err)
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("%w: must give a scheduling file to process", ErrInvalidArgs)
	}

	tasks, err := taskfile.Open(fs.Arg(0))
	if err != nil {
		return err
	}

	if *algorithm == "" {
		return AllSchedules(w, tasks, *quantum)
	}
	s, err := scheduler.NewStrategy(*algorithm, *quantum)
	if err != nil {
		return err
	}
	return outputRequest(w, s.Name(), scheduler.Request{Algorithm: *algorithm, Tasks: tasks, Quantum: *quantum})
}
