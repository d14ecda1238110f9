package main

import (
	"os"

	"github.com/op/go-logging"
)

var log = logging.MustGetLogger("mergesort")

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		os.Exit(1)
	}
}
