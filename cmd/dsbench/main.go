package main

import (
	"fmt"
	"os"

	"github.com/gravitational/trace"
	"github.com/sirupsen/logrus"
	"gopkg.in/alecthomas/kingpin.v2"
)

var log = logrus.WithField(trace.Component, "dsbench")

func main() {
	app := kingpin.New("dsbench", "Disjoint-set workload benchmark")
	if err := run(app, os.Args[1:]); err != nil {
		log.Debug(trace.DebugReport(err))
		fmt.Fprintln(os.Stderr, "ERROR:", trace.UserMessage(err))
		os.Exit(255)
	}
}
