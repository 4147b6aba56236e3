package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/gravitational/trace"
	"github.com/pkg/profile"
	"github.com/sirupsen/logrus"
	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/katalvlaran/disjointset"
	"github.com/katalvlaran/disjointset/unionfind"
	"github.com/katalvlaran/disjointset/workload"
)

// run parses args and executes the selected command.
func run(app *kingpin.Application, args []string) error {
	g := RegisterCommands(app)
	cmd, err := g.Parse(args)
	if err != nil {
		return trace.Wrap(err)
	}
	initLogger(*g.Debug)

	switch cmd {
	case g.VersionCmd.FullCommand():
		return printVersion(os.Stdout, *g.VersionCmd.Require)
	case g.RunCmd.FullCommand():
		cfg, err := g.RunCmd.config()
		if err != nil {
			return trace.Wrap(err)
		}
		if *g.RunCmd.CPUProfile != "" {
			defer profile.Start(profile.CPUProfile, profile.ProfilePath(*g.RunCmd.CPUProfile), profile.Quiet).Stop()
		}
		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer cancel()
		return trace.Wrap(runBench(ctx, cfg, os.Stdout))
	}

	return trace.NotImplemented("unknown command %q", cmd)
}

func initLogger(debug bool) {
	logrus.SetOutput(os.Stderr)
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	logrus.SetLevel(logrus.WarnLevel)
	if debug {
		logrus.SetLevel(logrus.DebugLevel)
	}
}

// config turns parsed flags into a workload configuration.
func (c *RunCmd) config() (workload.Config, error) {
	cfg := workload.Config{
		Size: *c.Size,
		Ops:  *c.Ops,
		Seed: *c.Seed,
	}
	for _, name := range *c.Forms {
		f, err := workload.ParseForm(name)
		if err != nil {
			return cfg, trace.BadParameter(err.Error())
		}
		cfg.Forms = append(cfg.Forms, f)
	}
	for _, name := range *c.Strategies {
		s, err := unionfind.ParseStrategy(name)
		if err != nil {
			return cfg, trace.BadParameter(err.Error())
		}
		cfg.Strategies = append(cfg.Strategies, s)
	}
	for _, arg := range *c.Scenarios {
		sc, err := parseScenario(arg)
		if err != nil {
			return cfg, trace.Wrap(err)
		}
		cfg.Scenarios = append(cfg.Scenarios, sc)
	}
	if err := cfg.CheckAndSetDefaults(); err != nil {
		return cfg, trace.BadParameter(err.Error())
	}

	return cfg, nil
}

// parseScenario resolves a default scenario by name (case-insensitive) or builds one
// from a bare union ratio such as "0.25".
func parseScenario(arg string) (workload.Scenario, error) {
	for _, sc := range workload.DefaultScenarios() {
		if strings.EqualFold(sc.Name, arg) {
			return sc, nil
		}
	}
	ratio, err := strconv.ParseFloat(arg, 64)
	if err != nil || ratio < 0 || ratio > 1 {
		return workload.Scenario{}, trace.BadParameter(
			"scenario %q is neither a known name nor a union ratio in [0, 1]", arg)
	}

	return workload.Scenario{Name: fmt.Sprintf("Ratio %v", ratio), UnionRatio: ratio}, nil
}

// runBench sweeps the matrix and renders the results to w.
func runBench(ctx context.Context, cfg workload.Config, w io.Writer) error {
	runner, err := workload.NewRunner(cfg, log)
	if err != nil {
		return trace.BadParameter(err.Error())
	}
	eff := runner.Config()
	log.WithFields(logrus.Fields{
		"size":       eff.Size,
		"ops":        eff.Ops,
		"seed":       eff.Seed,
		"scenarios":  len(eff.Scenarios),
		"forms":      len(eff.Forms),
		"strategies": len(eff.Strategies),
	}).Info("Starting benchmark.")

	results, err := runner.Run(ctx)
	if err != nil {
		return trace.Wrap(err)
	}

	return trace.Wrap(renderResults(w, results))
}

// printVersion writes Version to w, failing if it does not satisfy required.
func printVersion(w io.Writer, required string) error {
	if required != "" {
		ok, err := disjointset.Compatible(required)
		if err != nil {
			return trace.BadParameter(err.Error())
		}
		if !ok {
			return trace.CompareFailed("disjointset %v is not compatible with %v", disjointset.Version, required)
		}
	}
	_, err := fmt.Fprintln(w, disjointset.Version)

	return trace.Wrap(err)
}
