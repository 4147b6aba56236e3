package main

import (
	"gopkg.in/alecthomas/kingpin.v2"
)

// Application holds the flags, arguments and subcommands of dsbench.
type Application struct {
	*kingpin.Application
	// Debug enables debug logging
	Debug *bool
	// RunCmd sweeps the benchmark matrix
	RunCmd RunCmd
	// VersionCmd prints the library version
	VersionCmd VersionCmd
}

// RunCmd benchmarks scenarios × forms × strategies.
type RunCmd struct {
	*kingpin.CmdClause
	// Size is the number of distinct elements
	Size *int
	// Ops is the number of operations per scenario
	Ops *int
	// Seed seeds the workload generator
	Seed *int64
	// Forms lists the set forms to benchmark
	Forms *[]string
	// Strategies lists the compression strategies to benchmark
	Strategies *[]string
	// Scenarios lists scenario names or union ratios
	Scenarios *[]string
	// CPUProfile is a directory to write a CPU profile to
	CPUProfile *string
}

// VersionCmd prints the library version.
type VersionCmd struct {
	*kingpin.CmdClause
	// Require checks compatibility with the given version
	Require *string
}

// RegisterCommands declares every flag and subcommand on app.
func RegisterCommands(app *kingpin.Application) *Application {
	g := &Application{Application: app}
	g.Debug = app.Flag("debug", "Enable debug logging").Envar("DSBENCH_DEBUG").Bool()

	g.RunCmd.CmdClause = app.Command("run", "Run the benchmark matrix and print a table of results").Default()
	g.RunCmd.Size = g.RunCmd.Flag("size", "Number of distinct elements").Default("10000").Envar("DSBENCH_SIZE").Int()
	g.RunCmd.Ops = g.RunCmd.Flag("ops", "Operations per scenario").Default("100000").Envar("DSBENCH_OPS").Int()
	g.RunCmd.Seed = g.RunCmd.Flag("seed", "Workload random seed").Default("1").Envar("DSBENCH_SEED").Int64()
	g.RunCmd.Forms = g.RunCmd.Flag("form", "Set form to benchmark, repeatable").Enums("static", "dynamic")
	g.RunCmd.Strategies = g.RunCmd.Flag("strategy", "Compression strategy to benchmark, repeatable").Enums("full", "halving", "splitting")
	g.RunCmd.Scenarios = g.RunCmd.Flag("scenario", `Scenario name (e.g. "Mixed") or union ratio in [0,1], repeatable`).Strings()
	g.RunCmd.CPUProfile = g.RunCmd.Flag("cpuprofile", "Write a CPU profile to this directory").Envar("DSBENCH_CPUPROFILE").String()

	g.VersionCmd.CmdClause = app.Command("version", "Print the library version")
	g.VersionCmd.Require = g.VersionCmd.Flag("require", "Fail unless the library is compatible with this version").String()

	return g
}
