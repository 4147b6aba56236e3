package main

import (
	"io"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"

	"github.com/katalvlaran/disjointset/workload"
)

// renderResults prints one row per benchmark cell.
func renderResults(w io.Writer, results []workload.Result) error {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Scenario", "Form", "Strategy", "Ops", "Elapsed", "Ops/s", "Sets"})

	var data [][]string
	for _, r := range results {
		data = append(data, []string{
			r.Scenario,
			string(r.Form),
			r.Strategy.String(),
			humanize.Comma(int64(r.Ops)),
			r.Elapsed.String(),
			humanize.Comma(int64(r.OpsPerSecond())),
			strconv.Itoa(r.Sets),
		})
	}

	table.AppendBulk(data)
	table.Render()

	return nil
}
