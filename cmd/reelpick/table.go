package main

import (
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// rankedRow is one entry in a ranked listing: a name and its metric.
type rankedRow struct {
	name   string
	metric string
}

// renderRanking renders the numbered listing shared by the genres and
// similar views: right-aligned rank, name, right-aligned metric.
func renderRanking(nameHeader, metricHeader string, rows []rankedRow) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"#", nameHeader, metricHeader})

	for i, row := range rows {
		tw.AppendRow(table.Row{strconv.Itoa(i + 1), row.name, row.metric})
	}

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 3, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})
	return tw.Render()
}
