package internal

import (
	"github.com/jedib0t/go-pretty/v6/table"
)

// Stats summarises the shape of a program for the -stats output.
type Stats struct {
	Counts         map[StatementType]int
	Total          int
	MaxDepth       int
	RawInsertBytes int
}

func CollectStats(program Program) Stats {
	stats := Stats{Counts: map[StatementType]int{}}
	stats.collect(program, 0)
	return stats
}

func (stats *Stats) collect(program Program, depth int) {
	if depth > stats.MaxDepth {
		stats.MaxDepth = depth
	}
	for _, stm := range program {
		stats.Counts[stm.Type()]++
		stats.Total++
		switch s := stm.(type) {
		case Loop:
			stats.collect(s.Body, depth+1)
		case RawInsert:
			stats.RawInsertBytes += len(s.Text)
		}
	}
}

// Render draws the statistics as a table, one row per statement type.
func (stats Stats) Render() string {
	t := table.NewWriter()
	t.SetTitle("Program statistics")
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Statement", "Count"})
	for tp := PointerMoveStatementTP; tp <= RawInsertStatementTP; tp++ {
		t.AppendRow(table.Row{tp.String(), stats.Counts[tp]})
	}
	t.AppendSeparator()
	t.AppendRow(table.Row{"max loop depth", stats.MaxDepth})
	t.AppendRow(table.Row{"raw insert bytes", stats.RawInsertBytes})
	t.AppendFooter(table.Row{"total", stats.Total})
	return t.Render()
}
