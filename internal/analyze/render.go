package analyze

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/dtnitsch/qa-stats/pkg/stats"
	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
)

// writeJSON renders the report as indented JSON to the given path, or to
// stdout when the path is empty.
func writeJSON(report *stats.Report, outputPath string) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}

	if outputPath == "" {
		fmt.Println(string(data))
		return nil
	}

	if err := os.WriteFile(outputPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write report to %s: %w", outputPath, err)
	}
	return nil
}

// renderTable prints a human-readable summary: per-site totals plus the two
// global chatty rankings. Sites are listed alphabetically; the full per-tag
// breakdown stays in the JSON output.
func renderTable(w io.Writer, report *stats.Report) {
	names := make([]string, 0, len(report.Sites))
	for name := range report.Sites {
		names = append(names, name)
	}
	sort.Strings(names)

	tbl := table.NewWriter()
	tbl.SetOutputMirror(w)
	tbl.SetStyle(table.StyleLight)
	tbl.AppendHeader(table.Row{"Site", "Questions", "Words", "Words/Question"})
	for _, name := range names {
		site := report.Sites[name]
		tbl.AppendRow(table.Row{
			name,
			humanize.Comma(int64(site.Questions)),
			humanize.Comma(int64(site.Words)),
			fmt.Sprintf("%.2f", site.Ratio()),
		})
	}
	tbl.AppendFooter(table.Row{fmt.Sprintf("Total: %d sites", len(names))})
	tbl.Render()

	rankings := table.NewWriter()
	rankings.SetOutputMirror(w)
	rankings.SetStyle(table.StyleLight)
	rankings.AppendHeader(table.Row{"#", "Chatty Sites", "Chatty Tags"})
	chattySites := report.Totals["chatty_sites"]
	chattyTags := report.Totals["chatty_tags"]
	rows := len(chattySites)
	if len(chattyTags) > rows {
		rows = len(chattyTags)
	}
	for i := 0; i < rows; i++ {
		var site, tag string
		if i < len(chattySites) {
			site = chattySites[i]
		}
		if i < len(chattyTags) {
			tag = chattyTags[i]
		}
		rankings.AppendRow(table.Row{i + 1, site, tag})
	}
	rankings.Render()
}
