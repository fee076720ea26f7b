// Package renderer turns watchlist state into markdown reports for the
// terminal.
package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"
	"time"

	"github.com/etnz/watchlist"
)

//go:embed templates/*.md
var templates embed.FS

// Report is the data rendered by the watchlist report template.
type Report struct {
	Title    string
	Subtitle string
	Active   []Row
	Done     []Row
}

// Row is one tracker line in the report.
type Row struct {
	Symbol   string
	Name     string
	Current  string // formatted money, or "-" when no price is known
	Start    string
	Target   string
	Bar      string
	Progress string // formatted percentage, or "-" when no price is known
	Updated  string
	Source   string
	Err      string
}

// WatchlistMarkdown renders the full watchlist report: the active group in
// the given presentation order, then the completed group.
func WatchlistMarkdown(list *watchlist.Watchlist, title, subtitle string, mode watchlist.SortMode) string {
	if title == "" {
		title = "Watchlist"
	}
	report := &Report{Title: title, Subtitle: subtitle}
	for _, t := range list.Sorted(mode) {
		row := newRow(t)
		if t.Completed {
			report.Done = append(report.Done, row)
		} else {
			report.Active = append(report.Active, row)
		}
	}
	return renderTemplate("watchlist", "watchlist.md", map[string]string{
		"watchlist_group": "watchlist_group.md",
	}, report)
}

func newRow(t *watchlist.Tracker) Row {
	row := Row{
		Symbol:   t.Symbol,
		Name:     t.CompanyName,
		Current:  "-",
		Start:    formatMoney(t.StartPrice, t.Currency),
		Target:   formatMoney(t.TargetPrice, t.Currency),
		Progress: "-",
		Updated:  "never",
		Err:      t.Err,
	}
	if row.Name == "" {
		row.Name = t.Symbol
	}
	if t.CurrentPrice.Valid {
		row.Current = formatMoney(t.CurrentPrice.Decimal, t.Currency)
	}
	if p, ok := t.Progress(); ok {
		row.Progress = p.String()
		row.Bar = p.Bar(10)
	} else {
		row.Bar = watchlist.Percent(0).Bar(10)
	}
	if !t.LastUpdated.IsZero() {
		row.Updated = t.LastUpdated.Local().Format(time.DateTime)
	}
	if t.SourceURL != "" {
		title := t.SourceTitle
		if title == "" {
			title = t.SourceURL
		}
		row.Source = fmt.Sprintf("[%s](%s)", title, t.SourceURL)
	}
	return row
}

// renderTemplate renders a main template that depends on several partials.
func renderTemplate(templateName, mainFile string, partials map[string]string, data any) string {
	mainContent, err := fs.ReadFile(templates, "templates/"+mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		content, err := fs.ReadFile(templates, "templates/"+file)
		if err != nil {
			return fmt.Sprintf("error reading partial template %q: %v", file, err)
		}
		if _, err := tmpl.New(name).Parse(string(content)); err != nil {
			return fmt.Sprintf("error parsing partial template %q for %q: %v", file, name, err)
		}
	}

	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, templateName, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}
