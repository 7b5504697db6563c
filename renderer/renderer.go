// Package renderer renders portfolio reports to markdown.
package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"

	"github.com/stockempire/tracker"
)

//go:embed *.md
var templates embed.FS

// CommentaryTier is the minimum tier for the AI health-check section.
const CommentaryTier = tracker.VIP

// Options carry the viewer's tier and the pre-computed commentary text.
// The commentary is only rendered when the tier unlocks it.
type Options struct {
	Tier       tracker.Tier
	Commentary string
}

type reportView struct {
	tracker.Report
	Commentary string
}

// Markdown renders the report for a viewer at the given tier. The tier gate is
// consulted here, on every render; a locked section renders an obscured
// preview with an upgrade call to action instead of its content.
func Markdown(report tracker.Report, opts Options) string {
	// Declare template dependencies; the commentary partial is picked by the
	// gate's verdict.
	partials := map[string]string{
		"report_holdings": "report_holdings.md",
		"report_totals":   "report_totals.md",
	}
	if opts.Tier.Allows(CommentaryTier) {
		partials["report_commentary"] = "report_commentary.md"
	} else {
		partials["report_commentary"] = "report_commentary_locked.md"
	}
	return renderTemplate("report", "report.md", partials, reportView{Report: report, Commentary: opts.Commentary})
}

// renderTemplate is a generic utility to render a main template that depends
// on several partials.
func renderTemplate(templateName, mainFile string, partials map[string]string, data any) string {
	mainContent, err := fs.ReadFile(templates, mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}
	tmpl, err := template.New(templateName).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}
	for alias, file := range partials {
		content, err := fs.ReadFile(templates, file)
		if err != nil {
			return fmt.Sprintf("error reading partial template %q: %v", file, err)
		}
		if _, err := tmpl.New(alias).Parse(string(content)); err != nil {
			return fmt.Sprintf("error parsing partial template %q: %v", file, err)
		}
	}
	var sb strings.Builder
	if err := tmpl.Execute(&sb, data); err != nil {
		return fmt.Sprintf("error rendering %q: %v", templateName, err)
	}
	return sb.String()
}
