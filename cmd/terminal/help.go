package main

import (
	"github.com/charmbracelet/glamour"
)

const helpMarkdown = `# Jenkins Relay console

Type a sentence and press **Enter** to extract the build parameters and
trigger the matching Jenkins job, exactly as a Slack mention would.

| command | effect |
|---|---|
| ` + "`<sentence>`" + ` | extract parameters and trigger the job |
| ` + "`/parse <sentence>`" + ` | dry run, show the job that would be triggered |
| ` + "`/help`" + ` | show this help |
| ` + "`/clear`" + ` | clear the screen |
| ` + "`/quit`" + ` | leave the console |

Example: ` + "`run Smoke API tests for Checkout on staging`" + ` triggers
` + "`Checkout_API_Smoke_staging`" + `.
`

// renderHelp renders the help text for the given width. The raw markdown is
// returned if rendering fails.
func renderHelp(width int) string {
	if width <= 0 {
		width = 80
	}
	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return helpMarkdown
	}
	out, err := renderer.Render(helpMarkdown)
	if err != nil {
		return helpMarkdown
	}
	return out
}
