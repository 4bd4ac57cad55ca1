package output

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/hamed0406/httpsaudit/internal/domain"
)

var (
	colorGreen  = color.New(color.FgGreen).SprintFunc()
	colorRed    = color.New(color.FgRed).SprintFunc()
	colorYellow = color.New(color.FgYellow).SprintFunc()
	colorCyan   = color.New(color.FgCyan).SprintFunc()
)

// PrintSummary writes the human-readable end-of-run summary.
func PrintSummary(w io.Writer, s domain.RunSummary) {
	fmt.Fprintf(w, "Total %d domains, elapsed %.2f seconds.\n", s.Total, s.Elapsed.Seconds())
	fmt.Fprintln(w, "Output files:")
	for _, a := range s.Artifacts {
		fmt.Fprintf(w, "- %s: %s\n", labelColor(a.Label)(a.Label), a.Path)
	}
}

func labelColor(label string) func(a ...interface{}) string {
	switch label {
	case string(domain.CategoryNormal):
		return colorGreen
	case ErrorsLabel:
		return colorYellow
	case string(domain.CategoryOther):
		return colorCyan
	}
	return colorRed
}
