package usda

import (
	"fmt"
	"strings"
	"time"

	"nutrition-tracker/domain"
)

func FormatSummary(summary domain.ImportSummary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "USDA import %s\n", summary.RunID)
	fmt.Fprintf(&b, "Requested: %d  Fetched: %d  Failed: %d\n", summary.Requested, summary.Fetched, len(summary.Failed))
	fmt.Fprintf(&b, "Created: %d  Updated: %d  Unchanged: %d\n", len(summary.Created), len(summary.Updated), summary.Unchanged)
	fmt.Fprintf(&b, "Duration: %s\n", summary.Duration.Round(time.Millisecond))

	section := func(title string, names []string) {
		if len(names) == 0 {
			return
		}
		fmt.Fprintf(&b, "\n%s:\n", title)
		for _, name := range names {
			fmt.Fprintf(&b, "  - %s\n", name)
		}
	}
	section("Created", summary.Created)
	section("Updated", summary.Updated)
	section("Failed", summary.Failed)

	return b.String()
}
