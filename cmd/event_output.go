package cmd

import (
	"fmt"

	"github.com/olimci/mlseed/pkg/events"
	"github.com/olimci/mlseed/pkg/scaffold"
)

// formatSummary describes a finished pass. It returns nothing when the pass
// never started.
func formatSummary(result *scaffold.Result, summary events.Summary) []string {
	if result == nil {
		return nil
	}

	lines := []string{
		fmt.Sprintf(
			"Done! Wrote %d files (%d populated, %d created empty), %d left untouched, %d new directories.",
			result.Written(),
			len(result.FilesPopulated),
			len(result.FilesCreated),
			len(result.FilesSkipped),
			len(result.DirsCreated),
		),
	}

	return append(lines, summary.FailureLines()...)
}
