package report

import (
	"fmt"
	"strconv"
	"strings"

	"campaignetl/internal/pipeline"
)

const shortHashLen = 12

// Summary renders a finished run: totals first, then one line per output file.
func Summary(res *pipeline.Result) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Run ID:   %s\n", res.RunID)
	fmt.Fprintf(&sb, "Input:    %s (%d archives, %d rows)\n", res.InputDir, res.Archives, res.RawRows)
	fmt.Fprintf(&sb, "Output:   %s\n", res.OutputDir)
	fmt.Fprintf(&sb, "Duration: %v\n\n", res.Duration)

	rows := make([][]string, 0, len(res.Files))
	for _, f := range res.Files {
		hash := f.SHA256
		if len(hash) > shortHashLen {
			hash = hash[:shortHashLen]
		}

		rows = append(rows, []string{f.Name, strconv.Itoa(f.Rows), strconv.FormatInt(f.Bytes, 10), hash})
	}

	sb.WriteString(strings.Join(Table([]string{"File", "Rows", "Bytes", "SHA-256"}, rows), "\n"))
	sb.WriteString("\n")

	return sb.String()
}
