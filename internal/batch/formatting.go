package batch

import (
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"
)

// FormatResults renders the batch outcome in the given stdout format
// ("text" or "csv"). Failed files are reported inline so a batch never
// silently drops inputs.
func FormatResults(res *Result, format string) (string, error) {
	switch format {
	case "csv":
		return formatCSV(res)
	default:
		return formatText(res), nil
	}
}

// formatText renders one block per file: the path, then the reconstructed
// lines indented beneath it.
func formatText(res *Result) string {
	var b strings.Builder
	for _, fr := range res.Files {
		fmt.Fprintf(&b, "%s:\n", fr.Path)
		if fr.Err != nil {
			fmt.Fprintf(&b, "  error: %v\n", fr.Err)
			continue
		}
		for _, line := range fr.Result.Lines {
			fmt.Fprintf(&b, "  %s\n", line)
		}
	}
	return b.String()
}

// formatCSV renders one row per reconstructed line with the source file in
// the first column.
func formatCSV(res *Result) (string, error) {
	var b strings.Builder
	w := csv.NewWriter(&b)
	if err := w.Write([]string{"file", "line_no", "text"}); err != nil {
		return "", err
	}
	for _, fr := range res.Files {
		if fr.Err != nil {
			if err := w.Write([]string{fr.Path, "0", "error: " + fr.Err.Error()}); err != nil {
				return "", err
			}
			continue
		}
		for i, line := range fr.Result.Lines {
			if err := w.Write([]string{fr.Path, strconv.Itoa(i + 1), line}); err != nil {
				return "", err
			}
		}
	}
	w.Flush()
	return b.String(), w.Error()
}
