// Package export renders checklists into interchange formats.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/Greg-CLD/tcof/internal/model"
)

// csvHeader is the column layout spreadsheet users re-import elsewhere.
var csvHeader = []string{"Stage", "Task", "Status", "Completed", "Priority", "Due", "Owner", "Origin", "Notes"}

// CSV writes the checklist as CSV in stage order, identification through
// closure, tasks in their bucket order.
func CSV(w io.Writer, cl model.Checklist) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(csvHeader); err != nil {
		return fmt.Errorf("could not write CSV header: %w", err)
	}

	for _, stage := range model.Stages() {
		for _, task := range cl.Stages[stage] {
			due := ""
			if task.DueDate != nil {
				due = task.DueDate.UTC().Format("2006-01-02")
			}

			row := []string{
				string(stage),
				task.Text,
				string(task.Status),
				strconv.FormatBool(task.Completed),
				string(task.Priority),
				due,
				task.Owner,
				string(task.Origin),
				task.Notes,
			}
			if err := writer.Write(row); err != nil {
				return fmt.Errorf("could not write CSV row: %w", err)
			}
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("could not flush CSV: %w", err)
	}

	return nil
}

// Filename builds the download file name for a project export.
func Filename(projectName string, now time.Time) string {
	slug := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		default:
			return '-'
		}
	}, strings.ToLower(strings.TrimSpace(projectName)))

	for strings.Contains(slug, "--") {
		slug = strings.ReplaceAll(slug, "--", "-")
	}
	slug = strings.Trim(slug, "-")
	if slug == "" {
		slug = "project"
	}

	return fmt.Sprintf("tcof-%s-checklist-%s.csv", slug, now.UTC().Format("2006-01-02"))
}
