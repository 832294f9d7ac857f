package digest

import (
	"strings"
	"time"
)

// ExpandVars substitutes placeholders in config-provided text (title, preface,
// postscript):
//   - {.CurrentDate} => YYYY-MM-DD (UTC)
//   - {.Subject}     => the subject's display name
func ExpandVars(s string, now time.Time, subjectName string) string {
	if strings.TrimSpace(s) == "" {
		return s
	}
	r := strings.NewReplacer(
		"{.CurrentDate}", now.UTC().Format("2006-01-02"),
		"{.Subject}", subjectName,
	)
	return r.Replace(s)
}
