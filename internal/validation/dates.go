package validation

import (
	"regexp"
	"strings"

	"github.com/ahsenmahmood/nist-sentinel/internal/types"
)

// contextWindow is how many characters around a publication mention are
// scanned for dates.
const contextWindow = 200

var isoDatePattern = regexp.MustCompile(`\d{4}-\d{2}-\d{2}`)

// CheckDates verifies that publication mentions carry the canonical
// publication date. For each trusted record, the report is searched for
// the identifier (either the bare "800-218A" form or the normalized
// "SP 800 218A" form, case-insensitively); if mentioned, the dates
// found within the surrounding window are compared against the
// canonical one. A publication that is never mentioned produces no
// finding here; coverage is a separate check.
func CheckDates(content string, pubs []types.Publication) []types.Finding {
	var findings []types.Finding

	for _, pub := range pubs {
		window, mentioned := mentionContext(content, pub.ID)
		if !mentioned {
			continue
		}

		dates := isoDatePattern.FindAllString(window, -1)
		if containsString(dates, pub.Date) {
			findings = append(findings, types.Passf("Correct date for %s: %s", pub.ID, pub.Date))
		} else if len(dates) > 0 {
			findings = append(findings, types.Warningf(
				"Possible incorrect date for %s. Expected: %s, Found: %s",
				pub.ID, pub.Date, dates[0]))
		}
	}

	return findings
}

// mentionContext locates the first mention of a publication identifier
// and returns the text within contextWindow characters of it.
func mentionContext(content, id string) (string, bool) {
	patterns := []string{
		regexp.QuoteMeta(id),
		regexp.QuoteMeta("SP " + strings.ReplaceAll(id, "-", " ")),
	}

	for _, pattern := range patterns {
		re, err := regexp.Compile(`(?i)` + pattern)
		if err != nil {
			continue
		}
		loc := re.FindStringIndex(content)
		if loc == nil {
			continue
		}

		start := max(0, loc[0]-contextWindow)
		end := min(len(content), loc[1]+contextWindow)
		return content[start:end], true
	}

	return "", false
}

func containsString(items []string, target string) bool {
	for _, item := range items {
		if item == target {
			return true
		}
	}
	return false
}
