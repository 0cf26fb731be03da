package validation

import (
	"strings"

	"github.com/ahsenmahmood/nist-sentinel/internal/types"
)

// maxTableRows is the largest pipe-row count consistent with a single
// reference table plus its header and separator lines.
const maxTableRows = 5

// CheckDuplicateTables counts lines shaped like markdown table rows
// (two or more pipe characters). More rows than a single table accounts
// for suggests the generator duplicated the reference table. This is a
// deliberately loose heuristic: it cannot tell one wide table from two
// small ones, so it only ever warns.
func CheckDuplicateTables(content string) []types.Finding {
	rows := 0
	for _, line := range strings.Split(content, "\n") {
		if strings.Count(line, "|") >= 2 {
			rows++
		}
	}

	if rows > maxTableRows {
		return []types.Finding{
			types.Warningf("Multiple tables detected (%d rows). Verify no duplicates.", rows),
		}
	}
	return []types.Finding{types.Passf("Single reference table (no duplicates)")}
}
