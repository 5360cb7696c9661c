package report

import (
	"strconv"
	"strings"

	"github.com/gallery-tools/exhibit-atlas/pkg/models/domain"
)

// amountReplacer strips thousands separators and the unit suffixes that show
// up in free-text amount fields (counts, currency, session markers).
var amountReplacer = strings.NewReplacer(
	",", "",
	" ", "",
	"명", "",
	"원", "",
	"회", "",
	"부", "",
)

// ParseAmount converts a free-text numeric field to an integer. Unparsable
// input yields 0; a bad value contributes nothing to an aggregate and is
// never an error.
func ParseAmount(s string) int {
	s = amountReplacer.Replace(strings.TrimSpace(s))
	if s == "" {
		return 0
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// ProgramStats aggregates the related-program list: Count is the number of
// programs (titleless entries are excluded upstream) and Participants the
// tolerant sum of their participant fields.
type ProgramStats struct {
	Count        int
	Participants int
}

func AggregatePrograms(programs []domain.ProgramEntry) ProgramStats {
	stats := ProgramStats{Count: len(programs)}
	for _, p := range programs {
		stats.Participants += ParseAmount(p.Participants)
	}
	return stats
}

// FormatCount renders an integer with thousands separators, matching the
// report's number style.
func FormatCount(n int) string {
	s := strconv.Itoa(n)
	if len(s) <= 3 {
		return s
	}
	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}
