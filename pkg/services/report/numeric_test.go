package report

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gallery-tools/exhibit-atlas/pkg/models/domain"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected int
	}{
		{"plain number", "50", 50},
		{"thousands separators", "142,438,012", 142438012},
		{"count suffix", "7,009명", 7009},
		{"currency suffix", "49,574,000원", 49574000},
		{"session suffix", "27회", 27},
		{"unparsable word", "thirty", 0},
		{"empty", "", 0},
		{"whitespace", "   ", 0},
		{"mixed garbage", "약 1억", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseAmount(tt.input))
		})
	}
}

func TestAggregatePrograms(t *testing.T) {
	programs := []domain.ProgramEntry{
		{Title: "Talk", Participants: "50"},
		{Title: "Lecture", Participants: "thirty"},
		{Title: "Tour", Participants: "25"},
	}

	stats := AggregatePrograms(programs)

	assert.Equal(t, 3, stats.Count)
	assert.Equal(t, 75, stats.Participants, "unparsable entries contribute 0")
}

func TestFormatCount(t *testing.T) {
	tests := []struct {
		input    int
		expected string
	}{
		{0, "0"},
		{75, "75"},
		{719, "719"},
		{7009, "7,009"},
		{142438012, "142,438,012"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, FormatCount(tt.input))
	}
}
