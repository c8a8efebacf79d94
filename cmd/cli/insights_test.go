package cli

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestSortedTotals(t *testing.T) {
	totals := sortedTotals(map[string]int{"tech": 1, "news": 3, "art": 1, "docs": 2})

	assert.Equal(t, []categoryTotal{
		{name: "news", count: 3},
		{name: "docs", count: 2},
		{name: "art", count: 1},
		{name: "tech", count: 1},
	}, totals)
}

func TestBar(t *testing.T) {
	tests := []struct {
		name       string
		count, top int
		want       int
	}{
		{name: "largest fills the width", count: 10, top: 10, want: maxBarWidth},
		{name: "half", count: 5, top: 10, want: maxBarWidth / 2},
		{name: "tiny share keeps one block", count: 1, top: 1000, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, utf8.RuneCountInString(bar(tt.count, tt.top)))
		})
	}
}
