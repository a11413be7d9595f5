package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClockTime(t *testing.T) {
	tests := []struct {
		text string
		want int
		ok   bool
	}{
		{"book at 9 am", 540, true},
		{"book at 9:30 am", 570, true},
		{"at 2pm sharp", 840, true},
		{"12 pm works", 720, true},
		{"12 am is fine", 0, true},
		{"be there at 14:00", 840, true},
		{"morning would be nice", 0, false},
		{"tomorrow sometime", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, ok := parseClockTime(tt.text)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestParseDateMention(t *testing.T) {
	now := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)

	date, past, ok := parseDateMention("book for today", now)
	require.True(t, ok)
	assert.False(t, past)
	assert.Equal(t, "2026-03-02", date)

	date, past, ok = parseDateMention("spa tomorrow", now)
	require.True(t, ok)
	assert.False(t, past)
	assert.Equal(t, "2026-03-03", date)

	date, past, ok = parseDateMention("on 5/3/2026 please", now)
	require.True(t, ok)
	assert.False(t, past)
	assert.Equal(t, "2026-03-05", date)

	date, past, ok = parseDateMention("on 2026-03-10", now)
	require.True(t, ok)
	assert.False(t, past)
	assert.Equal(t, "2026-03-10", date)

	_, past, ok = parseDateMention("back on 2020-01-01", now)
	require.True(t, ok)
	assert.True(t, past)

	_, _, ok = parseDateMention("whenever suits", now)
	assert.False(t, ok)
}

func TestParseInPlace(t *testing.T) {
	place, ok := parseInPlace("dental in vijayawada in the morning")
	require.True(t, ok)
	assert.Equal(t, "vijayawada", place)

	place, ok = parseInPlace("spa in whitefield on monday")
	require.True(t, ok)
	assert.Equal(t, "whitefield", place)

	// Time-of-day captures are not locations.
	_, ok = parseInPlace("sometime in the morning")
	assert.False(t, ok)

	_, ok = parseInPlace("no location here")
	assert.False(t, ok)
}
