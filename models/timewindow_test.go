package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTimeWindow_Overlaps(t *testing.T) {
	tests := []struct {
		name string
		a    TimeWindow
		b    TimeWindow
		want bool
	}{
		{
			name: "partial overlap",
			a:    TimeWindow{Date: "2026-03-03", Start: 600, End: 660},
			b:    TimeWindow{Date: "2026-03-03", Start: 630, End: 690},
			want: true,
		},
		{
			name: "contained window",
			a:    TimeWindow{Date: "2026-03-03", Start: 540, End: 720},
			b:    TimeWindow{Date: "2026-03-03", Start: 600, End: 630},
			want: true,
		},
		{
			name: "adjacent windows do not overlap",
			a:    TimeWindow{Date: "2026-03-03", Start: 540, End: 600},
			b:    TimeWindow{Date: "2026-03-03", Start: 600, End: 660},
			want: false,
		},
		{
			name: "different dates never overlap",
			a:    TimeWindow{Date: "2026-03-03", Start: 600, End: 660},
			b:    TimeWindow{Date: "2026-03-04", Start: 600, End: 660},
			want: false,
		},
		{
			name: "disjoint same day",
			a:    TimeWindow{Date: "2026-03-03", Start: 540, End: 600},
			b:    TimeWindow{Date: "2026-03-03", Start: 900, End: 960},
			want: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Overlaps(tt.b))
			// Overlap is symmetric.
			assert.Equal(t, tt.want, tt.b.Overlaps(tt.a))
		})
	}
}

func TestMinutesToClock(t *testing.T) {
	assert.Equal(t, "09:00", MinutesToClock(540))
	assert.Equal(t, "10:30", MinutesToClock(630))
	assert.Equal(t, "00:00", MinutesToClock(0))
	assert.Equal(t, "19:00", MinutesToClock(1140))
}

func TestTimeWindow_String(t *testing.T) {
	w := TimeWindow{Date: "2026-03-03", Start: 600, End: 660}
	assert.Equal(t, "2026-03-03 10:00-11:00", w.String())
}
