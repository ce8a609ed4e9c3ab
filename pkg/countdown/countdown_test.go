package countdown

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var testLocation, _ = time.LoadLocation("Europe/Warsaw")

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, testLocation)
}

func TestDaysUntil(t *testing.T) {
	now := date(2024, time.January, 1)

	t.Run("same day is zero", func(t *testing.T) {
		assert.Equal(t, 0, DaysUntil(now, date(2024, time.January, 1)))
	})

	t.Run("past date is negative", func(t *testing.T) {
		assert.Equal(t, -5, DaysUntil(now, date(2023, time.December, 27)))
	})

	t.Run("future date is positive", func(t *testing.T) {
		assert.Equal(t, 14, DaysUntil(now, date(2024, time.January, 15)))
	})

	t.Run("time of day does not matter", func(t *testing.T) {
		lateNow := time.Date(2024, time.January, 1, 23, 59, 0, 0, testLocation)
		earlyTarget := time.Date(2024, time.January, 2, 0, 1, 0, 0, testLocation)
		assert.Equal(t, 1, DaysUntil(lateNow, earlyTarget))
	})

	t.Run("spring DST transition does not lose a day", func(t *testing.T) {
		// Europe/Warsaw switches to summer time on 2024-03-31.
		assert.Equal(t, 2, DaysUntil(date(2024, time.March, 30), date(2024, time.April, 1)))
	})
}

func TestDecompose(t *testing.T) {
	now := date(2024, time.January, 1)

	tests := []struct {
		name     string
		target   time.Time
		expected Breakdown
	}{
		{"today", date(2024, time.January, 1), Breakdown{0, 0, 0, 0}},
		{"overdue clamps to zero", date(2023, time.November, 1), Breakdown{0, 0, 0, 0}},
		{"14 days is days only", date(2024, time.January, 15), Breakdown{0, 0, 14, 14}},
		{"30 days is the top of the days tier", date(2024, time.January, 31), Breakdown{0, 0, 30, 30}},
		{"31 days enters the weeks tier", date(2024, time.February, 1), Breakdown{0, 4, 3, 31}},
		{"45 days", date(2024, time.February, 15), Breakdown{0, 6, 3, 45}},
		{"90 days is still weeks and days", date(2024, time.March, 31), Breakdown{0, 12, 6, 90}},
		{"91 days enters the months tier", date(2024, time.April, 1), Breakdown{3, 0, 1, 91}},
		{"152 days", date(2024, time.June, 1), Breakdown{5, 0, 2, 152}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Decompose(now, tt.target))
		})
	}
}

func TestDecomposeTotalDaysMatchesDaysUntil(t *testing.T) {
	now := date(2024, time.January, 1)
	for offset := -10; offset <= 200; offset += 7 {
		target := now.AddDate(0, 0, offset)
		expected := DaysUntil(now, target)
		if expected < 0 {
			expected = 0
		}
		assert.Equal(t, expected, Decompose(now, target).TotalDays, "offset %d", offset)
	}
}

func TestRender(t *testing.T) {
	now := date(2024, time.January, 1)

	t.Run("days tier always shows days, even zero", func(t *testing.T) {
		assert.Equal(t, Rendering{Days: "0d"}, Render(now, now, StyleShort))
		assert.Equal(t, Rendering{Days: "14d"}, Render(now, date(2024, time.January, 15), StyleShort))
	})

	t.Run("weeks tier hides months and empty components", func(t *testing.T) {
		// 35 days = 5 weeks exactly, so the days component is empty.
		r := Render(now, date(2024, time.February, 5), StyleShort)
		assert.Equal(t, Rendering{Weeks: "5w"}, r)
	})

	t.Run("months tier can render all three components", func(t *testing.T) {
		// 100 days = 3 months, 1 week, 3 days.
		r := Render(now, date(2024, time.April, 10), StyleShort)
		assert.Equal(t, Rendering{Months: "3m", Weeks: "1w", Days: "3d"}, r)
	})

	t.Run("months tier hides zero components", func(t *testing.T) {
		// 152 days = 5 months, 0 weeks, 2 days.
		r := Render(now, date(2024, time.June, 1), StyleShort)
		assert.Equal(t, Rendering{Months: "5m", Days: "2d"}, r)
	})

	t.Run("long style spells out units without singular forms", func(t *testing.T) {
		r := Render(now, date(2024, time.April, 10), StyleLong)
		assert.Equal(t, Rendering{Months: "3 months", Weeks: "1 weeks", Days: "3 days"}, r)
	})

	t.Run("identical inputs render identically", func(t *testing.T) {
		target := date(2024, time.June, 1)
		assert.Equal(t, Render(now, target, StyleShort), Render(now, target, StyleShort))
	})
}

func TestClassify(t *testing.T) {
	now := date(2024, time.January, 1)

	tests := []struct {
		name     string
		target   time.Time
		expected Classification
	}{
		{"today is overdue", date(2024, time.January, 1), Overdue},
		{"yesterday is overdue", date(2023, time.December, 31), Overdue},
		{"tomorrow is near term", date(2024, time.January, 2), NearTerm},
		{"30 days out is near term", date(2024, time.January, 31), NearTerm},
		{"31 days out is far term", date(2024, time.February, 1), FarTerm},
		{"152 days out is far term", date(2024, time.June, 1), FarTerm},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Classify(now, tt.target))
		})
	}
}

func TestGrid(t *testing.T) {
	now := date(2024, time.January, 1)

	t.Run("future target counts one dot per remaining day", func(t *testing.T) {
		g := Grid(now, date(2024, time.January, 15))
		assert.Equal(t, DotGrid{TotalDays: 14, DaysPassed: 0, DaysRemaining: 14, Columns: 10}, g)
	})

	t.Run("overdue target still yields a single dot", func(t *testing.T) {
		g := Grid(now, date(2023, time.December, 1))
		assert.Equal(t, DotGrid{TotalDays: 1, DaysPassed: 1, DaysRemaining: 0, Columns: 10}, g)
	})

	t.Run("today yields a single passed dot", func(t *testing.T) {
		g := Grid(now, now)
		assert.Equal(t, DotGrid{TotalDays: 1, DaysPassed: 1, DaysRemaining: 0, Columns: 10}, g)
	})
}
