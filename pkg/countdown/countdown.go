package countdown

import (
	"fmt"
	"time"

	"github.com/koffeecuptales/timeleft/internal/utils"
)

// Classification buckets a countdown by how far away the target date is.
type Classification string

const (
	// Overdue covers targets on or before today.
	Overdue Classification = "overdue"
	// NearTerm covers targets 1 to 30 days out.
	NearTerm Classification = "nearTerm"
	// FarTerm covers targets more than 30 days out.
	FarTerm Classification = "farTerm"
)

// Style selects the text form produced by Render.
type Style string

const (
	StyleShort Style = "short"
	StyleLong  Style = "long"
)

// Breakdown is the months/weeks/days decomposition of a day count.
// A month is treated as exactly 30 days, not a calendar month. The
// approximation is deliberate, so breakdowns stay stable regardless of
// which calendar months the countdown spans.
type Breakdown struct {
	Months    int
	Weeks     int
	Days      int
	TotalDays int
}

// Rendering holds the text form of a Breakdown. A component is the empty
// string when its value is zero, except the days component in the
// days-only tier, which always renders.
type Rendering struct {
	Months string
	Weeks  string
	Days   string
}

// DotGrid carries the numbers behind the dot visualization: one dot per
// day in the period, past days distinguished from remaining ones.
type DotGrid struct {
	TotalDays     int
	DaysPassed    int
	DaysRemaining int
	Columns       int
}

const gridColumns = 10

const (
	daysPerMonth = 30
	daysPerWeek  = 7

	// farTierMin is the day count above which months appear in a breakdown;
	// nearTierMax is the highest day count shown as a bare days value.
	farTierMin  = 90
	nearTierMax = 30
)

// DaysUntil returns the whole days from now to target, comparing local
// start-of-day values. Negative when the target has passed, zero when it
// is today.
func DaysUntil(now, target time.Time) int {
	// Midnights are re-anchored in UTC so DST transitions cannot produce
	// 23- or 25-hour days and skew the whole-day count.
	fy, fm, fd := utils.StartOfDay(now).Date()
	ty, tm, td := utils.StartOfDay(target).Date()
	from := time.Date(fy, fm, fd, 0, 0, 0, 0, time.UTC)
	to := time.Date(ty, tm, td, 0, 0, 0, 0, time.UTC)
	return int(to.Sub(from) / (24 * time.Hour))
}

// Decompose breaks the day count down by tier. Overdue targets decompose
// to all zeros.
func Decompose(now, target time.Time) Breakdown {
	totalDays := DaysUntil(now, target)
	if totalDays < 0 {
		totalDays = 0
	}

	switch {
	case totalDays > farTierMin:
		remainder := totalDays % daysPerMonth
		return Breakdown{
			Months:    totalDays / daysPerMonth,
			Weeks:     remainder / daysPerWeek,
			Days:      remainder % daysPerWeek,
			TotalDays: totalDays,
		}
	case totalDays > nearTierMax:
		return Breakdown{
			Weeks:     totalDays / daysPerWeek,
			Days:      totalDays % daysPerWeek,
			TotalDays: totalDays,
		}
	default:
		return Breakdown{
			Days:      totalDays,
			TotalDays: totalDays,
		}
	}
}

// Render produces the text form of the breakdown for the given style.
// There is no singular/plural distinction; callers that need "1 day"
// check the numeric Breakdown instead.
func Render(now, target time.Time, style Style) Rendering {
	b := Decompose(now, target)

	if b.TotalDays <= nearTierMax {
		// Days-only tier always shows a days value, even "0d".
		return Rendering{Days: formatUnit(b.TotalDays, "d", "days", style)}
	}

	r := Rendering{}
	if b.Months > 0 {
		r.Months = formatUnit(b.Months, "m", "months", style)
	}
	if b.Weeks > 0 {
		r.Weeks = formatUnit(b.Weeks, "w", "weeks", style)
	}
	if b.Days > 0 {
		r.Days = formatUnit(b.Days, "d", "days", style)
	}
	return r
}

// Classify buckets the target relative to now: Overdue for today or
// earlier, NearTerm up to 30 days out, FarTerm beyond that.
func Classify(now, target time.Time) Classification {
	days := DaysUntil(now, target)
	switch {
	case days <= 0:
		return Overdue
	case days <= nearTierMax:
		return NearTerm
	default:
		return FarTerm
	}
}

// Grid returns the dot-grid numbers for the period from now to target.
// TotalDays is clamped to at least one so an empty grid is never produced.
func Grid(now, target time.Time) DotGrid {
	remaining := DaysUntil(now, target)
	if remaining < 0 {
		remaining = 0
	}
	total := remaining
	if total < 1 {
		total = 1
	}
	return DotGrid{
		TotalDays:     total,
		DaysPassed:    total - remaining,
		DaysRemaining: remaining,
		Columns:       gridColumns,
	}
}

func formatUnit(n int, short, long string, style Style) string {
	if style == StyleLong {
		return fmt.Sprintf("%d %s", n, long)
	}
	return fmt.Sprintf("%d%s", n, short)
}
