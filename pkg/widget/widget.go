package widget

import (
	"time"

	"github.com/koffeecuptales/timeleft/pkg/countdown"
	"github.com/koffeecuptales/timeleft/pkg/event"
)

// placeholderName is shown when no events exist yet.
const placeholderName = "No Events Yet"

// Entry is one rendered widget state: a featured event together with
// everything a widget surface needs to draw it. The widget is polled, so
// an Entry is a snapshot, stamped with the time it was built.
type Entry struct {
	Date      time.Time
	Event     event.Event
	HasEvents bool

	Breakdown      countdown.Breakdown
	Short          countdown.Rendering
	Long           countdown.Rendering
	Classification countdown.Classification
	Grid           countdown.DotGrid
}

func newEntry(now time.Time, featured event.Event, hasEvents bool) Entry {
	return Entry{
		Date:           now,
		Event:          featured,
		HasEvents:      hasEvents,
		Breakdown:      countdown.Decompose(now, featured.Date),
		Short:          countdown.Render(now, featured.Date, countdown.StyleShort),
		Long:           countdown.Render(now, featured.Date, countdown.StyleLong),
		Classification: countdown.Classify(now, featured.Date),
		Grid:           countdown.Grid(now, featured.Date),
	}
}

func placeholderEntry(now time.Time) Entry {
	return newEntry(now, event.Event{Name: placeholderName, Date: now}, false)
}
