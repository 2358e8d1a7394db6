package wizard

import (
	"bizsuite-service/internal/pkg/constvars"
)

// VisibleDates returns the page of the booking calendar currently on screen.
// The calendar is a rolling window starting today; dates beyond the window
// are never offered because the backend rejects bookings that far out anyway.
func (w *Wizard) VisibleDates() []string {
	dates := make([]string, 0, constvars.CalendarPageDays)
	start := w.now()
	for i := 0; i < constvars.CalendarPageDays; i++ {
		day := start.AddDate(0, 0, w.calendarOffset+i)
		dates = append(dates, day.Format(constvars.CalendarDateLayout))
	}
	return dates
}

func (w *Wizard) CalendarOffset() int {
	return w.calendarOffset
}

// NextPage advances the calendar by one page, stopping at the last page that
// still fits inside the window.
func (w *Wizard) NextPage() {
	w.calendarOffset = clampOffset(w.calendarOffset + constvars.CalendarPageDays)
}

func (w *Wizard) PrevPage() {
	w.calendarOffset = clampOffset(w.calendarOffset - constvars.CalendarPageDays)
}

func clampOffset(offset int) int {
	if offset < 0 {
		return 0
	}
	if offset > constvars.CalendarMaxOffset {
		return constvars.CalendarMaxOffset
	}
	return offset
}
