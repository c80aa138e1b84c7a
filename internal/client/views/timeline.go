package views

import (
	"time"

	"github.com/dmitrijs2005/studydesk/internal/domain"
)

const TimelineDays = 30

// DayCount is the number of papers with activity on one calendar day.
type DayCount struct {
	Day   time.Time
	Count int
}

// ActivityTimeline buckets papers by the calendar day, in loc, of their
// activity time (updated_at for read papers, created_at otherwise). It
// always returns TimelineDays entries, oldest first, ending with today.
func ActivityTimeline(papers []domain.Paper, now time.Time, loc *time.Location) []DayCount {
	if loc == nil {
		loc = time.Local
	}
	today := startOfDay(now.In(loc))
	first := today.AddDate(0, 0, -(TimelineDays - 1))

	out := make([]DayCount, TimelineDays)
	index := make(map[string]int, TimelineDays)
	for i := range out {
		d := first.AddDate(0, 0, i)
		out[i].Day = d
		index[d.Format(time.DateOnly)] = i
	}

	for _, p := range papers {
		day := p.ActivityAt().In(loc).Format(time.DateOnly)
		if i, ok := index[day]; ok {
			out[i].Count++
		}
	}
	return out
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
