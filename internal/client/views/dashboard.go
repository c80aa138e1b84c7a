package views

import (
	"time"

	"github.com/dmitrijs2005/studydesk/internal/domain"
)

// RecentCount is how many items the "recent activity" lists show.
const RecentCount = 5

// PaperDashboard is everything the papers page renders.
type PaperDashboard struct {
	Counts      StatusCounts
	Tags        []TagCount
	Timeline    []DayCount
	TimelineMax int
	Recent      []domain.Paper
	Visible     []domain.Paper
	Filter      PaperFilter
}

func NewPaperDashboard(papers []domain.Paper, f PaperFilter, now time.Time, loc *time.Location) PaperDashboard {
	timeline := ActivityTimeline(papers, now, loc)
	peak := 0
	for _, d := range timeline {
		if d.Count > peak {
			peak = d.Count
		}
	}

	return PaperDashboard{
		Counts:      CountStatus(papers, domain.Paper.IsRead),
		Tags:        TagHistogram(papers),
		Timeline:    timeline,
		TimelineMax: peak,
		Recent:      Recent(papers, RecentCount),
		Visible:     f.Apply(papers),
		Filter:      f,
	}
}

// WordDashboard is everything the words page renders.
type WordDashboard struct {
	Counts  StatusCounts
	Recent  []domain.Word
	Visible []domain.Word
	Filter  WordFilter
}

func NewWordDashboard(words []domain.Word, f WordFilter) WordDashboard {
	return WordDashboard{
		Counts:  CountStatus(words, domain.Word.IsMastered),
		Recent:  Recent(words, RecentCount),
		Visible: f.Apply(words),
		Filter:  f,
	}
}
