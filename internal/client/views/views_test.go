package views

import (
	"net/url"
	"slices"
	"testing"
	"time"

	"github.com/dmitrijs2005/studydesk/internal/domain"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func titles(ps []domain.Paper) []string {
	out := make([]string, 0, len(ps))
	for _, p := range ps {
		out = append(out, p.Title)
	}
	return out
}

func samplePapers() []domain.Paper {
	return []domain.Paper{
		{ID: "1", Title: "A", Status: domain.PaperUnread, Tags: []string{"x"}},
		{ID: "2", Title: "B", Status: domain.PaperRead, Tags: []string{"x", "y"}},
	}
}

func TestPaperFilter_Scenario(t *testing.T) {
	papers := samplePapers()
	orig := slices.Clone(papers)

	got := PaperFilter{Status: domain.PaperUnread, Tag: "x"}.Apply(papers)
	assert.Equal(t, []string{"A"}, titles(got))

	got = PaperFilter{Tag: "y"}.Apply(papers)
	assert.Equal(t, []string{"B"}, titles(got))

	got = PaperFilter{Query: "a"}.Apply(papers)
	assert.Equal(t, []string{"A"}, titles(got))

	assert.Empty(t, cmp.Diff(orig, papers), "filtering must not touch the input")
}

func TestParsePaperFilter(t *testing.T) {
	f := ParsePaperFilter(url.Values{"status": {"read"}, "tag": {" ml "}, "q": {"attention"}})
	assert.Equal(t, PaperFilter{Status: domain.PaperRead, Tag: "ml", Query: "attention"}, f)
	assert.Equal(t, "q=attention&status=read&tag=ml", f.Values().Encode())

	f = ParsePaperFilter(url.Values{"status": {"bogus"}})
	assert.Equal(t, PaperFilter{}, f)
	assert.Empty(t, f.Values())

	assert.Equal(t, "", PaperFilter{Tag: "ml"}.WithTag("ml").Tag)
	assert.Equal(t, "nlp", PaperFilter{Tag: "ml"}.WithTag("nlp").Tag)
}

func TestWordFilter(t *testing.T) {
	words := []domain.Word{
		{Word: "Laconic", Definition: "using few words", Status: domain.WordMastered},
		{Word: "verbose", Definition: "using MANY words", Status: domain.WordUnmastered},
	}

	assert.Len(t, WordFilter{Query: "WORDS"}.Apply(words), 2)
	assert.Len(t, WordFilter{Query: "many"}.Apply(words), 1)
	assert.Len(t, WordFilter{Query: "lacon"}.Apply(words), 1)

	got := WordFilter{Status: domain.WordMastered}.Apply(words)
	require.Len(t, got, 1)
	assert.Equal(t, "Laconic", got[0].Word)

	f := ParseWordFilter(url.Values{"status": {"unmastered"}, "q": {"x"}})
	assert.Equal(t, WordFilter{Status: domain.WordUnmastered, Query: "x"}, f)
	assert.Equal(t, "q=x&status=unmastered", f.Values().Encode())
}

func TestCountStatus(t *testing.T) {
	c := CountStatus(samplePapers(), domain.Paper.IsRead)
	assert.Equal(t, StatusCounts{Total: 2, Done: 1, Pending: 1, DonePct: 50, PendingPct: 50}, c)

	three := append(samplePapers(), domain.Paper{Status: domain.PaperUnread})
	c = CountStatus(three, domain.Paper.IsRead)
	assert.InDelta(t, 100, c.DonePct+c.PendingPct, 1e-9)

	assert.Equal(t, StatusCounts{}, CountStatus([]domain.Paper{}, domain.Paper.IsRead))
}

func TestTagSetAndHistogram(t *testing.T) {
	papers := []domain.Paper{
		{Tags: []string{"y", "x"}},
		{Tags: []string{"x", "x", "z"}},
		{},
	}

	assert.Equal(t, []string{"y", "x", "z"}, TagSet(papers))

	hist := TagHistogram(papers)
	assert.Equal(t, []TagCount{{"y", 1}, {"x", 3}, {"z", 1}}, hist)

	pairs, sum := 0, 0
	for _, p := range papers {
		pairs += len(p.Tags)
	}
	for _, h := range hist {
		sum += h.Count
	}
	assert.Equal(t, pairs, sum)

	assert.NotNil(t, TagSet(nil))
}

func TestActivityTimeline(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*3600)
	now := time.Date(2025, 3, 10, 1, 0, 0, 0, loc) // 2025-03-09 22:00 UTC

	papers := []domain.Paper{
		// unread: created_at counts; late UTC evening is already the 10th locally
		{Status: domain.PaperUnread, CreatedAt: time.Date(2025, 3, 9, 21, 30, 0, 0, time.UTC)},
		// read: updated_at counts, created_at is ignored
		{Status: domain.PaperRead, CreatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			UpdatedAt: time.Date(2025, 2, 9, 12, 0, 0, 0, loc)},
		// outside the window
		{Status: domain.PaperUnread, CreatedAt: time.Date(2025, 2, 8, 12, 0, 0, 0, loc)},
	}

	tl := ActivityTimeline(papers, now, loc)
	require.Len(t, tl, TimelineDays)

	assert.Equal(t, time.Date(2025, 2, 9, 0, 0, 0, 0, loc), tl[0].Day)
	assert.Equal(t, time.Date(2025, 3, 10, 0, 0, 0, 0, loc), tl[len(tl)-1].Day)
	assert.Equal(t, 1, tl[0].Count)
	assert.Equal(t, 1, tl[len(tl)-1].Count)

	total := 0
	for i, d := range tl {
		total += d.Count
		if i > 0 {
			assert.True(t, d.Day.After(tl[i-1].Day))
		}
	}
	assert.Equal(t, 2, total)

	assert.Len(t, ActivityTimeline(nil, now, nil), TimelineDays)
}

func TestRecent(t *testing.T) {
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	var words []domain.Word
	for i := range 7 {
		words = append(words, domain.Word{ID: string(rune('a' + i)), UpdatedAt: base.Add(time.Duration(i%4) * time.Hour)})
	}

	got := Recent(words, RecentCount)
	ids := make([]string, 0, len(got))
	for _, w := range got {
		ids = append(ids, w.ID)
	}
	// hours: a0 b1 c2 d3 e0 f1 g2 -> d, c, g, b, f
	assert.Equal(t, []string{"d", "c", "g", "b", "f"}, ids)
	assert.Equal(t, "a", words[0].ID)

	assert.Len(t, Recent(words[:2], RecentCount), 2)
}

func TestDashboards(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	papers := samplePapers()
	papers[0].CreatedAt = now
	papers[1].UpdatedAt = now

	d := NewPaperDashboard(papers, PaperFilter{Tag: "y"}, now, time.UTC)
	assert.Equal(t, 2, d.Counts.Total)
	assert.Equal(t, 2, d.TimelineMax)
	assert.Equal(t, []string{"B"}, titles(d.Visible))
	assert.Len(t, d.Tags, 2)

	wd := NewWordDashboard([]domain.Word{{Word: "w", Status: domain.WordMastered}}, WordFilter{})
	assert.Equal(t, 1, wd.Counts.Done)
	assert.InDelta(t, 100, wd.Counts.DonePct, 1e-9)
	assert.Len(t, wd.Visible, 1)
}
