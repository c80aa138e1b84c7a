package views

import "github.com/dmitrijs2005/studydesk/internal/domain"

// TagCount is one entry of a tag histogram.
type TagCount struct {
	Tag   string
	Count int
}

// TagSet lists the distinct tags across papers in order of first
// appearance.
func TagSet(papers []domain.Paper) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, p := range papers {
		for _, t := range p.Tags {
			if _, ok := seen[t]; ok {
				continue
			}
			seen[t] = struct{}{}
			out = append(out, t)
		}
	}
	return out
}

// TagHistogram counts every (paper, tag) pair. Entries follow TagSet order.
func TagHistogram(papers []domain.Paper) []TagCount {
	counts := make(map[string]int)
	for _, p := range papers {
		for _, t := range p.Tags {
			counts[t]++
		}
	}

	tags := TagSet(papers)
	out := make([]TagCount, 0, len(tags))
	for _, t := range tags {
		out = append(out, TagCount{Tag: t, Count: counts[t]})
	}
	return out
}
