package views

import (
	"net/url"
	"strings"

	"github.com/dmitrijs2005/studydesk/internal/domain"
)

// PaperFilter selects papers by status, tag and a title substring. Empty
// fields match everything.
type PaperFilter struct {
	Status domain.PaperStatus
	Tag    string
	Query  string
}

// ParsePaperFilter reads status, tag and q from query parameters. Unknown
// status values mean "all".
func ParsePaperFilter(v url.Values) PaperFilter {
	f := PaperFilter{
		Tag:   strings.TrimSpace(v.Get("tag")),
		Query: strings.TrimSpace(v.Get("q")),
	}
	switch s := domain.PaperStatus(v.Get("status")); s {
	case domain.PaperRead, domain.PaperUnread:
		f.Status = s
	}
	return f
}

func (f PaperFilter) Match(p domain.Paper) bool {
	if f.Status != "" && p.Status != f.Status {
		return false
	}
	if f.Tag != "" && !p.HasTag(f.Tag) {
		return false
	}
	return containsFold(p.Title, f.Query)
}

// Apply returns the matching papers in their original order.
func (f PaperFilter) Apply(papers []domain.Paper) []domain.Paper {
	return filter(papers, f.Match)
}

// Values encodes the filter back into query parameters.
func (f PaperFilter) Values() url.Values {
	v := url.Values{}
	setNonEmpty(v, "status", string(f.Status))
	setNonEmpty(v, "tag", f.Tag)
	setNonEmpty(v, "q", f.Query)
	return v
}

// WithTag returns a copy of f selecting tag, or clearing the tag when it is
// already selected.
func (f PaperFilter) WithTag(tag string) PaperFilter {
	if f.Tag == tag {
		f.Tag = ""
	} else {
		f.Tag = tag
	}
	return f
}

// WordFilter selects words by status and a substring of the word or its
// definition.
type WordFilter struct {
	Status domain.WordStatus
	Query  string
}

func ParseWordFilter(v url.Values) WordFilter {
	f := WordFilter{Query: strings.TrimSpace(v.Get("q"))}
	switch s := domain.WordStatus(v.Get("status")); s {
	case domain.WordMastered, domain.WordUnmastered:
		f.Status = s
	}
	return f
}

func (f WordFilter) Match(w domain.Word) bool {
	if f.Status != "" && w.Status != f.Status {
		return false
	}
	return containsFold(w.Word, f.Query) || containsFold(w.Definition, f.Query)
}

func (f WordFilter) Apply(words []domain.Word) []domain.Word {
	return filter(words, f.Match)
}

func (f WordFilter) Values() url.Values {
	v := url.Values{}
	setNonEmpty(v, "status", string(f.Status))
	setNonEmpty(v, "q", f.Query)
	return v
}

func filter[T any](items []T, keep func(T) bool) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		if keep(it) {
			out = append(out, it)
		}
	}
	return out
}

func containsFold(s, sub string) bool {
	if sub == "" {
		return true
	}
	return strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}

func setNonEmpty(v url.Values, key, value string) {
	if value != "" {
		v.Set(key, value)
	}
}
