// Package views computes everything the pages show from a collection
// snapshot: status counts, tag statistics, the activity timeline, recent
// items and filtered lists. Every function is pure and leaves its input
// untouched.
package views

import (
	"slices"
	"time"
)

// StatusCounts splits a collection by a two-valued status.
type StatusCounts struct {
	Total      int
	Done       int
	Pending    int
	DonePct    float64
	PendingPct float64
}

// CountStatus counts items for which done reports true. Percentages are 0
// when there are no items.
func CountStatus[T any](items []T, done func(T) bool) StatusCounts {
	c := StatusCounts{Total: len(items)}
	for _, it := range items {
		if done(it) {
			c.Done++
		}
	}
	c.Pending = c.Total - c.Done
	if c.Total > 0 {
		c.DonePct = float64(c.Done) * 100 / float64(c.Total)
		c.PendingPct = float64(c.Pending) * 100 / float64(c.Total)
	}
	return c
}

type updated interface {
	GetUpdatedAt() time.Time
}

// Recent returns up to n items with the latest update time first. Items
// updated at the same instant keep their input order.
func Recent[T updated](items []T, n int) []T {
	out := slices.Clone(items)
	slices.SortStableFunc(out, func(a, b T) int {
		return b.GetUpdatedAt().Compare(a.GetUpdatedAt())
	})
	if n >= 0 && len(out) > n {
		out = out[:n]
	}
	return out
}
