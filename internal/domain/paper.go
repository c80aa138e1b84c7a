// Package domain defines the two record types tracked by studydesk, papers
// and vocabulary words, together with the drafts and patches used to create
// and modify them.
package domain

import (
	"strings"
	"time"
)

// PaperStatus is the reading state of a paper.
type PaperStatus string

const (
	PaperUnread PaperStatus = "unread"
	PaperRead   PaperStatus = "read"
)

// Toggle returns the other status value.
func (s PaperStatus) Toggle() PaperStatus {
	if s == PaperRead {
		return PaperUnread
	}
	return PaperRead
}

// Paper is an academic paper on the reading list.
type Paper struct {
	ID        string      `json:"id"`
	Title     string      `json:"title"`
	Link      string      `json:"link,omitempty"`
	Note      string      `json:"note,omitempty"`
	Status    PaperStatus `json:"status"`
	Tags      []string    `json:"tags"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

func (p Paper) GetID() string           { return p.ID }
func (p Paper) GetCreatedAt() time.Time { return p.CreatedAt }
func (p Paper) GetUpdatedAt() time.Time { return p.UpdatedAt }

// IsRead reports whether the paper has been read.
func (p Paper) IsRead() bool { return p.Status == PaperRead }

// ActivityAt is the timestamp a paper contributes to the activity timeline:
// the last update for read papers, the creation time otherwise.
func (p Paper) ActivityAt() time.Time {
	if p.IsRead() {
		return p.UpdatedAt
	}
	return p.CreatedAt
}

// HasTag reports whether tag is one of the paper's labels.
func (p Paper) HasTag(tag string) bool {
	for _, t := range p.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// TogglePatch builds the patch flipping the paper's status.
func (p Paper) TogglePatch() PaperPatch {
	s := p.Status.Toggle()
	return PaperPatch{Status: &s}
}

// PaperDraft carries the fields of a paper that does not exist yet.
type PaperDraft struct {
	Title  string      `json:"title" validate:"required"`
	Link   string      `json:"link,omitempty"`
	Note   string      `json:"note,omitempty"`
	Status PaperStatus `json:"status,omitempty" validate:"omitempty,oneof=unread read"`
	Tags   []string    `json:"tags,omitempty" validate:"dive,required"`
}

// Normalize trims free text, drops blank tags and applies the default status.
func (d PaperDraft) Normalize() PaperDraft {
	d.Title = strings.TrimSpace(d.Title)
	d.Link = strings.TrimSpace(d.Link)
	d.Note = strings.TrimSpace(d.Note)
	d.Tags = cleanTags(d.Tags)
	if d.Status == "" {
		d.Status = PaperUnread
	}
	return d
}

// Validate checks the draft's required fields.
func (d PaperDraft) Validate() error { return validateStruct(d) }

// PaperPatch lists the fields to change on an existing paper; nil fields are
// left untouched.
type PaperPatch struct {
	Title     *string      `json:"title,omitempty" validate:"omitnil,min=1"`
	Link      *string      `json:"link,omitempty"`
	Note      *string      `json:"note,omitempty"`
	Status    *PaperStatus `json:"status,omitempty" validate:"omitnil,oneof=unread read"`
	Tags      *[]string    `json:"tags,omitempty"`
	UpdatedAt *time.Time   `json:"updated_at,omitempty"`
}

// Normalize trims the text fields that are set.
func (p PaperPatch) Normalize() PaperPatch {
	p.Title = trimPtr(p.Title)
	p.Link = trimPtr(p.Link)
	p.Note = trimPtr(p.Note)
	if p.Tags != nil {
		tags := cleanTags(*p.Tags)
		p.Tags = &tags
	}
	return p
}

// Touch stamps the patch with a refreshed update time.
func (p PaperPatch) Touch(at time.Time) PaperPatch {
	at = at.UTC()
	p.UpdatedAt = &at
	return p
}

// Empty reports whether the patch changes nothing.
func (p PaperPatch) Empty() bool {
	return p.Title == nil && p.Link == nil && p.Note == nil && p.Status == nil && p.Tags == nil
}

// Validate rejects empty patches and invalid field values.
func (p PaperPatch) Validate() error {
	if p.Empty() {
		return errEmptyPatch
	}
	return validateStruct(p)
}

// ParseTags splits a comma separated label list. Duplicates are kept.
func ParseTags(s string) []string {
	return cleanTags(strings.Split(s, ","))
}

func cleanTags(in []string) []string {
	out := make([]string, 0, len(in))
	for _, t := range in {
		if t = strings.TrimSpace(t); t != "" {
			out = append(out, t)
		}
	}
	return out
}

func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	return &v
}
