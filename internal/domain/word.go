package domain

import (
	"strings"
	"time"
)

// WordStatus is the learning state of a vocabulary word.
type WordStatus string

const (
	WordUnmastered WordStatus = "unmastered"
	WordMastered   WordStatus = "mastered"
)

// Toggle returns the other status value.
func (s WordStatus) Toggle() WordStatus {
	if s == WordMastered {
		return WordUnmastered
	}
	return WordMastered
}

// Word is a vocabulary entry.
type Word struct {
	ID         string     `json:"id"`
	Word       string     `json:"word"`
	Definition string     `json:"definition,omitempty"`
	Example    string     `json:"example,omitempty"`
	Status     WordStatus `json:"status"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

func (w Word) GetID() string           { return w.ID }
func (w Word) GetCreatedAt() time.Time { return w.CreatedAt }
func (w Word) GetUpdatedAt() time.Time { return w.UpdatedAt }

// IsMastered reports whether the word has been learned.
func (w Word) IsMastered() bool { return w.Status == WordMastered }

// TogglePatch builds the patch flipping the word's status.
func (w Word) TogglePatch() WordPatch {
	s := w.Status.Toggle()
	return WordPatch{Status: &s}
}

// WordDraft carries the fields of a word that does not exist yet.
type WordDraft struct {
	Word       string     `json:"word" validate:"required"`
	Definition string     `json:"definition,omitempty"`
	Example    string     `json:"example,omitempty"`
	Status     WordStatus `json:"status,omitempty" validate:"omitempty,oneof=unmastered mastered"`
}

// Normalize trims free text and applies the default status.
func (d WordDraft) Normalize() WordDraft {
	d.Word = strings.TrimSpace(d.Word)
	d.Definition = strings.TrimSpace(d.Definition)
	d.Example = strings.TrimSpace(d.Example)
	if d.Status == "" {
		d.Status = WordUnmastered
	}
	return d
}

// Validate checks the draft's required fields.
func (d WordDraft) Validate() error { return validateStruct(d) }

// WordPatch lists the fields to change on an existing word.
type WordPatch struct {
	Word       *string     `json:"word,omitempty" validate:"omitnil,min=1"`
	Definition *string     `json:"definition,omitempty"`
	Example    *string     `json:"example,omitempty"`
	Status     *WordStatus `json:"status,omitempty" validate:"omitnil,oneof=unmastered mastered"`
	UpdatedAt  *time.Time  `json:"updated_at,omitempty"`
}

func (p WordPatch) Normalize() WordPatch {
	p.Word = trimPtr(p.Word)
	p.Definition = trimPtr(p.Definition)
	p.Example = trimPtr(p.Example)
	return p
}

func (p WordPatch) Touch(at time.Time) WordPatch {
	at = at.UTC()
	p.UpdatedAt = &at
	return p
}

func (p WordPatch) Empty() bool {
	return p.Word == nil && p.Definition == nil && p.Example == nil && p.Status == nil
}

func (p WordPatch) Validate() error {
	if p.Empty() {
		return errEmptyPatch
	}
	return validateStruct(p)
}
