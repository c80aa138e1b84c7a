package storeapi

import (
	"time"

	"github.com/dmitrijs2005/studydesk/internal/domain"
)

type PingRequest struct{}

type PingResponse struct {
	Status string `json:"status"`
}

type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type RegisterResponse struct {
	UserID string `json:"user_id"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// TokenPair is returned by Login and RefreshToken.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type ListPapersRequest struct{}

type ListPapersResponse struct {
	Papers []domain.Paper `json:"papers"`
}

type InsertPaperRequest struct {
	Draft domain.PaperDraft `json:"draft"`
}

type InsertPaperResponse struct {
	Paper domain.Paper `json:"paper"`
}

type UpdatePaperRequest struct {
	ID    string            `json:"id"`
	Patch domain.PaperPatch `json:"patch"`
}

type DeleteRequest struct {
	ID string `json:"id"`
}

type Empty struct{}

type ListWordsRequest struct{}

type ListWordsResponse struct {
	Words []domain.Word `json:"words"`
}

type InsertWordRequest struct {
	Draft domain.WordDraft `json:"draft"`
}

type InsertWordResponse struct {
	Word domain.Word `json:"word"`
}

type UpdateWordRequest struct {
	ID    string           `json:"id"`
	Patch domain.WordPatch `json:"patch"`
}

type ExportRequest struct{}

// ExportResponse points at a snapshot written to object storage.
type ExportResponse struct {
	Key       string    `json:"key"`
	URL       string    `json:"url"`
	Papers    int       `json:"papers"`
	Words     int       `json:"words"`
	ExpiresAt time.Time `json:"expires_at"`
}
