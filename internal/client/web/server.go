// Package web serves the studydesk pages: a landing page, the papers view
// and the words view, plus sign-in and export. Every mutation is a form POST
// followed by a redirect back to the view it came from.
package web

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/dmitrijs2005/studydesk/internal/client/cache"
	"github.com/dmitrijs2005/studydesk/internal/domain"
	"github.com/dmitrijs2005/studydesk/internal/logging"
	"github.com/dmitrijs2005/studydesk/internal/storeapi"
	"github.com/felixge/httpsnoop"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type (
	PaperMutator = cache.Mutator[domain.Paper, domain.PaperDraft, domain.PaperPatch]
	WordMutator  = cache.Mutator[domain.Word, domain.WordDraft, domain.WordPatch]
)

// Session is the signed-in state held by the store client.
type Session interface {
	Login(ctx context.Context, username, password string) error
	Logout()
	SignedIn() bool
	Export(ctx context.Context) (*storeapi.ExportResponse, error)
}

type Server struct {
	papers   *PaperMutator
	words    *WordMutator
	session  Session
	logger   logging.Logger
	loc      *time.Location
	now      func() time.Time
	renderer *renderer
}

func NewServer(papers *PaperMutator, words *WordMutator, session Session, loc *time.Location, l logging.Logger) (*Server, error) {
	s := &Server{
		papers:  papers,
		words:   words,
		session: session,
		logger:  l.With("module", "web"),
		loc:     loc,
		now:     time.Now,
	}
	r, err := newRenderer(s.clock)
	if err != nil {
		return nil, err
	}
	s.renderer = r
	return s, nil
}

func (s *Server) clock() time.Time { return s.now() }

// Handler returns the router with access logging applied.
func (s *Server) Handler() http.Handler {
	r := mux.NewRouter()
	r.Use(s.accessLog)

	r.Methods(http.MethodGet).Path("/").HandlerFunc(s.landing)
	r.Methods(http.MethodGet).Path("/healthz").HandlerFunc(s.healthz)

	r.Methods(http.MethodGet).Path("/login").HandlerFunc(s.loginForm)
	r.Methods(http.MethodPost).Path("/login").HandlerFunc(s.login)
	r.Methods(http.MethodPost).Path("/logout").HandlerFunc(s.logout)
	r.Methods(http.MethodPost).Path("/export").HandlerFunc(s.export)

	r.Methods(http.MethodGet).Path("/papers").HandlerFunc(s.listPapers)
	r.Methods(http.MethodPost).Path("/papers").HandlerFunc(s.addPaper)
	r.Methods(http.MethodPost).Path("/papers/refresh").HandlerFunc(s.refreshPapers)
	r.Methods(http.MethodPost).Path("/papers/{id}/toggle").HandlerFunc(s.togglePaper)
	r.Methods(http.MethodPost).Path("/papers/{id}/edit").HandlerFunc(s.editPaper)
	r.Methods(http.MethodGet).Path("/papers/{id}/delete").HandlerFunc(s.confirmDeletePaper)
	r.Methods(http.MethodPost).Path("/papers/{id}/delete").HandlerFunc(s.deletePaper)

	r.Methods(http.MethodGet).Path("/words").HandlerFunc(s.listWords)
	r.Methods(http.MethodPost).Path("/words").HandlerFunc(s.addWord)
	r.Methods(http.MethodPost).Path("/words/refresh").HandlerFunc(s.refreshWords)
	r.Methods(http.MethodPost).Path("/words/{id}/toggle").HandlerFunc(s.toggleWord)
	r.Methods(http.MethodGet).Path("/words/{id}/delete").HandlerFunc(s.confirmDeleteWord)
	r.Methods(http.MethodPost).Path("/words/{id}/delete").HandlerFunc(s.deleteWord)

	return r
}

func (s *Server) accessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		r = r.WithContext(logging.ContextWith(r.Context(), "request_id", uuid.NewString()))
		m := httpsnoop.CaptureMetrics(next, w, r)
		s.logger.Info(r.Context(), "handled",
			"method", r.Method, "path", r.URL.Path, "status", m.Code, "duration", m.Duration, "bytes", m.Written)
	})
}

// Run serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info(ctx, "Starting web server", "address", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info(ctx, "Stopping web server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
