package web

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"

	"github.com/dmitrijs2005/studydesk/internal/client/cache"
	"github.com/dmitrijs2005/studydesk/internal/client/views"
	"golang.org/x/sync/errgroup"
)

type landingData struct {
	Papers      views.StatusCounts
	Words       views.StatusCounts
	PapersState cache.Status
	WordsState  cache.Status
}

type confirmData struct {
	Kind   string
	Label  string
	Action string
	Return string
	Back   string
}

func (s *Server) page(title, nav string, err error, data any) page {
	p := page{Title: title, Nav: nav, SignedIn: s.session.SignedIn(), Data: data}
	if err != nil {
		p.Error = err.Error()
	}
	return p
}

func redirect(w http.ResponseWriter, r *http.Request, path string, q url.Values) {
	http.Redirect(w, r, path+encodeQuery(q), http.StatusSeeOther)
}

// returnValues reads the hidden "return" field forms use to carry the view's
// filter query across a POST.
func returnValues(r *http.Request) url.Values {
	v, err := url.ParseQuery(r.PostFormValue("return"))
	if err != nil {
		return url.Values{}
	}
	return v
}

func (s *Server) landing(w http.ResponseWriter, r *http.Request) {
	// Each collection loads on its own; one failing must not cancel the other.
	var g errgroup.Group
	g.Go(func() error { return s.papers.Collection().Refresh(r.Context()) })
	g.Go(func() error { return s.words.Collection().Refresh(r.Context()) })
	err := g.Wait()

	status := http.StatusOK
	if err != nil {
		s.logger.Warn(r.Context(), "landing load failed", "error", err.Error())
		status = statusFor(err)
	}
	s.renderLanding(w, status, err)
}

func (s *Server) renderLanding(w http.ResponseWriter, status int, err error) {
	papers, words := s.papers.Collection(), s.words.Collection()
	data := landingData{
		Papers:      views.NewPaperDashboard(papers.Snapshot(), views.PaperFilter{}, s.now(), s.loc).Counts,
		Words:       views.NewWordDashboard(words.Snapshot(), views.WordFilter{}).Counts,
		PapersState: papers.Status(),
		WordsState:  words.Status(),
	}
	s.renderer.render(w, status, "landing.html", s.page("studydesk", "home", err, data))
}

func (s *Server) healthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{
		"status": "ok",
		"papers": s.papers.Collection().Status().State.String(),
		"words":  s.words.Collection().Status().State.String(),
	})
}

func (s *Server) loginForm(w http.ResponseWriter, r *http.Request) {
	s.renderer.render(w, http.StatusOK, "login.html", s.page("Sign in", "login", nil, nil))
}

func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	username := r.PostFormValue("username")
	if err := s.session.Login(r.Context(), username, r.PostFormValue("password")); err != nil {
		s.logger.Warn(r.Context(), "login failed", "username", username, "error", err.Error())
		s.renderer.render(w, statusFor(err), "login.html", s.page("Sign in", "login", err, nil))
		return
	}
	s.logger.Info(r.Context(), "signed in", "username", username)
	redirect(w, r, "/", nil)
}

func (s *Server) logout(w http.ResponseWriter, r *http.Request) {
	s.session.Logout()
	redirect(w, r, "/", nil)
}

var errSignInRequired = errors.New("sign in to export your data")

func (s *Server) export(w http.ResponseWriter, r *http.Request) {
	if !s.session.SignedIn() {
		s.renderLanding(w, http.StatusUnauthorized, errSignInRequired)
		return
	}
	res, err := s.session.Export(r.Context())
	if err != nil {
		s.logger.Warn(r.Context(), "export failed", "error", err.Error())
		s.renderLanding(w, statusFor(err), err)
		return
	}
	s.renderer.render(w, http.StatusOK, "export.html", s.page("Export", "home", nil, res))
}
