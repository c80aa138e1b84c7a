package web

import (
	"net/http"

	"github.com/dmitrijs2005/studydesk/internal/client/cache"
	"github.com/dmitrijs2005/studydesk/internal/client/views"
	"github.com/dmitrijs2005/studydesk/internal/domain"
	"github.com/gorilla/mux"
)

type wordForm struct {
	Word       string
	Definition string
	Example    string
}

type wordsData struct {
	Dash  views.WordDashboard
	State cache.Status
	Form  wordForm
}

func (s *Server) renderWords(w http.ResponseWriter, status int, f views.WordFilter, form wordForm, err error) {
	coll := s.words.Collection()
	data := wordsData{
		Dash:  views.NewWordDashboard(coll.Snapshot(), f),
		State: coll.Status(),
		Form:  form,
	}
	s.renderer.render(w, status, "words.html", s.page("Words", "words", err, data))
}

func (s *Server) failWords(w http.ResponseWriter, r *http.Request, f views.WordFilter, form wordForm, err error) {
	s.logger.Warn(r.Context(), "words action failed", "path", r.URL.Path, "error", err.Error())
	s.renderWords(w, statusFor(err), f, form, err)
}

func (s *Server) listWords(w http.ResponseWriter, r *http.Request) {
	f := views.ParseWordFilter(r.URL.Query())
	if err := s.words.Collection().Refresh(r.Context()); err != nil {
		s.failWords(w, r, f, wordForm{}, err)
		return
	}
	s.renderWords(w, http.StatusOK, f, wordForm{}, nil)
}

func (s *Server) addWord(w http.ResponseWriter, r *http.Request) {
	f := views.ParseWordFilter(returnValues(r))
	form := wordForm{
		Word:       r.PostFormValue("word"),
		Definition: r.PostFormValue("definition"),
		Example:    r.PostFormValue("example"),
	}

	err := s.words.Add(r.Context(), domain.WordDraft{
		Word:       form.Word,
		Definition: form.Definition,
		Example:    form.Example,
	})
	if err != nil {
		s.failWords(w, r, f, form, err)
		return
	}
	redirect(w, r, "/words", f.Values())
}

func (s *Server) toggleWord(w http.ResponseWriter, r *http.Request) {
	f := views.ParseWordFilter(returnValues(r))
	err := s.words.Collection().Activate(r.Context())
	if err == nil {
		err = s.words.Toggle(r.Context(), mux.Vars(r)["id"])
	}
	if err != nil {
		s.failWords(w, r, f, wordForm{}, err)
		return
	}
	redirect(w, r, "/words", f.Values())
}

func (s *Server) confirmDeleteWord(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	f := views.ParseWordFilter(r.URL.Query())

	if err := s.words.Collection().Activate(r.Context()); err != nil {
		s.failWords(w, r, f, wordForm{}, err)
		return
	}
	sess, err := s.words.BeginEdit(id)
	if err != nil {
		s.failWords(w, r, f, wordForm{}, err)
		return
	}
	sess.Cancel()

	s.renderer.render(w, http.StatusOK, "confirm.html", s.page("Delete word", "words", nil, confirmData{
		Kind:   "word",
		Label:  sess.Original().Word,
		Action: "/words/" + id + "/delete",
		Return: f.Values().Encode(),
		Back:   "/words" + encodeQuery(f.Values()),
	}))
}

func (s *Server) deleteWord(w http.ResponseWriter, r *http.Request) {
	f := views.ParseWordFilter(returnValues(r))
	confirmed := func() bool { return r.PostFormValue("confirm") == "yes" }

	if err := s.words.Delete(r.Context(), mux.Vars(r)["id"], confirmed); err != nil {
		s.failWords(w, r, f, wordForm{}, err)
		return
	}
	redirect(w, r, "/words", f.Values())
}

func (s *Server) refreshWords(w http.ResponseWriter, r *http.Request) {
	f := views.ParseWordFilter(returnValues(r))
	if err := s.words.Collection().Refresh(r.Context()); err != nil {
		s.failWords(w, r, f, wordForm{}, err)
		return
	}
	redirect(w, r, "/words", f.Values())
}
