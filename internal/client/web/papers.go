package web

import (
	"net/http"

	"github.com/dmitrijs2005/studydesk/internal/client/cache"
	"github.com/dmitrijs2005/studydesk/internal/client/views"
	"github.com/dmitrijs2005/studydesk/internal/domain"
	"github.com/gorilla/mux"
)

type paperForm struct {
	Title string
	Link  string
	Note  string
	Tags  string
}

func readPaperForm(r *http.Request) paperForm {
	return paperForm{
		Title: r.PostFormValue("title"),
		Link:  r.PostFormValue("link"),
		Note:  r.PostFormValue("note"),
		Tags:  r.PostFormValue("tags"),
	}
}

// paperFormOf fills the edit inputs from a stored paper.
func paperFormOf(p domain.Paper) paperForm {
	return paperForm{Title: p.Title, Link: p.Link, Note: p.Note, Tags: joinTags(p.Tags)}
}

type papersData struct {
	Dash     views.PaperDashboard
	State    cache.Status
	Form     paperForm
	EditID   string
	EditForm paperForm
}

// renderPapers renders the papers view. With a non-empty editID, form holds
// the inline edit inputs for that paper; otherwise it refills the add form.
func (s *Server) renderPapers(w http.ResponseWriter, status int, f views.PaperFilter, editID string, form paperForm, err error) {
	coll := s.papers.Collection()
	data := papersData{
		Dash:  views.NewPaperDashboard(coll.Snapshot(), f, s.now(), s.loc),
		State: coll.Status(),
	}
	if editID != "" {
		data.EditID = editID
		data.EditForm = form
	} else {
		data.Form = form
	}
	s.renderer.render(w, status, "papers.html", s.page("Papers", "papers", err, data))
}

func (s *Server) failPapers(w http.ResponseWriter, r *http.Request, f views.PaperFilter, editID string, form paperForm, err error) {
	s.logger.Warn(r.Context(), "papers action failed", "path", r.URL.Path, "error", err.Error())
	s.renderPapers(w, statusFor(err), f, editID, form, err)
}

func (s *Server) listPapers(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	f := views.ParsePaperFilter(q)
	if err := s.papers.Collection().Refresh(r.Context()); err != nil {
		s.failPapers(w, r, f, "", paperForm{}, err)
		return
	}

	var editID string
	var form paperForm
	if sess, err := s.papers.BeginEdit(q.Get("edit")); err == nil {
		editID, form = q.Get("edit"), paperFormOf(sess.Original())
	}
	s.renderPapers(w, http.StatusOK, f, editID, form, nil)
}

func (s *Server) addPaper(w http.ResponseWriter, r *http.Request) {
	f := views.ParsePaperFilter(returnValues(r))
	form := readPaperForm(r)

	err := s.papers.Add(r.Context(), domain.PaperDraft{
		Title: form.Title,
		Link:  form.Link,
		Note:  form.Note,
		Tags:  domain.ParseTags(form.Tags),
	})
	if err != nil {
		s.failPapers(w, r, f, "", form, err)
		return
	}
	redirect(w, r, "/papers", f.Values())
}

func (s *Server) togglePaper(w http.ResponseWriter, r *http.Request) {
	f := views.ParsePaperFilter(returnValues(r))
	err := s.papers.Collection().Activate(r.Context())
	if err == nil {
		err = s.papers.Toggle(r.Context(), mux.Vars(r)["id"])
	}
	if err != nil {
		s.failPapers(w, r, f, "", paperForm{}, err)
		return
	}
	redirect(w, r, "/papers", f.Values())
}

func (s *Server) editPaper(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	f := views.ParsePaperFilter(returnValues(r))
	form := readPaperForm(r)

	var sess *cache.EditSession[domain.Paper, domain.PaperDraft, domain.PaperPatch]
	err := s.papers.Collection().Activate(r.Context())
	if err == nil {
		sess, err = s.papers.BeginEdit(id)
	}
	if err == nil {
		tags := domain.ParseTags(form.Tags)
		err = sess.Save(r.Context(), domain.PaperPatch{
			Title: &form.Title,
			Link:  &form.Link,
			Note:  &form.Note,
			Tags:  &tags,
		})
	}
	if err != nil {
		s.failPapers(w, r, f, id, form, err)
		return
	}
	redirect(w, r, "/papers", f.Values())
}

func (s *Server) confirmDeletePaper(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	f := views.ParsePaperFilter(r.URL.Query())

	if err := s.papers.Collection().Activate(r.Context()); err != nil {
		s.failPapers(w, r, f, "", paperForm{}, err)
		return
	}
	sess, err := s.papers.BeginEdit(id)
	if err != nil {
		s.failPapers(w, r, f, "", paperForm{}, err)
		return
	}
	sess.Cancel()

	s.renderer.render(w, http.StatusOK, "confirm.html", s.page("Delete paper", "papers", nil, confirmData{
		Kind:   "paper",
		Label:  sess.Original().Title,
		Action: "/papers/" + id + "/delete",
		Return: f.Values().Encode(),
		Back:   "/papers" + encodeQuery(f.Values()),
	}))
}

func (s *Server) deletePaper(w http.ResponseWriter, r *http.Request) {
	f := views.ParsePaperFilter(returnValues(r))
	confirmed := func() bool { return r.PostFormValue("confirm") == "yes" }

	if err := s.papers.Delete(r.Context(), mux.Vars(r)["id"], confirmed); err != nil {
		s.failPapers(w, r, f, "", paperForm{}, err)
		return
	}
	redirect(w, r, "/papers", f.Values())
}

func (s *Server) refreshPapers(w http.ResponseWriter, r *http.Request) {
	f := views.ParsePaperFilter(returnValues(r))
	if err := s.papers.Collection().Refresh(r.Context()); err != nil {
		s.failPapers(w, r, f, "", paperForm{}, err)
		return
	}
	redirect(w, r, "/papers", f.Values())
}
