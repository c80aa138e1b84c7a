package web

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dmitrijs2005/studydesk/internal/client/cache"
	"github.com/dmitrijs2005/studydesk/internal/client/client"
	"github.com/dmitrijs2005/studydesk/internal/client/views"
	"github.com/dustin/go-humanize"
	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

//go:embed templates/*.html
var templateFS embed.FS

var pages = []string{"landing.html", "papers.html", "words.html", "confirm.html", "login.html", "export.html"}

// page is the data every template receives.
type page struct {
	Title    string
	Nav      string
	SignedIn bool
	Error    string
	Data     any
}

type renderer struct {
	pages  map[string]*template.Template
	md     goldmark.Markdown
	policy *bluemonday.Policy
	now    func() time.Time
}

func newRenderer(now func() time.Time) (*renderer, error) {
	r := &renderer{
		pages:  make(map[string]*template.Template, len(pages)),
		md:     goldmark.New(goldmark.WithExtensions(extension.GFM)),
		policy: bluemonday.UGCPolicy(),
		now:    now,
	}

	funcs := template.FuncMap{
		"markdown": r.markdown,
		"ago":      r.ago,
		"pct":      func(f float64) string { return fmt.Sprintf("%.0f%%", f) },
		"bar":      barHeight,
		"day":      func(t time.Time) string { return t.Format("Jan 2") },
		"query":    encodeQuery,
		"editLink": editLink,
	}

	for _, name := range pages {
		t, err := template.New("layout.html").Funcs(funcs).ParseFS(templateFS, "templates/layout.html", "templates/"+name)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", name, err)
		}
		r.pages[name] = t
	}
	return r, nil
}

// markdown renders a note to sanitized HTML.
func (r *renderer) markdown(src string) template.HTML {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(src), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(src))
	}
	return template.HTML(r.policy.SanitizeBytes(buf.Bytes()))
}

func (r *renderer) ago(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return humanize.RelTime(t, r.now(), "ago", "from now")
}

func barHeight(count, peak int) int {
	if peak <= 0 {
		return 0
	}
	return count * 100 / peak
}

func encodeQuery(v url.Values) string {
	if len(v) == 0 {
		return ""
	}
	return "?" + v.Encode()
}

// editLink opens the inline edit form for id, keeping the filter.
func editLink(f views.PaperFilter, id string) string {
	v := f.Values()
	v.Set("edit", id)
	return "/papers?" + v.Encode()
}

func joinTags(tags []string) string { return strings.Join(tags, ", ") }

func (r *renderer) render(w http.ResponseWriter, status int, name string, p page) {
	t, ok := r.pages[name]
	if !ok {
		http.Error(w, "unknown page "+name, http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout.html", p); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

// statusFor picks the HTTP status a failed action is rendered with.
func statusFor(err error) int {
	switch {
	case errors.Is(err, cache.ErrInvalidDraft), errors.Is(err, client.ErrInvalid):
		return http.StatusUnprocessableEntity
	case errors.Is(err, client.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, cache.ErrUnknownID), errors.Is(err, client.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, cache.ErrNotConfirmed):
		return http.StatusBadRequest
	default:
		return http.StatusBadGateway
	}
}
