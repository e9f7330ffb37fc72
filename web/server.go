// Package web serves a localhost-only single-user UI; it intentionally has no
// auth/CSRF protection in this mode.
package web

import (
	"embed"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"strings"
	"time"

	"timecard/period"
	"timecard/storage"
	"timecard/timecard"
)

//go:embed templates/*.html
var templateFS embed.FS

// Server renders the dashboard over the JSON data file. There is no in-memory
// state: every request loads the aggregate fresh and mutations save it back
// wholesale, exactly like one CLI invocation.
type Server struct {
	dataPath string
	mux      *http.ServeMux
	now      func() time.Time
}

func NewServer(dataPath string) http.Handler {
	server := &Server{
		dataPath: dataPath,
		now:      time.Now,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", server.handleDashboard)
	mux.HandleFunc("POST /clock-in", server.handleClockIn)
	mux.HandleFunc("POST /clock-out", server.handleClockOut)
	mux.HandleFunc("POST /entries", server.handleAddEntry)
	server.mux = mux

	return server
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	token := strings.TrimSpace(r.URL.Query().Get("period"))
	if token == "" {
		token = "today"
	}

	resolved, err := period.Resolve(token, s.now())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	data, err := storage.Load(s.dataPath)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	view := buildDashboardView(data, token, resolved, s.now())
	if err := renderTemplate(w, "index.html", view); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (s *Server) handleClockIn(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	data, err := storage.Load(s.dataPath)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if data.ActiveEntry() == nil {
		entry := timecard.NewTimeEntry(
			optionalFormValue(r, "project"),
			optionalFormValue(r, "description"),
		)
		if err := data.AddTimeEntry(entry); err != nil {
			http.Error(w, err.Error(), http.StatusConflict)
			return
		}
		if err := storage.Save(s.dataPath, data); err != nil {
			http.Error(w, fmt.Sprintf("save data: %v", err), http.StatusInternalServerError)
			return
		}
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) handleClockOut(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	data, err := storage.Load(s.dataPath)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if active := data.ActiveEntry(); active != nil {
		if err := active.Close(s.now()); err != nil {
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
			return
		}
		if description := optionalFormValue(r, "description"); description != nil {
			active.SetDescription(*description)
		}
		if err := storage.Save(s.dataPath, data); err != nil {
			http.Error(w, fmt.Sprintf("save data: %v", err), http.StatusInternalServerError)
			return
		}
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) handleAddEntry(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	now := s.now()
	start, err := period.ParseDateTime(r.PostFormValue("start"), now)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	end, err := period.ParseDateTime(r.PostFormValue("end"), now)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	entry, err := timecard.NewManualEntry(
		optionalFormValue(r, "project"),
		optionalFormValue(r, "description"),
		start,
		end,
	)
	if errors.Is(err, timecard.ErrEndNotAfterStart) {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	data, err := storage.Load(s.dataPath)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if err := data.AddTimeEntry(entry); err != nil {
		http.Error(w, err.Error(), http.StatusConflict)
		return
	}
	if err := storage.Save(s.dataPath, data); err != nil {
		http.Error(w, fmt.Sprintf("save data: %v", err), http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func optionalFormValue(r *http.Request, key string) *string {
	value := strings.TrimSpace(r.PostFormValue(key))
	if value == "" {
		return nil
	}
	return &value
}

func renderTemplate(w http.ResponseWriter, pageTemplate string, data any) error {
	tmpl, err := template.New(pageTemplate).Funcs(template.FuncMap{
		"fmtHours": func(value float64) string {
			return fmt.Sprintf("%.2f", value)
		},
	}).ParseFS(templateFS, "templates/"+pageTemplate)
	if err != nil {
		return fmt.Errorf("parse template %s: %w", pageTemplate, err)
	}
	if err := tmpl.ExecuteTemplate(w, pageTemplate, data); err != nil {
		return fmt.Errorf("render template %s: %w", pageTemplate, err)
	}
	return nil
}
