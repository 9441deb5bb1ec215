package handlers

import (
	"bytes"
	"html/template"
	"net/http"
	"slices"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/kozaktomas/people-page/internal/config"
	"github.com/kozaktomas/people-page/internal/page"
	"github.com/kozaktomas/people-page/internal/people"
	"github.com/kozaktomas/people-page/internal/web/templates"
)

// peoplePath is the base path of the People Page.
const peoplePath = "/people"

// PeopleHandler serves the People Page and its JSON counterpart.
type PeopleHandler struct {
	config *config.Config
	page   *page.Page
	tmpl   *template.Template
	log    *zap.Logger
}

// NewPeopleHandler creates a new people handler
func NewPeopleHandler(cfg *config.Config, p *page.Page, log *zap.Logger) *PeopleHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &PeopleHandler{
		config: cfg,
		page:   p,
		tmpl:   templates.MustParse(),
		log:    log.Named("people"),
	}
}

// Page renders the People Page. The optional {slug} URL parameter highlights
// the matching row.
func (h *PeopleHandler) Page(w http.ResponseWriter, r *http.Request) {
	criteria := people.CriteriaFromQuery(r.URL.Query())
	view := h.page.View(criteria)
	slug := chi.URLParam(r, "slug")

	data := h.buildPageData(view, slug)

	// Render into a buffer so a template error never leaves a half written page.
	var buf bytes.Buffer
	if err := h.tmpl.ExecuteTemplate(&buf, "people", data); err != nil {
		h.log.Error("rendering people page", zap.Error(err))
		http.Error(w, "Something went wrong", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

// List returns the current view as JSON.
func (h *PeopleHandler) List(w http.ResponseWriter, r *http.Request) {
	view := h.page.View(people.CriteriaFromQuery(r.URL.Query()))
	respondJSON(w, http.StatusOK, view)
}

// Get returns a single person by slug with parents resolved.
func (h *PeopleHandler) Get(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	view := h.page.View(people.Criteria{})
	if view.Loading {
		respondError(w, http.StatusServiceUnavailable, errStillLoading)
		return
	}
	if view.Error {
		respondError(w, http.StatusBadGateway, errLoadFailed)
		return
	}
	for _, p := range view.People {
		if p.Slug == slug {
			respondJSON(w, http.StatusOK, p)
			return
		}
	}
	respondError(w, http.StatusNotFound, "person not found")
}

type pageData struct {
	Title          string
	RefreshSeconds int
	View           page.View
	Filters        filtersData
	Columns        []columnData
	Rows           []rowData
}

type linkData struct {
	Label  string
	Href   string
	Active bool
}

type hiddenField struct {
	Name  string
	Value string
}

type filtersData struct {
	Action       string
	Query        string
	Hidden       []hiddenField
	Sex          []linkData
	Centuries    []linkData
	AllCenturies linkData
	Reset        string
}

type columnData struct {
	Label string
	Href  string
	Arrow string
}

type personLinkData struct {
	Name   string
	Href   string
	Female bool
}

type parentCell struct {
	Link *personLinkData
	Name string
}

type rowData struct {
	Person   personLinkData
	Sex      string
	Born     int
	Died     int
	Mother   parentCell
	Father   parentCell
	Selected bool
}

var sexOptions = []struct {
	label string
	value string
}{
	{"All", ""},
	{"Male", people.SexMale},
	{"Female", people.SexFemale},
}

var columnLabels = map[string]string{
	people.SortName: "Name",
	people.SortSex:  "Sex",
	people.SortBorn: "Born",
	people.SortDied: "Died",
}

func (h *PeopleHandler) buildPageData(view page.View, slug string) pageData {
	c := view.Criteria
	base := peoplePath
	if slug != "" {
		base += "/" + slug
	}

	refresh := int(h.config.UI.RefreshInterval.Seconds())
	if refresh < 1 {
		refresh = 1
	}

	data := pageData{
		Title:          h.config.UI.Title,
		RefreshSeconds: refresh,
		View:           view,
		Filters:        buildFilters(c, base, h.config.UI.Centuries),
	}

	for _, field := range people.SortFields {
		data.Columns = append(data.Columns, columnData{
			Label: columnLabels[field],
			Href:  base + c.NextSort(field).Encode(),
			Arrow: sortArrow(c, field),
		})
	}

	search := c.Encode()
	for _, p := range view.People {
		data.Rows = append(data.Rows, rowData{
			Person:   personLink(p, search),
			Sex:      p.Sex,
			Born:     p.Born,
			Died:     p.Died,
			Mother:   parent(p.Mother, p.MotherName, search),
			Father:   parent(p.Father, p.FatherName, search),
			Selected: slug != "" && p.Slug == slug,
		})
	}
	return data
}

func buildFilters(c people.Criteria, base string, centuries []string) filtersData {
	f := filtersData{
		Action: base,
		Query:  c.Query,
		Reset:  base + c.Reset().Encode(),
		AllCenturies: linkData{
			Label:  "All",
			Href:   base + c.WithoutCenturies().Encode(),
			Active: len(c.Centuries) == 0,
		},
	}

	for _, opt := range sexOptions {
		f.Sex = append(f.Sex, linkData{
			Label:  opt.label,
			Href:   base + c.WithSex(opt.value).Encode(),
			Active: c.Sex == opt.value,
		})
	}

	for _, century := range centuries {
		f.Centuries = append(f.Centuries, linkData{
			Label:  century,
			Href:   base + c.ToggleCentury(century).Encode(),
			Active: c.HasCentury(century),
		})
	}

	// The search form replaces the query and keeps every other parameter.
	for name, values := range c.WithQuery("").Values() {
		for _, value := range values {
			f.Hidden = append(f.Hidden, hiddenField{Name: name, Value: value})
		}
	}
	slices.SortStableFunc(f.Hidden, func(a, b hiddenField) int {
		return strings.Compare(a.Name, b.Name)
	})
	return f
}

func sortArrow(c people.Criteria, field string) string {
	switch {
	case c.Sort != field:
		return "↕"
	case c.IsDesc():
		return "▼"
	default:
		return "▲"
	}
}

func personLink(p people.Person, search string) personLinkData {
	return personLinkData{
		Name:   p.Name,
		Href:   peoplePath + "/" + p.Slug + search,
		Female: p.IsFemale(),
	}
}

func parent(resolved *people.Person, name, search string) parentCell {
	if resolved != nil {
		link := personLink(*resolved, search)
		return parentCell{Link: &link, Name: resolved.Name}
	}
	return parentCell{Name: name}
}
