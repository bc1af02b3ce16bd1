// Package site is the page shell: it loads templates, renders every section in
// its fixed order, and serves as gin's HTML renderer.
package site

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin/render"
	"go.uber.org/zap"

	"github.com/Zachkp/portfolio/internal/contact"
	"github.com/Zachkp/portfolio/internal/content"
	siterender "github.com/Zachkp/portfolio/internal/render"
)

// Order is the fixed mount order of the page.
var Order = []string{
	"nav",
	content.SectionHome,
	content.SectionAbout,
	content.SectionSkills,
	content.SectionExperience,
	content.SectionProjects,
	content.SectionCertifications,
	content.SectionEducation,
	content.SectionContact,
	"footer",
}

const (
	DefaultContactEndpoint = "/contact"
	DefaultBannerEndpoint  = "/contact/banner"
)

type FormView struct {
	Endpoint       string
	BannerEndpoint string
	Submission     contact.Submission
	BannerVisible  bool
	BannerMillis   int64
	BannerText     string
}

// NewFormView returns the form as it looks on mount: empty, no banner.
func NewFormView(endpoint string, bannerDuration time.Duration) FormView {
	if endpoint == "" {
		endpoint = DefaultContactEndpoint
	}
	if bannerDuration <= 0 {
		bannerDuration = contact.DefaultBannerDuration
	}
	return FormView{
		Endpoint:       endpoint,
		BannerEndpoint: strings.TrimSuffix(endpoint, "/contact") + DefaultBannerEndpoint,
		BannerMillis:   bannerDuration.Milliseconds(),
		BannerText:     contact.SuccessMessage,
	}
}

type Page struct {
	Profile        content.Profile
	AssetBase      string
	Nav            []template.HTML
	Skills         []template.HTML
	Experience     []template.HTML
	Projects       []template.HTML
	Certifications []template.HTML
	Education      []template.HTML
	ContactLinks   []template.HTML
	Form           FormView
	Year           int
}

type Site struct {
	fsys   fs.FS
	logger *zap.Logger

	mu   sync.RWMutex
	tmpl *template.Template
}

func New(fsys fs.FS, logger *zap.Logger) (*Site, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Site{fsys: fsys, logger: logger}
	if err := s.Reload(); err != nil {
		return nil, err
	}
	return s, nil
}

func parse(fsys fs.FS) (*template.Template, error) {
	return template.New("site").Funcs(template.FuncMap{
		"join": strings.Join,
		// content hrefs are trusted literals; tel: links would otherwise be filtered
		"safeURL": func(u string) template.URL { return template.URL(u) },
	}).ParseFS(fsys, "templates/*.html")
}

// Reload re-parses the templates. The previous set stays live if parsing fails.
func (s *Site) Reload() error {
	tmpl, err := parse(s.fsys)
	if err != nil {
		return fmt.Errorf("parse templates: %w", err)
	}
	s.mu.Lock()
	s.tmpl = tmpl
	s.mu.Unlock()
	return nil
}

func (s *Site) Templates() *template.Template {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tmpl
}

// Static returns the static asset tree.
func (s *Site) Static() (fs.FS, error) {
	return fs.Sub(s.fsys, "static")
}

// Page renders every list section. The result depends only on the content
// package and form.
func (s *Site) Page(form FormView) (Page, error) {
	tmpl := s.Templates()
	p := Page{
		Profile: content.Me,
		Form:    form,
		Year:    time.Now().Year(),
	}

	var err error
	if p.Nav, err = siterender.List(tmpl, "nav-link", content.Navigation); err != nil {
		return Page{}, err
	}
	if p.Skills, err = siterender.List(tmpl, "skill-entry", content.Skills); err != nil {
		return Page{}, err
	}
	if p.Experience, err = siterender.List(tmpl, "experience-entry", content.WorkHistory); err != nil {
		return Page{}, err
	}
	if p.Projects, err = siterender.List(tmpl, "project-entry", content.Projects); err != nil {
		return Page{}, err
	}
	if p.Certifications, err = siterender.List(tmpl, "certification-entry", content.Certifications); err != nil {
		return Page{}, err
	}
	if p.Education, err = siterender.List(tmpl, "education-entry", content.Schooling); err != nil {
		return Page{}, err
	}
	if p.ContactLinks, err = siterender.List(tmpl, "contact-link", content.ContactInfo); err != nil {
		return Page{}, err
	}
	return p, nil
}

func (s *Site) RenderPage(w io.Writer, page Page) error {
	return s.Templates().ExecuteTemplate(w, "index.html", page)
}

// Section renders one section by anchor id, for HTMX partial loads.
func (s *Site) Section(id string, page Page) (template.HTML, error) {
	if !IsSection(id) {
		return "", fmt.Errorf("unknown section %q", id)
	}
	var buf bytes.Buffer
	if err := s.Templates().ExecuteTemplate(&buf, "section-"+id, page); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}

func IsSection(id string) bool {
	for _, item := range content.Navigation {
		if item.Target == id {
			return true
		}
	}
	return false
}

// Instance implements gin's render.HTMLRender against the live template set.
func (s *Site) Instance(name string, data any) render.Render {
	return render.HTML{
		Template: s.Templates(),
		Name:     name,
		Data:     data,
	}
}
