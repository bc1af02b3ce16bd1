package site

import (
	"bytes"
	"context"
	"html"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Zachkp/portfolio/internal/contact"
	"github.com/Zachkp/portfolio/internal/content"
	"github.com/Zachkp/portfolio/web"
)

func newSite(t *testing.T) *Site {
	t.Helper()
	s, err := New(web.FS, nil)
	require.NoError(t, err)
	return s
}

func renderIndex(t *testing.T, s *Site, form FormView) string {
	t.Helper()
	page, err := s.Page(form)
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, s.RenderPage(&buf, page))
	return buf.String()
}

func TestPageMountsSectionsInOrder(t *testing.T) {
	html := renderIndex(t, newSite(t), NewFormView("", 0))

	last := -1
	for _, id := range Order {
		idx := strings.Index(html, `id="`+id+`"`)
		require.GreaterOrEqual(t, idx, 0, "section %s missing", id)
		assert.Greater(t, idx, last, "section %s out of order", id)
		last = idx
	}
}

func TestNavigationLinksTargetSections(t *testing.T) {
	s := newSite(t)
	page, err := s.Page(NewFormView("", 0))
	require.NoError(t, err)

	require.Len(t, page.Nav, len(content.Navigation))
	html := renderIndex(t, s, NewFormView("", 0))
	for i, item := range content.Navigation {
		assert.Contains(t, string(page.Nav[i]), `href="#`+item.Target+`"`)
		assert.Contains(t, html, `id="`+item.Target+`"`)
	}
}

func TestContactLinksRenderedInOrder(t *testing.T) {
	s := newSite(t)
	page, err := s.Page(NewFormView("", 0))
	require.NoError(t, err)

	require.Len(t, page.ContactLinks, 4)
	for i, entry := range content.ContactInfo {
		assert.Contains(t, html.UnescapeString(string(page.ContactLinks[i])), `href="`+entry.Href+`"`)
		assert.Contains(t, string(page.ContactLinks[i]), entry.Label)
	}

	index := renderIndex(t, s, NewFormView("", 0))
	assert.Equal(t, 4, strings.Count(index, `class="contact-link"`))
}

func TestExperienceAndEducationShowLogos(t *testing.T) {
	s := newSite(t)
	page, err := s.Page(NewFormView("", 0))
	require.NoError(t, err)

	for i, e := range content.WorkHistory {
		assert.Contains(t, string(page.Experience[i]), `<img src="`+e.Logo+`" alt="`+e.Company+` logo"`)
	}
	for i, e := range content.Schooling {
		assert.Contains(t, string(page.Education[i]), `<img src="`+e.Logo+`"`)
	}

	static, err := s.Static()
	require.NoError(t, err)
	_, err = static.Open("logos/target.svg")
	assert.NoError(t, err)
}

func TestPageIsDeterministic(t *testing.T) {
	s := newSite(t)
	a, err := s.Page(NewFormView("", 0))
	require.NoError(t, err)
	b, err := s.Page(NewFormView("", 0))
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestFormView(t *testing.T) {
	v := NewFormView("", 0)
	assert.Equal(t, "/contact", v.Endpoint)
	assert.Equal(t, "/contact/banner", v.BannerEndpoint)
	assert.Equal(t, int64(5000), v.BannerMillis)
	assert.Equal(t, contact.SuccessMessage, v.BannerText)

	v = NewFormView("https://api.example.com/contact", 2*time.Second)
	assert.Equal(t, "https://api.example.com/contact/banner", v.BannerEndpoint)
	assert.Equal(t, int64(2000), v.BannerMillis)
}

func TestContactFormRetainsValuesAndShowsBanner(t *testing.T) {
	s := newSite(t)
	form := NewFormView("", 0)
	form.Submission = contact.Submission{Name: "Jane Doe", Email: "jane@example.com", Message: "Hello"}

	var buf bytes.Buffer
	require.NoError(t, s.Templates().ExecuteTemplate(&buf, "contact-form", form))
	out := buf.String()
	assert.Contains(t, out, `value="Jane Doe"`)
	assert.Contains(t, out, `value="jane@example.com"`)
	assert.Contains(t, out, ">Hello</textarea>")
	assert.NotContains(t, out, contact.SuccessMessage)

	form = NewFormView("", 0)
	form.BannerVisible = true
	buf.Reset()
	require.NoError(t, s.Templates().ExecuteTemplate(&buf, "contact-form", form))
	assert.Contains(t, buf.String(), contact.SuccessMessage)
	assert.Contains(t, buf.String(), `hx-trigger="load delay:5000ms"`)
}

func TestSection(t *testing.T) {
	s := newSite(t)
	page, err := s.Page(NewFormView("", 0))
	require.NoError(t, err)

	html, err := s.Section(content.SectionSkills, page)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(html), `<section id="skills"`))

	_, err = s.Section("nav", page)
	assert.Error(t, err)
}

func TestReloadKeepsPreviousOnError(t *testing.T) {
	fsys := fstest.MapFS{
		"templates/a.html": {Data: []byte(`{{define "x"}}one{{end}}`)},
	}
	s, err := New(fsys, nil)
	require.NoError(t, err)

	fsys["templates/a.html"] = &fstest.MapFile{Data: []byte(`{{define "x"}}{{if}}{{end}}`)}
	require.Error(t, s.Reload())

	var buf bytes.Buffer
	require.NoError(t, s.Templates().ExecuteTemplate(&buf, "x", nil))
	assert.Equal(t, "one", buf.String())
}

func TestExport(t *testing.T) {
	dir := t.TempDir()
	s := newSite(t)

	require.NoError(t, s.Export(dir, ExportOptions{ContactEndpoint: "https://api.example.com/contact"}))

	index, err := os.ReadFile(filepath.Join(dir, "index.html"))
	require.NoError(t, err)
	assert.Contains(t, string(index), `hx-post="https://api.example.com/contact"`)

	_, err = os.Stat(filepath.Join(dir, "static", "resume.pdf"))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(dir, "static", "site.css"))
	assert.NoError(t, err)
}

func TestWatchReloadsTemplates(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "templates"), 0o755))
	file := filepath.Join(dir, "templates", "a.html")
	require.NoError(t, os.WriteFile(file, []byte(`{{define "x"}}v1{{end}}`), 0o644))

	s, err := New(os.DirFS(dir), nil)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Watch(ctx, dir) }()
	defer func() {
		cancel()
		<-done
	}()

	exec := func() string {
		var buf bytes.Buffer
		_ = s.Templates().ExecuteTemplate(&buf, "x", nil)
		return buf.String()
	}

	// let the watcher register before the single write
	time.Sleep(300 * time.Millisecond)
	require.NoError(t, os.WriteFile(file, []byte(`{{define "x"}}v2{{end}}`), 0o644))

	require.Eventually(t, func() bool {
		return exec() == "v2"
	}, 3*time.Second, 50*time.Millisecond)
}
