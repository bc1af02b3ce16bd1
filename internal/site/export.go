package site

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"
)

type ExportOptions struct {
	// ContactEndpoint is where the exported form posts, usually the API
	// server's absolute /contact URL.
	ContactEndpoint string
	BannerDuration  time.Duration
}

// Export writes index.html and the static tree into dir for static hosting.
func (s *Site) Export(dir string, opts ExportOptions) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	page, err := s.Page(NewFormView(opts.ContactEndpoint, opts.BannerDuration))
	if err != nil {
		return err
	}

	f, err := os.Create(filepath.Join(dir, "index.html"))
	if err != nil {
		return err
	}
	if err := s.RenderPage(f, page); err != nil {
		f.Close()
		return fmt.Errorf("render index: %w", err)
	}
	if err := f.Close(); err != nil {
		return err
	}

	static, err := s.Static()
	if err != nil {
		return err
	}
	return fs.WalkDir(static, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		target := filepath.Join(dir, "static", filepath.FromSlash(path))
		if d.IsDir() {
			return os.MkdirAll(target, 0o755)
		}
		data, err := fs.ReadFile(static, path)
		if err != nil {
			return err
		}
		return os.WriteFile(target, data, 0o644)
	})
}
