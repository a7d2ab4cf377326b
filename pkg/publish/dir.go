package publish

import (
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/weft-dev/weft/pkg/page"
)

// ErrInvalidPath is returned when a site-relative path is empty,
// absolute, or escapes the output root.
var ErrInvalidPath = errors.New("publish: invalid path")

// Dir writes site files into a local output directory. Scaffolded
// projects render their pages into a Dir; "weft publish" uploads the
// resulting directory.
type Dir struct {
	root string
}

// NewDir returns a Dir rooted at the given output directory. The
// directory is created on first write.
func NewDir(root string) *Dir {
	return &Dir{root: root}
}

// Root returns the output directory.
func (d *Dir) Root() string { return d.root }

// Clean removes the output directory and everything under it, then
// recreates it empty.
func (d *Dir) Clean() error {
	if err := os.RemoveAll(d.root); err != nil {
		return fmt.Errorf("publish: clean %s: %w", d.root, err)
	}
	return os.MkdirAll(d.root, 0755)
}

// WriteFile writes data under the site-relative path, creating parent
// directories as needed. Paths use forward slashes on all platforms.
func (d *Dir) WriteFile(rel string, data []byte) error {
	full, err := d.resolve(rel)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(full), 0755); err != nil {
		return err
	}
	return os.WriteFile(full, data, 0644)
}

// WritePage renders the page and writes the document under the
// site-relative path. Nothing is written when rendering fails.
func (d *Dir) WritePage(rel string, p page.Page) error {
	html, err := p.Render()
	if err != nil {
		return err
	}
	return d.WriteFile(rel, []byte(html))
}

// resolve validates a site-relative path and joins it onto the root.
func (d *Dir) resolve(rel string) (string, error) {
	if rel == "" ||
		strings.IndexByte(rel, 0) != -1 ||
		strings.Contains(rel, "\\") ||
		strings.HasPrefix(rel, "/") ||
		rel != path.Clean(rel) ||
		rel == "." || rel == ".." || strings.HasPrefix(rel, "../") {
		return "", fmt.Errorf("%w %q", ErrInvalidPath, rel)
	}
	return filepath.Join(d.root, filepath.FromSlash(rel)), nil
}
