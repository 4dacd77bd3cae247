package fs

import (
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/fwojciec/pagegraph"
)

// Ensure PageSource implements pagegraph.PageSource at compile time.
var _ pagegraph.PageSource = (*PageSource)(nil)

// PageSource reads pages from the local filesystem.
type PageSource struct{}

// NewPageSource creates a new PageSource.
func NewPageSource() *PageSource {
	return &PageSource{}
}

// LocatePage returns the path of <root>/<dir>/<filename>.html, or of the
// .htm variant when the .html file does not exist.
func (s *PageSource) LocatePage(root, dir, filename string) (string, bool) {
	base := filepath.Join(root, filepath.FromSlash(dir), filename)
	for _, ext := range pageExtensions {
		path := base + ext
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, true
		}
	}
	return "", false
}

// ReadPage reads the whole file at path as UTF-8 text.
// A leading byte order mark is dropped.
func (s *PageSource) ReadPage(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(b) {
		return "", pagegraph.Errorf(pagegraph.EINVALID, "%s is not valid UTF-8", path)
	}
	return strings.TrimPrefix(string(b), "\ufeff"), nil
}
