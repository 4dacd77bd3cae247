// Package fs provides file-based access to an HTML corpus.
package fs

import (
	"context"
	"errors"
	iofs "io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/pagegraph"
	ignore "github.com/sabhiram/go-gitignore"
)

// Ensure Walker implements pagegraph.PageWalker at compile time.
var _ pagegraph.PageWalker = (*Walker)(nil)

// pageExtensions are the file extensions of HTML pages, in lookup order.
var pageExtensions = []string{".html", ".htm"}

// Walker discovers HTML pages under a root directory.
type Walker struct {
	// Ignore excludes files and directories whose slash-separated path
	// relative to the root matches. Nil excludes nothing.
	Ignore *ignore.GitIgnore
}

// NewWalker creates a new Walker.
func NewWalker() *Walker {
	return &Walker{}
}

// NewIgnore compiles gitignore-style patterns, optionally read from file
// first. Returns nil if there are no patterns and no file.
func NewIgnore(file string, patterns ...string) (*ignore.GitIgnore, error) {
	if file == "" {
		if len(patterns) == 0 {
			return nil, nil
		}
		return ignore.CompileIgnoreLines(patterns...), nil
	}
	return ignore.CompileIgnoreFileAndLines(file, patterns...)
}

// Walk returns every HTML file under root in lexical order.
// Files match on a case-insensitive .html or .htm extension.
// Unreadable subdirectories are skipped.
func (w *Walker) Walk(ctx context.Context, root string) ([]pagegraph.PageFile, error) {
	info, err := os.Stat(root)
	if errors.Is(err, iofs.ErrNotExist) {
		return nil, pagegraph.Errorf(pagegraph.ENOTFOUND, "directory %q does not exist", root)
	} else if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, pagegraph.Errorf(pagegraph.EINVALID, "%q is not a directory", root)
	}

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}
	// WalkDir does not descend into a root that is a symlink.
	if absRoot, err = filepath.EvalSymlinks(absRoot); err != nil {
		return nil, err
	}

	var files []pagegraph.PageFile
	err = filepath.WalkDir(absRoot, func(path string, d iofs.DirEntry, err error) error {
		if err != nil {
			if path == absRoot {
				return err
			}
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if path == absRoot {
			return nil
		}

		rel, err := filepath.Rel(absRoot, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)

		if d.IsDir() {
			if w.ignored(rel + "/") {
				return filepath.SkipDir
			}
			return nil
		}
		if !isPage(d.Name()) || w.ignored(rel) {
			return nil
		}

		files = append(files, pagegraph.PageFile{
			Path:        path,
			RelativeDir: relativeDir(rel),
			Filename:    pagegraph.TrimExtension(d.Name()),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	return files, nil
}

func (w *Walker) ignored(rel string) bool {
	return w.Ignore != nil && w.Ignore.MatchesPath(rel)
}

func isPage(name string) bool {
	lower := strings.ToLower(name)
	for _, ext := range pageExtensions {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}

// relativeDir returns the directory part of a slash-separated relative
// file path, or "" for files in the root.
func relativeDir(rel string) string {
	idx := strings.LastIndexByte(rel, '/')
	if idx == -1 {
		return ""
	}
	return rel[:idx]
}
