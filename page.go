package pagegraph

import (
	"context"
	"io"
)

// PageFile is an HTML file discovered under a corpus root.
type PageFile struct {
	// Path is the absolute path of the file.
	Path string

	// RelativeDir is the slash-separated directory of the file relative
	// to the root. It is empty for files directly in the root.
	RelativeDir string

	// Filename is the base name without its extension.
	Filename string
}

// ID returns the page identifier of the file.
func (f PageFile) ID() string {
	return PageID(f.RelativeDir, f.Filename)
}

// PageMetadata holds the metadata extracted from a single HTML page.
// The zero value is the default for pages that cannot be read or parsed.
type PageMetadata struct {
	Keywords    string
	Description string
	Module      string
	Title       string
}

// PageRecord is one row of the page table.
type PageRecord struct {
	RelativeDir string
	Filename    string
	Keywords    string
	Description string
	Module      string
	Title       string
}

// NewPageRecord combines a discovered file with its metadata.
func NewPageRecord(file PageFile, meta PageMetadata) *PageRecord {
	return &PageRecord{
		RelativeDir: file.RelativeDir,
		Filename:    file.Filename,
		Keywords:    meta.Keywords,
		Description: meta.Description,
		Module:      meta.Module,
		Title:       meta.Title,
	}
}

// ID returns the page identifier of the record.
func (r *PageRecord) ID() string {
	return PageID(r.RelativeDir, r.Filename)
}

// PageID builds the identifier of a page from its relative directory and
// its extension-less filename.
//
// The join is not injective: dir "a/b" with filename "c" and dir "a" with
// filename "b/c" share the identifier "a/b/c". Filenames produced by a
// directory walk never contain a slash, so the collision only arises from
// hand-edited page tables.
func PageID(dir, filename string) string {
	if dir == "" {
		return filename
	}
	return dir + "/" + filename
}

// PageWalker discovers the HTML pages of a corpus.
type PageWalker interface {
	// Walk returns every HTML file under root in a stable order.
	// Returns ENOTFOUND if root does not exist and EINVALID if it is not
	// a directory. Both are reported before any file is visited.
	Walk(ctx context.Context, root string) ([]PageFile, error)
}

// PageSource reads HTML pages from the corpus.
type PageSource interface {
	// LocatePage returns the path of the page stored at
	// <root>/<dir>/<filename>.html, falling back to the .htm extension.
	// The bool result is false if neither file exists.
	LocatePage(root, dir, filename string) (string, bool)

	// ReadPage returns the full text of the page at path.
	// Returns EINVALID if the content is not valid UTF-8.
	ReadPage(path string) (string, error)
}

// MetadataExtractor extracts page metadata from an HTML document.
type MetadataExtractor interface {
	// ExtractMetadata returns the keywords, description, module and title
	// of the document. Absent fields are empty strings.
	ExtractMetadata(html string) (*PageMetadata, error)
}

// PageTableWriter writes page records as a page table.
type PageTableWriter interface {
	WritePageTable(w io.Writer, records []*PageRecord) error
}

// PageTableReader reads page records from a page table.
type PageTableReader interface {
	// ReadPageTable returns the records in table order.
	// Returns EINVALID if the table is malformed.
	ReadPageTable(r io.Reader) ([]*PageRecord, error)
}
