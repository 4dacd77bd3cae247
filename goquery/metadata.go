// Package goquery implements HTML extraction on top of PuerkitoBio/goquery.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/pagegraph"
)

// Ensure MetadataExtractor implements pagegraph.MetadataExtractor at compile time.
var _ pagegraph.MetadataExtractor = (*MetadataExtractor)(nil)

// metaFields maps recognized meta names to the field they populate.
// Names not listed here are ignored.
var metaFields = map[string]func(meta *pagegraph.PageMetadata, content string){
	"keywords":    func(meta *pagegraph.PageMetadata, content string) { meta.Keywords = content },
	"description": func(meta *pagegraph.PageMetadata, content string) { meta.Description = content },
	"module":      func(meta *pagegraph.PageMetadata, content string) { meta.Module = content },
}

// MetadataExtractor reads page metadata from meta and title elements.
type MetadataExtractor struct{}

// NewMetadataExtractor creates a new MetadataExtractor.
func NewMetadataExtractor() *MetadataExtractor {
	return &MetadataExtractor{}
}

// ExtractMetadata parses HTML and returns its metadata.
// Meta names match case-insensitively and the last matching meta element
// wins. The title is the text of the first title element.
func (e *MetadataExtractor) ExtractMetadata(html string) (*pagegraph.PageMetadata, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, pagegraph.Errorf(pagegraph.EINVALID, "failed to parse HTML: %v", err)
	}

	meta := &pagegraph.PageMetadata{}
	doc.Find("meta").Each(func(_ int, sel *goquery.Selection) {
		name, _ := sel.Attr("name")
		set, ok := metaFields[strings.ToLower(name)]
		if !ok {
			return
		}
		content, _ := sel.Attr("content")
		set(meta, content)
	})

	if title := doc.Find("title").First(); title.Length() > 0 {
		meta.Title = title.Text()
	}

	return meta, nil
}
