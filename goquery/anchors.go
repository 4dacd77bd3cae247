package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/pagegraph"
)

// Ensure AnchorExtractor implements pagegraph.AnchorExtractor at compile time.
var _ pagegraph.AnchorExtractor = (*AnchorExtractor)(nil)

// AnchorExtractor collects the anchors of an HTML page.
type AnchorExtractor struct{}

// NewAnchorExtractor creates a new AnchorExtractor.
func NewAnchorExtractor() *AnchorExtractor {
	return &AnchorExtractor{}
}

// ExtractAnchors parses HTML and returns every anchor with an href
// attribute in document order. Hrefs are returned as written; resolution
// is left to pagegraph.NormalizeLink.
func (e *AnchorExtractor) ExtractAnchors(html string) ([]pagegraph.Anchor, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, pagegraph.Errorf(pagegraph.EINVALID, "failed to parse HTML: %v", err)
	}

	var anchors []pagegraph.Anchor
	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, _ := sel.Attr("href")
		anchors = append(anchors, pagegraph.Anchor{
			Href: href,
			Text: strings.TrimSpace(sel.Text()),
		})
	})

	return anchors, nil
}
