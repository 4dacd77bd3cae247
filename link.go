package pagegraph

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Anchor is a hyperlink found in an HTML page, before resolution.
type Anchor struct {
	Href string
	Text string // trimmed visible text
}

// Link is an anchor resolved to the identifier of the page it targets.
type Link struct {
	Target string
	Text   string
}

// AnchorExtractor extracts hyperlinks from an HTML document.
type AnchorExtractor interface {
	// ExtractAnchors returns every anchor carrying an href, in document order.
	ExtractAnchors(html string) ([]Anchor, error)
}

// ignoredPrefixes name hrefs that can never point at a page of the corpus.
var ignoredPrefixes = []string{
	"http://",
	"https://",
	"mailto:",
	"javascript:",
	"#",
}

// ValidateHref returns an EINVALID error if href is malformed.
// Surrounding whitespace is ignored. Empty hrefs are not malformed; they
// simply resolve to nothing.
func ValidateHref(href string) error {
	href = strings.TrimSpace(href)
	if !utf8.ValidString(href) {
		return Errorf(EINVALID, "href %q is not valid UTF-8", href)
	}
	for _, r := range href {
		if unicode.IsControl(r) {
			return Errorf(EINVALID, "href %q contains control character %U", href, r)
		}
	}
	return nil
}

// NormalizeLink resolves href, found in a page whose relative directory is
// currentDir, to the identifier of the page it points to.
//
// The bool result is false when href cannot name a page of the corpus:
// external and script links, in-page anchors, malformed hrefs, and
// parent references that climb more than one level above the corpus root.
func NormalizeLink(currentDir, href string) (string, bool) {
	href = strings.TrimSpace(href)
	if href == "" || ValidateHref(href) != nil || isIgnoredHref(href) {
		return "", false
	}

	if idx := strings.IndexByte(href, '#'); idx != -1 {
		href = href[:idx]
	}
	href = TrimExtension(href)

	var id string
	switch {
	case strings.HasPrefix(href, "../"):
		resolved, ok := ascend(currentDir, href)
		if !ok {
			return "", false
		}
		id = resolved
	case strings.HasPrefix(href, "./"):
		id = joinDir(currentDir, strings.TrimPrefix(href, "./"))
	default:
		id = joinDir(currentDir, href)
	}

	if id == "" {
		return "", false
	}
	return id, true
}

// TrimExtension removes the extension from the last element of a
// slash-separated path. Leading dots of the element do not start an
// extension, so ".htaccess" and ".." are returned unchanged.
func TrimExtension(p string) string {
	base := p[strings.LastIndexByte(p, '/')+1:]
	name := strings.TrimLeft(base, ".")
	idx := strings.LastIndexByte(name, '.')
	if idx == -1 {
		return p
	}
	return p[:len(p)-len(name)+idx]
}

func isIgnoredHref(href string) bool {
	lower := strings.ToLower(href)
	for _, prefix := range ignoredPrefixes {
		if strings.HasPrefix(lower, prefix) {
			return true
		}
	}
	return false
}

// ascend resolves an href starting with one or more "../" segments.
func ascend(currentDir, href string) (string, bool) {
	parts := strings.Split(href, "/")
	up := 0
	for up < len(parts) && parts[up] == ".." {
		up++
	}

	// An empty directory still counts as one segment, so a root page may
	// climb once and land back in the root.
	dir := strings.Split(currentDir, "/")
	if len(dir) < up {
		return "", false
	}

	segments := make([]string, 0, len(dir)-up+len(parts)-up)
	segments = append(segments, dir[:len(dir)-up]...)
	segments = append(segments, parts[up:]...)
	return strings.Join(segments, "/"), true
}

// joinDir appends rest to dir. A root-absolute rest replaces dir.
func joinDir(dir, rest string) string {
	if dir == "" || strings.HasPrefix(rest, "/") {
		return rest
	}
	return dir + "/" + rest
}
