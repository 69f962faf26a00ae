package sitemap

import (
	"errors"
	"fmt"
	"io/fs"
	"regexp"

	"github.com/nao1215/routemap/internal/model"
	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"
)

// ErrTemplateDecode is returned when a template is not valid UTF-8 text.
var ErrTemplateDecode = errors.New("template is not valid UTF-8")

// StaticScanner extracts static asset references from templates.
// Matching is case-sensitive and quote delimited (single or double quotes);
// the shortest match ending in .css or .js wins.
type StaticScanner struct {
	css *regexp.Regexp
	js  *regexp.Regexp
}

// NewStaticScanner creates a scanner for assets served below staticURL.
// staticURL is matched literally.
func NewStaticScanner(staticURL string) *StaticScanner {
	prefix := regexp.QuoteMeta(staticURL)
	return &StaticScanner{
		css: regexp.MustCompile(`href=["'](` + prefix + `.*?\.css)["']`),
		js:  regexp.MustCompile(`src=["'](` + prefix + `.*?\.js)["']`),
	}
}

// ScanStaticAssets scans one template with a scanner for staticURL.
func ScanStaticAssets(fsys fs.FS, staticURL, templatePath string) (model.StaticDependencies, error) {
	return NewStaticScanner(staticURL).Scan(fsys, templatePath)
}

// Scan reads templatePath from fsys and returns the CSS and JS references
// in file order. model.TemplateNotFound or a missing file yield empty,
// unscanned dependencies. Read errors other than a missing file and
// invalid UTF-8 are returned.
func (s *StaticScanner) Scan(fsys fs.FS, templatePath string) (model.StaticDependencies, error) {
	if templatePath == model.TemplateNotFound {
		return model.StaticDependencies{}, nil
	}

	data, err := fs.ReadFile(fsys, templatePath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return model.StaticDependencies{}, nil
		}
		return model.StaticDependencies{}, fmt.Errorf("failed to read template %s: %w", templatePath, err)
	}

	text, _, err := transform.Bytes(encoding.UTF8Validator, data)
	if err != nil {
		return model.StaticDependencies{}, fmt.Errorf("%w: %s: %w", ErrTemplateDecode, templatePath, err)
	}

	return model.StaticDependencies{
		CSS: submatches(s.css, text),
		JS:  submatches(s.js, text),
	}, nil
}

// submatches returns the first capture group of every match. The result is
// never nil so that a scanned template is distinguishable from an unscanned one.
func submatches(re *regexp.Regexp, text []byte) []string {
	matches := re.FindAllSubmatch(text, -1)
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		out = append(out, string(m[1]))
	}
	return out
}
