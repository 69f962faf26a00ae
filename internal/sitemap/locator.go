package sitemap

import (
	"io/fs"
	"strings"

	"github.com/nao1215/routemap/internal/model"
)

// viewSuffix is stripped from handler names when guessing template names,
// so "home_view" also matches "home.html".
const viewSuffix = "_view"

// TemplateCandidates returns the template paths tried for a handler, in
// priority order. Paths are slash separated and relative to the base directory.
func TemplateCandidates(handlerName, moduleName string) []string {
	appName, _, _ := strings.Cut(moduleName, ".")
	stem := strings.TrimSuffix(handlerName, viewSuffix)

	return []string{
		appName + "/templates/" + stem + ".html",
		"templates/" + appName + "/" + stem + ".html",
		appName + "/templates/" + handlerName + ".html",
		"templates/" + handlerName + ".html",
	}
}

// LocateTemplate returns the first candidate from TemplateCandidates that
// exists in fsys, or model.TemplateNotFound. Any Stat error counts as
// "does not exist".
func LocateTemplate(fsys fs.FS, handlerName, moduleName string) string {
	for _, path := range TemplateCandidates(handlerName, moduleName) {
		if _, err := fs.Stat(fsys, path); err == nil {
			return path
		}
	}
	return model.TemplateNotFound
}
