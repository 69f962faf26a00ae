package model

import "encoding/json"

// TemplateNotFound is reported as the template of a route when no candidate
// template file exists.
const TemplateNotFound = "Template not found (admin views use built-in templates)"

// Record describes one non-administrative route.
type Record struct {
	// URL is the full route pattern, e.g. "vendor/login/".
	URL string `json:"url"`

	// View is the qualified handler name, "module.handler".
	View string `json:"view"`

	// Template is the template path relative to the base directory,
	// or TemplateNotFound.
	Template string `json:"template"`

	// StaticDependencies lists the assets the template references.
	StaticDependencies StaticDependencies `json:"static_dependencies"`
}

// HasTemplate reports whether a template file was found for the route.
func (r Record) HasTemplate() bool {
	return r.Template != TemplateNotFound
}

// StaticDependencies holds static asset URLs in the order they appear in a
// template. Both slices are nil when the template was not scanned; a scanned
// template without matches has non-nil empty slices.
type StaticDependencies struct {
	CSS []string `json:"css"`
	JS  []string `json:"js"`
}

// Scanned reports whether the dependencies come from a scanned template.
func (d StaticDependencies) Scanned() bool {
	return d.CSS != nil || d.JS != nil
}

// MarshalJSON renders an unscanned value as {} and a scanned one with both
// keys present.
func (d StaticDependencies) MarshalJSON() ([]byte, error) {
	if !d.Scanned() {
		return []byte("{}"), nil
	}

	type scanned StaticDependencies
	out := scanned(d)
	if out.CSS == nil {
		out.CSS = []string{}
	}
	if out.JS == nil {
		out.JS = []string{}
	}
	return json.Marshal(out)
}
