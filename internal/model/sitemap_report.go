package model

// Report is the result of one sitemap generation.
type Report struct {
	// Records holds one entry per reported route, in route table order.
	Records []Record `json:"records"`

	// Summary aggregates Records.
	Summary Summary `json:"summary"`
}

// Summary counts what a report contains.
type Summary struct {
	// URLs is the number of reported routes.
	URLs int `json:"urls"`

	// TemplatesFound is the number of routes with a template file.
	TemplatesFound int `json:"templates_found"`

	// TemplatesMissing is the number of routes without one.
	TemplatesMissing int `json:"templates_missing"`

	// CSSFiles is the number of CSS references across all templates.
	CSSFiles int `json:"css_files"`

	// JSFiles is the number of JS references across all templates.
	JSFiles int `json:"js_files"`
}

// NewReport builds a report and its summary from records.
func NewReport(records []Record) *Report {
	r := &Report{Records: records}
	if r.Records == nil {
		r.Records = []Record{}
	}

	r.Summary.URLs = len(records)
	for _, rec := range records {
		if rec.HasTemplate() {
			r.Summary.TemplatesFound++
		} else {
			r.Summary.TemplatesMissing++
		}
		r.Summary.CSSFiles += len(rec.StaticDependencies.CSS)
		r.Summary.JSFiles += len(rec.StaticDependencies.JS)
	}
	return r
}
