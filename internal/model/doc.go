// Package model defines the data structures shared by the sitemap generator
// and the report writers.
//
// This package contains the following main types:
//   - Record: one reported route with its view, template and static assets
//   - StaticDependencies: the CSS and JS files a template references
//   - Report: all records plus a derived Summary
package model
