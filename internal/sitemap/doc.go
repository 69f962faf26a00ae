// Package sitemap builds the site structure report.
//
// For every leaf route outside the administrative module it resolves the
// handler to a candidate template file and lists the CSS and JS files the
// template references below the static URL prefix.
//
// All file access goes through an fs.FS rooted at the site's base directory,
// so tests can run against testing/fstest.MapFS.
package sitemap
