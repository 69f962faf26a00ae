// Package report renders sitemap reports.
//
// This package contains writers for different output formats:
//   - SimpleWriter: the console report, kept byte-for-byte stable
//   - JSONWriter: structured JSON output for tool integration
//   - MarkdownWriter: tables and a chart for documentation
//
// Writers implement the Writer interface, allowing them to be used
// interchangeably.
package report
