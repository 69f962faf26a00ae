// Package main provides the entry point for the routemap CLI.
//
// routemap prints the structure of a Django site: every routed URL with its
// view, the template that renders it and the static files that template
// pulls in.
//
// Usage:
//
//	routemap
//	routemap --settings shop.settings --json
//	routemap resolve /vendor/7/
//
// See --help for all available options.
package main

// main is the entry point for routemap.
func main() {
	Execute()
}
