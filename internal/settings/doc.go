// Package settings loads the site settings module that every other part of
// routemap reads: the base directory, the static URL prefix and the root
// URLconf.
//
// A settings module is addressed by its dotted identifier, e.g.
// "simple_multivendor_site.settings", and stored as YAML at the matching
// path below the project root ("simple_multivendor_site/settings.yaml").
//
// Setup replaces the usual process-wide framework initialisation: it returns
// an immutable *Settings value that callers pass explicitly.
package settings
