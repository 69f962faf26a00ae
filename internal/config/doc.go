// Package config provides configuration structures and utilities for routemap.
// It defines the command line options, the optional .routemap file, and the
// lookup rules used to find that file.
package config
