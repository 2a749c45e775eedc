package jot

import _ "embed"

// Version is the current version of jot, embedded from the VERSION file.
//
//go:embed VERSION
var Version string
