// Package linkcheck validates relative links in markdown and quarto files.
//
// A scan walks a directory tree, pulls every `[text](target)` target out of
// each .md/.qmd file with a regular expression, ignores external (`://`) and
// in-page (`#`) targets, resolves the rest against the directory of the file
// that contains them, and reports the ones that do not exist on disk.
//
// Broken links are collected for the whole tree and returned together in a
// Report. Read failures abort the scan.
package linkcheck
