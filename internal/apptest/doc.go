// Package apptest runs a fully wired App against in-memory console input
// and captured output, for tests of the entrypoints.
package apptest
