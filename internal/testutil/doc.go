// Package testutil holds small helpers shared by tests across packages. It
// depends on nothing inside the module, so any package may import it from
// its own tests.
package testutil
