package wiring_test

import (
	"testing"

	"github.com/grindlemire/graft"
)

// TestGraftDependencies checks that every node declaring a dependency
// actually uses it, and every used dependency is declared.
func TestGraftDependencies(t *testing.T) {
	// graft.AssertDepsValid infers the dependency ID from the package name
	// of the interface used in Dep[T]. With many distinct nodes implementing
	// interfaces from the shared ports package it expects a node named
	// "ports", so the static check cannot apply here.
	t.Skip("Graft static validation cannot handle a shared ports package")
	graft.AssertDepsValid(t, "../../internal")
}
