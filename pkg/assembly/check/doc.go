// Package check verifies finished items against the recipe.
//
// Each Rule looks at one Item and returns a defect error or nil. All runs a set
// of rules and joins their defects; Verify turns the outcome into a Report.
// Nothing here is fatal: a bad item is a finding, not a crash.
package check
