// Package heuristic holds the pure scheduling building blocks: ordering
// policies, the first-fit slot packer and the schedule validator.
//
// Nothing here reads the wall clock or keeps state between calls; the
// reference instant and the work calendar are always passed in.
package heuristic
