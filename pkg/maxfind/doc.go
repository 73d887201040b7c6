// Package maxfind finds the maximum of a sequence of signed integers.
//
// An empty sequence has no maximum. FindMax reports that as an Absent
// Result instead of substituting a sentinel, so callers have to handle
// it explicitly.
package maxfind
