// Package test contains helper functions to remove common boilerplate and
// make testing easier.
//
// The Expect*() functions report an error and allow the test to continue.
// The Demand*() functions stop the test immediately on failure.
//
// Success and failure are judged on the type of the value. A bool is a
// success when true, an error when nil.
package test
