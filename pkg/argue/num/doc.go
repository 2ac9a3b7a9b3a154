// Package num validates numeric parameters: sign checks against the
// type's zero value, closed/open/half-open range checks, bound
// comparisons and cross-parameter equality. Each check returns the value
// unchanged on success so calls can be composed.
package num
