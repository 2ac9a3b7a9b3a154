// Package str validates text parameters: blankness, byte length and
// regular-expression matching, plus canonical UUID form. Checks return
// the input string unchanged on success.
package str
