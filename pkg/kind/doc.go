// Package kind names scalar data types and labels Go values with them.
package kind
