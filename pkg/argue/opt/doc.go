// Package opt validates optional values: presence, presence plus a
// predicate, and predicate checks that treat absence as valid.
package opt
