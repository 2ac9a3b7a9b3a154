// Package coll validates slice parameters: emptiness, element count and
// element-level presence. Length checks mirror the str package but count
// elements rather than bytes.
package coll
