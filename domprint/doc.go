// Package domprint writes domparser trees out: as an indented outline, as
// markup, or as JSON and YAML documents.
package domprint
