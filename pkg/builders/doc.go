// Package builders provides typed builder functions for the element
// kinds in package elements. Each builder constructs its element,
// applies the configuration callbacks, attaches the result to the
// parent, and returns it, with the attachment ordering guarantees of
// core.Build: configuration runs to completion before attachment, and
// siblings attach in call order.
//
// builders_gen.go is produced by the arbor CLI from the arbor.yaml
// manifest at the repository root. Regenerate with:
//
//	arbor gen
package builders
