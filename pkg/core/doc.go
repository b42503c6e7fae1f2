// Package core provides the node model and the declarative tree builder.
//
// A tree is built from [Node] values owned by [Container] values. Every
// node has at most one parent at a time; attaching a node that already has
// a parent removes it from the former owner first.
//
// Trees are constructed with [Build]: construct the node, run its
// configuration callbacks to completion (nested Build calls inside a
// callback attach grandchildren first), then attach the node to its
// parent. Attachment is therefore post-order relative to configuration and
// follows declaration order among siblings.
//
// # Threading
//
// Construction is single-threaded by contract. The builder is the sole
// mutator of a container's child sequence during a build call; callers
// must not mutate the same container from another goroutine concurrently.
// Background work started from a callback must marshal its results back
// onto the owning goroutine before touching the tree again.
package core
