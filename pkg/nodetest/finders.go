// Package nodetest provides tree traversal and finders for asserting on
// built node trees in tests.
package nodetest

import (
	"fmt"
	"reflect"

	"github.com/go-arbor/arbor/pkg/core"
)

// Finder locates nodes in a tree.
type Finder interface {
	// Evaluate returns all matching nodes under root (depth-first
	// pre-order, root included).
	Evaluate(root core.Node) []core.Node
	// Description returns a human-readable description for error messages.
	Description() string
}

// FinderResult wraps finder results with convenient accessors.
type FinderResult struct {
	nodes  []core.Node
	finder Finder
}

// Find evaluates finder against root.
func Find(root core.Node, finder Finder) FinderResult {
	return FinderResult{nodes: finder.Evaluate(root), finder: finder}
}

// First returns the first match. Panics if no matches.
func (r FinderResult) First() core.Node {
	if len(r.nodes) == 0 {
		panic(fmt.Sprintf("finder found no nodes: %s", r.describe()))
	}
	return r.nodes[0]
}

// FirstOrNil returns the first match, or nil if none.
func (r FinderResult) FirstOrNil() core.Node {
	if len(r.nodes) == 0 {
		return nil
	}
	return r.nodes[0]
}

// At returns the match at index. Panics if out of range.
func (r FinderResult) At(index int) core.Node {
	if index < 0 || index >= len(r.nodes) {
		panic(fmt.Sprintf("finder index %d out of range (found %d): %s", index, len(r.nodes), r.describe()))
	}
	return r.nodes[index]
}

// All returns all matches in traversal order.
func (r FinderResult) All() []core.Node {
	return r.nodes
}

// Count returns the number of matches.
func (r FinderResult) Count() int {
	return len(r.nodes)
}

// Exists returns true if at least one match was found.
func (r FinderResult) Exists() bool {
	return len(r.nodes) > 0
}

func (r FinderResult) describe() string {
	if r.finder == nil {
		return "unknown"
	}
	return r.finder.Description()
}

// --- Concrete finders ---

type typeFinder struct {
	nodeType reflect.Type
	typeName string
}

func (f *typeFinder) Evaluate(root core.Node) []core.Node {
	return collectMatches(root, func(n core.Node) bool {
		return reflect.TypeOf(n) == f.nodeType
	})
}

func (f *typeFinder) Description() string {
	return fmt.Sprintf("ByType(%s)", f.typeName)
}

// ByType returns a finder that matches nodes of type T.
func ByType[T core.Node]() Finder {
	t := reflect.TypeOf((*T)(nil)).Elem()
	return &typeFinder{nodeType: t, typeName: t.String()}
}

type idFinder struct {
	id string
}

func (f *idFinder) Evaluate(root core.Node) []core.Node {
	return collectMatches(root, func(n core.Node) bool {
		return n.ID() == f.id
	})
}

func (f *idFinder) Description() string {
	return fmt.Sprintf("ByID(%q)", f.id)
}

// ByID returns a finder that matches nodes with the given identity.
func ByID(id string) Finder {
	return &idFinder{id: id}
}

type predicateFinder struct {
	predicate   func(core.Node) bool
	description string
}

func (f *predicateFinder) Evaluate(root core.Node) []core.Node {
	return collectMatches(root, f.predicate)
}

func (f *predicateFinder) Description() string {
	if f.description != "" {
		return f.description
	}
	return "ByPredicate(custom)"
}

// ByPredicate returns a finder that matches nodes satisfying fn.
func ByPredicate(description string, fn func(core.Node) bool) Finder {
	return &predicateFinder{predicate: fn, description: description}
}

func collectMatches(root core.Node, match func(core.Node) bool) []core.Node {
	var out []core.Node
	Walk(root, func(n core.Node) bool {
		if match(n) {
			out = append(out, n)
		}
		return true
	})
	return out
}

// Walk visits root and its descendants depth-first pre-order, children
// in attachment order. Returning false from visit stops the walk.
func Walk(root core.Node, visit func(core.Node) bool) {
	walk(root, visit)
}

func walk(n core.Node, visit func(core.Node) bool) bool {
	if n == nil {
		return true
	}
	if !visit(n) {
		return false
	}
	if c, ok := n.(core.Container); ok {
		for _, child := range c.Children() {
			if !walk(child, visit) {
				return false
			}
		}
	}
	return true
}
