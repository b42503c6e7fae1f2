// Package markup builds node trees from YAML documents.
//
// A document is a nested mapping of node specs:
//
//	kind: border_layout
//	children:
//	  - kind: menu_bar
//	    slot: top
//	    children:
//	      - kind: menu
//	        props: {title: File}
//	  - kind: group
//	    slot: center
//	    children:
//	      - {kind: label, id: status, props: {text: Ready}}
//
// Trees are driven through the same core.Build path as hand-written
// builders, so declaration order and post-order attachment hold for
// markup-built trees too.
package markup

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/go-arbor/arbor/pkg/core"
	"github.com/go-arbor/arbor/pkg/errors"
)

// Factory constructs a node of one kind from its markup props.
type Factory func(props map[string]any) (core.Node, error)

// Loader maps kind names to node factories and builds trees from
// documents.
type Loader struct {
	factories map[string]Factory
}

// NewLoader creates an empty Loader. Most callers want [DefaultLoader].
func NewLoader() *Loader {
	return &Loader{factories: make(map[string]Factory)}
}

// Register adds a factory for kind. Registering a kind twice fails with
// already_assigned.
func (l *Loader) Register(kind string, factory Factory) error {
	if _, dup := l.factories[kind]; dup {
		return errors.Newf("markup.Register", errors.KindAlreadyAssigned, "kind %q already registered", kind)
	}
	l.factories[kind] = factory
	return nil
}

// nodeSpec is the decoded form of one markup node.
type nodeSpec struct {
	Kind     string         `yaml:"kind"`
	ID       string         `yaml:"id"`
	Slot     any            `yaml:"slot"`
	Props    map[string]any `yaml:"props"`
	Children []nodeSpec     `yaml:"children"`
}

// Build decodes one document from r and builds its tree under parent.
// A nil parent builds a detached root. All failures carry the markup
// error kind with the path to the failing node.
func (l *Loader) Build(parent core.Container, r io.Reader) (core.Node, error) {
	const op = "markup.Build"

	var spec nodeSpec
	if err := yaml.NewDecoder(r).Decode(&spec); err != nil {
		return nil, errors.New(op, errors.KindMarkup, fmt.Errorf("decoding document: %w", err))
	}
	return l.buildNode(parent, spec, "/"+spec.Kind)
}

func (l *Loader) buildNode(parent core.Container, spec nodeSpec, path string) (core.Node, error) {
	const op = "markup.Build"

	if spec.Kind == "" {
		return nil, errors.Newf(op, errors.KindMarkup, "%s: missing kind", path)
	}
	factory, ok := l.factories[spec.Kind]
	if !ok {
		return nil, errors.Newf(op, errors.KindMarkup, "%s: unknown kind %q", path, spec.Kind)
	}

	built, err := factory(spec.Props)
	if err != nil {
		return nil, errors.New(op, errors.KindInvalidArgument, fmt.Errorf("%s: %w", path, err))
	}

	slot := spec.Slot
	if slot == nil {
		if ds, ok := built.(interface{ DefaultSlot() any }); ok {
			slot = ds.DefaultSlot()
		}
	}

	node, err := core.BuildAt(parent, slot, func() (core.Node, error) {
		return built, nil
	}, func(n core.Node) error {
		if spec.ID != "" {
			n.SetID(spec.ID)
		}
		for k, v := range spec.Props {
			n.Props().Set(k, v)
		}
		if len(spec.Children) == 0 {
			return nil
		}
		container, ok := n.(core.Container)
		if !ok {
			return errors.Newf(op, errors.KindMarkup, "%s: kind %q cannot hold children", path, spec.Kind)
		}
		for i, child := range spec.Children {
			childPath := fmt.Sprintf("%s/children[%d]:%s", path, i, child.Kind)
			if _, err := l.buildNode(container, child, childPath); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, wrapMarkup(op, path, err)
	}
	return node, nil
}

// wrapMarkup tags err with the markup kind unless it already carries a
// specific kind from deeper in the build.
func wrapMarkup(op, path string, err error) error {
	if errors.KindOf(err) != errors.KindUnknown {
		return err
	}
	return errors.New(op, errors.KindMarkup, fmt.Errorf("%s: %w", path, err))
}
