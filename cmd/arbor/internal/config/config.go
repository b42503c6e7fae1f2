// Package config loads the arbor.yaml generation manifest and resolves
// project metadata from go.mod.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/mod/modfile"
	"gopkg.in/yaml.v3"
)

// Manifest represents the arbor.yaml generation manifest.
type Manifest struct {
	// Package is the package name of the generated file.
	Package string `yaml:"package"`
	// Output is the path of the generated file, relative to the project root.
	Output string `yaml:"output"`
	// ElementsImport is the import path of the package defining the
	// element kinds. Defaults to <module>/pkg/elements.
	ElementsImport string `yaml:"elements_import,omitempty"`
	// Kinds lists the element kinds to generate builders for.
	Kinds []Kind `yaml:"kinds"`
}

// Kind describes one element kind in the manifest.
type Kind struct {
	// Name is the exported builder function name, e.g. "Group".
	Name string `yaml:"name"`
	// Ctor is the constructor function name. Defaults to New<Name>.
	Ctor string `yaml:"ctor,omitempty"`
	// CtorErr marks constructors returning (T, error).
	CtorErr bool `yaml:"ctor_err,omitempty"`
	// Args lists constructor arguments, forwarded by the builder.
	Args []Arg `yaml:"args,omitempty"`
	// SlotArg names the constructor argument used as the attachment
	// slot (e.g. a tab's title). Empty means the default slot.
	SlotArg string `yaml:"slot_arg,omitempty"`
	// At additionally generates a <Name>At variant taking an explicit slot.
	At bool `yaml:"at,omitempty"`
}

// Arg is one constructor argument.
type Arg struct {
	Name string `yaml:"name"`
	Type string `yaml:"type"`
}

// Load reads and validates the manifest at path.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", filepath.Base(path), err)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
	}

	if m.Package == "" {
		m.Package = "builders"
	}
	if m.Output == "" {
		m.Output = filepath.Join("pkg", m.Package, m.Package+"_gen.go")
	}
	if len(m.Kinds) == 0 {
		return nil, fmt.Errorf("%s declares no kinds", filepath.Base(path))
	}
	for i := range m.Kinds {
		k := &m.Kinds[i]
		if k.Name == "" {
			return nil, fmt.Errorf("kind %d is missing a name", i)
		}
		if k.Ctor == "" {
			k.Ctor = "New" + k.Name
		}
		if k.SlotArg != "" && !hasArg(k.Args, k.SlotArg) {
			return nil, fmt.Errorf("kind %s: slot_arg %q is not a declared arg", k.Name, k.SlotArg)
		}
	}
	return &m, nil
}

func hasArg(args []Arg, name string) bool {
	for _, a := range args {
		if a.Name == name {
			return true
		}
	}
	return false
}

// Resolved contains the manifest plus project metadata.
type Resolved struct {
	Root           string
	ModulePath     string
	Manifest       *Manifest
	ElementsImport string
}

// Resolve loads arbor.yaml from dir and fills in module-derived defaults.
func Resolve(dir string) (*Resolved, error) {
	manifest, err := Load(filepath.Join(dir, "arbor.yaml"))
	if err != nil {
		return nil, err
	}

	module, err := ModulePath(dir)
	if err != nil {
		return nil, err
	}

	elementsImport := strings.TrimSpace(manifest.ElementsImport)
	if elementsImport == "" {
		elementsImport = module + "/pkg/elements"
	}

	return &Resolved{
		Root:           dir,
		ModulePath:     module,
		Manifest:       manifest,
		ElementsImport: elementsImport,
	}, nil
}

// ModulePath reads the module path from go.mod in dir.
func ModulePath(dir string) (string, error) {
	path := filepath.Join(dir, "go.mod")
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read go.mod: %w", err)
	}
	module := modfile.ModulePath(data)
	if module == "" {
		return "", errors.New("go.mod has no module directive")
	}
	return module, nil
}

// FindProjectRoot walks up from the current directory to find go.mod.
func FindProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("not in a Go module (no go.mod found)")
		}
		dir = parent
	}
}
