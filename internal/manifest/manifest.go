// Package manifest loads TOML unit descriptions.
//
// A unit description is the declaration tree of one compilation unit
// with its annotations already split into key/value pairs - the shape
// the parser hands to semantic phases. Tools and tests feed the driver
// through these files instead of full source parsing.
package manifest

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"

	"ember/internal/ast"
	"ember/internal/source"
)

// ErrNoUnitName indicates that [unit].name is missing.
var ErrNoUnitName = errors.New("missing [unit].name")

// AttrSpec is one key/value annotation, e.g. key = "lang", value = "drop".
type AttrSpec struct {
	Key   string `toml:"key"`
	Value string `toml:"value"`
}

// DeclSpec is one declaration; module declarations nest their members
// in Decls.
type DeclSpec struct {
	Kind  string     `toml:"kind"`
	Name  string     `toml:"name"`
	Attrs []AttrSpec `toml:"attr"`
	Decls []DeclSpec `toml:"decl"`
}

// UnitSpec is the decoded form of a unit description file.
type UnitSpec struct {
	Unit struct {
		Name string `toml:"name"`
	} `toml:"unit"`
	Decls []DeclSpec `toml:"decl"`
}

// Load parses a unit description and builds the declaration tree.
func Load(path string) (*ast.Unit, error) {
	var spec UnitSpec
	if _, err := toml.DecodeFile(path, &spec); err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	return Build(&spec)
}

// Build materializes a decoded spec into an ast.Unit.
func Build(spec *UnitSpec) (*ast.Unit, error) {
	if spec.Unit.Name == "" {
		return nil, ErrNoUnitName
	}
	u := ast.NewUnit(spec.Unit.Name, source.NewInterner())
	for i := range spec.Decls {
		if err := addDecl(u, &spec.Decls[i], ast.NoItemID); err != nil {
			return nil, err
		}
	}
	return u, nil
}

func addDecl(u *ast.Unit, decl *DeclSpec, parent ast.ItemID) error {
	kind, err := itemKind(decl.Kind)
	if err != nil {
		return fmt.Errorf("declaration %q: %w", decl.Name, err)
	}

	attrs := make([]ast.AttrID, 0, len(decl.Attrs))
	for _, a := range decl.Attrs {
		attrs = append(attrs, u.AddAttr(ast.Attr{
			Key:   u.Strings.Intern(a.Key),
			Value: u.Strings.Intern(a.Value),
		}))
	}

	id := u.AddItem(ast.Item{
		Kind:  kind,
		Name:  u.Strings.Intern(decl.Name),
		Attrs: attrs,
	}, parent)

	if len(decl.Decls) > 0 && kind != ast.ItemModule {
		return fmt.Errorf("declaration %q: only modules may nest declarations", decl.Name)
	}
	for i := range decl.Decls {
		if err := addDecl(u, &decl.Decls[i], id); err != nil {
			return err
		}
	}
	return nil
}

func itemKind(kind string) (ast.ItemKind, error) {
	switch kind {
	case "fn":
		return ast.ItemFn, nil
	case "type":
		return ast.ItemType, nil
	case "contract":
		return ast.ItemContract, nil
	case "const":
		return ast.ItemConst, nil
	case "module":
		return ast.ItemModule, nil
	}
	return 0, fmt.Errorf("unknown declaration kind %q", kind)
}
