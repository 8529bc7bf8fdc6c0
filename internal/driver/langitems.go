// Package driver sequences compilation phases for the CLI.
package driver

import (
	"context"
	"fmt"

	"ember/internal/ast"
	"ember/internal/diag"
	"ember/internal/langitems"
	"ember/internal/manifest"
	"ember/internal/unitmeta"
)

// PhaseResult carries everything the lang-item phase produced.
type PhaseResult struct {
	Unit  *ast.Unit
	Store *unitmeta.Store
	Items langitems.Items
}

// LangItemsPhase loads the unit description and the dependency metadata,
// then runs collection against one registry. On duplicate bindings the
// session aborts inside collection and this function does not return.
func LangItemsPhase(ctx context.Context, sess *diag.Session, unitPath, depDir string) (*PhaseResult, error) {
	unit, err := manifest.Load(unitPath)
	if err != nil {
		return nil, fmt.Errorf("load unit description: %w", err)
	}

	store := unitmeta.NewStore()
	if depDir != "" {
		store, err = unitmeta.LoadDir(ctx, depDir)
		if err != nil {
			return nil, fmt.Errorf("load dependency metadata: %w", err)
		}
	}

	items := langitems.Collect(sess, unit, store)
	return &PhaseResult{Unit: unit, Store: store, Items: items}, nil
}

// ExportLangItems writes the unit's own lang-item bindings to path, in
// the form dependent compilations replay through the external collector.
// Only locally declared bindings are recorded; bindings inherited from
// dependencies already live in those units' metadata.
func ExportLangItems(result *PhaseResult, path string) error {
	var tagged []unitmeta.TaggedItem
	result.Items.Each(func(kind langitems.LangItem, id unitmeta.DefID) {
		if !id.IsLocal() {
			return
		}
		tagged = append(tagged, unitmeta.TaggedItem{Node: id.Node, Item: uint32(kind)})
	})
	return unitmeta.NewPayload(result.Unit.Name, tagged).Write(path)
}
