// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"io"

	"github.com/pdiddy/slidekit/internal/catalog"
	"github.com/pdiddy/slidekit/pkg/types"
)

// writeCatalog stores docs in the SQLite catalog at path, replacing what
// an earlier run left there.
func writeCatalog(ctx context.Context, path string, docs []types.Document, w io.Writer) error {
	store, err := catalog.Open(path)
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.Replace(ctx, docs); err != nil {
		return fmt.Errorf("writing catalog %s: %w", path, err)
	}
	fmt.Fprintf(w, "Wrote catalog: %s (%d documents)\n", path, len(docs))
	return nil
}
