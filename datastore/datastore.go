/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package datastore

import (
	"context"

	"github.com/suparena/itemfetch/storagemodels"
)

// Getter reads a single item from a remote table.
//
// found is false when the store answered successfully without an item.
// Implementations must be safe for concurrent use.
type Getter interface {
	Get(ctx context.Context, params *storagemodels.GetParams) (item storagemodels.Item, found bool, err error)
}
