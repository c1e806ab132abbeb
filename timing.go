/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package itemfetch

import (
	"context"
	"time"

	"github.com/suparena/itemfetch/datastore"
	"github.com/suparena/itemfetch/storagemodels"
)

// ObserveFunc receives the duration of one store call.
type ObserveFunc func(params *storagemodels.GetParams, elapsed time.Duration, err error)

// TimedGetter wraps a datastore.Getter and reports how long each call took.
type TimedGetter struct {
	next    datastore.Getter
	observe ObserveFunc
	now     func() time.Time
}

var _ datastore.Getter = (*TimedGetter)(nil)

// NewTimedGetter returns a Getter that forwards to next and calls observe
// after every request, successful or not.
func NewTimedGetter(next datastore.Getter, observe ObserveFunc) *TimedGetter {
	return &TimedGetter{
		next:    next,
		observe: observe,
		now:     time.Now,
	}
}

func (t *TimedGetter) Get(ctx context.Context, params *storagemodels.GetParams) (storagemodels.Item, bool, error) {
	start := t.now()
	item, found, err := t.next.Get(ctx, params)
	if t.observe != nil {
		t.observe(params, t.now().Sub(start), err)
	}
	return item, found, err
}
