/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package mock provides an in-memory implementation of datastore.Getter for testing
package mock

import (
	"context"
	"reflect"
	"sync"

	"github.com/suparena/itemfetch/datastore"
	"github.com/suparena/itemfetch/storagemodels"
)

// DataStore is an in-memory datastore.Getter. Items are matched when every
// attribute of the requested key is present with an equal value.
type DataStore struct {
	mu       sync.RWMutex
	tables   map[string][]storagemodels.Item
	requests []storagemodels.GetParams
	getFunc  func(ctx context.Context, params *storagemodels.GetParams) (storagemodels.Item, bool, error)
	getError error
}

var _ datastore.Getter = (*DataStore)(nil)

// New creates a new empty mock DataStore
func New() *DataStore {
	return &DataStore{
		tables: make(map[string][]storagemodels.Item),
	}
}

// WithItem adds item to table
func (m *DataStore) WithItem(table string, item storagemodels.Item) *DataStore {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tables[table] = append(m.tables[table], item)
	return m
}

// WithGetError makes Get operations return err
func (m *DataStore) WithGetError(err error) *DataStore {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.getError = err
	return m
}

// WithGetFunc replaces the lookup with a custom function. Requests are still recorded.
func (m *DataStore) WithGetFunc(f func(ctx context.Context, params *storagemodels.GetParams) (storagemodels.Item, bool, error)) *DataStore {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.getFunc = f
	return m
}

// Get looks up an item by key and applies the projection, if any
func (m *DataStore) Get(ctx context.Context, params *storagemodels.GetParams) (storagemodels.Item, bool, error) {
	m.mu.Lock()
	m.requests = append(m.requests, copyParams(params))
	getFunc, getError := m.getFunc, m.getError
	m.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return nil, false, err
	}
	if getError != nil {
		return nil, false, getError
	}
	if getFunc != nil {
		return getFunc(ctx, params)
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, item := range m.tables[params.TableName] {
		if !matchesKey(item, params.Key) {
			continue
		}
		result := project(item, params.Projection)
		if len(result) == 0 {
			return nil, false, nil
		}
		return result, true, nil
	}
	return nil, false, nil
}

// Helper methods for testing

// Requests returns a copy of every request received, in order
func (m *DataStore) Requests() []storagemodels.GetParams {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]storagemodels.GetParams, len(m.requests))
	copy(result, m.requests)
	return result
}

// Count returns the number of Get calls received
func (m *DataStore) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.requests)
}

// Clear removes all items and recorded requests
func (m *DataStore) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tables = make(map[string][]storagemodels.Item)
	m.requests = nil
}

func matchesKey(item storagemodels.Item, key storagemodels.PrimaryKey) bool {
	if len(key) == 0 {
		return false
	}
	for name, want := range key {
		got, ok := item[name]
		if !ok || !reflect.DeepEqual(got, want) {
			return false
		}
	}
	return true
}

func project(item storagemodels.Item, projection []string) storagemodels.Item {
	if projection == nil {
		result := make(storagemodels.Item, len(item))
		for k, v := range item {
			result[k] = v
		}
		return result
	}

	result := make(storagemodels.Item, len(projection))
	for _, name := range projection {
		if v, ok := item[name]; ok {
			result[name] = v
		}
	}
	return result
}

func copyParams(params *storagemodels.GetParams) storagemodels.GetParams {
	c := *params
	if params.Projection != nil {
		c.Projection = append([]string{}, params.Projection...)
	}
	if params.Key != nil {
		c.Key = make(storagemodels.PrimaryKey, len(params.Key))
		for k, v := range params.Key {
			c.Key[k] = v
		}
	}
	return c
}
