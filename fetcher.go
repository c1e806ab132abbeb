/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package itemfetch

import (
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.uber.org/zap"

	"github.com/suparena/itemfetch/datastore"
	"github.com/suparena/itemfetch/errors"
	"github.com/suparena/itemfetch/storagemodels"
)

// ItemFetcher performs single-item lookups against a remote table.
// It holds no mutable state and is safe for concurrent use when its Getter is.
type ItemFetcher struct {
	store  datastore.Getter
	logger *zap.Logger
}

// Option configures an ItemFetcher.
type Option func(*ItemFetcher)

// WithLogger sets the logger used by the fetcher.
func WithLogger(logger *zap.Logger) Option {
	return func(f *ItemFetcher) {
		f.logger = logger
	}
}

// FetchOption adjusts a single Fetch call.
type FetchOption func(*storagemodels.GetParams)

// WithConsistentRead requests a strongly consistent read.
func WithConsistentRead() FetchOption {
	return func(p *storagemodels.GetParams) {
		p.ConsistentRead = true
	}
}

// New creates an ItemFetcher reading through store. The store is owned by the
// caller, which is responsible for closing it.
func New(store datastore.Getter, opts ...Option) *ItemFetcher {
	f := &ItemFetcher{
		store:  store,
		logger: zlog,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Fetch looks up the item identified by key in table. A nil projection returns
// every attribute; otherwise only the named attributes are requested, in order.
//
// A successful lookup that matches nothing returns a result with Found set to
// false and a nil error. Invalid input fails with an errors.ValidationError
// before anything is sent; store failures are returned as errors.StoreError
// and are never retried here.
func (f *ItemFetcher) Fetch(ctx context.Context, table string, key storagemodels.PrimaryKey, projection []string, opts ...FetchOption) (storagemodels.LookupResult, error) {
	if err := validate(table, key, projection); err != nil {
		return storagemodels.LookupResult{}, err
	}

	params := &storagemodels.GetParams{
		TableName:  table,
		Key:        key,
		Projection: projection,
	}
	for _, opt := range opts {
		opt(params)
	}

	item, found, err := f.store.Get(ctx, params)
	if err != nil {
		f.logger.Debug("fetch failed", zap.String("table", table), zap.Error(err))
		return storagemodels.LookupResult{}, errors.NewStoreError("GetItem", table, err)
	}
	if !found || len(item) == 0 {
		f.logger.Debug("item not found", zap.String("table", table))
		return storagemodels.NotFound(), nil
	}

	f.logger.Debug("item found", zap.String("table", table), zap.Int("attributes", len(item)))
	return storagemodels.Found(item), nil
}

// FetchItem is Fetch for callers that treat absence as an error: a lookup
// that matches nothing fails with an errors.NotFoundError.
func (f *ItemFetcher) FetchItem(ctx context.Context, table string, key storagemodels.PrimaryKey, projection []string, opts ...FetchOption) (storagemodels.Item, error) {
	res, err := f.Fetch(ctx, table, key, projection, opts...)
	if err != nil {
		return nil, err
	}
	if !res.Found {
		return nil, errors.NewNotFoundError(table, formatKey(key))
	}
	return res.Item, nil
}

// formatKey renders key as "name=value" pairs sorted by name.
func formatKey(key storagemodels.PrimaryKey) string {
	names := sortedKeys(key)
	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, name+"="+FormatValue(key[name]))
	}
	return strings.Join(parts, ",")
}

func validate(table string, key storagemodels.PrimaryKey, projection []string) error {
	if table == "" {
		return errors.NewValidationError("table", "must not be empty")
	}
	if len(key) == 0 {
		return errors.NewValidationError("key", "must contain at least one attribute")
	}
	for name, value := range key {
		if name == "" {
			return errors.NewValidationError("key", "attribute name must not be empty")
		}
		if err := validateKeyValue(name, value); err != nil {
			return err
		}
	}

	if projection == nil {
		return nil
	}
	if len(projection) == 0 {
		return errors.NewValidationError("projection", "must name at least one attribute when present")
	}
	for i, attr := range projection {
		if strings.TrimSpace(attr) == "" {
			return errors.NewValidationError("projection", fmt.Sprintf("attribute %d is blank", i))
		}
	}
	return nil
}

// validateKeyValue accepts the scalar types DynamoDB allows in a key.
func validateKeyValue(name string, value types.AttributeValue) error {
	field := "key." + name
	switch v := value.(type) {
	case *types.AttributeValueMemberS:
		if v == nil || v.Value == "" {
			return errors.NewValidationError(field, "must not be empty")
		}
	case *types.AttributeValueMemberN:
		if v == nil || v.Value == "" {
			return errors.NewValidationError(field, "must not be empty")
		}
	case *types.AttributeValueMemberB:
		if v == nil || len(v.Value) == 0 {
			return errors.NewValidationError(field, "must not be empty")
		}
	case nil:
		return errors.NewValidationError(field, "must have a value")
	default:
		return errors.NewValidationError(field, fmt.Sprintf("unsupported key value type %T", value))
	}
	return nil
}
