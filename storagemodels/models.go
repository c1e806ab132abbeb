/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package storagemodels

import (
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// Item is a record returned by the store, keyed by attribute name.
type Item map[string]types.AttributeValue

// PrimaryKey maps key attribute names to their scalar values.
type PrimaryKey map[string]types.AttributeValue

// StringKey builds a single-attribute primary key with a string value,
// e.g. StringKey("Name", "World").
func StringKey(name, value string) PrimaryKey {
	return PrimaryKey{name: &types.AttributeValueMemberS{Value: value}}
}

// GetParams defines parameters for a single-item read.
type GetParams struct {
	// TableName is the DynamoDB table name.
	TableName string
	// Key identifies the item within the table.
	Key PrimaryKey
	// Projection restricts the returned attributes. Nil means all attributes.
	// Order is preserved when the request is built.
	Projection []string
	// ConsistentRead requests a strongly consistent read.
	ConsistentRead bool
}

// LookupResult is the outcome of a successful lookup: either a found item or
// an explicit absence.
type LookupResult struct {
	// Item holds the returned attributes. It is nil when Found is false.
	Item Item
	// Found reports whether the store returned a non-empty item.
	Found bool
}

// Found wraps item as a found result.
func Found(item Item) LookupResult {
	return LookupResult{Item: item, Found: true}
}

// NotFound is the result of a lookup that matched no item.
func NotFound() LookupResult {
	return LookupResult{}
}
