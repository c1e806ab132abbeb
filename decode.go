/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package itemfetch

import (
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"

	"github.com/suparena/itemfetch/storagemodels"
)

// Decode unmarshals a found item into a new value of type T.
// Fields are matched using `dynamodbav` struct tags.
func Decode[T any](item storagemodels.Item) (*T, error) {
	if len(item) == 0 {
		return nil, fmt.Errorf("cannot decode an empty item")
	}

	result := new(T)
	if err := attributevalue.UnmarshalMap(item, result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal item: %w", err)
	}
	return result, nil
}

// ItemToMap converts an item into plain Go values: strings, []byte, bools,
// nil, slices and maps. Numbers become json.Number so that values beyond
// float64 precision survive unchanged.
func ItemToMap(item storagemodels.Item) (map[string]any, error) {
	var generic map[string]any
	err := attributevalue.UnmarshalMapWithOptions(item, &generic, func(o *attributevalue.DecoderOptions) {
		o.UseNumber = true
	})
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal generic item: %w", err)
	}
	for name, v := range generic {
		generic[name] = jsonNumbers(v)
	}
	return generic, nil
}

// jsonNumbers replaces attributevalue.Number values, at any depth, with
// json.Number.
func jsonNumbers(v any) any {
	switch v := v.(type) {
	case attributevalue.Number:
		return json.Number(v)
	case []attributevalue.Number:
		out := make([]json.Number, len(v))
		for i, n := range v {
			out[i] = json.Number(n)
		}
		return out
	case []any:
		for i, e := range v {
			v[i] = jsonNumbers(e)
		}
		return v
	case map[string]any:
		for k, e := range v {
			v[k] = jsonNumbers(e)
		}
		return v
	default:
		return v
	}
}
