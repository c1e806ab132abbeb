/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package itemfetch

import (
	"encoding/base64"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/suparena/itemfetch/storagemodels"
)

// WriteItem prints each attribute of item as "name: value", one per line,
// sorted by attribute name.
func WriteItem(w io.Writer, item storagemodels.Item) error {
	for _, name := range sortedKeys(item) {
		if _, err := fmt.Fprintf(w, "%s: %s\n", name, FormatValue(item[name])); err != nil {
			return err
		}
	}
	return nil
}

// FormatValue renders a single attribute value for display. Strings and
// numbers are printed as-is and binary values as base64.
func FormatValue(value types.AttributeValue) string {
	switch v := value.(type) {
	case *types.AttributeValueMemberS:
		return v.Value
	case *types.AttributeValueMemberN:
		return v.Value
	case *types.AttributeValueMemberBOOL:
		return strconv.FormatBool(v.Value)
	case *types.AttributeValueMemberNULL:
		return "null"
	case *types.AttributeValueMemberB:
		return base64.StdEncoding.EncodeToString(v.Value)
	case *types.AttributeValueMemberSS:
		return "[" + strings.Join(v.Value, ", ") + "]"
	case *types.AttributeValueMemberNS:
		return "[" + strings.Join(v.Value, ", ") + "]"
	case *types.AttributeValueMemberBS:
		parts := make([]string, 0, len(v.Value))
		for _, b := range v.Value {
			parts = append(parts, base64.StdEncoding.EncodeToString(b))
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case *types.AttributeValueMemberL:
		parts := make([]string, 0, len(v.Value))
		for _, elem := range v.Value {
			parts = append(parts, FormatValue(elem))
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case *types.AttributeValueMemberM:
		keys := sortedKeys(v.Value)
		parts := make([]string, 0, len(keys))
		for _, k := range keys {
			parts = append(parts, k+": "+FormatValue(v.Value[k]))
		}
		return "{" + strings.Join(parts, ", ") + "}"
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", value)
	}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
