/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package registry

import (
	"fmt"
	"sync"
)

// DefaultKeyAttribute is the partition key attribute used for tables that
// were never registered.
const DefaultKeyAttribute = "Name"

// keySchemaRegistry maps a table name to the name of its partition key attribute.
var (
	keySchemaRegistry = make(map[string]string)
	mu                sync.RWMutex
)

// RegisterKeySchema associates table with its partition key attribute name.
// Registering the same table twice with a different attribute is an error.
func RegisterKeySchema(table, keyAttribute string) error {
	if table == "" {
		return fmt.Errorf("key schema registry: table name is required")
	}
	if keyAttribute == "" {
		return fmt.Errorf("key schema registry: key attribute is required for table %q", table)
	}

	mu.Lock()
	defer mu.Unlock()
	if existing, ok := keySchemaRegistry[table]; ok && existing != keyAttribute {
		return fmt.Errorf("key schema registry: table %q already registered with key %q", table, existing)
	}
	keySchemaRegistry[table] = keyAttribute
	return nil
}

// KeyAttribute returns the partition key attribute for table, falling back to
// DefaultKeyAttribute.
func KeyAttribute(table string) string {
	mu.RLock()
	defer mu.RUnlock()
	if attr, ok := keySchemaRegistry[table]; ok {
		return attr
	}
	return DefaultKeyAttribute
}

// Reset removes every registration.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	keySchemaRegistry = make(map[string]string)
}
