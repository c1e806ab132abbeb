/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package mock_test

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/suparena/itemfetch/datastore/mock"
	"github.com/suparena/itemfetch/storagemodels"
)

func siteColors() storagemodels.Item {
	return storagemodels.Item{
		"Name":    &types.AttributeValueMemberS{Value: "text"},
		"default": &types.AttributeValueMemberS{Value: "#000000"},
		"bold":    &types.AttributeValueMemberS{Value: "#ff0000"},
		"italic":  &types.AttributeValueMemberS{Value: "#00ff00"},
	}
}

func TestMockDataStore(t *testing.T) {
	ctx := context.Background()

	t.Run("BasicLookup", func(t *testing.T) {
		mockStore := mock.New().WithItem("SiteColors", siteColors())

		item, found, err := mockStore.Get(ctx, &storagemodels.GetParams{
			TableName: "SiteColors",
			Key:       storagemodels.StringKey("Name", "text"),
		})
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if !found {
			t.Fatal("Expected item to be found")
		}
		if len(item) != 4 {
			t.Fatalf("Expected 4 attributes, got %d", len(item))
		}

		// Other table, same key
		_, found, err = mockStore.Get(ctx, &storagemodels.GetParams{
			TableName: "HelloTable",
			Key:       storagemodels.StringKey("Name", "text"),
		})
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if found {
			t.Fatal("Expected no item in another table")
		}
	})

	t.Run("Projection", func(t *testing.T) {
		mockStore := mock.New().WithItem("SiteColors", siteColors())

		item, found, err := mockStore.Get(ctx, &storagemodels.GetParams{
			TableName:  "SiteColors",
			Key:        storagemodels.StringKey("Name", "text"),
			Projection: []string{"default", "bold", "missing"},
		})
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if !found {
			t.Fatal("Expected item to be found")
		}
		if len(item) != 2 {
			t.Fatalf("Expected 2 projected attributes, got %d: %v", len(item), item)
		}
		if _, ok := item["italic"]; ok {
			t.Fatal("Unprojected attribute returned")
		}

		// Nothing in the projection exists
		_, found, err = mockStore.Get(ctx, &storagemodels.GetParams{
			TableName:  "SiteColors",
			Key:        storagemodels.StringKey("Name", "text"),
			Projection: []string{"missing"},
		})
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if found {
			t.Fatal("Expected empty projection to report not found")
		}
	})

	t.Run("ErrorSimulation", func(t *testing.T) {
		getErr := errors.New("throttled")
		mockStore := mock.New().WithItem("SiteColors", siteColors()).WithGetError(getErr)

		item, found, err := mockStore.Get(ctx, &storagemodels.GetParams{
			TableName: "SiteColors",
			Key:       storagemodels.StringKey("Name", "text"),
		})
		if err != getErr {
			t.Fatalf("Expected get error, got: %v", err)
		}
		if found || item != nil {
			t.Fatal("Expected no item alongside an error")
		}
	})

	t.Run("CustomGetFunction", func(t *testing.T) {
		mockStore := mock.New().WithGetFunc(func(ctx context.Context, params *storagemodels.GetParams) (storagemodels.Item, bool, error) {
			return storagemodels.Item{"Name": params.Key["Name"]}, true, nil
		})

		item, found, err := mockStore.Get(ctx, &storagemodels.GetParams{
			TableName: "Anything",
			Key:       storagemodels.StringKey("Name", "x"),
		})
		if err != nil || !found {
			t.Fatalf("Expected custom function result, got found=%v err=%v", found, err)
		}
		if len(item) != 1 {
			t.Fatalf("Expected 1 attribute, got %d", len(item))
		}
	})

	t.Run("RecordsRequests", func(t *testing.T) {
		mockStore := mock.New()

		projection := []string{"default", "bold"}
		params := &storagemodels.GetParams{
			TableName:  "SiteColors",
			Key:        storagemodels.StringKey("Name", "text"),
			Projection: projection,
		}
		mockStore.Get(ctx, params)
		projection[0] = "changed"

		if mockStore.Count() != 1 {
			t.Fatalf("Expected count 1, got %d", mockStore.Count())
		}
		recorded := mockStore.Requests()[0]
		if recorded.Projection[0] != "default" || recorded.Projection[1] != "bold" {
			t.Fatalf("Recorded projection mismatch: %v", recorded.Projection)
		}

		mockStore.Clear()
		if mockStore.Count() != 0 {
			t.Fatalf("Expected count 0 after clear, got %d", mockStore.Count())
		}
	})
}
