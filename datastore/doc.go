/*
Package datastore defines the boundary between itemfetch and the remote store.

The only interface is Getter, which performs one single-item read:

	type Getter interface {
	    Get(ctx context.Context, params *storagemodels.GetParams) (storagemodels.Item, bool, error)
	}

Implementations:
  - ddb: DynamoDB implementation backed by aws-sdk-go-v2
  - mock: In-memory implementation for testing

Transport, authentication, retries and consistency are the implementation's
concern. Callers only see an item, an explicit absence, or an error.
*/
package datastore
