/*
Package ddb provides a DynamoDB implementation of the datastore.Getter interface.

The Client supports:
  - Single-item reads through GetItem
  - Optional projection of returned attributes
  - Strongly consistent reads on request
  - Endpoint override for DynamoDB Local or LocalStack
  - Static credentials or the default AWS credential chain

Client Lifecycle:
A Client is an explicitly constructed handle. Create it once, share it between
goroutines and close it on shutdown:

	client, err := ddb.NewClient(ctx, ddb.ClientConfig{
	    Region:   "us-east-2",
	    Endpoint: "http://localhost:8000",
	})
	if err != nil {
	    return err
	}
	defer client.Close()

Projection:
Attribute names are always bound through placeholders, so reserved words work
as projection entries:

	params := &storagemodels.GetParams{
	    TableName:  "SiteColors",
	    Key:        storagemodels.StringKey("Name", "text"),
	    Projection: []string{"default", "bold"},
	}
	// ProjectionExpression:     "#p0, #p1"
	// ExpressionAttributeNames: {"#p0": "default", "#p1": "bold"}

Errors returned by the SDK are wrapped unchanged. Retries and backoff are
whatever the SDK's own retryer does.
*/
package ddb
