/*
Package itemfetch retrieves single items from DynamoDB tables by primary key,
with optional projection of the returned attributes.

The library keeps the lookup itself small and testable:
  - ItemFetcher validates input, issues exactly one read and reports the outcome
  - datastore.Getter is the only boundary with the remote store
  - ddb.Client is an explicitly created, explicitly closed DynamoDB handle
  - mock.DataStore serves tests without a network

Key Features:
  - Found and not-found results are distinct from failures
  - Store errors carry DynamoDB's own message, unchanged
  - Projection names are passed through in the order given
  - Optional latency reporting through TimedGetter
  - Typed decoding of items with Decode[T]

Basic Usage:

	client, err := ddb.NewClient(ctx, ddb.ClientConfig{Region: "us-east-2"})
	if err != nil {
	    return err
	}
	defer client.Close()

	fetcher := itemfetch.New(client)
	res, err := fetcher.Fetch(ctx, "SiteColors",
	    storagemodels.StringKey("Name", "text"),
	    []string{"default", "bold"},
	)
	if err != nil {
	    return err
	}
	if !res.Found {
	    fmt.Println("No item found")
	    return nil
	}
	itemfetch.WriteItem(os.Stdout, res.Item)

Retries, backoff and connection pooling are left to the AWS SDK.
*/
package itemfetch
