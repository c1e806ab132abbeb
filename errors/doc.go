/*
Package errors provides semantic error types for the itemfetch library.

The package defines the outcomes a lookup can fail with, each matchable with
the standard errors.Is() function or the provided helper functions.

Common Errors:

	var (
	    ErrNotFound     = errors.New("item not found")
	    ErrInvalidInput = errors.New("invalid input")
	    ErrStore        = errors.New("store request failed")
	    ErrClosed       = errors.New("client is closed")
	)

Usage:

	res, err := fetcher.Fetch(ctx, "HelloTable", key, nil)
	if err != nil {
	    if errors.IsValidationError(err) {
	        // Bad arguments, nothing was sent to the store
	        return err
	    }
	    var se *errors.StoreError
	    if stderrors.As(err, &se) {
	        fmt.Println("Failed to get item:", se.Message)
	    }
	    return err
	}

Validation errors are raised before any network call. Store errors carry the
message reported by DynamoDB unchanged, and still unwrap to the original SDK
error so callers can inspect smithy.APIError or a specific exception type.
*/
package errors
