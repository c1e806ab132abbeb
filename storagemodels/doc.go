/*
Package storagemodels contains the data types shared by itemfetch and its
store implementations.

Key Types:

Item and PrimaryKey:
Both are maps from attribute name to DynamoDB attribute value, so typed
variants (string, number, binary, boolean, list, map, sets) pass through
without conversion:

	key := storagemodels.StringKey("Name", "World")
	key = storagemodels.PrimaryKey{
	    "PK": &types.AttributeValueMemberS{Value: "USER#123"},
	    "SK": &types.AttributeValueMemberS{Value: "PROFILE"},
	}

GetParams:
The request handed to a datastore.Getter:

	params := &storagemodels.GetParams{
	    TableName:  "SiteColors",
	    Key:        storagemodels.StringKey("Name", "text"),
	    Projection: []string{"default", "bold"},
	}

LookupResult:
Separates "the store answered with no item" from a failed request:

	if !res.Found {
	    fmt.Println("No item found")
	}
*/
package storagemodels
