/*
Package registry records the primary key layout of the tables itemfetch reads.

Key Schema Registry:
Maps a table name to its partition key attribute:

	registry.RegisterKeySchema("Music", "Artist")
	registry.KeyAttribute("Music")      // "Artist"
	registry.KeyAttribute("HelloTable") // "Name" (DefaultKeyAttribute)

The registry is thread-safe and is usually populated at startup from the
tables section of the configuration file.
*/
package registry
