// Package config loads runtime configuration for the LandLocks CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected with -c or -config.
//  3. Command-line flags, which override earlier values.
//
// Supported flags
//
//	-a string   address:port of the registry gRPC endpoint
//	-d string   path to the local SQLite document store
//	-o string   owner wallet address
//	-t int      mint timeout (seconds)
//	-k string   persist key strategy: nft_id or title
//
// # JSON schema
//
// Durations use timex.Duration, so "30s" and integer nanoseconds both work.
// Keys that are absent or empty keep their previous value.
//
//	{
//	  "server_endpoint_addr": "127.0.0.1:50051",
//	  "database_path": "landlocks.db",
//	  "owner_address": "0xabc",
//	  "mint_timeout": "30s",
//	  "persist_key": "nft_id"
//	}
package config
