// Package client contains the client-side building blocks that talk to the
// outside world.
//
// # Overview
//
//  1. Minter: the transport-agnostic contract of the remote mint operation.
//  2. GRPCClient: the gRPC implementation. It encodes a models.MintRequest
//     as a registryapi message, tags every call with a request id and maps
//     gRPC status codes to sentinel errors.
//  3. InitDatabase / RunMigrations: local persistence bootstrap. They open
//     the SQLite key-value store and apply embedded goose migrations.
//
// # Error Handling
//
// Remote failures are exposed as ErrUnavailable, ErrRejected and ErrEmptyID,
// matched with errors.Is. The server's message is kept in the error text so
// it can be shown to the user verbatim.
package client
