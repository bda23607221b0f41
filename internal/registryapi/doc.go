// Package registryapi is the wire contract between the LandLocks client and
// the asset registry.
//
// The registry exposes a single unary RPC:
//
//	/landlocks.registry.v1.RegistryService/MintNFT
//	  request:  google.protobuf.Struct      {owner, metadata{...}}
//	  response: google.protobuf.StringValue (the minted NFT id)
//
// Messages are protobuf well-known types, so no generated code is needed;
// MintRequest converts between the typed form and the Struct on the wire.
package registryapi
