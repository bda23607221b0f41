// Package cli provides the interactive LandLocks command-line client.
//
// It wires configuration, the local document store, the registry client and
// the mint form, then runs a REPL that walks the user through the form:
//
//	upload <path>    pick the deed document (PDF, up to 10 MiB)
//	set <field>      fill title, description, price, category, location,
//	                 contactInfo
//	next / back      move between steps
//	review           show everything that will be minted
//	submit           mint the NFT and store the document locally
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
