package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface is the command surface the REPL dispatches to. The real App
// satisfies it; tests provide a lightweight stub.
type execIface interface {
	Upload(ctx context.Context, path string) error
	Remove(ctx context.Context) error
	Set(ctx context.Context, field, value string, hasValue bool) error
	Next(ctx context.Context) error
	Back(ctx context.Context) error
	Review(ctx context.Context) error
	Submit(ctx context.Context) error
	ShowStatus(ctx context.Context) error
	Wallet(ctx context.Context, address string) error
	Documents(ctx context.Context) error
	ShowDocument(ctx context.Context, key string) error
	RemoveDocument(ctx context.Context, key string) error
	ListNFTs(ctx context.Context) error
	ShowNFT(ctx context.Context, id string) error
}

const helpText = `Available commands:
  upload <path>          pick the document to mint (PDF, up to 10 MiB)
  remove                 drop the picked document
  set <field> [value]    set title, description, price, category, location or contactInfo
  next | back            move between steps
  review                 show the collected data
  submit                 mint the NFT (review step only)
  status                 show the last error and success messages
  wallet <address>       set the owner address
  documents              list locally stored documents
  documents show <key>   show one stored document
  documents rm <key>     delete one stored document
  nfts                   list the NFTs minted to the owner address
  nft <id>               show one NFT from the registry
  exit | quit            leave the program`

// runREPL reads one command per line from reader and dispatches it to a.
// A nil promptFn suppresses the prompt. The loop ends on EOF, on "exit" or
// "quit", or when ctx is done. Errors from handlers are not fatal: handlers
// report them to the user themselves.
func runREPL(ctx context.Context, a execIface, promptFn func() string, reader *bufio.Reader) {
	for {
		if ctx.Err() != nil {
			return
		}
		if promptFn != nil {
			printlnFn(fmt.Sprintf("landlocks [%s]> ", promptFn()))
		}

		line, err := reader.ReadString('\n')
		if err != nil && !(errors.Is(err, io.EOF) && line != "") {
			return
		}

		cmd, rest, _ := strings.Cut(strings.TrimSpace(line), " ")
		rest = strings.TrimSpace(rest)
		if cmd == "" {
			continue
		}

		switch cmd {
		case "help":
			printlnFn(helpText)

		case "upload":
			if rest == "" {
				printlnFn("Usage: upload <path>")
				continue
			}
			_ = a.Upload(ctx, rest)

		case "remove":
			_ = a.Remove(ctx)

		case "set":
			if rest == "" {
				printlnFn("Usage: set <field> [value]")
				continue
			}
			field, value, hasValue := strings.Cut(rest, " ")
			_ = a.Set(ctx, field, strings.TrimSpace(value), hasValue)

		case "next", "n":
			_ = a.Next(ctx)

		case "back", "b":
			_ = a.Back(ctx)

		case "review":
			_ = a.Review(ctx)

		case "submit":
			_ = a.Submit(ctx)

		case "status":
			_ = a.ShowStatus(ctx)

		case "wallet":
			if rest == "" {
				printlnFn("Usage: wallet <address>")
				continue
			}
			_ = a.Wallet(ctx, rest)

		case "documents", "docs":
			sub, key, _ := strings.Cut(rest, " ")
			key = strings.TrimSpace(key)
			switch {
			case sub == "":
				_ = a.Documents(ctx)
			case sub == "show" && key != "":
				_ = a.ShowDocument(ctx, key)
			case sub == "rm" && key != "":
				_ = a.RemoveDocument(ctx, key)
			default:
				printlnFn("Usage: documents [show|rm <key>]")
			}

		case "nfts":
			_ = a.ListNFTs(ctx)

		case "nft":
			if rest == "" {
				printlnFn("Usage: nft <id>")
				continue
			}
			_ = a.ShowNFT(ctx, rest)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if err != nil {
			return
		}
	}
}
