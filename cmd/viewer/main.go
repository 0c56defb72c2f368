package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"sort"
	"strings"

	"github.com/dgraph-io/badger/v4"
	"github.com/fxamacker/cbor/v2"
	"github.com/gookit/color"
	"github.com/mama165/sdk-go/database"
	"github.com/olekukonko/tablewriter"
)

// Viewer dumps the content of the store while the server runs. Rows are CBOR
// maps; index entries carry no payload and are shown as keys only.
func main() {
	dbPath := flag.String("db", database.DefaultPath, "Path to badger DB")
	prefix := flag.String("prefix", "", "Prefix to scan (empty scans everything)")
	flag.Parse()

	db, err := openDB(*dbPath)
	if err != nil {
		log.Fatal("Error while opening Badger: ", err)
	}
	defer db.Close()

	color.Cyan.Printf("Inspecting %s (prefix=%q)\n", *dbPath, *prefix)

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Key", "Type", "Detail"})
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	err = db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefixBytes := []byte(*prefix)
		for it.Seek(prefixBytes); it.ValidForPrefix(prefixBytes); it.Next() {
			item := it.Item()
			rawKey := string(item.Key())

			err := item.Value(func(v []byte) error {
				table.Append([]string{rawKey, keyType(rawKey), describe(v)})
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		log.Fatal(err)
	}

	table.Render()
}

func keyType(key string) string {
	switch {
	case strings.HasPrefix(key, "user:name:"), strings.HasPrefix(key, "friend:pair:"),
		strings.HasPrefix(key, "friend:user:"), strings.HasPrefix(key, "conv:pair:"),
		strings.HasPrefix(key, "conv:member:"), strings.HasPrefix(key, "msgref:"):
		return "INDEX"
	case strings.HasPrefix(key, "user:"):
		return "USER"
	case strings.HasPrefix(key, "friend:"):
		return "EDGE"
	case strings.HasPrefix(key, "conv:"):
		return "CONV"
	case strings.HasPrefix(key, "msg:"):
		return "MSG"
	case strings.HasPrefix(key, "unread:"):
		return "UNREAD"
	}
	return "?"
}

// describe renders a CBOR row as sorted key=value pairs. Non-CBOR values
// (counters, bare index entries) fall back to a length indication.
func describe(raw []byte) string {
	var row map[string]any
	if err := cbor.Unmarshal(raw, &row); err != nil || len(row) == 0 {
		return fmt.Sprintf("<%d bytes>", len(raw))
	}
	fields := make([]string, 0, len(row))
	for k, v := range row {
		if k == "password_hash" {
			v = "***"
		}
		fields = append(fields, fmt.Sprintf("%s=%v", k, v))
	}
	sort.Strings(fields)
	return strings.Join(fields, " ")
}

func openDB(path string) (*badger.DB, error) {
	// BypassLockGuard allows opening while the server holds the lock.
	opts := badger.DefaultOptions(path).
		WithReadOnly(true).
		WithLogger(nil).
		WithBypassLockGuard(true)
	return badger.Open(opts)
}
