package testsupport

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/goliatone/go-authform/pkg/idx"
	"github.com/goliatone/go-authform/pkg/model"
)

//go:embed testdata/transactions/*.json
var transactions embed.FS

const transactionDir = "testdata/transactions"

// TransactionsFS exposes the bundled transaction fixtures rooted at their
// directory so callers can open them by file name.
func TransactionsFS() fs.FS {
	sub, err := fs.Sub(transactions, transactionDir)
	if err != nil {
		return transactions
	}
	return sub
}

// TransactionNames lists the bundled fixtures without their extension.
func TransactionNames() []string {
	entries, err := fs.ReadDir(transactions, transactionDir)
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, strings.TrimSuffix(entry.Name(), path.Ext(entry.Name())))
	}
	sort.Strings(names)
	return names
}

// TransactionJSON returns the raw payload of a bundled fixture.
func TransactionJSON(t testing.TB, name string) []byte {
	t.Helper()
	data, err := fs.ReadFile(transactions, path.Join(transactionDir, name+".json"))
	if err != nil {
		t.Fatalf("read transaction fixture %q: %v", name, err)
	}
	return data
}

// Transaction decodes a bundled fixture.
func Transaction(t testing.TB, name string) idx.Transaction {
	t.Helper()
	tx, err := idx.Parse(TransactionJSON(t, name))
	if err != nil {
		t.Fatalf("parse transaction fixture %q: %v", name, err)
	}
	return tx
}

// LoadTransaction decodes a transaction stored on disk.
func LoadTransaction(t testing.TB, file string) idx.Transaction {
	t.Helper()
	data, err := os.ReadFile(file)
	if err != nil {
		t.Fatalf("read transaction: %v", err)
	}
	tx, err := idx.Parse(data)
	if err != nil {
		t.Fatalf("parse transaction %s: %v", file, err)
	}
	return tx
}

// BagOptions ignores the parts of a form bag that hold functions or
// caller-owned pointers.
var BagOptions = cmp.Options{
	cmpopts.IgnoreFields(model.FormBag{}, "Schema"),
	cmpopts.IgnoreFields(model.Rule{}, "Validate"),
	cmpopts.EquateEmpty(),
}

// DiffBags returns a readable diff between two form bags, empty when they
// match.
func DiffBags(want, got model.FormBag) string {
	return cmp.Diff(want, got, BagOptions)
}

// WriteGolden writes value as indented JSON when UPDATE_GOLDENS is set and
// reports whether it did.
func WriteGolden(t testing.TB, file string, value any) bool {
	t.Helper()
	if os.Getenv("UPDATE_GOLDENS") == "" {
		return false
	}
	payload, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		t.Fatalf("marshal golden: %v", err)
	}
	if err := os.MkdirAll(filepath.Dir(file), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(file, append(payload, '\n'), 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
	return true
}

// CompareJSONGolden compares value, rendered as JSON, with the golden file.
// The comparison happens on decoded documents so key order is irrelevant.
func CompareJSONGolden(t testing.TB, file string, value any) string {
	t.Helper()
	if WriteGolden(t, file, value) {
		return ""
	}
	data, err := os.ReadFile(file)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	var want, got any
	if err := json.Unmarshal(data, &want); err != nil {
		t.Fatalf("decode golden %s: %v", file, err)
	}
	payload, err := json.Marshal(value)
	if err != nil {
		t.Fatalf("marshal value: %v", err)
	}
	if err := json.Unmarshal(payload, &got); err != nil {
		t.Fatalf("decode value: %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		return fmt.Sprintf("%s (-golden +got):\n%s", file, diff)
	}
	return ""
}
