//go:build pact
// +build pact

package pacttest

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

const (
	ProviderName = "storefront-api"
	ConsumerName = "storefront-web"

	StateCatalogSeeded  = "catalog is seeded"
	StateProductMissing = "no product with id 404"
	StateEmptyCart      = "the pact session has an empty cart"
)

const (
	ExistingProductID = "1"
	MissingProductID  = "404"

	// PactSessionID is sent in the X-Session-ID header by the consumer.
	PactSessionID = "8a6e0f1c-2b3d-4e5f-9a7b-c8d9e0f1a2b3"
)

// ExampleProductPayload mirrors the first seeded catalog product.
func ExampleProductPayload() map[string]any {
	return map[string]any{
		"id":       ExistingProductID,
		"name":     "Fine Diamond Stole 100% Cashmere",
		"category": "Shawl",
		"price":    150.0,
		"colors":   []string{"red", "gray"},
		"sizes":    []string{"OS"},
	}
}

// ExampleAddItemPayload adds one red one-size unit of the seeded product.
func ExampleAddItemPayload() map[string]any {
	return map[string]any{
		"productId": ExistingProductID,
		"quantity":  1,
		"color":     "red",
		"size":      "OS",
	}
}

// PactDir returns the workspace-level directory for generated pact files.
func PactDir(t testing.TB) string {
	t.Helper()
	dir := filepath.Join(projectRoot(t), "pacts")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("create pact dir: %v", err)
	}
	return dir
}

// PactFile returns the canonical pact file path for the storefront web consumer.
func PactFile(t testing.TB) string {
	t.Helper()
	return filepath.Join(PactDir(t), ConsumerName+"-"+ProviderName+".json")
}

// LogDir returns the log output directory for pact-go.
func LogDir(t testing.TB) string {
	t.Helper()
	dir := filepath.Join(projectRoot(t), "bin", "pact-logs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("create pact log dir: %v", err)
	}
	return dir
}

// projectRoot walks up from this file to the workspace root.
func projectRoot(t testing.TB) string {
	t.Helper()
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("cannot determine caller for pact paths")
	}
	return filepath.Clean(filepath.Join(filepath.Dir(file), "..", ".."))
}
