package app

import (
	"context"
	"path/filepath"
	"testing"

	storefront "github.com/agentstation/storefront"
	"github.com/agentstation/storefront/internal/cartstore"
)

// TestNew verifies app construction and version plumbing.
func TestNew(t *testing.T) {
	application, err := New("1.2.3", "abc123", "2026-01-01", "test")
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	if application.Version() != "1.2.3" {
		t.Errorf("Version() = %s, want 1.2.3", application.Version())
	}
	if application.Commit() != "abc123" {
		t.Errorf("Commit() = %s, want abc123", application.Commit())
	}
	if application.Config() == nil {
		t.Error("Config() returned nil")
	}
	if application.Logger() == nil {
		t.Error("Logger() returned nil")
	}
	if application.Formatter() == nil {
		t.Error("Formatter() returned nil")
	}
}

// TestStorefrontLazyInit verifies the storefront singleton behavior.
func TestStorefrontLazyInit(t *testing.T) {
	cartFile := filepath.Join(t.TempDir(), "cart-storage.json")
	application, err := New("dev", "", "", "", WithConfig(&Config{
		CartFile:  cartFile,
		LogFormat: "json",
		LogOutput: "stderr",
	}))
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	first, err := application.Storefront()
	if err != nil {
		t.Fatalf("Storefront() failed: %v", err)
	}
	second, err := application.Storefront()
	if err != nil {
		t.Fatalf("Storefront() second call failed: %v", err)
	}
	if first != second {
		t.Error("Storefront() created a second instance")
	}
}

// TestWithStorefront verifies injecting a pre-built instance.
func TestWithStorefront(t *testing.T) {
	sf, err := storefront.New(storefront.WithCartStorage(cartstore.NewMemory()))
	if err != nil {
		t.Fatalf("storefront.New() failed: %v", err)
	}

	application, err := New("dev", "", "", "", WithStorefront(sf))
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	got, err := application.Storefront()
	if err != nil {
		t.Fatalf("Storefront() failed: %v", err)
	}
	if got != sf {
		t.Error("Storefront() did not return the injected instance")
	}
}

// TestContextWithSignals verifies signal context creation.
func TestContextWithSignals(t *testing.T) {
	ctx, cancel := ContextWithSignals(context.Background())
	defer cancel()

	if ctx.Err() != nil {
		t.Errorf("context cancelled prematurely: %v", ctx.Err())
	}

	cancel()
	if ctx.Err() == nil {
		t.Error("context not cancelled after cancel()")
	}
}
