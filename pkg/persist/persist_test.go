package persist

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func testKVContract(t *testing.T, kv KV) {
	t.Helper()
	ctx := context.Background()

	if _, ok, err := kv.Get(ctx, "missing"); err != nil || ok {
		t.Errorf("Get missing = (ok=%v, err=%v), want miss with nil error", ok, err)
	}

	if err := kv.Set(ctx, "k", []byte("v1")); err != nil {
		t.Fatalf("Set: %v", err)
	}
	data, ok, err := kv.Get(ctx, "k")
	if err != nil || !ok || string(data) != "v1" {
		t.Fatalf("Get = (%q, %v, %v), want (v1, true, nil)", data, ok, err)
	}

	// Set replaces.
	if err := kv.Set(ctx, "k", []byte("v2")); err != nil {
		t.Fatalf("Set replace: %v", err)
	}
	data, _, _ = kv.Get(ctx, "k")
	if string(data) != "v2" {
		t.Errorf("Get after replace = %q, want v2", data)
	}

	if err := kv.Delete(ctx, "k"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, ok, _ := kv.Get(ctx, "k"); ok {
		t.Error("key still present after Delete")
	}

	// Deleting a missing key is not an error.
	if err := kv.Delete(ctx, "k"); err != nil {
		t.Errorf("Delete missing = %v, want nil", err)
	}
}

func TestMemoryKV(t *testing.T) {
	testKVContract(t, NewMemoryKV())
}

func TestMemoryKVClosed(t *testing.T) {
	kv := NewMemoryKV()
	kv.Set(context.Background(), "k", []byte("v"))
	if err := kv.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	if _, _, err := kv.Get(context.Background(), "k"); err != ErrClosed {
		t.Errorf("Get after Close = %v, want ErrClosed", err)
	}
	if err := kv.Set(context.Background(), "k", nil); err != ErrClosed {
		t.Errorf("Set after Close = %v, want ErrClosed", err)
	}
}

func TestMemoryKVIsolation(t *testing.T) {
	kv := NewMemoryKV()
	buf := []byte("original")
	kv.Set(context.Background(), "k", buf)
	buf[0] = 'X'

	data, _, _ := kv.Get(context.Background(), "k")
	if string(data) != "original" {
		t.Errorf("stored value aliased caller buffer: %q", data)
	}

	data[0] = 'Y'
	again, _, _ := kv.Get(context.Background(), "k")
	if string(again) != "original" {
		t.Errorf("returned value aliased stored buffer: %q", again)
	}
}

func TestFileKV(t *testing.T) {
	kv, err := NewFileKV(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileKV: %v", err)
	}
	testKVContract(t, kv)
}

func TestFileKVCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "store")
	if _, err := NewFileKV(dir); err != nil {
		t.Fatalf("NewFileKV: %v", err)
	}
	if _, err := os.Stat(dir); err != nil {
		t.Errorf("directory not created: %v", err)
	}
}

func TestFileKVHashedFilenames(t *testing.T) {
	dir := t.TempDir()
	kv, err := NewFileKV(dir)
	if err != nil {
		t.Fatalf("NewFileKV: %v", err)
	}

	// A hostile key must not escape the store directory.
	key := "../../etc/passwd"
	if err := kv.Set(context.Background(), key, []byte("x")); err != nil {
		t.Fatalf("Set: %v", err)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("entries = %d, want 1", len(entries))
	}
	name := entries[0].Name()
	if !strings.HasSuffix(name, ".json") || strings.Contains(name, "..") {
		t.Errorf("unexpected filename %q", name)
	}
}

func TestFileKVNoStrayTempFiles(t *testing.T) {
	dir := t.TempDir()
	kv, _ := NewFileKV(dir)
	kv.Set(context.Background(), DocumentKey, []byte(`{"version":1}`))

	entries, _ := os.ReadDir(dir)
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), ".tmp") {
			t.Errorf("temp file left behind: %s", e.Name())
		}
	}
}

func TestNullKV(t *testing.T) {
	kv := NewNullKV()
	ctx := context.Background()

	if err := kv.Set(ctx, "k", []byte("v")); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if _, ok, err := kv.Get(ctx, "k"); ok || err != nil {
		t.Error("NullKV should never report stored data")
	}
	if err := kv.Delete(ctx, "k"); err != nil {
		t.Errorf("Delete: %v", err)
	}
	if err := kv.Close(); err != nil {
		t.Errorf("Close: %v", err)
	}
}

func TestHash(t *testing.T) {
	h := Hash([]byte("flowcanvas"))
	if len(h) != 64 {
		t.Errorf("hash length = %d, want 64", len(h))
	}
	if h != Hash([]byte("flowcanvas")) {
		t.Error("hash not deterministic")
	}
	if h == Hash([]byte("other")) {
		t.Error("distinct inputs collided")
	}
}
