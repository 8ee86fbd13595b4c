package storage

import "testing"

func TestMemoryKV(t *testing.T) {
	kv := NewMemoryKV()

	if _, ok, err := kv.Get("missing"); ok || err != nil {
		t.Errorf("Get(missing) = ok %v, err %v, want absent", ok, err)
	}

	if err := kv.Set("k", "v1"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if v, ok, _ := kv.Get("k"); !ok || v != "v1" {
		t.Errorf("Get(k) = %q, %v, want v1, true", v, ok)
	}

	// Set overwrites
	if err := kv.Set("k", "v2"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if v, _, _ := kv.Get("k"); v != "v2" {
		t.Errorf("Get(k) after overwrite = %q, want v2", v)
	}
}
