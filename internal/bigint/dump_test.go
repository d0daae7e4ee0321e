package bigint

import (
	"testing"

	"github.com/copyl-sys/ternary/internal/kernel"
)

func TestDumpLoadRoundTrip(t *testing.T) {
	cfg := kernel.DefaultConfig()
	values := []int64{0, 1, -1, 123456789, -987654321}
	for _, n := range values {
		b, _ := FromI64(cfg, n)
		data := Dump(b)
		back, err := Load(cfg, data)
		if err != nil {
			t.Fatalf("Load after Dump(%d): %v", n, err)
		}
		if !Equal(b, back) {
			t.Errorf("round trip for %d did not match", n)
		}
	}
}

func TestLoadRejectsTruncated(t *testing.T) {
	cfg := kernel.DefaultConfig()
	if _, err := Load(cfg, []byte{1, 2, 3}); err == nil {
		t.Fatal("expected error loading truncated data")
	}
}

func TestLoadRejectsBadLength(t *testing.T) {
	cfg := kernel.DefaultConfig()
	b, _ := FromI64(cfg, 5)
	data := Dump(b)
	data = append(data, 0xFF) // payload no longer matches declared length
	if _, err := Load(cfg, data); err == nil {
		t.Fatal("expected error for mismatched limb count")
	}
}
