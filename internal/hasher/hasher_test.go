package hasher

import (
	"strings"
	"testing"
)

func TestDigest_Stable(t *testing.T) {
	data := []byte("fsdither")
	d1 := Digest(data)
	d2 := Digest(append([]byte(nil), data...))
	if d1 != d2 {
		t.Errorf("digest not stable: %s vs %s", d1, d2)
	}
	if len(d1) != DigestLen {
		t.Errorf("length: got %d, want %d", len(d1), DigestLen)
	}
	if strings.ToLower(d1) != d1 {
		t.Errorf("digest not lowercase: %s", d1)
	}
}

func TestDigest_KnownValue(t *testing.T) {
	// xxHash64 of the empty input with seed 0.
	if got, want := Digest(nil), "ef46db3751d8e999"; got != want {
		t.Errorf("got %s, want %s", got, want)
	}
}

func TestDigest_DiffersOnChange(t *testing.T) {
	a := Digest([]byte{0, 255, 0})
	b := Digest([]byte{0, 255, 255})
	if a == b {
		t.Error("different inputs produced the same digest")
	}
}
