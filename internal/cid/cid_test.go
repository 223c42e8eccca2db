package cid

import (
	"bytes"
	"strings"
	"testing"
)

func TestSum(t *testing.T) {
	a, n, err := Sum(strings.NewReader("hello"))
	if err != nil {
		t.Fatalf("Sum failed: %v", err)
	}
	if n != 5 {
		t.Errorf("read %d bytes, want 5", n)
	}
	if !Validate(a) {
		t.Errorf("Sum returned invalid CID %q", a)
	}
	if !strings.HasPrefix(a, "bafk") {
		t.Errorf("CID %q is not a base32 CIDv1 raw", a)
	}

	b, _, err := Sum(bytes.NewReader([]byte("hello")))
	if err != nil {
		t.Fatalf("Sum failed: %v", err)
	}
	if a != b {
		t.Errorf("same content gave different CIDs: %s vs %s", a, b)
	}

	c, _, err := Sum(strings.NewReader("hello!"))
	if err != nil {
		t.Fatalf("Sum failed: %v", err)
	}
	if a == c {
		t.Error("different content gave the same CID")
	}
}

func TestValidate(t *testing.T) {
	if Validate("not-a-cid") {
		t.Error("Validate accepted garbage")
	}
}
