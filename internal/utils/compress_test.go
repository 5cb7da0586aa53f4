package utils

import (
	"encoding/base64"
	"testing"
)

func TestCompressJSON_RoundTrip(t *testing.T) {
	type entry struct {
		GUID   string `json:"guid"`
		ReadAt string `json:"readAt"`
	}

	in := []entry{
		{GUID: "item-1", ReadAt: "2026-08-30T10:00:00Z"},
		{GUID: "item-2", ReadAt: "2026-08-31T11:30:00Z"},
	}

	encoded, err := CompressJSON(in)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if encoded == "" {
		t.Fatal("expected non-empty encoded payload")
	}
	if _, err = base64.StdEncoding.DecodeString(encoded); err != nil {
		t.Fatalf("encoded payload is not valid base64: %v", err)
	}

	var out []entry
	if err = DecompressJSON(encoded, &out); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if len(out) != len(in) {
		t.Fatalf("expected %d entries, got %d", len(in), len(out))
	}
	for i := range in {
		if out[i] != in[i] {
			t.Errorf("entry %d: expected %+v, got %+v", i, in[i], out[i])
		}
	}
}

func TestCompressJSON_ShrinksRepetitivePayloads(t *testing.T) {
	guids := make([]string, 500)
	for i := range guids {
		guids[i] = "https://example.com/feed/items/article-number-0000"
	}

	encoded, err := CompressJSON(guids)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	// 500 near-identical ~50 byte strings should compress far below the
	// raw JSON size even after base64 expansion.
	if len(encoded) > 5000 {
		t.Errorf("expected compressed payload under 5000 bytes, got %d", len(encoded))
	}
}

func TestDecompressJSON_InvalidInputs(t *testing.T) {
	var out []string

	if err := DecompressJSON("%%%not-base64%%%", &out); err == nil {
		t.Error("expected error for invalid base64, got nil")
	}

	notGzip := base64.StdEncoding.EncodeToString([]byte("plain text"))
	if err := DecompressJSON(notGzip, &out); err == nil {
		t.Error("expected error for non-gzip payload, got nil")
	}
}

func TestCompressJSON_UnmarshallableValue(t *testing.T) {
	if _, err := CompressJSON(make(chan int)); err == nil {
		t.Error("expected error for unmarshallable value, got nil")
	}
}
