package util

import (
	"strings"
	"testing"
)

func TestDecodeText_Empty(t *testing.T) {
	got, err := DecodeText(nil)
	if err != nil {
		t.Fatalf("DecodeText failed: %v", err)
	}
	if got != "" {
		t.Fatalf("Expected empty string, got %q", got)
	}
}

func TestDecodeText_PlainASCII(t *testing.T) {
	got, err := DecodeText([]byte("plain ascii text, nothing fancy here at all"))
	if err != nil {
		t.Fatalf("DecodeText failed: %v", err)
	}
	if got != "plain ascii text, nothing fancy here at all" {
		t.Fatalf("ASCII content changed by decoding: %q", got)
	}
}

func TestDecodeText_UTF8(t *testing.T) {
	// Enough UTF-8 multibyte content for detection to settle on UTF-8.
	input := strings.Repeat("naïve café résumé — déjà vu. ", 10)
	got, err := DecodeText([]byte(input))
	if err != nil {
		t.Fatalf("DecodeText failed: %v", err)
	}
	if got != input {
		t.Fatalf("UTF-8 content changed by decoding")
	}
}

func TestDecodeText_UTF16LE(t *testing.T) {
	// "hello world" as UTF-16LE with BOM.
	text := "hello world"
	raw := []byte{0xFF, 0xFE}
	for _, r := range text {
		raw = append(raw, byte(r), 0x00)
	}

	got, err := DecodeText(raw)
	if err != nil {
		t.Fatalf("DecodeText failed: %v", err)
	}
	if !strings.Contains(got, "hello world") {
		t.Fatalf("Expected decoded UTF-16 text to contain %q, got %q", text, got)
	}
}
