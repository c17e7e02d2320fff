package images_test

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/goliatone/go-dealsheet/pkg/images"
)

func pngBytes(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

func TestFromBytesRoundTrip(t *testing.T) {
	t.Parallel()

	original := pngBytes(t)
	payload, err := images.FromBytes(original)
	if err != nil {
		t.Fatalf("FromBytes: %v", err)
	}
	if payload.IsZero() {
		t.Fatal("payload should not be zero")
	}

	mime, data, err := payload.Decode()
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if mime != "image/png" {
		t.Fatalf("mime = %q, want image/png", mime)
	}
	if !bytes.Equal(data, original) {
		t.Fatal("decoded bytes differ from original")
	}
}

func TestFromBytesRejectsNonImage(t *testing.T) {
	t.Parallel()

	if _, err := images.FromBytes([]byte("plain text, not pixels")); !errors.Is(err, images.ErrNotImage) {
		t.Fatalf("expected ErrNotImage, got %v", err)
	}
	if _, err := images.FromBytes(nil); !errors.Is(err, images.ErrNotImage) {
		t.Fatalf("expected ErrNotImage for empty input, got %v", err)
	}
}

func TestFromFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "pricing.png")
	if err := os.WriteFile(path, pngBytes(t), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	payload, err := images.FromFile(path)
	if err != nil {
		t.Fatalf("FromFile: %v", err)
	}
	mime, _, err := payload.Decode()
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if mime != "image/png" {
		t.Fatalf("mime = %q", mime)
	}

	if _, err := images.FromFile(filepath.Join(t.TempDir(), "missing.png")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestDecodeRejectsMalformedPayloads(t *testing.T) {
	t.Parallel()

	for _, raw := range []string{
		"not a data uri",
		"data:image/png,missing-base64-marker",
		"data:text/plain;base64,aGVsbG8=",
	} {
		if _, _, err := images.Payload(raw).Decode(); !errors.Is(err, images.ErrBadPayload) {
			t.Fatalf("Decode(%q) expected ErrBadPayload, got %v", raw, err)
		}
	}
}
