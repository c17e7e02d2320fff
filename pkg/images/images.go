// Package images handles the pricing-screenshot attachments: reading an
// image file into a data-URI payload and decoding a payload back into raw
// bytes for embedding.
package images

import (
	"encoding/base64"
	"fmt"
	"net/http"
	"os"
	"strings"
)

// Payload is a data-URI encoded image, e.g. `data:image/png;base64,...`.
// The zero value means no attachment.
type Payload string

// IsZero reports whether the slot is empty.
func (p Payload) IsZero() bool { return strings.TrimSpace(string(p)) == "" }

// FromFile reads an image file and encodes it as a data-URI payload. The
// content type is sniffed from the file bytes; non-image files are rejected.
func FromFile(path string) (Payload, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("images: read %q: %w", path, err)
	}
	payload, err := FromBytes(data)
	if err != nil {
		return "", fmt.Errorf("images: %q: %w", path, err)
	}
	return payload, nil
}

// FromBytes encodes raw image bytes as a data-URI payload.
func FromBytes(data []byte) (Payload, error) {
	if len(data) == 0 {
		return "", ErrNotImage
	}
	mime := http.DetectContentType(data)
	if !strings.HasPrefix(mime, "image/") {
		return "", fmt.Errorf("%w: detected %s", ErrNotImage, mime)
	}
	encoded := base64.StdEncoding.EncodeToString(data)
	return Payload("data:" + mime + ";base64," + encoded), nil
}

// Decode splits a payload into its MIME type and raw bytes.
func (p Payload) Decode() (string, []byte, error) {
	raw := string(p)
	if !strings.HasPrefix(raw, "data:") {
		return "", nil, ErrBadPayload
	}
	meta, encoded, found := strings.Cut(raw[len("data:"):], ",")
	if !found {
		return "", nil, ErrBadPayload
	}
	mime := strings.TrimSuffix(meta, ";base64")
	if mime == meta {
		return "", nil, fmt.Errorf("%w: only base64 payloads are supported", ErrBadPayload)
	}
	if !strings.HasPrefix(mime, "image/") {
		return "", nil, fmt.Errorf("%w: %s is not an image type", ErrBadPayload, mime)
	}
	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", nil, fmt.Errorf("images: decode payload: %w", err)
	}
	return mime, data, nil
}
