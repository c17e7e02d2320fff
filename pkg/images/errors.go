package images

import "errors"

var (
	// ErrNotImage is returned when the supplied bytes do not sniff as an image.
	ErrNotImage = errors.New("images: not an image")
	// ErrBadPayload is returned when a stored payload is not a base64 image data-URI.
	ErrBadPayload = errors.New("images: malformed payload")
)
