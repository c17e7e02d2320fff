package pdfdoc

import "errors"

// ErrFontRequired is returned by Render when no TTF font was configured.
var ErrFontRequired = errors.New("pdfdoc: a TTF font is required")
