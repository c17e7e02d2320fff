package export

import "errors"

// ErrSurfaceUnavailable is returned when the output surface cannot be
// created (blocked directory, permissions, full disk). Generation aborts
// without consuming a version number.
var ErrSurfaceUnavailable = errors.New("export: output surface unavailable")
