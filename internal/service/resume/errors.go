package resume

import "errors"

var ErrNotConfigured = errors.New("resume download is not configured")
