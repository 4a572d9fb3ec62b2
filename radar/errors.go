// radar/errors.go
// Copyright(c) 2026 radarview contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package radar

import "errors"

var (
	ErrUnknownProperty     = errors.New("unknown property")
	ErrTypeMismatch        = errors.New("value type does not match property")
	ErrRangeViolation      = errors.New("value outside property range")
	ErrDuplicateIdentifier = errors.New("identifier already in use")
	ErrNoSuchObject        = errors.New("no such object")
	ErrScopeViolation      = errors.New("property not valid for this scope")
)
