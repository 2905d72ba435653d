package site

import "errors"

// ErrInvalidBasePath is returned for a base path that is not "" or a root-relative path without a trailing slash.
var ErrInvalidBasePath = errors.New("invalid base path")

// ErrMissingPagesDir is returned when no pages output directory is configured.
var ErrMissingPagesDir = errors.New("pages output directory is required")

// ErrInvalidAlias is returned for an alias whose prefix or directory is empty, or whose prefix is declared twice.
var ErrInvalidAlias = errors.New("invalid alias")
