package config

import "errors"

// Errors returned by configuration validation.
var (
	ErrTabWidth      = errors.New("tab width must be between 1 and 16")
	ErrIndentStyle   = errors.New("indent style must be spaces or tabs")
	ErrCommentPrefix = errors.New("comment prefix must be a single non-space character")
)
