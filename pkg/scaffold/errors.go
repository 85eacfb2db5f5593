package scaffold

import "errors"

var (
	ErrUnknownTemplate    = errors.New("unknown template")
	ErrInvalidManifest    = errors.New("invalid template manifest")
	ErrUnsupportedVersion = errors.New("template requires a newer mlseed")
	ErrMissingSlot        = errors.New("missing template slot")
	ErrEmptyValue         = errors.New("empty value")
)
