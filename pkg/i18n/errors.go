package i18n

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyLocale     = errors.New("i18n: locale cannot be empty")
	ErrInvalidDocument = errors.New("i18n: invalid translation document")
	ErrIO              = errors.New("i18n: cannot read translation document")
	ErrParse           = errors.New("i18n: malformed translation document")

	// ErrEmptyDocument is returned for zero-length input. It matches ErrIO.
	ErrEmptyDocument = fmt.Errorf("%w: document is empty", ErrIO)
)
