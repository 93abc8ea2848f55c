package pdflayout

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the library.
var (
	// ErrClosed is returned when attempting to use a closed [Renderer].
	ErrClosed = errors.New("pdflayout: renderer is closed")

	// ErrUnknownMode is returned when a projection mode is neither
	// [ModeText] nor [ModeLayout].
	ErrUnknownMode = errors.New("pdflayout: unknown projection mode")
)

// PageError reports that a page or its text content could not be
// fetched from the engine. Page is the 1-based page number the failure
// occurred on; the engine's error is available via [errors.Unwrap].
type PageError struct {
	Page int
	Op   string // "page" or "text content"
	Err  error
}

func (e *PageError) Error() string {
	return fmt.Sprintf("pdflayout: page %d: fetching %s: %v", e.Page, e.Op, e.Err)
}

func (e *PageError) Unwrap() error { return e.Err }
