package imagepkg

import (
	"errors"
	"fmt"
)

// ErrAssetNotFound is returned when a source image, blur layer or font file
// does not exist.
var ErrAssetNotFound = errors.New("asset not found")

// RenderError reports a failed poster render. Nothing is written to Output
// when it is returned.
type RenderError struct {
	Output string
	Err    error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("render %s: %v", e.Output, e.Err)
}

func (e *RenderError) Unwrap() error { return e.Err }
