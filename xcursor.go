/*
Package xcursor rescales X11 cursor files by an integer factor using
nearest-neighbor replication.
*/
package xcursor

import (
	"log"

	"github.com/pkg/errors"
)

type Resizer struct {
	scale              uint32
	ignoreUnrecognized bool
	logger             *log.Logger
}

// New returns a Resizer that enlarges cursors by the given factor. A
// factor of zero is rejected here so the transform itself never sees
// one. With ignoreUnrecognized set, input files that do not decode as
// Xcursors are skipped instead of aborting the run.
func New(scale uint32, ignoreUnrecognized bool, logger *log.Logger) (*Resizer, error) {
	if scale < 1 {
		return nil, errors.New("scale factor must be at least 1")
	}

	return &Resizer{
		scale:              scale,
		ignoreUnrecognized: ignoreUnrecognized,
		logger:             logger,
	}, nil
}
