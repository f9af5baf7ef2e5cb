package xcursor

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/PatchMixolydic/xcursor/cursor"
	"github.com/pkg/errors"
)

// Info writes a summary of the images in each file to w.
func Info(w io.Writer, paths []string) error {
	for _, path := range paths {
		b, err := os.ReadFile(path)
		if err != nil {
			return err
		}

		config, err := cursor.DecodeConfig(bytes.NewReader(b))
		if err != nil {
			return errors.Wrapf(err, "%s", path)
		}

		fmt.Fprintf(w, "%s: %d images\n", path, len(config.Sizes))

		images, err := cursor.Decode(bytes.NewReader(b))
		if err != nil {
			return errors.Wrapf(err, "%s", path)
		}

		for _, m := range images {
			fmt.Fprintf(w, "  size %d: %dx%d, hotspot (%d, %d), delay %d ms\n",
				m.Size, m.Width, m.Height, m.XHot, m.YHot, m.Delay)
		}
	}

	return nil
}
