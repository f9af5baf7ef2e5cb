package xcursor

import (
	"bytes"
	"os"

	"github.com/PatchMixolydic/xcursor/cursor"
	"github.com/pkg/errors"
)

// Resize rescales each input file in turn, overwriting it in place
// unless a matching list of output paths is given. Every file is
// processed to completion before the next one starts and the first
// unrecoverable error stops the whole run. Skipped files produce no
// output at all.
func (r *Resizer) Resize(inputs, outputs []string) error {
	if outputs == nil {
		outputs = inputs
	} else if len(outputs) != len(inputs) {
		return errors.Errorf("there must be as many output filenames as input filenames (got %d inputs and %d outputs)",
			len(inputs), len(outputs))
	}

	for i, input := range inputs {
		if err := r.resizeFile(input, outputs[i]); err != nil {
			return err
		}
	}

	return nil
}

func (r *Resizer) resizeFile(input, output string) error {
	b, err := os.ReadFile(input)
	if err != nil {
		return err
	}

	images, err := cursor.Decode(bytes.NewReader(b))
	if err != nil {
		if r.ignoreUnrecognized && errors.Is(err, cursor.ErrFormat) {
			r.logger.Printf("Skipping \"%s\": %v\n", input, err)
			return nil
		}
		return errors.Wrapf(err, "%s", input)
	}

	f := cursor.NewFile()
	for _, m := range images {
		scaled, err := cursor.Scale(m, r.scale)
		if err != nil {
			return errors.Wrapf(err, "%s", input)
		}
		if err := f.Add(scaled); err != nil {
			return errors.Wrapf(err, "%s", input)
		}
	}

	// Encode to memory first so a failed encode never leaves a
	// half-written cursor behind, which matters when overwriting the
	// input in place.
	var buf bytes.Buffer
	if err := cursor.Encode(&buf, f); err != nil {
		return errors.Wrapf(err, "%s", output)
	}

	if err := os.WriteFile(output, buf.Bytes(), 0644); err != nil {
		return err
	}

	r.logger.Printf("Wrote %d images to \"%s\"\n", f.Len(), output)

	return nil
}
