package surface

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image/png"
	"io"
)

// DataURLPrefix starts every string produced by DataURL.
const DataURLPrefix = "data:image/png;base64,"

// EncodePNG writes the current composite of s as PNG.
func EncodePNG(w io.Writer, s Surface) error {
	if err := png.Encode(w, Snapshot(s)); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

// DataURL returns the surface as a base64 PNG data URL, the form the
// evaluation service accepts.
func DataURL(s Surface) (string, error) {
	var buf bytes.Buffer
	if err := EncodePNG(&buf, s); err != nil {
		return "", err
	}
	return DataURLPrefix + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
