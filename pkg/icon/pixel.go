// pixel.go - Fixed 1×1 placeholder image.
// The pixel variant writes the same pre-encoded blue pixel to every size slot.
// It is deliberately undersized: a stand-in until real icons exist, flagged as
// such in the CLI output.
package icon

import (
	"encoding/base64"
	"fmt"
	"os"
)

// bluePixelB64 is a complete 1×1 blue-pixel PNG, pre-encoded.
const bluePixelB64 = "iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAYAAAAfFcSJAAAADUlEQVR42mNkYPhfDwAChwGA60e6kgAAAABJRU5ErkJggg=="

// PixelPNG returns the fixed placeholder PNG bytes.
func PixelPNG() ([]byte, error) {
	data, err := base64.StdEncoding.DecodeString(bluePixelB64)
	if err != nil {
		return nil, fmt.Errorf("decode pixel placeholder: %w", err)
	}
	return data, nil
}

// WritePixel writes the fixed placeholder bytes to output, regardless of the
// nominal size in the filename.
func WritePixel(output string) error {
	data, err := PixelPNG()
	if err != nil {
		return err
	}
	if err := os.WriteFile(output, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", output, err)
	}
	return nil
}
