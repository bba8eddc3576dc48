// chunk.go - Hand-assembled PNG encoder.
// Builds the file chunk by chunk (signature, IHDR, IDAT, IEND) with a CRC32
// per chunk, instead of going through image/png. The output is a structurally
// valid truecolor PNG with a flat fill.
package icon

import (
	"bytes"
	"compress/zlib"
	"encoding/binary"
	"fmt"
	"hash/crc32"
	"image/color"
	"io"
)

// pngSignature is the fixed 8-byte PNG file signature.
var pngSignature = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

// EncodeRaw writes a complete PNG to w: signature, IHDR (8-bit truecolor,
// no interlace), one IDAT holding the zlib-compressed scanlines of a flat
// fill, and IEND.
func EncodeRaw(w io.Writer, width, height int, fill color.RGBA) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("invalid dimensions %dx%d", width, height)
	}

	if _, err := w.Write(pngSignature); err != nil {
		return err
	}

	// IHDR: width, height, bit depth 8, color type 2 (truecolor),
	// compression 0, filter 0, interlace 0.
	ihdr := make([]byte, 13)
	binary.BigEndian.PutUint32(ihdr[0:4], uint32(width))
	binary.BigEndian.PutUint32(ihdr[4:8], uint32(height))
	ihdr[8] = 8
	ihdr[9] = 2
	if err := WriteChunk(w, "IHDR", ihdr); err != nil {
		return err
	}

	// Scanlines: one filter byte of zero, then 3 bytes per pixel.
	row := make([]byte, 1+width*3)
	for x := 0; x < width; x++ {
		row[1+x*3] = fill.R
		row[1+x*3+1] = fill.G
		row[1+x*3+2] = fill.B
	}

	var compressed bytes.Buffer
	zw := zlib.NewWriter(&compressed)
	for y := 0; y < height; y++ {
		if _, err := zw.Write(row); err != nil {
			zw.Close()
			return fmt.Errorf("compress scanlines: %w", err)
		}
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("compress scanlines: %w", err)
	}

	if err := WriteChunk(w, "IDAT", compressed.Bytes()); err != nil {
		return err
	}
	return WriteChunk(w, "IEND", nil)
}

// WriteChunk writes one PNG chunk: big-endian payload length, 4-byte type,
// payload, and a big-endian CRC32 over type+payload.
func WriteChunk(w io.Writer, typ string, payload []byte) error {
	if len(typ) != 4 {
		return fmt.Errorf("invalid chunk type %q", typ)
	}

	var head [8]byte
	binary.BigEndian.PutUint32(head[0:4], uint32(len(payload)))
	copy(head[4:8], typ)
	if _, err := w.Write(head[:]); err != nil {
		return err
	}
	if _, err := w.Write(payload); err != nil {
		return err
	}

	crc := crc32.NewIEEE()
	crc.Write([]byte(typ))
	crc.Write(payload)

	var tail [4]byte
	binary.BigEndian.PutUint32(tail[:], crc.Sum32())
	_, err := w.Write(tail[:])
	return err
}
