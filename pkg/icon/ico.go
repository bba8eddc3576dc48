// ico.go - ICO container writer.
// Bundles the PNG icons into a single .ico file: an ICONDIR header followed by
// one ICONDIRENTRY per size, each pointing at PNG-compressed image data. All
// multi-byte fields are little-endian, per the ICO format.
package icon

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"os"
)

// ICOEntry is one image slot in an ICO container.
type ICOEntry struct {
	Size int    // Nominal pixel size; 256 is stored as 0
	PNG  []byte // Complete PNG file bytes
}

// EncodeICO writes an ICO container holding the given entries to w.
func EncodeICO(w io.Writer, entries []ICOEntry) error {
	if len(entries) == 0 {
		return fmt.Errorf("ico: no entries")
	}

	// ICONDIR: reserved, type 1 (icon), image count.
	if err := binary.Write(w, binary.LittleEndian, [3]uint16{0, 1, uint16(len(entries))}); err != nil {
		return err
	}

	// Image data starts after the header and the directory entries.
	offset := uint32(6 + 16*len(entries))
	for _, e := range entries {
		dim := byte(e.Size)
		if e.Size >= 256 {
			dim = 0
		}
		var entry [16]byte
		entry[0] = dim
		entry[1] = dim
		binary.LittleEndian.PutUint16(entry[4:6], 1)   // color planes
		binary.LittleEndian.PutUint16(entry[6:8], 32)  // bits per pixel
		binary.LittleEndian.PutUint32(entry[8:12], uint32(len(e.PNG)))
		binary.LittleEndian.PutUint32(entry[12:16], offset)
		if _, err := w.Write(entry[:]); err != nil {
			return err
		}
		offset += uint32(len(e.PNG))
	}

	for _, e := range entries {
		if _, err := w.Write(e.PNG); err != nil {
			return err
		}
	}
	return nil
}

// WriteICO generates one icon per size and bundles them into an ICO file at
// output. The per-size images honor cfg's encoder, color, style and label.
func WriteICO(output string, sizes []int, cfg Config) error {
	if len(sizes) == 0 {
		sizes = DefaultSizes
	}

	entries := make([]ICOEntry, 0, len(sizes))
	for _, size := range sizes {
		sized := cfg
		sized.Size = size
		var buf bytes.Buffer
		if err := GenerateToWriter(&buf, ".png", sized); err != nil {
			return fmt.Errorf("render %dpx entry: %w", size, err)
		}
		entries = append(entries, ICOEntry{Size: size, PNG: buf.Bytes()})
	}

	f, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("create %s: %w", output, err)
	}
	defer f.Close()

	if err := EncodeICO(f, entries); err != nil {
		return fmt.Errorf("write %s: %w", output, err)
	}
	return nil
}
