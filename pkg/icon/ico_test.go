package icon

import (
	"bytes"
	"encoding/binary"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestEncodeICOLayout(t *testing.T) {
	entries := []ICOEntry{
		{Size: 16, PNG: []byte("first-image-data")},
		{Size: 256, PNG: []byte("second")},
	}

	var buf bytes.Buffer
	if err := EncodeICO(&buf, entries); err != nil {
		t.Fatal(err)
	}
	data := buf.Bytes()

	// ICONDIR
	if got := binary.LittleEndian.Uint16(data[0:2]); got != 0 {
		t.Errorf("reserved = %d, want 0", got)
	}
	if got := binary.LittleEndian.Uint16(data[2:4]); got != 1 {
		t.Errorf("type = %d, want 1", got)
	}
	if got := binary.LittleEndian.Uint16(data[4:6]); got != 2 {
		t.Errorf("count = %d, want 2", got)
	}

	wantOffset := uint32(6 + 16*len(entries))
	for i, e := range entries {
		entry := data[6+16*i : 6+16*(i+1)]

		wantDim := byte(e.Size)
		if e.Size >= 256 {
			wantDim = 0
		}
		if entry[0] != wantDim || entry[1] != wantDim {
			t.Errorf("entry %d: dims = %d/%d, want %d", i, entry[0], entry[1], wantDim)
		}
		if got := binary.LittleEndian.Uint16(entry[4:6]); got != 1 {
			t.Errorf("entry %d: planes = %d, want 1", i, got)
		}
		if got := binary.LittleEndian.Uint16(entry[6:8]); got != 32 {
			t.Errorf("entry %d: bpp = %d, want 32", i, got)
		}
		size := binary.LittleEndian.Uint32(entry[8:12])
		if size != uint32(len(e.PNG)) {
			t.Errorf("entry %d: data size = %d, want %d", i, size, len(e.PNG))
		}
		offset := binary.LittleEndian.Uint32(entry[12:16])
		if offset != wantOffset {
			t.Errorf("entry %d: offset = %d, want %d", i, offset, wantOffset)
		}
		if got := data[offset : offset+size]; !bytes.Equal(got, e.PNG) {
			t.Errorf("entry %d: payload at offset does not match", i)
		}
		wantOffset += size
	}
}

func TestEncodeICOEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := EncodeICO(&buf, nil); err == nil {
		t.Error("expected error for empty entry list")
	}
}

func TestWriteICO(t *testing.T) {
	path := filepath.Join(t.TempDir(), "icon.ico")
	cfg := Config{Color: "#0077b5", Encoder: EncoderRaw}

	if err := WriteICO(path, []int{16, 32}, cfg); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if got := binary.LittleEndian.Uint16(data[4:6]); got != 2 {
		t.Fatalf("count = %d, want 2", got)
	}

	// Each embedded payload must be a decodable PNG of the right size.
	for i, wantSize := range []int{16, 32} {
		entry := data[6+16*i : 6+16*(i+1)]
		size := binary.LittleEndian.Uint32(entry[8:12])
		offset := binary.LittleEndian.Uint32(entry[12:16])
		img, err := png.Decode(bytes.NewReader(data[offset : offset+size]))
		if err != nil {
			t.Fatalf("entry %d: embedded payload is not a valid PNG: %v", i, err)
		}
		if b := img.Bounds(); b.Dx() != wantSize || b.Dy() != wantSize {
			t.Errorf("entry %d: bounds %v, want %dx%d", i, b, wantSize, wantSize)
		}
	}
}
