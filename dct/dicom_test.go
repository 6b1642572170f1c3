package dct

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/cocosip/go-dicom/pkg/dicom/dataset"
	"github.com/cocosip/go-dicom/pkg/dicom/element"
	"github.com/cocosip/go-dicom/pkg/dicom/tag"
	"github.com/cocosip/go-dicom/pkg/dicom/vr"
	"github.com/cocosip/go-dicom/pkg/dicom/writer"

	"github.com/cocosip/go-compengine/common"
)

type dicomFixture struct {
	rows, cols  uint16
	samples     uint16
	planar      uint16
	bits        uint16
	photometric string
	pixels      []byte
}

// writeDICOM saves f as an uncompressed Part 10 file and returns its path
func writeDICOM(t *testing.T, f dicomFixture) string {
	t.Helper()

	ds := dataset.New()
	elems := []element.Element{
		element.NewUnsignedShort(tag.Rows, []uint16{f.rows}),
		element.NewUnsignedShort(tag.Columns, []uint16{f.cols}),
		element.NewUnsignedShort(tag.SamplesPerPixel, []uint16{f.samples}),
		element.NewUnsignedShort(tag.BitsAllocated, []uint16{f.bits}),
		element.NewUnsignedShort(tag.BitsStored, []uint16{f.bits}),
		element.NewString(tag.PhotometricInterpretation, vr.CS, []string{f.photometric}),
		element.NewOtherByte(tag.PixelData, f.pixels),
	}
	if f.samples > 1 {
		elems = append(elems, element.NewUnsignedShort(tag.PlanarConfiguration, []uint16{f.planar}))
	}
	for _, e := range elems {
		if err := ds.Add(e); err != nil {
			t.Fatalf("Add %v: %v", e.Tag(), err)
		}
	}

	var buf bytes.Buffer
	if err := writer.Write(&buf, ds); err != nil {
		t.Fatalf("writer.Write failed: %v", err)
	}
	path := filepath.Join(t.TempDir(), "image.dcm")
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestReadImageDICOMGray(t *testing.T) {
	pix := make([]byte, 16*16)
	for i := range pix {
		pix[i] = byte(i)
	}
	path := writeDICOM(t, dicomFixture{
		rows: 16, cols: 16, samples: 1, bits: 8,
		photometric: "MONOCHROME2", pixels: pix,
	})

	img, err := ReadImage(path)
	if err != nil {
		t.Fatalf("ReadImage failed: %v", err)
	}
	if img.Width != 16 || img.Height != 16 || img.Channels != 1 {
		t.Fatalf("got %dx%d ch=%d, want 16x16 ch=1", img.Width, img.Height, img.Channels)
	}
	if !bytes.Equal(img.Pix, pix) {
		t.Errorf("pixels differ, first bytes %v", img.Pix[:4])
	}

	encoded, err := Encode(img)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if len(encoded) != HeaderSize+4*blockBytes {
		t.Errorf("encoded %d bytes, want %d", len(encoded), HeaderSize+4*blockBytes)
	}

	fromFile, err := EncodeFile(path)
	if err != nil {
		t.Fatalf("EncodeFile failed: %v", err)
	}
	if !bytes.Equal(fromFile, encoded) {
		t.Error("EncodeFile and Encode(ReadImage) disagree")
	}

	gray, err := Decode(encoded)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if gray.Width != 16 || gray.Height != 16 {
		t.Errorf("decoded %dx%d, want 16x16", gray.Width, gray.Height)
	}
	t.Logf("DICOM 16x16: %d -> %d bytes", len(pix), len(encoded))
}

func TestReadImageDICOMColor(t *testing.T) {
	const w, h = 4, 2
	n := w * h

	// expected interleaved RGB
	want := make([]byte, 0, n*3)
	for i := 0; i < n; i++ {
		want = append(want, byte(i), byte(100+i), byte(200+i))
	}

	planar := make([]byte, n*3)
	for i := 0; i < n; i++ {
		planar[i] = byte(i)
		planar[n+i] = byte(100 + i)
		planar[2*n+i] = byte(200 + i)
	}

	tests := []struct {
		name   string
		planar uint16
		pixels []byte
	}{
		{"Interleaved", 0, want},
		{"Planar", 1, planar},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeDICOM(t, dicomFixture{
				rows: h, cols: w, samples: 3, planar: tt.planar, bits: 8,
				photometric: "RGB", pixels: tt.pixels,
			})

			img, err := ReadImage(path)
			if err != nil {
				t.Fatalf("ReadImage failed: %v", err)
			}
			if img.Width != w || img.Height != h || img.Channels != 3 {
				t.Fatalf("got %dx%d ch=%d, want %dx%d ch=3", img.Width, img.Height, img.Channels, w, h)
			}
			if !bytes.Equal(img.Pix, want) {
				t.Errorf("Pix = %v, want %v", img.Pix, want)
			}
		})
	}
}

func TestReadImageDICOMRejects16Bit(t *testing.T) {
	path := writeDICOM(t, dicomFixture{
		rows: 4, cols: 4, samples: 1, bits: 16,
		photometric: "MONOCHROME2", pixels: make([]byte, 4*4*2),
	})

	if _, err := ReadImage(path); !errors.Is(err, common.ErrUnsupported) {
		t.Errorf("16-bit DICOM: error = %v, want ErrUnsupported", err)
	}
	if _, err := EncodeFile(path); !errors.Is(err, common.ErrUnsupported) {
		t.Errorf("EncodeFile 16-bit DICOM: error = %v, want ErrUnsupported", err)
	}
}
