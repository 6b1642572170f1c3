package dct

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/cocosip/go-compengine/common"
)

// gradientImage builds a smooth single-channel test image
func gradientImage(w, h int) *Image {
	pix := make([]byte, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			pix[y*w+x] = byte((x + y) * 8 % 256)
		}
	}
	return &Image{Width: w, Height: h, Channels: 1, Pix: pix}
}

func meanAbsError(a, b []byte) float64 {
	var sum float64
	for i := range a {
		sum += math.Abs(float64(a[i]) - float64(b[i]))
	}
	return sum / float64(len(a))
}

func pgmBytes(w, h int, pix []byte) []byte {
	g := &Gray{Width: w, Height: h, Pix: pix}
	return g.PGM()
}

func TestGradientRoundTrip(t *testing.T) {
	img := gradientImage(16, 16)

	encoded, err := Encode(img)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	// 9 header bytes + 2x2 blocks of 64 int16 coefficients
	if want := HeaderSize + 4*64*2; len(encoded) != want {
		t.Errorf("Encoded size = %d, want %d", len(encoded), want)
	}
	if !bytes.Equal(encoded[:HeaderSize], []byte{'D', 'C', 'T', '1', 16, 0, 16, 0, 1}) {
		t.Errorf("Header = %X", encoded[:HeaderSize])
	}

	decoded, err := Decode(encoded)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if decoded.Width != 16 || decoded.Height != 16 {
		t.Fatalf("Decoded size %dx%d, want 16x16", decoded.Width, decoded.Height)
	}

	mae := meanAbsError(img.Pix, decoded.Pix)
	t.Logf("16x16 gradient: %d bytes, MAE %.3f", len(encoded), mae)
	if mae >= 5 {
		t.Errorf("MAE = %.3f, want < 5", mae)
	}
}

func TestGeometryPreserved(t *testing.T) {
	sizes := []struct{ w, h int }{
		{1, 1}, {8, 8}, {7, 9}, {10, 7}, {17, 8}, {33, 2},
	}

	for _, s := range sizes {
		t.Run(fmt.Sprintf("%dx%d", s.w, s.h), func(t *testing.T) {
			encoded, err := Encode(gradientImage(s.w, s.h))
			if err != nil {
				t.Fatalf("Encode failed: %v", err)
			}

			blocks := ((s.w + 7) / 8) * ((s.h + 7) / 8)
			if want := HeaderSize + blocks*128; len(encoded) != want {
				t.Errorf("Encoded size = %d, want %d", len(encoded), want)
			}

			decoded, err := Decode(encoded)
			if err != nil {
				t.Fatalf("Decode failed: %v", err)
			}
			if decoded.Width != s.w || decoded.Height != s.h || len(decoded.Pix) != s.w*s.h {
				t.Errorf("Decoded %dx%d with %d pixels", decoded.Width, decoded.Height, len(decoded.Pix))
			}
		})
	}
}

func TestRGBLuma(t *testing.T) {
	// flat (200,100,50): luma 124.2, DC quantizes to -2, reconstructs to 124
	pix := bytes.Repeat([]byte{200, 100, 50}, 16*16)
	img := &Image{Width: 16, Height: 16, Channels: 3, Pix: pix}

	encoded, err := Encode(img)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	dc := int16(uint16(encoded[HeaderSize]) | uint16(encoded[HeaderSize+1])<<8)
	if dc != -2 {
		t.Errorf("DC = %d, want -2", dc)
	}

	decoded, err := Decode(encoded)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	for i, p := range decoded.Pix {
		if p != 124 {
			t.Fatalf("pixel %d = %d, want 124", i, p)
		}
	}
}

func TestFlatBlockCoefficients(t *testing.T) {
	var block, coef [64]float32
	var q [64]int16

	for i := range block {
		block[i] = 255
	}
	forwardDCT(&block, &coef)
	quantize(&coef, &q)

	// DC = 0.25 * 1/2 * 127 * 64 = 1016, 1016/16 = 63.5 rounds away from zero
	if q[0] != 64 {
		t.Errorf("DC = %d, want 64", q[0])
	}
	for i := 1; i < 64; i++ {
		if q[i] != 0 {
			t.Errorf("AC[%d] = %d, want 0", i, q[i])
		}
	}
}

func TestTransformInverts(t *testing.T) {
	var in, coef [64]float32
	for i := range in {
		in[i] = float32((i*37)%256) + 0.5
	}
	forwardDCT(&in, &coef)

	var c64, out [64]float64
	for i := range coef {
		c64[i] = float64(coef[i])
	}
	inverseDCT(&c64, &out)

	for i := range in {
		if d := math.Abs(out[i] - float64(in[i])); d > 1e-2 {
			t.Errorf("sample %d: got %.4f, want %.4f", i, out[i], in[i])
		}
	}
}

func TestQuantize(t *testing.T) {
	var coef [64]float32
	var q [64]int16

	coef[0] = 40    // 2.5 -> 3
	coef[1] = -27.5 // -2.5 -> -3
	coef[2] = 1e9   // clamps
	coef[3] = -1e9  // clamps
	coef[4] = 11.9  // 0.4958 -> 0
	quantize(&coef, &q)

	want := []int16{3, -3, math.MaxInt16, math.MinInt16, 0}
	for i, w := range want {
		if q[i] != w {
			t.Errorf("q[%d] = %d, want %d", i, q[i], w)
		}
	}
}

func TestToPixel(t *testing.T) {
	cases := map[float64]byte{
		-20:   0,
		0.4:   0,
		0.5:   1,
		127.5: 128,
		254.6: 255,
		300:   255,
	}
	for in, want := range cases {
		if got := toPixel(in); got != want {
			t.Errorf("toPixel(%v) = %d, want %d", in, got, want)
		}
	}
}

func TestDecodeTruncated(t *testing.T) {
	encoded, err := Encode(gradientImage(16, 16))
	if err != nil {
		t.Fatal(err)
	}

	for n := 0; n < len(encoded); n++ {
		_, err := Decode(encoded[:n])
		if !errors.Is(err, common.ErrTruncated) {
			t.Fatalf("prefix %d: error = %v, want ErrTruncated", n, err)
		}
	}

	// cut mid-block
	_, err = Decode(encoded[:HeaderSize+100])
	if !errors.Is(err, common.ErrTruncated) {
		t.Errorf("mid-block cut: error = %v", err)
	}
}

func TestDecodeErrors(t *testing.T) {
	valid, err := Encode(gradientImage(8, 8))
	if err != nil {
		t.Fatal(err)
	}

	mutate := func(f func([]byte) []byte) []byte {
		return f(append([]byte(nil), valid...))
	}

	tests := []struct {
		name string
		data []byte
		want error
	}{
		{"Bad magic", mutate(func(b []byte) []byte { b[3] = '2'; return b }), common.ErrFormat},
		{"Zero width", mutate(func(b []byte) []byte { b[4], b[5] = 0, 0; return b }), common.ErrFormat},
		{"Zero height", mutate(func(b []byte) []byte { b[6], b[7] = 0, 0; return b }), common.ErrFormat},
		{"Three channels", mutate(func(b []byte) []byte { b[8] = 3; return b }), common.ErrUnsupported},
		{"Trailing bytes", mutate(func(b []byte) []byte { return append(b, 0) }), common.ErrFormat},
		{"Larger declared size", mutate(func(b []byte) []byte { b[4] = 9; return b }), common.ErrTruncated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(tt.data)
			if !errors.Is(err, tt.want) {
				t.Errorf("Decode() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestEncodeErrors(t *testing.T) {
	tests := []struct {
		name string
		img  *Image
	}{
		{"Zero width", &Image{Width: 0, Height: 4, Channels: 1}},
		{"Too wide", &Image{Width: MaxDimension + 1, Height: 1, Channels: 1, Pix: make([]byte, MaxDimension+1)}},
		{"Two channels", &Image{Width: 2, Height: 2, Channels: 2, Pix: make([]byte, 8)}},
		{"Short buffer", &Image{Width: 4, Height: 4, Channels: 3, Pix: make([]byte, 47)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Encode(tt.img)
			if !errors.Is(err, common.ErrUnsupported) {
				t.Errorf("Encode() error = %v, want ErrUnsupported", err)
			}
		})
	}
}

func TestEncodeDeterministic(t *testing.T) {
	img := gradientImage(40, 24)
	first, err := Encode(img)
	if err != nil {
		t.Fatal(err)
	}
	second, err := Encode(img)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(first, second) {
		t.Error("Encode is not deterministic")
	}
}

func TestPGM(t *testing.T) {
	g := &Gray{Width: 3, Height: 2, Pix: []byte{1, 2, 3, 4, 5, 6}}
	want := append([]byte("P5\n3 2\n255\n"), 1, 2, 3, 4, 5, 6)
	if got := g.PGM(); !bytes.Equal(got, want) {
		t.Errorf("PGM() = %q, want %q", got, want)
	}
	if g.At(2, 1) != 6 {
		t.Errorf("At(2,1) = %d", g.At(2, 1))
	}
}

func TestNetpbm(t *testing.T) {
	tests := []struct {
		name     string
		data     []byte
		channels int
		wantErr  error
	}{
		{"P5", append([]byte("P5\n2 2\n255\n"), 1, 2, 3, 4), 1, nil},
		{"P6", append([]byte("P6 1 1 255\n"), 9, 8, 7), 3, nil},
		{"Comments", append([]byte("P5\n# made by hand\n2 # width\n2\n# max\n255\n"), 1, 2, 3, 4), 1, nil},
		{"Low maxval", append([]byte("P5\n2 2\n15\n"), 1, 2, 3, 4), 1, nil},
		{"Sixteen bit", append([]byte("P5\n2 2\n65535\n"), make([]byte, 8)...), 0, common.ErrUnsupported},
		{"Zero maxval", append([]byte("P5\n2 2\n0\n"), 1, 2, 3, 4), 0, common.ErrUnsupported},
		{"Short raster", append([]byte("P6\n2 2\n255\n"), 1, 2, 3), 0, common.ErrUnsupported},
		{"Missing field", []byte("P5\n2\n"), 0, common.ErrUnsupported},
		{"Zero width", []byte("P5\n0 2\n255\n"), 0, common.ErrUnsupported},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img, err := DecodeImage(tt.data)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("DecodeImage() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("DecodeImage() error = %v", err)
			}
			if img.Channels != tt.channels {
				t.Errorf("Channels = %d, want %d", img.Channels, tt.channels)
			}
			if len(img.Pix) != img.Width*img.Height*img.Channels {
				t.Errorf("Pix has %d bytes for %dx%dx%d", len(img.Pix), img.Width, img.Height, img.Channels)
			}
		})
	}
}

func TestDecodeImageUnrecognized(t *testing.T) {
	if _, err := DecodeImage(nil); !errors.Is(err, common.ErrIO) {
		t.Errorf("empty input: error = %v, want ErrIO", err)
	}
	if _, err := DecodeImage([]byte("plain text, not an image")); !errors.Is(err, common.ErrUnsupported) {
		t.Errorf("text input: error = %v, want ErrUnsupported", err)
	}

	dicom := append(make([]byte, 128), "DICM"...)
	if _, err := DecodeImage(dicom); !errors.Is(err, common.ErrUnsupported) {
		t.Errorf("in-memory DICOM: error = %v, want ErrUnsupported", err)
	}
}

func TestReadImagePNG(t *testing.T) {
	src := image.NewGray(image.Rect(0, 0, 12, 5))
	for i := range src.Pix {
		src.Pix[i] = byte(i * 3)
	}

	path := filepath.Join(t.TempDir(), "frame.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, src); err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}

	img, err := ReadImage(path)
	if err != nil {
		t.Fatalf("ReadImage failed: %v", err)
	}
	if img.Width != 12 || img.Height != 5 || img.Channels != 1 {
		t.Fatalf("ReadImage = %dx%dx%d", img.Width, img.Height, img.Channels)
	}
	if !bytes.Equal(img.Pix, src.Pix) {
		t.Error("pixels differ from source")
	}

	encoded, err := EncodeFile(path)
	if err != nil {
		t.Fatalf("EncodeFile failed: %v", err)
	}
	if want := HeaderSize + 2*1*128; len(encoded) != want {
		t.Errorf("Encoded size = %d, want %d", len(encoded), want)
	}
}

func TestReadImageErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := ReadImage(filepath.Join(dir, "missing.ppm")); !errors.Is(err, common.ErrIO) {
		t.Errorf("missing file: error = %v, want ErrIO", err)
	}

	empty := filepath.Join(dir, "empty.ppm")
	if err := os.WriteFile(empty, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := ReadImage(empty); !errors.Is(err, common.ErrIO) {
		t.Errorf("empty file: error = %v, want ErrIO", err)
	}
}

func TestCodec(t *testing.T) {
	c := NewCodec()
	img := gradientImage(16, 16)

	compressed, err := c.Compress(pgmBytes(16, 16, img.Pix))
	if err != nil {
		t.Fatalf("Compress failed: %v", err)
	}

	pgm, err := c.Decompress(compressed)
	if err != nil {
		t.Fatalf("Decompress failed: %v", err)
	}
	header := []byte("P5\n16 16\n255\n")
	if !bytes.HasPrefix(pgm, header) || len(pgm) != len(header)+256 {
		t.Errorf("Decompress output is not a 16x16 PGM: %q...", pgm[:min(len(pgm), 16)])
	}

	if got := c.DecompressedPath("scene.ppm.dct"); got != "scene.ppm.dct.pgm" {
		t.Errorf("DecompressedPath = %q", got)
	}
}

func BenchmarkEncode(b *testing.B) {
	img := gradientImage(256, 256)
	b.ResetTimer()
	b.SetBytes(int64(len(img.Pix)))
	for i := 0; i < b.N; i++ {
		if _, err := Encode(img); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDecode(b *testing.B) {
	encoded, err := Encode(gradientImage(256, 256))
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Decode(encoded); err != nil {
			b.Fatal(err)
		}
	}
}
