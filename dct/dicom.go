package dct

import (
	"github.com/cocosip/go-dicom/pkg/dicom/parser"
	"github.com/cocosip/go-dicom/pkg/imaging"
)

// dicomSource reads the first frame of an uncompressed 8-bit DICOM file
// with one or three samples per pixel.
type dicomSource struct{}

func (dicomSource) Name() string { return "dicom" }

// Part 10 files carry "DICM" after a 128-byte preamble
func (dicomSource) Match(head []byte) bool {
	return hasPrefixAt(head, 128, "DICM")
}

func (s dicomSource) Decode(path string, _ []byte) (*Image, error) {
	if path == "" {
		return nil, sourceError(s, "input must be read from a file")
	}

	res, err := parser.ParseFile(path, parser.WithReadOption(parser.ReadAll))
	if err != nil {
		return nil, sourceError(s, "parse: %v", err)
	}
	if res.TransferSyntax != nil && res.TransferSyntax.IsEncapsulated() {
		return nil, sourceError(s, "encapsulated pixel data is not supported")
	}

	pd, err := imaging.CreatePixelData(res.Dataset)
	if err != nil {
		return nil, sourceError(s, "pixel data: %v", err)
	}

	info := pd.Info
	width, height := int(info.Width), int(info.Height)
	channels := int(info.SamplesPerPixel)
	if info.BitsAllocated != 8 {
		return nil, sourceError(s, "%d bits allocated, only 8-bit samples are supported", info.BitsAllocated)
	}
	if channels != 1 && channels != 3 {
		return nil, sourceError(s, "%d samples per pixel", channels)
	}

	if err := pd.EnsureInterleaved(); err != nil {
		return nil, sourceError(s, "planar configuration: %v", err)
	}
	frame, err := pd.GetFrame(0)
	if err != nil {
		return nil, sourceError(s, "frame 0: %v", err)
	}
	n := width * height * channels
	if len(frame) < n {
		return nil, sourceError(s, "frame has %d bytes, need %d", len(frame), n)
	}

	return &Image{Width: width, Height: height, Channels: channels, Pix: frame[:n]}, nil
}
