// Package comparison measures the built-in codecs against reference
// compressors from github.com/klauspost/compress on the same input.
package comparison

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/cocosip/go-compengine/codec"
)

// Entry is the outcome of one compressor on the input
type Entry struct {
	Name      string
	Reference bool
	Size      int
	Err       error
}

// Ratio returns Size/inputSize, or 0 when either is zero
func (e Entry) Ratio(inputSize int) float64 {
	if inputSize == 0 || e.Err != nil {
		return 0
	}
	return float64(e.Size) / float64(inputSize)
}

// Report lists every compressor's result for one input
type Report struct {
	Input   string
	Size    int
	Entries []Entry
}

// Best returns the successful entry with the smallest output
func (r Report) Best() (Entry, bool) {
	var (
		best  Entry
		found bool
	)
	for _, e := range r.Entries {
		if e.Err == nil && (!found || e.Size < best.Size) {
			best, found = e, true
		}
	}
	return best, found
}

// Run compresses data with every codec and every reference. Codec
// failures are recorded in the report, not returned.
func Run(name string, data []byte, codecs []codec.Codec) Report {
	r := Report{Input: name, Size: len(data)}
	for _, c := range codecs {
		out, err := c.Compress(data)
		r.Entries = append(r.Entries, Entry{Name: c.Name(), Size: len(out), Err: err})
	}
	r.addReferences(data)
	return r
}

// RunFile is Run on the contents of path. Codecs that read their input
// from a path (codec.FileCompressor) are given path.
func RunFile(path string, codecs []codec.Codec) (Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Report{}, err
	}

	r := Report{Input: path, Size: len(data)}
	for _, c := range codecs {
		var out []byte
		if fc, ok := c.(codec.FileCompressor); ok {
			out, err = fc.CompressFile(path)
		} else {
			out, err = c.Compress(data)
		}
		r.Entries = append(r.Entries, Entry{Name: c.Name(), Size: len(out), Err: err})
	}
	r.addReferences(data)
	return r, nil
}

func (r *Report) addReferences(data []byte) {
	for _, ref := range References() {
		n, err := ref.Compress(data)
		r.Entries = append(r.Entries, Entry{Name: ref.Name, Reference: true, Size: n, Err: err})
	}
}

// WriteTo prints the report as a table
func (r Report) WriteTo(w io.Writer) (int64, error) {
	var sb strings.Builder

	sb.WriteString("Compression Comparison\n")
	sb.WriteString(strings.Repeat("=", 60) + "\n")
	fmt.Fprintf(&sb, "Input: %s (%d bytes)\n\n", r.Input, r.Size)

	tw := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "CODEC\tKIND\tBYTES\tRATIO")
	for _, e := range r.Entries {
		kind := "built-in"
		if e.Reference {
			kind = "reference"
		}
		if e.Err != nil {
			fmt.Fprintf(tw, "%s\t%s\t-\terror: %v\n", e.Name, kind, e.Err)
			continue
		}
		fmt.Fprintf(tw, "%s\t%s\t%d\t%.3f\n", e.Name, kind, e.Size, e.Ratio(r.Size))
	}
	tw.Flush()

	if best, ok := r.Best(); ok {
		fmt.Fprintf(&sb, "\nSmallest: %s (%d bytes)\n", best.Name, best.Size)
	}

	n, err := io.WriteString(w, sb.String())
	return int64(n), err
}
