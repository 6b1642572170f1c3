// Package engine is the dispatch surface of the compression engine: it
// resolves an algorithm to a codec, reads the input file, runs the codec
// and writes the output file, and reports the outcome as a codec.Result.
//
// Output is written all-or-nothing. The codec runs entirely in memory,
// the result goes to a temporary file next to the destination and is
// renamed into place only on success; a failed call leaves no output.
package engine
