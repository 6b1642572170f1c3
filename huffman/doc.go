// Package huffman implements a static, byte-oriented Huffman coder.
//
// A compressed stream is a self-describing header followed by the
// bit-packed codes of the input bytes:
//
//	"HUF1" | originalSize u32 | symbolCount u16 | symbolCount × (symbol u8, freq u32) | payload
//
// All integers are little-endian. The header carries the histogram rather
// than the tree; the decoder rebuilds the identical tree with the same
// deterministic merge order.
package huffman
