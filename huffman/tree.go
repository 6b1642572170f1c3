package huffman

import (
	"container/heap"
	"fmt"

	"github.com/cocosip/go-compengine/common"
)

// FrequencyTable holds the occurrence count of every byte value.
type FrequencyTable [256]uint64

// NewFrequencyTable counts the bytes of data.
func NewFrequencyTable(data []byte) *FrequencyTable {
	var ft FrequencyTable
	for _, b := range data {
		ft[b]++
	}
	return &ft
}

// Distinct returns the number of symbols with a non-zero count.
func (ft *FrequencyTable) Distinct() int {
	n := 0
	for _, f := range ft {
		if f > 0 {
			n++
		}
	}
	return n
}

const noChild = -1

// node is an arena entry. Leaves have both children set to noChild.
type node struct {
	weight uint64
	left   int32
	right  int32
	symbol byte
}

// Tree is a Huffman prefix tree stored as an index-addressed arena.
// Every internal node has exactly two children.
type Tree struct {
	nodes []node
	root  int32
}

func (t *Tree) isLeaf(i int32) bool {
	n := &t.nodes[i]
	return n.left == noChild && n.right == noChild
}

// nodeQueue is a min-heap of arena indices ordered by weight, then index.
type nodeQueue struct {
	nodes []node
	items []int32
}

func (q *nodeQueue) Len() int { return len(q.items) }

func (q *nodeQueue) Less(i, j int) bool {
	a, b := q.items[i], q.items[j]
	if q.nodes[a].weight != q.nodes[b].weight {
		return q.nodes[a].weight < q.nodes[b].weight
	}
	return a < b
}

func (q *nodeQueue) Swap(i, j int) { q.items[i], q.items[j] = q.items[j], q.items[i] }

func (q *nodeQueue) Push(x any) { q.items = append(q.items, x.(int32)) }

func (q *nodeQueue) Pop() any {
	last := q.items[len(q.items)-1]
	q.items = q.items[:len(q.items)-1]
	return last
}

// BuildTree builds the prefix tree for ft. It returns nil when ft is empty.
//
// Leaves are created in ascending symbol order. The two lowest-weight nodes
// are merged repeatedly, the first removed becoming the left child; equal
// weights are ordered by arena index, so a histogram always yields the same
// tree.
func BuildTree(ft *FrequencyTable) *Tree {
	distinct := ft.Distinct()
	if distinct == 0 {
		return nil
	}

	t := &Tree{nodes: make([]node, 0, 2*distinct-1)}
	q := &nodeQueue{items: make([]int32, 0, distinct)}
	for sym, f := range ft {
		if f == 0 {
			continue
		}
		t.nodes = append(t.nodes, node{weight: f, left: noChild, right: noChild, symbol: byte(sym)})
		q.items = append(q.items, int32(len(t.nodes)-1))
	}
	q.nodes = t.nodes
	heap.Init(q)

	for q.Len() > 1 {
		a := heap.Pop(q).(int32)
		b := heap.Pop(q).(int32)
		t.nodes = append(t.nodes, node{
			weight: t.nodes[a].weight + t.nodes[b].weight,
			left:   a,
			right:  b,
		})
		// capacity is preallocated, so the backing array never moves
		q.nodes = t.nodes
		heap.Push(q, int32(len(t.nodes)-1))
	}

	t.root = heap.Pop(q).(int32)
	return t
}

// Code is a variable-length bit sequence, stored right-aligned in Bits.
type Code struct {
	Bits uint64
	Len  uint8
}

// maxCodeLen bounds code lengths to what fits in Code.Bits. Inputs are
// capped at 2^32-1 bytes, which limits the tree depth to well below this.
const maxCodeLen = 64

// Codes derives the code table by a left=0/right=1 walk. A single-leaf
// tree gets the one-bit code 0.
func (t *Tree) Codes() ([256]Code, error) {
	var table [256]Code

	if t.isLeaf(t.root) {
		table[t.nodes[t.root].symbol] = Code{Bits: 0, Len: 1}
		return table, nil
	}

	type frame struct {
		index int32
		code  Code
	}
	stack := []frame{{index: t.root}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if t.isLeaf(f.index) {
			table[t.nodes[f.index].symbol] = f.code
			continue
		}
		if f.code.Len == maxCodeLen {
			return table, fmt.Errorf("huffman: code longer than %d bits: %w", maxCodeLen, common.ErrUnsupported)
		}

		n := t.nodes[f.index]
		stack = append(stack,
			frame{n.right, Code{Bits: f.code.Bits<<1 | 1, Len: f.code.Len + 1}},
			frame{n.left, Code{Bits: f.code.Bits << 1, Len: f.code.Len + 1}},
		)
	}
	return table, nil
}

// decodeSymbol walks from the root, one bit per level, until it reaches a
// leaf. A single-leaf tree consumes exactly one 0 bit.
func (t *Tree) decodeSymbol(r *common.BitReader) (byte, error) {
	i := t.root
	if t.isLeaf(i) {
		bit, err := r.ReadBit()
		if err != nil {
			return 0, common.ErrTruncated
		}
		if bit != 0 {
			return 0, fmt.Errorf("huffman: no branch for bit 1 at bit %d: %w", r.Position()-1, common.ErrCorrupt)
		}
		return t.nodes[i].symbol, nil
	}

	for !t.isLeaf(i) {
		bit, err := r.ReadBit()
		if err != nil {
			return 0, common.ErrTruncated
		}
		next := t.nodes[i].left
		if bit == 1 {
			next = t.nodes[i].right
		}
		if next == noChild {
			return 0, fmt.Errorf("huffman: missing child at bit %d: %w", r.Position()-1, common.ErrCorrupt)
		}
		i = next
	}
	return t.nodes[i].symbol, nil
}
