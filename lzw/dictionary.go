package lzw

// maxTableSize bounds the number of dictionary entries on both the encode
// and the decode side. Codes are serialized as uint16, so the table never
// outgrows the code space. Once full, the table is frozen and coding
// continues with the entries it has.
const maxTableSize = 1 << 16

// prefixKey packs a parent code and an extension symbol into a single map
// key. Every multi-symbol entry extends an existing entry by exactly one
// symbol, so the entry set is prefix-closed and a longest match is found by
// walking child links from a seed.
func prefixKey(parent uint16, sym byte) uint32 {
	return uint32(parent)<<8 | uint32(sym)
}

// encodeTable is the encoder-side dictionary: seed codes for the single
// symbols present in the source plus child links for every multi-symbol
// entry. Entries receive dense codes in insertion order, seeds first.
type encodeTable struct {
	seeds    [256]int32 // symbol -> seed code, -1 when absent
	children map[uint32]uint16
	size     int
}

func newEncodeTable(startDict []byte) *encodeTable {
	t := &encodeTable{
		children: make(map[uint32]uint16),
		size:     len(startDict),
	}
	for i := range t.seeds {
		t.seeds[i] = -1
	}
	for code, sym := range startDict {
		t.seeds[sym] = int32(code)
	}
	return t
}

// longestMatch returns the code of the longest entry prefixing src[i:] and
// the number of symbols it covers. ok is false when not even a
// single-symbol entry matches.
func (t *encodeTable) longestMatch(src []byte, i int) (code uint16, n int, ok bool) {
	seed := t.seeds[src[i]]
	if seed < 0 {
		return 0, 0, false
	}
	code = uint16(seed)
	n = 1
	for i+n < len(src) {
		child, found := t.children[prefixKey(code, src[i+n])]
		if !found {
			break
		}
		code = child
		n++
	}
	return code, n, true
}

// add defines a new entry extending the entry for parent by sym. Adding to
// a full table is a no-op.
func (t *encodeTable) add(parent uint16, sym byte) {
	if t.size >= maxTableSize {
		return
	}
	t.children[prefixKey(parent, sym)] = uint16(t.size)
	t.size++
}

// decodeTable is the decoder-side dictionary. Each entry stores only its
// parent code, final symbol, and total length; the full symbol sequence is
// materialized by walking the parent chain backwards. That keeps the table
// at O(1) memory per entry no matter how long the entries grow.
type decodeTable struct {
	parent []int32 // -1 for seeds
	suffix []byte
	length []int
}

func newDecodeTable(startDict []byte) *decodeTable {
	t := &decodeTable{
		parent: make([]int32, 0, 2*len(startDict)),
		suffix: make([]byte, 0, 2*len(startDict)),
		length: make([]int, 0, 2*len(startDict)),
	}
	for _, sym := range startDict {
		t.parent = append(t.parent, -1)
		t.suffix = append(t.suffix, sym)
		t.length = append(t.length, 1)
	}
	return t
}

func (t *decodeTable) size() int {
	return len(t.suffix)
}

// add defines a new entry extending the entry for parent by sym. Adding to
// a full table is a no-op.
func (t *decodeTable) add(parent uint16, sym byte) {
	if t.size() >= maxTableSize {
		return
	}
	t.parent = append(t.parent, int32(parent))
	t.suffix = append(t.suffix, sym)
	t.length = append(t.length, t.length[parent]+1)
}

// entryLen returns the symbol count of the entry for code.
func (t *decodeTable) entryLen(code uint16) int {
	return t.length[code]
}

// expand appends the symbols of the entry for code to dst and returns the
// extended slice. dst must have capacity for the entry; the decoder
// guarantees that by sizing dst for the full raster up front.
func (t *decodeTable) expand(dst []byte, code uint16) []byte {
	n := t.length[code]
	start := len(dst)
	dst = dst[:start+n]
	for i := n - 1; ; i-- {
		dst[start+i] = t.suffix[code]
		p := t.parent[code]
		if p < 0 {
			break
		}
		code = uint16(p)
	}
	return dst
}
