package exif

import "encoding/binary"

// ifdEntry locates a single IFD entry: its tag and the byte offset of its
// 12-byte record, relative to the start of the entry records.
type ifdEntry struct {
	Tag    uint16
	Offset int64
}

// ifdWalker yields the entries of a single IFD in file order. A walker is
// freshly constructed per traversal and is forward-only, single pass.
type ifdWalker struct {
	r            reader
	byteOrder    binary.ByteOrder
	entriesStart int64
	entries      int64
	index        int64
}

func newIFDWalker(r reader, byteOrder binary.ByteOrder, position int64) (*ifdWalker, error) {
	count, err := r.uint16(byteOrder, position)
	if err != nil {
		return nil, err
	}

	return &ifdWalker{
		r:            r,
		byteOrder:    byteOrder,
		entriesStart: position + 2,
		entries:      int64(count),
	}, nil
}

// next returns the following entry, or ok=false once all entries have been
// yielded.
func (w *ifdWalker) next() (ifdEntry, bool, error) {
	if w.index >= w.entries {
		return ifdEntry{}, false, nil
	}

	offset := w.index * entrySize
	tag, err := w.r.uint16(w.byteOrder, w.entriesStart+offset+entryTag)
	if err != nil {
		return ifdEntry{}, false, err
	}
	w.index++

	return ifdEntry{Tag: tag, Offset: offset}, true, nil
}
