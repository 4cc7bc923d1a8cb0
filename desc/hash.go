package desc

import (
	"encoding/binary"
	"hash/maphash"
	"math"
	"slices"
)

var seed = maphash.MakeSeed()

// Hash returns a 64-bit hash of the descriptor, consistent with Equal
// within one process.
// It panics if d is nil.
func (d *Desc) Hash() uint64 {
	if d == nil {
		panic("desc: Hash called on nil descriptor")
	}
	var h maphash.Hash
	h.SetSeed(seed)
	h.WriteByte(byte(d.Kind))

	var b [8]byte
	writeU64 := func(v uint64) {
		binary.LittleEndian.PutUint64(b[:], v)
		h.Write(b[:])
	}

	switch d.Kind {
	case BoolKind, NumberKind, StringKind:
		if !d.Lit {
			break
		}
		h.WriteByte(1)
		switch {
		case d.Kind == BoolKind && d.Bool:
			h.WriteByte(1)
		case d.Kind == BoolKind:
			h.WriteByte(0)
		case d.Kind == StringKind:
			h.WriteString(d.Str)
		case d.Int64 != nil:
			h.WriteByte(0)
			writeU64(uint64(*d.Int64))
		case d.Float64 != nil:
			h.WriteByte(1)
			writeU64(math.Float64bits(*d.Float64))
		}
	case ClassKind:
		h.WriteString(d.Class)
	case SequenceKind:
		if d.ReadOnly {
			h.WriteByte(1)
		}
		for _, e := range d.Elems {
			writeU64(e.Hash())
		}
	case RecordKind:
		for _, f := range sortedFields(d.Fields) {
			h.WriteString(f.Name)
			h.WriteByte(0)
			writeU64(f.Type.Hash())
		}
	case UnionKind, IntersectKind:
		h.WriteString(d.Discriminant)
		hs := make([]uint64, len(d.Variants))
		for i, v := range d.Variants {
			hs[i] = v.Hash()
		}
		slices.Sort(hs)
		for _, v := range hs {
			writeU64(v)
		}
	}
	return h.Sum64()
}
