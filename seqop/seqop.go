// Package seqop implements operations on fixed-length sequence descriptors.
//
// Slice and Drop always materialise a new mutable sequence, with one
// exception: Drop(seq, 0) returns seq itself so that a read-only input
// stays read-only when nothing is removed.
package seqop

import (
	"fmt"

	"github.com/signadot/shapealg/debug"
	"github.com/signadot/shapealg/desc"
)

// All reports whether every element of seq is the literal true.  An
// unresolved boolean element counts as not true.  The empty sequence
// yields true.
func All(seq *desc.Desc) (bool, error) {
	if err := checkSeq(seq); err != nil {
		return false, err
	}
	for i, e := range seq.Elems {
		if !e.IsTrue() {
			if debug.Seq() {
				debug.Logf("all: element %d of %s is %s\n", i, seq, e)
			}
			return false, nil
		}
	}
	return true, nil
}

// Slice returns the first min(n, len(seq)) elements of seq as a new
// mutable sequence.
func Slice(seq *desc.Desc, n int) (*desc.Desc, error) {
	if err := checkArgs(seq, n); err != nil {
		return nil, err
	}
	n = min(n, len(seq.Elems))
	res := desc.Tuple(seq.Elems[:n]...)
	if debug.Seq() {
		debug.Logf("slice %s %d -> %s\n", seq, n, res)
	}
	return res, nil
}

// Drop returns seq without its first min(n, len(seq)) elements.  For n == 0
// the result is seq itself; otherwise it is a new mutable sequence.
func Drop(seq *desc.Desc, n int) (*desc.Desc, error) {
	if err := checkArgs(seq, n); err != nil {
		return nil, err
	}
	if n == 0 {
		return seq, nil
	}
	n = min(n, len(seq.Elems))
	res := desc.Tuple(seq.Elems[n:]...)
	if debug.Seq() {
		debug.Logf("drop %s %d -> %s\n", seq, n, res)
	}
	return res, nil
}

func checkArgs(seq *desc.Desc, n int) error {
	if n < 0 {
		return fmt.Errorf("%w: negative count %d", ErrInvalidIndex, n)
	}
	return checkSeq(seq)
}

func checkSeq(seq *desc.Desc) error {
	if seq == nil {
		return fmt.Errorf("%w: nil descriptor", ErrNotSequence)
	}
	if seq.Kind != desc.SequenceKind {
		return fmt.Errorf("%w: got %s", ErrNotSequence, seq.Kind)
	}
	return nil
}
