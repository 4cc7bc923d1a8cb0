// Package libdiff computes structural differences between descriptors.
//
// A diff is a list of Changes, each an insertion, deletion or replacement
// at a path.  Records are diffed by field name with a sequence diff so
// that renamed or reordered fields read naturally; tuples are diffed by
// index; tagged unions pair their variants by discriminant.
//
//	changes := libdiff.Diff(old, new)
//	fmt.Print(libdiff.Format(changes))
//	undo := libdiff.Reverse(changes)
package libdiff
