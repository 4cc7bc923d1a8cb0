package hier

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// animals:
//
//	Animal
//	├── Mammal
//	│   ├── Dog
//	│   └── Cat
//	└── Bird
//
//	Rock
func animals(t *testing.T) *Hierarchy {
	t.Helper()
	h := New()
	for _, p := range [][2]string{
		{"Animal", ""},
		{"Mammal", "Animal"},
		{"Dog", "Mammal"},
		{"Cat", "Mammal"},
		{"Bird", "Animal"},
		{"Rock", ""},
	} {
		if _, err := h.Add(p[0], p[1]); err != nil {
			t.Fatal(err)
		}
	}
	return h
}

func TestAdd(t *testing.T) {
	h := animals(t)
	if _, err := h.Add("Dog", "Animal"); !errors.Is(err, ErrDuplicateNode) {
		t.Errorf("duplicate: got %v", err)
	}
	if _, err := h.Add("Fish", "Water"); !errors.Is(err, ErrUnknownNode) {
		t.Errorf("unknown parent: got %v", err)
	}
	dog, _ := h.Lookup("Dog")
	if d := h.Depth(dog); d != 2 {
		t.Errorf("depth(Dog) = %d", d)
	}
	p, ok := h.Parent(dog)
	if !ok || h.Name(p) != "Mammal" {
		t.Errorf("parent(Dog) = %q %v", h.Name(p), ok)
	}
	root, _ := h.Lookup("Animal")
	if _, ok := h.Parent(root); ok {
		t.Errorf("Animal has a parent")
	}
}

func TestAncestors(t *testing.T) {
	h := animals(t)
	dog, _ := h.Lookup("Dog")
	var got []string
	for _, id := range h.Ancestors(dog) {
		got = append(got, h.Name(id))
	}
	want := []string{"Dog", "Mammal", "Animal"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ancestors mismatch (-want +got):\n%s", diff)
	}

	animal, _ := h.Lookup("Animal")
	bird, _ := h.Lookup("Bird")
	if !h.IsAncestor(animal, dog) {
		t.Errorf("Animal should be an ancestor of Dog")
	}
	if !h.IsAncestor(dog, dog) {
		t.Errorf("Dog should be its own ancestor")
	}
	if h.IsAncestor(bird, dog) || h.IsAncestor(dog, animal) {
		t.Errorf("unexpected ancestry")
	}
}

func TestLeastUpperBound(t *testing.T) {
	h := animals(t)
	tests := []struct {
		a, b string
		want string
	}{
		{"Dog", "Dog", "Dog"},
		{"Dog", "Cat", "Mammal"},
		{"Dog", "Bird", "Animal"},
		{"Dog", "Mammal", "Mammal"},
		{"Animal", "Cat", "Animal"},
		{"Bird", "Animal", "Animal"},
	}
	for _, tc := range tests {
		t.Run(tc.a+"/"+tc.b, func(t *testing.T) {
			for _, pair := range [][2]string{{tc.a, tc.b}, {tc.b, tc.a}} {
				got, err := h.JoinNames(pair[0], pair[1])
				if err != nil {
					t.Fatal(err)
				}
				if got != tc.want {
					t.Errorf("lub(%s, %s) = %s, want %s", pair[0], pair[1], got, tc.want)
				}
			}
		})
	}
}

func TestLeastUpperBoundDisjoint(t *testing.T) {
	h := animals(t)
	if _, err := h.JoinNames("Dog", "Rock"); !errors.Is(err, ErrNoCommonAncestor) {
		t.Fatalf("expected ErrNoCommonAncestor, got %v", err)
	}
	if _, err := h.JoinNames("Dog", "Unicorn"); !errors.Is(err, ErrUnknownNode) {
		t.Fatalf("expected ErrUnknownNode, got %v", err)
	}
	if _, err := h.LeastUpperBound(0, 99); !errors.Is(err, ErrUnknownNode) {
		t.Fatalf("expected ErrUnknownNode, got %v", err)
	}

	top, err := h.SetTop("Object")
	if err != nil {
		t.Fatal(err)
	}
	got, err := h.JoinNames("Dog", "Rock")
	if err != nil {
		t.Fatal(err)
	}
	if got != "Object" {
		t.Errorf("got %s, want Object", got)
	}
	dog, _ := h.Lookup("Dog")
	if res, _ := h.LeastUpperBound(top, dog); res != top {
		t.Errorf("lub(top, Dog) = %s", h.Name(res))
	}
	if !h.IsAncestor(top, dog) {
		t.Errorf("top should be an ancestor of Dog")
	}
	if _, err := h.Add("Thing", "Object"); !errors.Is(err, ErrUnknownNode) {
		t.Errorf("extending top: got %v", err)
	}
	if _, err := h.SetTop("Any"); !errors.Is(err, ErrDuplicateNode) {
		t.Errorf("second top: got %v", err)
	}
}

func TestFromParents(t *testing.T) {
	h, err := FromParents(map[string]string{
		"Dog":    "Mammal",
		"Cat":    "Mammal",
		"Mammal": "Animal",
		"Bird":   "Animal",
		"Animal": "",
		"Robot":  "Machine",
	})
	if err != nil {
		t.Fatal(err)
	}
	if h.Len() != 7 {
		t.Errorf("len = %d, want 7", h.Len())
	}
	got, err := h.JoinNames("Cat", "Bird")
	if err != nil {
		t.Fatal(err)
	}
	if got != "Animal" {
		t.Errorf("got %s", got)
	}
	if got, _ := h.JoinNames("Robot", "Machine"); got != "Machine" {
		t.Errorf("implicit root: got %s", got)
	}
}

func TestFromParentsCycle(t *testing.T) {
	for _, parents := range []map[string]string{
		{"A": "B", "B": "C", "C": "A"},
		{"A": "A"},
		{"X": "", "A": "B", "B": "A"},
	} {
		if _, err := FromParents(parents); !errors.Is(err, ErrCycle) {
			t.Errorf("%v: expected ErrCycle, got %v", parents, err)
		}
	}
}

func TestJoiner(t *testing.T) {
	h := animals(t)
	j := NewJoiner(h)
	names := []string{"Animal", "Mammal", "Dog", "Cat", "Bird"}
	var ids []NodeID
	for _, n := range names {
		id, _ := h.Lookup(n)
		ids = append(ids, id)
	}
	var wg sync.WaitGroup
	errc := make(chan error, 8)
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for _, a := range ids {
				for _, b := range ids {
					got, err := j.Join(a, b)
					if err != nil {
						errc <- err
						return
					}
					want, _ := h.LeastUpperBound(a, b)
					if got != want {
						errc <- fmt.Errorf("join(%s, %s) = %s, want %s",
							h.Name(a), h.Name(b), h.Name(got), h.Name(want))
						return
					}
				}
			}
		}()
	}
	wg.Wait()
	close(errc)
	for err := range errc {
		t.Error(err)
	}
	// one entry per unordered pair, including a == b
	if n, want := j.Len(), len(ids)*(len(ids)+1)/2; n != want {
		t.Errorf("memo size %d, want %d", n, want)
	}

	rock, _ := h.Lookup("Rock")
	if _, err := j.Join(ids[0], rock); !errors.Is(err, ErrNoCommonAncestor) {
		t.Errorf("expected ErrNoCommonAncestor, got %v", err)
	}
}
