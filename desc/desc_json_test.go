package desc

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestJSONShape(t *testing.T) {
	d, err := json.Marshal(Record(F("k", StrLit("a"))))
	if err != nil {
		t.Fatal(err)
	}
	want := `{"kind":"record","fields":[{"name":"k","type":{"kind":"string","lit":true,"string":"a"}}]}`
	if string(d) != want {
		t.Errorf("got %s\nwant %s", d, want)
	}
}

func TestJSONDecode(t *testing.T) {
	in := `{"kind":"union","discriminant":"type","variants":[
		{"kind":"record","fields":[{"name":"type","type":{"kind":"number","lit":true,"int":1}}]},
		{"kind":"record","fields":[{"name":"type","type":{"kind":"string","lit":true,"string":"two"}},
		                           {"name":"data","type":{"kind":"sequence","readonly":true,"elems":[{"kind":"boolean"}]}}]}
	]}`
	got := &Desc{}
	if err := json.Unmarshal([]byte(in), got); err != nil {
		t.Fatal(err)
	}
	want := TaggedUnion("type",
		Record(F("type", IntLit(1))),
		Record(F("type", StrLit("two")), F("data", ReadOnlyTuple(Bool()))))
	if !Equal(got, want) {
		t.Errorf("got %s, want %s", got, want)
	}
}

func TestJSONDecodeErrors(t *testing.T) {
	tests := []string{
		`{"kind":"record","lit":true}`,
		`{"kind":"string","lit":true}`,
		`{"kind":"number","lit":true,"int":1,"float":1.5}`,
		`{"kind":"record","fields":[{"name":"a"}]}`,
		`{"kind":"union","variants":[null]}`,
	}
	for _, in := range tests {
		t.Run(in, func(t *testing.T) {
			err := json.Unmarshal([]byte(in), &Desc{})
			if !errors.Is(err, ErrBadJSON) {
				t.Errorf("expected ErrBadJSON, got %v", err)
			}
		})
	}
	if err := json.Unmarshal([]byte(`{"kind":"wat"}`), &Desc{}); err == nil {
		t.Errorf("expected error for unknown kind")
	}
}
