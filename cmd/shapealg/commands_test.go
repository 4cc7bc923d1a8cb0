package main

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/scott-cotton/cli"
)

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }

func testContext(in string) (*cli.Context, *bytes.Buffer) {
	out := &bytes.Buffer{}
	return &cli.Context{
		In:  io.NopCloser(strings.NewReader(in)),
		Out: nopWriteCloser{out},
		Err: nopWriteCloser{io.Discard},
		Go:  context.Background(),
	}, out
}

func TestCommands(t *testing.T) {
	dir := t.TempDir()
	hfile := filepath.Join(dir, "classes.yaml")
	err := os.WriteFile(hfile, []byte("Animal: ~\nMammal: Animal\nDog: Mammal\nCat: Mammal\nBird: Animal\n"), 0644)
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		name string
		in   string
		args []string
		want string
	}{
		{
			name: "show",
			args: []string{"-s", "show", "[!class Dog, 1]"},
			want: "[Dog, 1]\n",
		},
		{
			name: "show stdin",
			in:   "{a: 'x'}",
			args: []string{"show", "-"},
			want: "{a: 'x'}\n",
		},
		{
			name: "all",
			args: []string{"-s", "all", "[true, true]"},
			want: "true\n",
		},
		{
			name: "all unresolved",
			args: []string{"-s", "all", "[true, !boolean ~]"},
			want: "false\n",
		},
		{
			name: "slice",
			args: []string{"-s", "slice", "1", "[1, 'a', true]"},
			want: "[1]\n",
		},
		{
			name: "drop",
			args: []string{"-s", "drop", "1", "!readonly [1, 'a']"},
			want: "['a']\n",
		},
		{
			name: "exclude",
			args: []string{"-s", "exclude", "{k: 'a'}", "!union [{k: 'a', v: 1}, {k: !never ~}]"},
			want: "{k: 'a'; v: 1}\n",
		},
		{
			name: "narrow",
			args: []string{"-s", "narrow", "{k: 'b'}",
				"!tagged {discriminant: k, variants: [{k: 'a', v: !number ~}, {k: 'b', v: !string ~}]}"},
			want: "{k: 'b'; v: string}\n",
		},
		{
			name: "merge",
			args: []string{"-s", "merge", "!union [{a: 1}, {a: 'x', b: !boolean ~}]"},
			want: "{a: 1 | 'x'; b: boolean}\n",
		},
		{
			name: "lub",
			args: []string{"-s", "lub", "-h", hfile, "!class Dog", "!class Cat"},
			want: "Mammal\n",
		},
		{
			name: "lub unions",
			args: []string{"-s", "lub", "-h", hfile, "!union [!class Dog, !class Cat]", "!class Bird"},
			want: "Animal\n",
		},
		{
			name: "diff",
			args: []string{"-s", "diff", "{a: 1}", "{a: 1, b: 'x'}"},
			want: "+ .b: 'x'\n",
		},
		{
			name: "diff reverse",
			args: []string{"-s", "diff", "-r", "{a: 1}", "{a: 1, b: 'x'}"},
			want: "- .b: 'x'\n",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cc, out := testContext(tc.in)
			if err := MainCommand().Run(cc, tc.args); err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tc.want, out.String()); diff != "" {
				t.Errorf("output mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCommandErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"not a sequence", []string{"-s", "all", "{a: 1}"}},
		{"malformed union", []string{"-s", "merge", "!union [{a: 1}, 'x']"}},
		{"parse error", []string{"-s", "show", "!nope 1"}},
		{"no such command", []string{"frob"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cc, _ := testContext("")
			if err := MainCommand().Run(cc, tc.args); err == nil {
				t.Error("expected an error")
			}
		})
	}
}
