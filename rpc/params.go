package rpc

import "github.com/signadot/shapealg/desc"

const (
	MethodAll               = "shapealg/all"
	MethodSlice             = "shapealg/slice"
	MethodDrop              = "shapealg/drop"
	MethodExcludeIfBottom   = "shapealg/excludeIfBottom"
	MethodNarrow            = "shapealg/narrow"
	MethodIntersectVariants = "shapealg/intersectVariants"
	MethodLeastUpperBound   = "shapealg/leastUpperBound"
)

type SeqParams struct {
	Seq *desc.Desc `json:"seq"`
	N   int        `json:"n,omitempty"`
}

type AllResult struct {
	All bool `json:"all"`
}

type PatternParams struct {
	Actual  *desc.Desc `json:"actual"`
	Pattern *desc.Desc `json:"pattern"`
	// LiteralOnly limits Bottom detection to literal Bottom slots.
	LiteralOnly bool `json:"literalOnly,omitempty"`
}

type UnionParams struct {
	Union *desc.Desc `json:"union"`
}

type JoinParams struct {
	A *desc.Desc `json:"a"`
	B *desc.Desc `json:"b"`
	// Hierarchy, when given, is used instead of the server's, as a
	// child → parent map.
	Hierarchy map[string]string `json:"hierarchy,omitempty"`
	Top       string            `json:"top,omitempty"`
}
