package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Seq    bool
	Narrow bool
	SAT    bool
	Join   bool
	Merge  bool
	Parse  bool
	RPC    bool
}

var d *debug

func init() {
	d = &debug{}
	d.Seq = boolEnv("SHAPEALG_DEBUG_SEQ")
	d.Narrow = boolEnv("SHAPEALG_DEBUG_NARROW")
	d.SAT = boolEnv("SHAPEALG_DEBUG_SAT")
	d.Join = boolEnv("SHAPEALG_DEBUG_JOIN")
	d.Merge = boolEnv("SHAPEALG_DEBUG_MERGE")
	d.Parse = boolEnv("SHAPEALG_DEBUG_PARSE")
	d.RPC = boolEnv("SHAPEALG_DEBUG_RPC")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Seq() bool {
	return d.Seq
}
func Narrow() bool {
	return d.Narrow
}
func SAT() bool {
	return d.SAT
}
func Join() bool {
	return d.Join
}
func Merge() bool {
	return d.Merge
}
func Parse() bool {
	return d.Parse
}
func RPC() bool {
	return d.RPC
}
