package parse

import (
	"encoding/json"
	"fmt"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/signadot/shapealg/debug"
	"github.com/signadot/shapealg/desc"
)

// ApplyPatch applies an RFC 6902 patch to the JSON form of d.
func ApplyPatch(d *desc.Desc, patch []byte) (*desc.Desc, error) {
	ops, err := jsonpatch.DecodePatch(patch)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	doc, err := json.Marshal(d)
	if err != nil {
		return nil, err
	}
	out, err := ops.Apply(doc)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	if debug.Parse() {
		debug.Logf("patched %s\n", out)
	}
	res := &desc.Desc{}
	if err := json.Unmarshal(out, res); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	return res, nil
}
