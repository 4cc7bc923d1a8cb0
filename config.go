package shapealg

import (
	"github.com/signadot/shapealg/hier"
	"github.com/signadot/shapealg/narrow"
)

type Config struct {
	// Top names the class LeastUpperBound returns for classes with no
	// common ancestor.  Empty means such joins fail.
	Top string
	// LiteralBottomOnly limits Bottom detection in ExcludeIfBottom and
	// Narrow to literal Bottom slots.
	LiteralBottomOnly bool
	// Joiner, when set, is used for class joins instead of the
	// hierarchy directly.
	Joiner *hier.Joiner
}

type Opt func(*Config)

func WithTop(name string) Opt {
	return func(c *Config) { c.Top = name }
}

func LiteralBottomOnly(v bool) Opt {
	return func(c *Config) { c.LiteralBottomOnly = v }
}

func WithJoiner(j *hier.Joiner) Opt {
	return func(c *Config) { c.Joiner = j }
}

func newConfig(opts []Opt) *Config {
	cfg := &Config{}
	for _, o := range opts {
		o(cfg)
	}
	return cfg
}

func (c *Config) narrowOpts() []narrow.Opt {
	return []narrow.Opt{narrow.LiteralOnly(c.LiteralBottomOnly)}
}
