package narrow

type Config struct {
	// LiteralOnly restricts Bottom detection to literal Bottom slots,
	// skipping the satisfiability check of unions and intersections.
	LiteralOnly bool
}

type Opt func(*Config)

func LiteralOnly(v bool) Opt {
	return func(c *Config) { c.LiteralOnly = v }
}

func newConfig(opts []Opt) *Config {
	cfg := &Config{}
	for _, o := range opts {
		o(cfg)
	}
	return cfg
}
