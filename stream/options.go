// Package stream provides options for configuring streaming HTML parsing.
package stream

// config holds stream configuration.
type config struct {
	xmlCoercion bool
}

// newConfig creates a new config with defaults and applies options.
func newConfig(opts ...Option) *config {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// Option configures the streaming parser behavior.
type Option func(*config)

// WithXMLCoercion enables XML output coercions for text and comment content,
// mirroring the top-level parser's option of the same name.
func WithXMLCoercion() Option {
	return func(c *config) {
		c.xmlCoercion = true
	}
}
