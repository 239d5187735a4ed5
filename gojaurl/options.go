package gojaurl

import (
	"errors"

	whatwgurl "github.com/joeycumines/go-whatwgurl"
)

// Option configures module behavior. Options are immutable value
// types that validate on construction.
type Option interface {
	apply(*config) error
}

type config struct {
	parser *whatwgurl.Parser
}

func resolveOptions(opts []Option) (*config, error) {
	cfg := &config{}
	for _, opt := range opts {
		if err := opt.apply(cfg); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// WithParser configures the [whatwgurl.Parser] used by the URL
// constructor, and its static methods. The default parser is used
// otherwise.
func WithParser(parser *whatwgurl.Parser) Option {
	return withParser{parser: parser}
}

type withParser struct {
	parser *whatwgurl.Parser
}

func (o withParser) apply(cfg *config) error {
	if o.parser == nil {
		return errors.New("parser must not be nil")
	}
	cfg.parser = o.parser
	return nil
}
