package whatwgurl

import (
	"errors"
	"time"

	"github.com/joeycumines/go-catrate"
	"github.com/joeycumines/logiface"
	"golang.org/x/net/idna"
)

// Option configures a [Parser]. Options are immutable value types that
// validate on application.
type Option interface {
	apply(*config) error
}

type config struct {
	logger  *logiface.Logger[logiface.Event]
	limiter *catrate.Limiter
	idna    *idna.Profile
}

// defaultIDNA implements domain to ASCII with beStrict set to false, i.e.
// UTS #46 non-transitional processing, without STD3 rules, hyphen checks
// or DNS length verification.
var defaultIDNA = idna.New(
	idna.MapForLookup(),
	idna.BidiRule(),
	idna.Transitional(false),
	idna.CheckJoiners(true),
	idna.CheckHyphens(false),
	idna.StrictDomainName(false),
	idna.VerifyDNSLength(false),
)

var defaultConfig = &config{idna: defaultIDNA}

func resolveOptions(opts []Option) (*config, error) {
	if len(opts) == 0 {
		return defaultConfig, nil
	}
	cfg := &config{idna: defaultIDNA}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt.apply(cfg); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// WithLogger configures a logger, which will receive validation errors (at
// debug level), and parse failures (also at debug level). A nil logger
// disables logging, which is the default.
func WithLogger(logger *logiface.Logger[logiface.Event]) Option {
	return withLogger{logger: logger}
}

type withLogger struct {
	logger *logiface.Logger[logiface.Event]
}

func (o withLogger) apply(cfg *config) error {
	cfg.logger = o.logger
	return nil
}

// WithIDNAProfile replaces the profile used to convert non-ASCII (or
// punycode) domains to ASCII. The default profile follows the standard's
// "domain to ASCII" with beStrict false.
func WithIDNAProfile(profile *idna.Profile) Option {
	return withIDNAProfile{profile: profile}
}

type withIDNAProfile struct {
	profile *idna.Profile
}

func (o withIDNAProfile) apply(cfg *config) error {
	if o.profile == nil {
		return errors.New(`idna profile must not be nil`)
	}
	cfg.idna = o.profile
	return nil
}

// WithValidationRateLimit limits how often each kind of [ValidationError]
// is logged, using sliding windows, e.g. {time.Minute: 10}. See
// [catrate.NewLimiter] for the requirements of rates.
func WithValidationRateLimit(rates map[time.Duration]int) Option {
	return withValidationRateLimit{rates: rates}
}

type withValidationRateLimit struct {
	rates map[time.Duration]int
}

func (o withValidationRateLimit) apply(cfg *config) (err error) {
	if len(o.rates) == 0 {
		return errors.New(`validation rate limit requires at least one rate`)
	}
	defer func() {
		if r := recover(); r != nil {
			err = errors.New(`invalid validation rate limit`)
		}
	}()
	cfg.limiter = catrate.NewLimiter(o.rates)
	return nil
}
