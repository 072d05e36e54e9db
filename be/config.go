package be

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vareng/bucketelim/order"
)

// Config holds the engine's recognized options (spec.md §4.6):
//
//   - Order: the elimination-order heuristic to request from the Provider.
//   - Debug: when true, the engine narrates bucket membership and
//     per-message scopes through its Logger.
type Config struct {
	Order order.Method
	Debug bool
}

// DefaultConfig returns the engine's default configuration: Order=MinFill,
// Debug=1 (true).
func DefaultConfig() Config {
	return Config{Order: order.MinFill, Debug: true}
}

// Option configures a Config in place. No function in this package
// applies Options itself; a caller applies each one to its own Config,
// such as the one DefaultConfig returns.
type Option func(*Config)

// WithOrder selects the elimination-order heuristic.
func WithOrder(method order.Method) Option {
	return func(c *Config) { c.Order = method }
}

// WithDebug toggles diagnostic output.
func WithDebug(debug bool) Option {
	return func(c *Config) { c.Debug = debug }
}

// ParseConfig parses a comma-separated Key=Value option string (e.g.
// "Order=MinFill,Debug=1"). An empty string yields DefaultConfig().
// Unknown keys are ignored; malformed values return BadConfigError.
func ParseConfig(s string) (Config, error) {
	cfg := DefaultConfig()
	if strings.TrimSpace(s) == "" {
		return cfg, nil
	}

	for _, pair := range strings.Split(s, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		kv := strings.SplitN(pair, "=", 2)
		if len(kv) != 2 {
			return Config{}, BadConfigError{Cause: fmt.Errorf("malformed option %q", pair)}
		}
		key, val := strings.TrimSpace(kv[0]), strings.TrimSpace(kv[1])

		switch key {
		case "Order":
			method, err := order.ParseMethod(val)
			if err != nil {
				return Config{}, BadConfigError{Cause: fmt.Errorf("option %q: %w", pair, err)}
			}
			cfg.Order = method
		case "Debug":
			n, err := strconv.ParseInt(val, 10, 64)
			if err != nil {
				return Config{}, BadConfigError{Cause: fmt.Errorf("option %q: %w", pair, err)}
			}
			cfg.Debug = n != 0
		default:
			// Unknown keys are ignored, per spec.md §4.6.
		}
	}

	return cfg, nil
}

// String serializes cfg back into the Key=Value form ParseConfig accepts,
// so that ParseConfig(cfg.String()) reproduces an equal Config (the
// idempotence law of spec.md §8).
func (c Config) String() string {
	debug := 0
	if c.Debug {
		debug = 1
	}
	return fmt.Sprintf("Order=%s,Debug=%d", c.Order, debug)
}

// Logger receives the engine's diagnostic trace when Config.Debug is
// true. The format is not part of the contract (spec.md §6).
type Logger interface {
	Logf(format string, args ...interface{})
}

// noopLogger discards all diagnostic output; used when Config.Debug is false.
type noopLogger struct{}

func (noopLogger) Logf(string, ...interface{}) {}
