package collector

import (
	"fmt"

	"github.com/qepting91/fanpulse/internal/domain"
)

// Options selects and configures a collector implementation.
type Options struct {
	Mode      string // "api", "public", or "mock"
	ClientID  string
	Secret    string
	Username  string
	Password  string
	UserAgent string
}

// New selects the collector implementation for the configured mode.
func New(opts Options) (domain.Collector, error) {
	switch opts.Mode {
	case "api":
		return NewAPIClient(opts.ClientID, opts.Secret, opts.Username, opts.Password, opts.UserAgent)
	case "public":
		return NewPublicClient(opts.ClientID, opts.Secret, opts.UserAgent)
	case "mock":
		return NewMockClient(), nil
	default:
		return nil, fmt.Errorf("unknown collector mode: %q (use 'api', 'public', or 'mock')", opts.Mode)
	}
}
