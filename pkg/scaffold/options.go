package scaffold

import (
	"fmt"
	"strings"

	"github.com/olimci/mlseed/pkg/events"
)

// ErrorPolicy decides what a failing file does to the rest of the pass.
type ErrorPolicy int

const (
	// Abort stops at the first failing file.
	Abort ErrorPolicy = iota
	// Continue records the failure and moves on to the next file.
	Continue
)

func (p ErrorPolicy) String() string {
	if p == Continue {
		return "continue"
	}
	return "abort"
}

func ParseErrorPolicy(s string) (ErrorPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "abort":
		return Abort, nil
	case "continue":
		return Continue, nil
	default:
		return Abort, fmt.Errorf("unknown error policy %q (expected abort or continue)", s)
	}
}

func defaultOptions() *options {
	return &options{
		handler: events.Discard,
		onError: Abort,
		strict:  false,
	}
}

type options struct {
	handler events.Handler
	onError ErrorPolicy
	strict  bool
}

func (o *options) apply(opts ...Option) *options {
	for _, opt := range opts {
		opt(o)
	}

	return o
}

type Option func(o *options)

func WithHandler(h events.Handler) Option {
	if h == nil {
		h = events.Discard
	}

	return func(o *options) {
		o.handler = h
	}
}

func WithErrorPolicy(p ErrorPolicy) Option {
	return func(o *options) {
		o.onError = p
	}
}

// WithStrict rejects empty request values instead of substituting them.
func WithStrict(strict bool) Option {
	return func(o *options) {
		o.strict = strict
	}
}
