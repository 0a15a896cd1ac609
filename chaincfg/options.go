package chaincfg

import (
	"io"

	"github.com/sirupsen/logrus"

	"github.com/rony4d/tsec-chaincfg/chaincfg/genesis"
)

// Option tunes how profiles are built.
type Option func(*options)

type options struct {
	hasher genesis.HeaderHasher
	log    logrus.FieldLogger
}

func newOptions(opts []Option) options {
	o := options{
		hasher: genesis.DoubleSHA256,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.log == nil {
		silent := logrus.New()
		silent.Out = io.Discard
		o.log = silent
	}
	return o
}

// WithHeaderHasher replaces the header hash used to verify genesis blocks.
// The default is genesis.DoubleSHA256.
func WithHeaderHasher(h genesis.HeaderHasher) Option {
	return func(o *options) {
		if h != nil {
			o.hasher = h
		}
	}
}

// WithLogger routes profile construction and genesis verification logs to
// l. Without it the package logs nothing.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *options) {
		o.log = l
	}
}
