package session

import "time"

// Clock returns the current time. Stores take one so expiry can be tested.
type Clock func() time.Time

type storeOptions struct {
	clock     Clock
	sealer    *Sealer
	keyPrefix string
}

// StoreOption configures a Store implementation.
type StoreOption func(*storeOptions)

// WithClock overrides time.Now for expiry checks.
func WithClock(clock Clock) StoreOption {
	return func(o *storeOptions) {
		o.clock = clock
	}
}

// WithSealer encrypts session payloads before they leave the process.
func WithSealer(sealer *Sealer) StoreOption {
	return func(o *storeOptions) {
		o.sealer = sealer
	}
}

// WithKeyPrefix namespaces keys in shared backends such as Redis.
func WithKeyPrefix(prefix string) StoreOption {
	return func(o *storeOptions) {
		o.keyPrefix = prefix
	}
}

func newStoreOptions(opts []StoreOption) storeOptions {
	o := storeOptions{clock: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	if o.clock == nil {
		o.clock = time.Now
	}
	return o
}
