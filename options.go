package pgwire

// Options configures a Decoder. The zero value is not meaningful; use
// DefaultOptions or NewDecoder with functional Option arguments.
type Options struct {
	logger  Logger
	metrics *DecodeMetrics
}

// Option configures a Decoder at construction time.
type Option func(*Options)

// WithLogger attaches a structured logger. Decode failures and unsupported
// message tags are logged at warn level; every other decode is logged at
// debug level. The default is a logger that discards everything; a nil
// logger also disables logging entirely.
func WithLogger(l Logger) Option {
	return func(o *Options) { o.logger = l }
}

// WithMetrics attaches Prometheus counters for decode outcomes. A nil
// *DecodeMetrics (the default) disables metrics entirely.
func WithMetrics(m *DecodeMetrics) Option {
	return func(o *Options) { o.metrics = m }
}

// DefaultOptions returns the zero-observability configuration: no logger,
// no metrics. This is what the package-level Decode function uses.
func DefaultOptions() Options {
	return Options{logger: nopLogger{}}
}

// Decoder decodes backend messages under a fixed set of Options. The zero
// Decoder is not usable; construct one with NewDecoder.
type Decoder struct {
	opts Options
}

// NewDecoder builds a Decoder from DefaultOptions with opts applied in
// order.
func NewDecoder(opts ...Option) *Decoder {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Decoder{opts: o}
}

// defaultDecoder backs the package-level Decode function.
var defaultDecoder = NewDecoder()

// observe reports a completed Decode call to the configured logger and
// metrics, if any. It never affects the decode's outcome.
func (d *Decoder) observe(tag byte, err error) {
	if d.opts.logger != nil {
		if err != nil {
			d.opts.logger.Warnw("pgwire: decode failed", "tag", string(tag), "error", err)
		} else {
			d.opts.logger.Debugw("pgwire: decoded message", "tag", string(tag))
		}
	}
	if d.opts.metrics != nil {
		d.opts.metrics.observe(tag, err)
	}
}
