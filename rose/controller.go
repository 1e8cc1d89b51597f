package rose

// OverflowPolicy is a setting stored on the Controller for bounded fields
// (a ForwardingList entry count, a PartyNumber digit string, ...) that hold
// more data than their capacity allows. No decoder reads it: a bounded
// field over its capacity always fails the decode with ErrValueOutOfRange,
// whichever policy is set.
type OverflowPolicy int

const (
	// OverflowReject is the default.
	OverflowReject OverflowPolicy = iota
	// OverflowTruncate is accepted by WithOverflowPolicy; decoding still
	// fails with ErrValueOutOfRange, and nothing is truncated.
	OverflowTruncate
)

// Controller holds the per-decode/encode configuration a single Q.931
// Facility IE or ROSE component is processed with: which dialect's
// operation/error tables apply, where diagnostics go, whether decoded
// components are traced, and the stored OverflowPolicy.
type Controller struct {
	dialect  Dialect
	sink     Sink
	debug    bool
	overflow OverflowPolicy
}

// ControllerOption configures a Controller.
type ControllerOption func(*Controller)

func defaultSink() Sink { return noopSink{} }

// WithDialect selects the operation/error code table applied to
// local-value (ETSI, DMS-100, NI-2) or OID (Q.SIG) operation lookups.
func WithDialect(d Dialect) ControllerOption {
	return func(c *Controller) {
		c.dialect = d
	}
}

// WithSink installs a diagnostic Sink. Default is a no-op Sink.
func WithSink(s Sink) ControllerOption {
	return func(c *Controller) {
		c.sink = s
	}
}

// WithDebug enables one trace message on the Sink per component decoded by
// Decode. Individual fields are not traced.
func WithDebug(debug bool) ControllerOption {
	return func(c *Controller) {
		c.debug = debug
	}
}

// WithOverflowPolicy stores p on the Controller. Default is OverflowReject.
// Decoding does not depend on it (see OverflowPolicy).
func WithOverflowPolicy(p OverflowPolicy) ControllerOption {
	return func(c *Controller) {
		c.overflow = p
	}
}

// NewController builds a Controller for dialect d, applying opts in order.
func NewController(d Dialect, opts ...ControllerOption) *Controller {
	c := &Controller{
		dialect: d,
		sink:    defaultSink(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Controller) trace(format string, v ...any) {
	if c.debug {
		c.sink.Message(format, v...)
	}
}

func (c *Controller) warn(format string, v ...any) {
	c.sink.Error(format, v...)
}
