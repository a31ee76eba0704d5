package emailaddr

// Options selects which optional grammar productions the parser accepts.
// The zero value is not the default; use DefaultOptions. Derivation
// methods return a modified copy, so a shared Options value can never be
// changed under a concurrent caller.
type Options struct {
	minimumSubDomains  int
	allowDomainLiteral bool
	allowDisplayText   bool
}

// DefaultOptions returns the default parser settings: no minimum
// sub-domain count, domain literals allowed, display names allowed.
func DefaultOptions() Options {
	return Options{
		minimumSubDomains:  0,
		allowDomainLiteral: true,
		allowDisplayText:   true,
	}
}

// WithMinimumSubDomains returns a copy of o requiring at least n
// sub-domains in the domain. A value of 2 enforces a discoverable
// top-level domain. Negative values are treated as zero.
func (o Options) WithMinimumSubDomains(n int) Options {
	if n < 0 {
		n = 0
	}
	o.minimumSubDomains = n
	return o
}

// WithDomainLiteral returns a copy of o with domain literal support set
// to allow.
func (o Options) WithDomainLiteral(allow bool) Options {
	o.allowDomainLiteral = allow
	return o
}

// WithoutDomainLiteral returns a copy of o that rejects bracketed
// domain literals with ErrUnsupportedDomainLiteral.
func (o Options) WithoutDomainLiteral() Options {
	return o.WithDomainLiteral(false)
}

// WithDisplayText returns a copy of o with display name support set to
// allow.
func (o Options) WithDisplayText(allow bool) Options {
	o.allowDisplayText = allow
	return o
}

// WithoutDisplayText returns a copy of o that rejects "Name <addr>"
// forms with ErrUnsupportedDisplayName.
func (o Options) WithoutDisplayText() Options {
	return o.WithDisplayText(false)
}

// MinimumSubDomains reports the configured minimum sub-domain count.
func (o Options) MinimumSubDomains() int {
	return o.minimumSubDomains
}

// AllowsDomainLiteral reports whether bracketed domain literals are
// accepted.
func (o Options) AllowsDomainLiteral() bool {
	return o.allowDomainLiteral
}

// AllowsDisplayText reports whether a leading display name is accepted.
func (o Options) AllowsDisplayText() bool {
	return o.allowDisplayText
}
