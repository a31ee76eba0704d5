// Package emailaddr validates and decomposes Internet email addresses
// against RFC 5321/5322 mailbox syntax with the RFC 6531/6532 UTF-8
// extensions and the practical restrictions of RFC 3696, optionally
// accepting a leading display name ("Name <addr>") and bracketed domain
// literals.
//
// Validation is purely syntactic: no DNS lookups, no mailbox
// verification, no CFWS or comment support, and no normalization beyond
// what the grammar implies (domains are not lower-cased).
package emailaddr

import (
	"fmt"
	"strings"
)

const mailtoURIPrefix = "mailto:"

// Address is a single validated email address. It wraps the original,
// unmodified text (including any display-name wrapper); the component
// accessors re-derive views from that text without re-validating it.
// The zero value is not a valid Address; obtain one from Parse,
// ParseWithOptions or NewUnchecked.
type Address struct {
	text string
}

// Parse validates address under DefaultOptions.
func Parse(address string) (Address, error) {
	return ParseWithOptions(address, DefaultOptions())
}

// ParseWithOptions validates address under opts. Validation is
// all-or-nothing: it short-circuits on the first grammar violation and
// is deterministic for a given (address, opts) pair.
func ParseWithOptions(address string, opts Options) (Address, error) {
	p, err := splitForParse(address, opts)
	if err != nil {
		return Address{}, err
	}
	if err := parseLocalPart(p.local); err != nil {
		return Address{}, err
	}
	if err := parseDomain(p.domain, opts); err != nil {
		return Address{}, err
	}
	return Address{text: address}, nil
}

// NewUnchecked wraps address without validating it. Only call this with
// text already known to be valid, such as the String form of a
// previously parsed Address; the accessors assume well-formed input.
func NewUnchecked(address string) Address {
	return Address{text: address}
}

// IsValid reports whether address parses under DefaultOptions.
func IsValid(address string) bool {
	_, err := Parse(address)
	return err == nil
}

// IsValidLocalPart reports whether part would be a valid local part.
func IsValidLocalPart(part string) bool {
	return parseLocalPart(part) == nil
}

// IsValidDomain reports whether part would be a valid domain under
// DefaultOptions.
func IsValidDomain(part string) bool {
	return parseDomain(part, DefaultOptions()) == nil
}

// String returns the original text the Address was created from,
// including any display-name wrapper.
func (a Address) String() string {
	return a.text
}

// IsZero reports whether a is the zero Address.
func (a Address) IsZero() bool {
	return a.text == ""
}

// Email returns the bare address with any display-name wrapper
// stripped.
func (a Address) Email() string {
	p, _, _, _ := splitAddress(a.text)
	return p.email
}

// LocalPart returns the portion of the address before the '@'
// separator.
func (a Address) LocalPart() string {
	p, _, _, _ := splitAddress(a.text)
	return p.local
}

// Domain returns the portion of the address after the '@' separator.
func (a Address) Domain() string {
	p, _, _, _ := splitAddress(a.text)
	return p.domain
}

// DisplayPart returns the display name with surrounding whitespace
// trimmed, or the empty string when the address has none.
func (a Address) DisplayPart() string {
	p, _, _, _ := splitAddress(a.text)
	return p.display
}

// Display renders the address for humans as "name <email>". Without a
// display name it renders the bare email, so the result always parses
// back to the same address.
func (a Address) Display() string {
	p, _, _, _ := splitAddress(a.text)
	if p.display == "" {
		return p.email
	}
	return p.display + " <" + p.email + ">"
}

// URI renders the address as a mailto: URI with reserved URI characters
// percent-encoded. The '@' is valid in the mailto scheme and is left
// alone.
func (a Address) URI() string {
	email := a.Email()
	var sb strings.Builder
	sb.Grow(len(mailtoURIPrefix) + len(email))
	sb.WriteString(mailtoURIPrefix)
	for i := 0; i < len(email); i++ {
		c := email[i]
		if isURIReserved(c) {
			fmt.Fprintf(&sb, "%%%02X", c)
		} else {
			sb.WriteByte(c)
		}
	}
	return sb.String()
}

// Equal reports whether a and b denote the same mailbox: local parts
// compared byte for byte (case is significant per RFC 5321 section
// 2.4), domains compared case-insensitively. Display names do not
// participate.
func (a Address) Equal(b Address) bool {
	pa, _, _, _ := splitAddress(a.text)
	pb, _, _, _ := splitAddress(b.text)
	return pa.local == pb.local && strings.EqualFold(pa.domain, pb.domain)
}

// Key returns a canonical form of the bare address, with the domain
// lower-cased, suitable as a map key: two Addresses are Equal exactly
// when their Keys match.
func (a Address) Key() string {
	p, _, _, _ := splitAddress(a.text)
	return p.local + "@" + strings.ToLower(p.domain)
}

// Reserved characters of the URI generic syntax that need escaping in a
// mailto URI. Multi-byte UTF-8 sequences never contain these bytes, so
// the scan can stay byte-wise.
func isURIReserved(c byte) bool {
	switch c {
	case '!', '#', '$', '%', '&', '\'', '(', ')', '*', '+', ',', '/',
		':', ';', '=', '?', '[', ']':
		return true
	}
	return false
}
