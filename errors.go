package emailaddr

import "fmt"

// Length limits from RFC 5321 section 4.5.3.1, with the domain limit
// corrected per the errata to RFC 3696.
const (
	localPartMaxLength = 64
	domainMaxLength    = 254
	subDomainMaxLength = 63
)

// ParseError identifies the grammar or configuration rule an address
// violated. It is the only error type returned by this package.
type ParseError uint8

const (
	// ErrInvalidCharacter is returned when a character is not allowed in
	// the component it appears in.
	ErrInvalidCharacter ParseError = iota + 1
	// ErrMissingSeparator is returned when the '@' separator between the
	// local part and the domain is missing.
	ErrMissingSeparator
	// ErrLocalPartEmpty is returned when the local part is an empty string.
	ErrLocalPartEmpty
	// ErrLocalPartTooLong is returned when the local part exceeds 64 bytes.
	ErrLocalPartTooLong
	// ErrDomainEmpty is returned when the domain is an empty string.
	ErrDomainEmpty
	// ErrDomainTooLong is returned when the domain exceeds 254 bytes.
	ErrDomainTooLong
	// ErrSubDomainEmpty is returned when a sub-domain between dots is empty.
	ErrSubDomainEmpty
	// ErrSubDomainTooLong is returned when a sub-domain exceeds 63 bytes.
	ErrSubDomainTooLong
	// ErrDomainTooFew is returned when the domain has fewer sub-domains
	// than the configured minimum.
	ErrDomainTooFew
	// ErrDomainInvalidSeparator is returned on invalid placement of the
	// '.' domain separator.
	ErrDomainInvalidSeparator
	// ErrUnbalancedQuotes is returned when the quotes around the local
	// part are unbalanced.
	ErrUnbalancedQuotes
	// ErrInvalidComment is returned when a parenthetical comment is
	// malformed. Comments are not part of the accepted grammar; the kind
	// is reserved.
	ErrInvalidComment
	// ErrInvalidIPAddress is returned when an IP address in a domain
	// literal is malformed. Literal contents are not numerically
	// validated; the kind is reserved.
	ErrInvalidIPAddress
	// ErrUnsupportedDomainLiteral is returned when a domain literal is
	// given but domain literals are disabled.
	ErrUnsupportedDomainLiteral
	// ErrUnsupportedDisplayName is returned when a display name is given
	// but display names are disabled.
	ErrUnsupportedDisplayName
	// ErrMissingDisplayName is returned when an address is wrapped in
	// angle brackets without a preceding display name.
	ErrMissingDisplayName
	// ErrMissingEndBracket is returned when the '>' closing an angle-
	// bracketed address is missing.
	ErrMissingEndBracket
)

func (e ParseError) Error() string {
	switch e {
	case ErrInvalidCharacter:
		return "Invalid character."
	case ErrMissingSeparator:
		return "Missing separator character '@'."
	case ErrLocalPartEmpty:
		return "Local part is empty."
	case ErrLocalPartTooLong:
		return fmt.Sprintf("Local part is too long. Length limit: %d", localPartMaxLength)
	case ErrDomainEmpty:
		return "Domain is empty."
	case ErrDomainTooLong:
		return fmt.Sprintf("Domain is too long. Length limit: %d", domainMaxLength)
	case ErrSubDomainEmpty:
		return "A sub-domain is empty."
	case ErrSubDomainTooLong:
		return fmt.Sprintf("A sub-domain is too long. Length limit: %d", subDomainMaxLength)
	case ErrDomainTooFew:
		return "Too few parts in the domain."
	case ErrDomainInvalidSeparator:
		return "Invalid placement of the domain separator '.'."
	case ErrUnbalancedQuotes:
		return "Quotes around the local-part are unbalanced."
	case ErrInvalidComment:
		return "A comment was badly formed."
	case ErrInvalidIPAddress:
		return "Invalid IP address specified for domain."
	case ErrUnsupportedDomainLiteral:
		return "Domain literals are not supported."
	case ErrUnsupportedDisplayName:
		return "Display names are not supported."
	case ErrMissingDisplayName:
		return "A display name was expected but is missing."
	case ErrMissingEndBracket:
		return "Missing end bracket '>'."
	default:
		return fmt.Sprintf("Unknown error (%d).", uint8(e))
	}
}
