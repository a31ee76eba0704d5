package emailaddr

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/moriyoshi/emailaddr/internal/rfc6531"
)

// parts holds the views into an address computed by splitAddress. All
// fields are slices of the original text; nothing is copied.
type parts struct {
	display string
	email   string
	local   string
	domain  string
}

// splitAddress locates the optional "Name <addr>" wrapper and the '@'
// separator in s. It never fails; the returned flags let the caller
// decide which malformations matter. wrapped reports that the " <"
// marker was found, closed that the enclosed address had its trailing
// '>', and hasAt that a separator was found in the email portion.
func splitAddress(s string) (p parts, wrapped, closed, hasAt bool) {
	rest := s
	closed = true
	if i := strings.LastIndex(s, " <"); i >= 0 {
		wrapped = true
		p.display = strings.TrimSpace(s[:i])
		t := strings.TrimSpace(s[i+1:])
		if len(t) >= 2 && t[len(t)-1] == '>' {
			rest = t[1 : len(t)-1]
		} else {
			closed = false
			rest = t
		}
	}
	p.email = rest
	if at := strings.LastIndexByte(rest, '@'); at >= 0 {
		hasAt = true
		p.local, p.domain = rest[:at], rest[at+1:]
	} else {
		p.local = rest
	}
	return
}

// splitForParse applies the display-name legality rules on top of
// splitAddress. An '@' inside a quoted local part is handled by the
// right-to-left separator search: the rightmost '@' belongs to the
// domain, quoted ones end up inside the local part.
func splitForParse(s string, opts Options) (parts, error) {
	p, wrapped, closed, hasAt := splitAddress(s)
	if wrapped && !closed {
		return parts{}, ErrMissingEndBracket
	}
	if !hasAt {
		return parts{}, ErrMissingSeparator
	}
	if p.display == "" {
		// "<addr>" with no name text in front: the bare bracket form is
		// never valid, it just fails differently depending on whether
		// display names are accepted at all.
		if wrapped || strings.HasPrefix(p.local, "<") {
			if !opts.allowDisplayText {
				return parts{}, ErrInvalidCharacter
			}
			return parts{}, ErrMissingDisplayName
		}
	} else if !opts.allowDisplayText {
		return parts{}, ErrUnsupportedDisplayName
	}
	return p, nil
}

// parseLocalPart validates the portion before the separator as either a
// dot-atom or a quoted string.
func parseLocalPart(part string) error {
	if part == "" {
		return ErrLocalPartEmpty
	}
	if len(part) > localPartMaxLength {
		return ErrLocalPartTooLong
	}
	if len(part) >= 2 && part[0] == '"' && part[len(part)-1] == '"' {
		if len(part) == 2 {
			return ErrLocalPartEmpty
		}
		return parseQuotedLocalPart(part[1 : len(part)-1])
	}
	return parseUnquotedLocalPart(part)
}

// parseQuotedLocalPart validates the interior of a quoted string: any
// run of WSP and qtext, with quoted-pairs escaping a single VCHAR.
func parseQuotedLocalPart(part string) error {
	for i := 0; i < len(part); {
		if part[i] == '\\' {
			i++
			if i >= len(part) {
				return ErrInvalidCharacter
			}
			r, size := decodeRune(part[i:])
			if size == 0 || !rfc6531.IsVchar(r) {
				return ErrInvalidCharacter
			}
			i += size
			continue
		}
		r, size := decodeRune(part[i:])
		if size == 0 || !(rfc6531.IsWSP(r) || rfc6531.IsQtext(r)) {
			return ErrInvalidCharacter
		}
		i += size
	}
	return nil
}

// parseUnquotedLocalPart validates a dot-atom: dot-separated, non-empty
// runs of atext. Leading, trailing and doubled dots all produce an
// empty segment and are rejected.
func parseUnquotedLocalPart(part string) error {
	for _, atom := range strings.Split(part, ".") {
		if atom == "" {
			return ErrInvalidCharacter
		}
		if !isAtomText(atom) {
			return ErrInvalidCharacter
		}
	}
	return nil
}

// parseDomain validates the portion after the separator as either
// dot-separated labels or a bracketed domain literal.
func parseDomain(part string, opts Options) error {
	if part == "" {
		return ErrDomainEmpty
	}
	if len(part) > domainMaxLength {
		return ErrDomainTooLong
	}
	if len(part) >= 2 && part[0] == '[' && part[len(part)-1] == ']' {
		return parseLiteralDomain(part[1:len(part)-1], opts)
	}
	return parseTextDomain(part, opts)
}

// parseLiteralDomain validates the interior of a domain literal. The
// contents are not checked for being a well-formed IP address; any
// dtext-conformant string is accepted.
func parseLiteralDomain(part string, opts Options) error {
	if !opts.allowDomainLiteral {
		return ErrUnsupportedDomainLiteral
	}
	for i := 0; i < len(part); {
		r, size := decodeRune(part[i:])
		if size == 0 || !rfc6531.IsDtext(r) {
			return ErrInvalidCharacter
		}
		i += size
	}
	return nil
}

// parseTextDomain validates dot-separated domain labels. Per-label
// syntax errors take priority over the sub-domain count check, which
// only runs once every label has passed.
func parseTextDomain(part string, opts Options) error {
	count := 0
	for _, label := range strings.Split(part, ".") {
		if label == "" {
			return ErrSubDomainEmpty
		}
		first, size := decodeRune(label)
		if size == 0 || !isAlphanumeric(first) {
			return ErrInvalidCharacter
		}
		last, size := decodeLastRune(label)
		if size == 0 || !isAlphanumeric(last) {
			return ErrInvalidCharacter
		}
		if len(label) > subDomainMaxLength {
			return ErrSubDomainTooLong
		}
		if !isAtomText(label) {
			return ErrInvalidCharacter
		}
		count++
	}
	if count < opts.minimumSubDomains {
		return ErrDomainTooFew
	}
	return nil
}

func isAtomText(s string) bool {
	for i := 0; i < len(s); {
		r, size := decodeRune(s[i:])
		if size == 0 || !rfc6531.IsAtext(r) {
			return false
		}
		i += size
	}
	return true
}

func isAlphanumeric(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

// decodeRune decodes the first rune of s, returning size 0 on a
// malformed UTF-8 sequence so every caller rejects it.
func decodeRune(s string) (rune, int) {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError && size <= 1 {
		return utf8.RuneError, 0
	}
	return r, size
}

func decodeLastRune(s string) (rune, int) {
	r, size := utf8.DecodeLastRuneInString(s)
	if r == utf8.RuneError && size <= 1 {
		return utf8.RuneError, 0
	}
	return r, size
}
