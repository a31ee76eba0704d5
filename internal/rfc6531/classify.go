// Package rfc6531 provides the character classes of the RFC 5321/5322
// mailbox grammar, extended with the UTF8-non-ascii production of RFC 6531.
package rfc6531

import "unicode/utf8"

// IsAtext reports whether r is an atext character: ASCII alphanumeric,
// one of the atom specials, or a permitted non-ASCII character.
func IsAtext(r rune) bool {
	if r >= utf8.RuneSelf {
		return IsUTF8NonASCII(r)
	}
	switch {
	case 'a' <= r && r <= 'z',
		'A' <= r && r <= 'Z',
		'0' <= r && r <= '9':
		return true
	}
	switch r {
	case '!', '#', '$', '%', '&', '\'', '*', '+', '-', '/',
		'=', '?', '^', '_', '`', '{', '|', '}', '~':
		return true
	}
	return false
}

// IsQtext reports whether r may appear unescaped inside a quoted string.
// Printable US-ASCII excluding backslash and quote, or a permitted
// non-ASCII character.
func IsQtext(r rune) bool {
	if r >= utf8.RuneSelf {
		return IsUTF8NonASCII(r)
	}
	return r == 0x21 || (0x23 <= r && r <= 0x5B) || (0x5D <= r && r <= 0x7E)
}

// IsVchar reports whether r is a visible (printing) US-ASCII character.
func IsVchar(r rune) bool {
	return 0x21 <= r && r <= 0x7E
}

// IsWSP reports whether r is a space or horizontal tab (RFC 5234 Appendix B).
func IsWSP(r rune) bool {
	return r == ' ' || r == '\t'
}

// IsDtext reports whether r may appear inside a domain literal.
// Printable US-ASCII excluding "[", "]" and "\", or a permitted
// non-ASCII character.
func IsDtext(r rune) bool {
	if r >= utf8.RuneSelf {
		return IsUTF8NonASCII(r)
	}
	return (0x21 <= r && r <= 0x5A) || (0x5E <= r && r <= 0x7E)
}

// IsUTF8NonASCII reports whether r matches the RFC 6531 UTF8-non-ascii
// production, that is, whether its UTF-8 encoding is one of the well-formed
// 2-, 3- or 4-byte sequences of RFC 3629. ASCII characters and runes that
// cannot be encoded (surrogates, out-of-range values) are rejected.
func IsUTF8NonASCII(r rune) bool {
	if r < utf8.RuneSelf || !utf8.ValidRune(r) {
		return false
	}
	var buf [utf8.UTFMax]byte
	n := utf8.EncodeRune(buf[:], r)
	switch n {
	case 2:
		// UTF8-2 = %xC2-DF UTF8-tail
		return 0xC2 <= buf[0] && buf[0] <= 0xDF && isTail(buf[1])
	case 3:
		// UTF8-3 = %xE0 %xA0-BF UTF8-tail / %xE1-EC 2( UTF8-tail ) /
		//          %xED %x80-9F UTF8-tail / %xEE-EF 2( UTF8-tail )
		switch {
		case buf[0] == 0xE0:
			return 0xA0 <= buf[1] && buf[1] <= 0xBF && isTail(buf[2])
		case 0xE1 <= buf[0] && buf[0] <= 0xEC:
			return isTail(buf[1]) && isTail(buf[2])
		case buf[0] == 0xED:
			return 0x80 <= buf[1] && buf[1] <= 0x9F && isTail(buf[2])
		case 0xEE <= buf[0] && buf[0] <= 0xEF:
			return isTail(buf[1]) && isTail(buf[2])
		}
	case 4:
		// UTF8-4 = %xF0 %x90-BF 2( UTF8-tail ) / %xF1-F3 3( UTF8-tail ) /
		//          %xF4 %x80-8F 2( UTF8-tail )
		switch {
		case buf[0] == 0xF0:
			return 0x90 <= buf[1] && buf[1] <= 0xBF && isTail(buf[2]) && isTail(buf[3])
		case 0xF1 <= buf[0] && buf[0] <= 0xF3:
			return isTail(buf[1]) && isTail(buf[2]) && isTail(buf[3])
		case buf[0] == 0xF4:
			return 0x80 <= buf[1] && buf[1] <= 0x8F && isTail(buf[2]) && isTail(buf[3])
		}
	}
	return false
}

// isTail reports whether b is a UTF8-tail byte (%x80-BF).
func isTail(b byte) bool {
	return 0x80 <= b && b <= 0xBF
}
