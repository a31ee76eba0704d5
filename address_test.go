package emailaddr

import "testing"

func TestAccessors(t *testing.T) {
	tests := [...]struct {
		address string
		local   string
		domain  string
		display string
		email   string
	}{
		0: {"simple@example.com", "simple", "example.com", "", "simple@example.com"},
		1: {
			"Simons Email <simon@example.com>",
			"simon", "example.com", "Simons Email", "simon@example.com",
		},
		2: {
			"  Padded Name   <simon@example.com>",
			"simon", "example.com", "Padded Name", "simon@example.com",
		},
		3: {"jsmith@[192.168.2.1]", "jsmith", "[192.168.2.1]", "", "jsmith@[192.168.2.1]"},
		4: {"\"Abc@def\"@example.com", "\"Abc@def\"", "example.com", "", "\"Abc@def\"@example.com"},
		5: {"коля@пример.рф", "коля", "пример.рф", "", "коля@пример.рф"},
	}
	for i, tc := range tests {
		a, err := Parse(tc.address)
		if err != nil {
			t.Fatalf("#%d: Parse(%q) = %v", i, tc.address, err)
		}
		if got := a.LocalPart(); got != tc.local {
			t.Errorf("#%d: LocalPart() = %q, want %q", i, got, tc.local)
		}
		if got := a.Domain(); got != tc.domain {
			t.Errorf("#%d: Domain() = %q, want %q", i, got, tc.domain)
		}
		if got := a.DisplayPart(); got != tc.display {
			t.Errorf("#%d: DisplayPart() = %q, want %q", i, got, tc.display)
		}
		if got := a.Email(); got != tc.email {
			t.Errorf("#%d: Email() = %q, want %q", i, got, tc.email)
		}
	}
}

func TestURI(t *testing.T) {
	tests := [...]struct {
		address string
		want    string
	}{
		0: {"name@example.org", "mailto:name@example.org"},
		1: {
			"user+mailbox/department=shipping@example.com",
			"mailto:user%2Bmailbox%2Fdepartment%3Dshipping@example.com",
		},
		2: {"jsmith@[192.168.2.1]", "mailto:jsmith@%5B192.168.2.1%5D"},
		3: {"коля@пример.рф", "mailto:коля@пример.рф"},
		4: {"With Name <name@example.org>", "mailto:name@example.org"},
	}
	for i, tc := range tests {
		a, err := Parse(tc.address)
		if err != nil {
			t.Fatalf("#%d: Parse(%q) = %v", i, tc.address, err)
		}
		if got := a.URI(); got != tc.want {
			t.Errorf("#%d: URI() = %q, want %q", i, got, tc.want)
		}
	}
}

func TestDisplay(t *testing.T) {
	tests := [...]struct {
		address string
		want    string
	}{
		0: {"name@example.org", "name@example.org"},
		1: {"My Name <name@example.org>", "My Name <name@example.org>"},
		2: {"  My Name  <name@example.org>", "My Name <name@example.org>"},
	}
	for i, tc := range tests {
		a, err := Parse(tc.address)
		if err != nil {
			t.Fatalf("#%d: Parse(%q) = %v", i, tc.address, err)
		}
		got := a.Display()
		if got != tc.want {
			t.Errorf("#%d: Display() = %q, want %q", i, got, tc.want)
		}
		// Rendering must parse back to the same bare email.
		back, err := Parse(got)
		if err != nil {
			t.Errorf("#%d: Parse(Display()) = %v", i, err)
		} else if back.Email() != a.Email() {
			t.Errorf("#%d: round trip Email() = %q, want %q", i, back.Email(), a.Email())
		}
	}
}

func TestURIRoundTrip(t *testing.T) {
	// For addresses with no reserved characters, stripping the mailto:
	// prefix reproduces the original email text.
	for i, s := range []string{"simple@example.com", "x@example.com", "коля@пример.рф"} {
		a, err := Parse(s)
		if err != nil {
			t.Fatalf("#%d: Parse(%q) = %v", i, s, err)
		}
		uri := a.URI()
		stripped := uri[len("mailto:"):]
		if stripped != a.Email() {
			t.Errorf("#%d: stripped URI = %q, want %q", i, stripped, a.Email())
		}
		if _, err := Parse(stripped); err != nil {
			t.Errorf("#%d: Parse(stripped URI) = %v", i, err)
		}
	}
}

func TestEqual(t *testing.T) {
	tests := [...]struct {
		a, b string
		want bool
	}{
		0: {"simon@example.com", "simon@example.com", true},
		1: {"simon@example.com", "simon@Example.COM", true},
		2: {"simon@example.com", "Simon@example.com", false},
		3: {"simon@example.com", "simone@example.com", false},
		4: {"Display <simon@example.com>", "simon@example.com", true},
	}
	for i, tc := range tests {
		a, err := Parse(tc.a)
		if err != nil {
			t.Fatalf("#%d: Parse(%q) = %v", i, tc.a, err)
		}
		b, err := Parse(tc.b)
		if err != nil {
			t.Fatalf("#%d: Parse(%q) = %v", i, tc.b, err)
		}
		if got := a.Equal(b); got != tc.want {
			t.Errorf("#%d: Equal(%q, %q) = %v, want %v", i, tc.a, tc.b, got, tc.want)
		}
		if a.Equal(b) != (a.Key() == b.Key()) {
			t.Errorf("#%d: Equal and Key disagree for (%q, %q)", i, tc.a, tc.b)
		}
	}
}

func TestNewUnchecked(t *testing.T) {
	a, err := Parse("john.doe@example.com")
	if err != nil {
		t.Fatal(err)
	}
	u := NewUnchecked(a.String())
	if u != a {
		t.Errorf("NewUnchecked(%q) != parsed value", a.String())
	}
	if u.LocalPart() != "john.doe" || u.Domain() != "example.com" {
		t.Errorf("accessors on unchecked value: %q / %q", u.LocalPart(), u.Domain())
	}
}

func TestValidityHelpers(t *testing.T) {
	if !IsValid("johnstonskj@gmail.com") {
		t.Error("IsValid = false, want true")
	}
	if IsValid("not an address") {
		t.Error("IsValid = true, want false")
	}
	if !IsValidLocalPart("john.doe") || IsValidLocalPart("john..doe") {
		t.Error("IsValidLocalPart misjudged")
	}
	if !IsValidDomain("example.com") || IsValidDomain("-example.com") {
		t.Error("IsValidDomain misjudged")
	}
}

func TestZeroValue(t *testing.T) {
	var a Address
	if !a.IsZero() {
		t.Error("zero Address: IsZero = false")
	}
	if p := NewUnchecked("x@y"); p.IsZero() {
		t.Error("non-zero Address: IsZero = true")
	}
}
