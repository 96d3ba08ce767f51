package i18n

import "testing"

func TestLookupAndFallback(t *testing.T) {
	tr := New()

	if got := tr.T("booking.errors.nameRequired"); got != "Name is required" {
		t.Fatalf("unexpected english message: %q", got)
	}

	tr.Set(Hindi)
	if got := tr.T("booking.errors.nameRequired"); got != "नाम आवश्यक है" {
		t.Fatalf("unexpected hindi message: %q", got)
	}

	// A key missing from the active language falls back to english, and a
	// fully unknown key comes back verbatim.
	if got := tr.T("no.such.key"); got != "no.such.key" {
		t.Fatalf("unknown key should echo, got %q", got)
	}
}

func TestToggle(t *testing.T) {
	tr := New()
	if tr.Language() != English {
		t.Fatalf("default language should be english")
	}
	tr.Toggle()
	if tr.Language() != Hindi {
		t.Fatalf("toggle should switch to hindi")
	}
	tr.Toggle()
	if tr.Language() != English {
		t.Fatalf("toggle should switch back")
	}
}

func TestSetUnknownFallsBack(t *testing.T) {
	tr := New()
	tr.Set("fr")
	if tr.Language() != English {
		t.Fatalf("unknown language should fall back to english, got %q", tr.Language())
	}
}
