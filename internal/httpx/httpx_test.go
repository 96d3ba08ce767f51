package httpx

import (
	"net/url"
	"strings"
	"testing"
)

func TestParsePageDefaults(t *testing.T) {
	page, limit, err := ParsePage(url.Values{}, 10, 100)
	if err != nil {
		t.Fatalf("ParsePage: %v", err)
	}
	if page != 1 || limit != 10 {
		t.Fatalf("expected page 1 limit 10, got %d %d", page, limit)
	}
}

func TestParsePageClampsLimit(t *testing.T) {
	values := url.Values{"page": {"3"}, "limit": {"5000"}}
	page, limit, err := ParsePage(values, 10, 100)
	if err != nil {
		t.Fatalf("ParsePage: %v", err)
	}
	if page != 3 || limit != 100 {
		t.Fatalf("expected page 3 limit 100, got %d %d", page, limit)
	}
}

func TestParsePageRejectsBadValues(t *testing.T) {
	for _, values := range []url.Values{
		{"page": {"0"}},
		{"page": {"-2"}},
		{"page": {"abc"}},
		{"limit": {"0"}},
		{"limit": {"x"}},
	} {
		if _, _, err := ParsePage(values, 10, 100); err == nil {
			t.Fatalf("values %v should be rejected", values)
		}
	}
}

func TestDecodeJSONRejectsUnknownFields(t *testing.T) {
	var probe struct {
		Name string `json:"name"`
	}
	err := DecodeJSON(strings.NewReader(`{"name":"a","extra":1}`), &probe)
	if err == nil {
		t.Fatalf("unknown field should be rejected")
	}
}

func TestDecodeJSONRejectsTrailingContent(t *testing.T) {
	var probe struct {
		Name string `json:"name"`
	}
	err := DecodeJSON(strings.NewReader(`{"name":"a"}{"name":"b"}`), &probe)
	if err == nil {
		t.Fatalf("second object should be rejected")
	}
}
