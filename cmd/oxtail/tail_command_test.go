package main

import "testing"

func TestParseFilters(t *testing.T) {
	t.Parallel()

	filters, err := parseFilters([]string{"level=error", "service=api"})
	if err != nil {
		t.Fatalf("parseFilters returned error: %v", err)
	}
	if got := filters["level"]; got != "error" {
		t.Fatalf("filters[level] = %q, want %q", got, "error")
	}
	if got := filters["service"]; got != "api" {
		t.Fatalf("filters[service] = %q, want %q", got, "api")
	}
}

func TestParseFiltersKeepsValueEquals(t *testing.T) {
	t.Parallel()

	filters, err := parseFilters([]string{"msg=a=b"})
	if err != nil {
		t.Fatalf("parseFilters returned error: %v", err)
	}
	if got := filters["msg"]; got != "a=b" {
		t.Fatalf("filters[msg] = %q, want %q", got, "a=b")
	}
}

func TestParseFiltersRejectsBarePair(t *testing.T) {
	t.Parallel()

	if _, err := parseFilters([]string{"level"}); err == nil {
		t.Fatal("parseFilters accepted a pair without =")
	}
	if _, err := parseFilters([]string{"=error"}); err == nil {
		t.Fatal("parseFilters accepted an empty field name")
	}
}

func TestParseFiltersEmpty(t *testing.T) {
	t.Parallel()

	filters, err := parseFilters(nil)
	if err != nil {
		t.Fatalf("parseFilters returned error: %v", err)
	}
	if filters != nil {
		t.Fatalf("parseFilters(nil) = %v, want nil", filters)
	}
}
