package testutil

import (
	"strings"
	"testing"
)

// Custom assertion helpers to reduce boilerplate in tests

// AssertNoError fails the test if err is not nil
func AssertNoError(t *testing.T, err error, msg string) {
	t.Helper()
	if err != nil {
		t.Fatalf("%s: got error %v, expected none", msg, err)
	}
}

// AssertError fails the test if err is nil
func AssertError(t *testing.T, err error, msg string) {
	t.Helper()
	if err == nil {
		t.Fatalf("%s: expected error, got none", msg)
	}
}

// AssertErrorContains fails the test if err is nil or doesn't contain the expected substring
func AssertErrorContains(t *testing.T, err error, expected string, msg string) {
	t.Helper()
	if err == nil {
		t.Fatalf("%s: expected error containing %q, got none", msg, expected)
	}
	if !strings.Contains(err.Error(), expected) {
		t.Fatalf("%s: expected error containing %q, got %q", msg, expected, err.Error())
	}
}

// AssertEqual fails the test if got != expected
func AssertEqual(t *testing.T, got, expected interface{}, msg string) {
	t.Helper()
	if got != expected {
		t.Fatalf("%s: got %v, expected %v", msg, got, expected)
	}
}

// AssertStringEqual fails the test if got != expected (string-specific for cleaner output)
func AssertStringEqual(t *testing.T, got, expected string, msg string) {
	t.Helper()
	if got != expected {
		t.Fatalf("%s: got %q, expected %q", msg, got, expected)
	}
}

// AssertStringContains fails the test if str doesn't contain substring
func AssertStringContains(t *testing.T, str, substring string, msg string) {
	t.Helper()
	if !strings.Contains(str, substring) {
		t.Fatalf("%s: expected %q to contain %q", msg, str, substring)
	}
}

// AssertMapEqual fails the test if the maps differ in size or any value
func AssertMapEqual(t *testing.T, got, expected map[string]string, msg string) {
	t.Helper()
	if len(got) != len(expected) {
		t.Fatalf("%s: got %d entries, expected %d\ngot: %v\nexpected: %v", msg, len(got), len(expected), got, expected)
	}
	for k, v := range expected {
		if got[k] != v {
			t.Fatalf("%s: key %q: got %q, expected %q\ngot: %v\nexpected: %v", msg, k, got[k], v, got, expected)
		}
	}
}

// AssertSliceEqual fails the test if slices don't have the same elements in the same order
func AssertSliceEqual(t *testing.T, got, expected []string, msg string) {
	t.Helper()
	if len(got) != len(expected) {
		t.Fatalf("%s: got %d elements, expected %d\ngot: %v\nexpected: %v", msg, len(got), len(expected), got, expected)
	}

	for i, g := range got {
		if g != expected[i] {
			t.Fatalf("%s: element %d: got %q, expected %q\ngot: %v\nexpected: %v", msg, i, g, expected[i], got, expected)
		}
	}
}
