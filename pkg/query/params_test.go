package query

import (
	"reflect"
	"testing"
)

func TestEncode(t *testing.T) {
	tests := []struct {
		name     string
		params   Params
		expected string
	}{
		{
			name:     "empty map produces empty string",
			params:   Params{},
			expected: "",
		},
		{
			name:     "nil map produces empty string",
			params:   nil,
			expected: "",
		},
		{
			name:     "single pair",
			params:   Params{"x": "1"},
			expected: "x=1",
		},
		{
			name:     "pairs emitted in sorted key order",
			params:   Params{"y": "two", "x": "1"},
			expected: "x=1&y=two",
		},
		{
			name:     "value is percent-encoded",
			params:   Params{"q": "a b&c"},
			expected: "q=a+b%26c",
		},
		{
			name:     "key is not percent-encoded",
			params:   Params{"a b": "v"},
			expected: "a b=v",
		},
		{
			name:     "empty value keeps bare equals",
			params:   Params{"flag": ""},
			expected: "flag=",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Encode(tt.params)
			if got != tt.expected {
				t.Errorf("Encode(%v) = %q, expected %q", tt.params, got, tt.expected)
			}
		})
	}
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name     string
		uri      string
		expected Params
	}{
		{
			name:     "empty string",
			uri:      "",
			expected: Params{},
		},
		{
			name:     "bare question mark",
			uri:      "?",
			expected: Params{},
		},
		{
			name:     "leading question mark stripped",
			uri:      "?x=1&y=two",
			expected: Params{"x": "1", "y": "two"},
		},
		{
			name:     "empty segments skipped",
			uri:      "a=1&&b=2&",
			expected: Params{"a": "1", "b": "2"},
		},
		{
			name:     "segment without equals decodes to empty value",
			uri:      "flag&x=1",
			expected: Params{"flag": "", "x": "1"},
		},
		{
			name:     "value split on first equals only",
			uri:      "expr=a=b",
			expected: Params{"expr": "a=b"},
		},
		{
			name:     "value is percent-decoded",
			uri:      "q=a%20b%26c",
			expected: Params{"q": "a b&c"},
		},
		{
			name:     "plus decodes to space",
			uri:      "q=a+b",
			expected: Params{"q": "a b"},
		},
		{
			name:     "malformed escape kept raw",
			uri:      "q=100%zz",
			expected: Params{"q": "100%zz"},
		},
		{
			name:     "later duplicate key wins",
			uri:      "a=1&a=2",
			expected: Params{"a": "2"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Decode(tt.uri)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Decode(%q) = %v, expected %v", tt.uri, got, tt.expected)
			}
		})
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	original := Params{"x": "1", "y": "two", "msg": "hello world"}
	got := Decode(Encode(original))
	if !reflect.DeepEqual(got, original) {
		t.Errorf("round trip = %v, expected %v", got, original)
	}
}

func TestMerge(t *testing.T) {
	tests := []struct {
		name     string
		old      Params
		new      Params
		expected Params
	}{
		{
			name:     "new value wins on collision",
			old:      Params{"a": "1", "b": "9"},
			new:      Params{"b": "2"},
			expected: Params{"a": "1", "b": "2"},
		},
		{
			name:     "keys only in old preserved",
			old:      Params{"a": "1"},
			new:      Params{},
			expected: Params{"a": "1"},
		},
		{
			name:     "both nil yields empty",
			old:      nil,
			new:      nil,
			expected: Params{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Merge(tt.old, tt.new)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Merge(%v, %v) = %v, expected %v", tt.old, tt.new, got, tt.expected)
			}
		})
	}
}

func TestMergeDoesNotMutateInputs(t *testing.T) {
	old := Params{"a": "1"}
	new := Params{"a": "2"}
	Merge(old, new)
	if old["a"] != "1" {
		t.Errorf("old mutated: %v", old)
	}
}
