// Package testutil provides shared testing utilities and fixtures
package testutil

// Common fixtures used across multiple test files
const (
	// NestedObjectJSON is a small document for path lookup tests
	NestedObjectJSON = `{
		"a": {
			"b": {
				"c": 5
			},
			"leaf": "x"
		},
		"top": 1
	}`

	// MergedQueryOld and MergedQueryNew pair up for merge tests
	MergedQueryOld = "/old?a=1&b=9"
	MergedQueryNew = "/path?b=2"

	// MergedQueryResult is the expected merge of the two above
	MergedQueryResult = "/path?a=1&b=2"
)
