package sarif

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func uriOf(t *testing.T, result interface{}, index int) interface{} {
	t.Helper()
	locations := field[[]interface{}](result, "locations")
	artifact := field[map[string]interface{}](field[map[string]interface{}](locations[index], "physicalLocation"), "artifactLocation")
	return artifact["uri"]
}

func TestStripURISubstring(t *testing.T) {
	doc := parse(t, `{"runs": [{"results": [
		{"locations": [
			{"physicalLocation": {"artifactLocation": {"uri": "work/android/android/src/Foo.java"}}},
			{"physicalLocation": {"artifactLocation": {"uri": "src/Bar.java"}}}
		]},
		{"locations": [
			{"physicalLocation": {"artifactLocation": {"uri": "file:///home/runner/work/android/android/app/src/Baz.kt"}}}
		]}
	]}]}`)
	results := doc.Results()

	rewritten := StripURISubstring(results, "work/android/android/")

	assert.Equal(t, 2, rewritten)
	assert.Equal(t, "src/Foo.java", uriOf(t, results[0], 0))
	assert.Equal(t, "src/Bar.java", uriOf(t, results[0], 1))
	assert.Equal(t, "file:///home/runner/app/src/Baz.kt", uriOf(t, results[1], 0))
}

func TestStripURISubstringReplacesAllOccurrences(t *testing.T) {
	doc := parse(t, `{"runs": [{"results": [
		{"locations": [{"physicalLocation": {"artifactLocation": {"uri": "ci/a/ci/b"}}}]},
		{"locations": [{"physicalLocation": {"artifactLocation": {"uri": "ci/ci/x"}}}]}
	]}]}`)
	results := doc.Results()

	assert.Equal(t, 2, StripURISubstring(results, "ci/"))
	assert.Equal(t, "a/b", uriOf(t, results[0], 0))
	assert.Equal(t, "x", uriOf(t, results[1], 0))
}

func TestStripURISubstringToleratesMissingFields(t *testing.T) {
	doc := parse(t, `{"runs": [{"results": [
		{},
		{"locations": "nope"},
		{"locations": [{}]},
		{"locations": [{"physicalLocation": {}}]},
		{"locations": [{"physicalLocation": {"artifactLocation": {}}}]},
		{"locations": [{"physicalLocation": {"artifactLocation": {"uri": 7}}}]},
		{"locations": [{"physicalLocation": {"artifactLocation": {"uri": null}}}]},
		"not a result"
	]}]}`)
	results := doc.Results()

	assert.NotPanics(t, func() {
		assert.Equal(t, 0, StripURISubstring(results, "work/"))
	})
	assert.Equal(t, json.Number("7"), uriOf(t, results[5], 0), "non-string uri untouched")
	assert.Nil(t, uriOf(t, results[6], 0))
}

func TestStripURISubstringEmptyPrefix(t *testing.T) {
	doc := parse(t, `{"runs": [{"results": [
		{"locations": [{"physicalLocation": {"artifactLocation": {"uri": "src/Foo.java"}}}]}
	]}]}`)
	results := doc.Results()

	assert.Equal(t, 0, StripURISubstring(results, ""))
	assert.Equal(t, "src/Foo.java", uriOf(t, results[0], 0))
}

func TestStripURISubstringMultiple(t *testing.T) {
	doc := parse(t, `{"runs": [{"results": [
		{"locations": [
			{"physicalLocation": {"artifactLocation": {"uri": "file:///home/runner/work/android/android/app/src/Foo.kt"}}},
			{"physicalLocation": {"artifactLocation": {"uri": "/home/runner/work/android/android/wear/src/Bar.kt"}}}
		]}
	]}]}`)
	results := doc.Results()

	rewritten := StripURISubstring(results,
		"file:///home/runner/work/android/android/",
		"/home/runner/work/android/android/",
	)

	assert.Equal(t, 2, rewritten)
	assert.Equal(t, "app/src/Foo.kt", uriOf(t, results[0], 0))
	assert.Equal(t, "wear/src/Bar.kt", uriOf(t, results[0], 1))
}
