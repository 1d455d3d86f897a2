package filtering

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"stringanalyzer/domain/core/entities"
)

func record(t *testing.T, value string) *entities.StringRecord {
	t.Helper()
	return entities.NewStringRecord(value)
}

func TestEmptySpecMatchesEverything(t *testing.T) {
	var spec FilterSpec

	assert.True(t, spec.IsEmpty())
	assert.True(t, spec.Matches(record(t, "")))
	assert.True(t, spec.Matches(record(t, "hello world")))
}

func TestApplyWithEmptySpecReturnsInput(t *testing.T) {
	var spec FilterSpec
	records := []*entities.StringRecord{record(t, "a"), record(t, "b")}

	got := spec.Apply(records)

	assert.Equal(t, records, got)
}

func TestMatchesPalindrome(t *testing.T) {
	v := true
	spec := FilterSpec{IsPalindrome: &v}

	assert.True(t, spec.Matches(record(t, "Racecar")))
	assert.False(t, spec.Matches(record(t, "hello")))
}

func TestMatchesLengthBounds(t *testing.T) {
	min, max := 3, 5
	spec := FilterSpec{MinLength: &min, MaxLength: &max}

	assert.False(t, spec.Matches(record(t, "ab")))
	assert.True(t, spec.Matches(record(t, "abc")))
	assert.True(t, spec.Matches(record(t, "abcde")))
	assert.False(t, spec.Matches(record(t, "abcdef")))
}

func TestMatchesWordCount(t *testing.T) {
	n := 2
	spec := FilterSpec{WordCount: &n}

	assert.True(t, spec.Matches(record(t, "hello world")))
	assert.False(t, spec.Matches(record(t, "hello")))
}

func TestMatchesContainsCharacter(t *testing.T) {
	z := "z"
	spec := FilterSpec{ContainsCharacter: &z}

	assert.True(t, spec.Matches(record(t, "puzzle")))
	assert.False(t, spec.Matches(record(t, "hello")))
}

func TestMatchesIsConjunction(t *testing.T) {
	v := true
	n := 1
	spec := FilterSpec{IsPalindrome: &v, WordCount: &n}

	assert.True(t, spec.Matches(record(t, "level")))
	assert.False(t, spec.Matches(record(t, "level level")))
	assert.False(t, spec.Matches(record(t, "hello")))
}

func TestApplyPreservesOrder(t *testing.T) {
	v := true
	spec := FilterSpec{IsPalindrome: &v}
	records := []*entities.StringRecord{
		record(t, "noon"),
		record(t, "hello"),
		record(t, "level"),
	}

	got := spec.Apply(records)

	assert.Len(t, got, 2)
	assert.Equal(t, "noon", got[0].Value)
	assert.Equal(t, "level", got[1].Value)
}
