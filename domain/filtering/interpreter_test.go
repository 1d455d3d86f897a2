package filtering

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInterpretSingleWordPalindromes(t *testing.T) {
	spec, matches := Interpret("all single word palindromic strings")

	require.NotNil(t, spec.WordCount)
	assert.Equal(t, 1, *spec.WordCount)
	require.NotNil(t, spec.IsPalindrome)
	assert.True(t, *spec.IsPalindrome)
	assert.Nil(t, spec.MinLength)
	assert.Nil(t, spec.MaxLength)
	assert.Nil(t, spec.ContainsCharacter)
	assert.Len(t, matches, 2)
}

func TestInterpretLongerThan(t *testing.T) {
	spec, _ := Interpret("strings longer than 10 characters")

	require.NotNil(t, spec.MinLength)
	assert.Equal(t, 11, *spec.MinLength)
}

func TestInterpretMoreThanNumberWord(t *testing.T) {
	spec, _ := Interpret("strings with more than five characters")

	require.NotNil(t, spec.MinLength)
	assert.Equal(t, 6, *spec.MinLength)
}

func TestInterpretAtLeast(t *testing.T) {
	spec, _ := Interpret("strings with at least 10 characters")

	require.NotNil(t, spec.MinLength)
	assert.Equal(t, 10, *spec.MinLength)
}

func TestInterpretShorterThan(t *testing.T) {
	spec, _ := Interpret("strings shorter than 5 characters")

	require.NotNil(t, spec.MaxLength)
	assert.Equal(t, 4, *spec.MaxLength)
}

func TestInterpretAtMost(t *testing.T) {
	spec, _ := Interpret("strings with at most eight characters")

	require.NotNil(t, spec.MaxLength)
	assert.Equal(t, 8, *spec.MaxLength)
}

func TestInterpretContainsLetter(t *testing.T) {
	spec, matches := Interpret("strings containing the letter z")

	require.NotNil(t, spec.ContainsCharacter)
	assert.Equal(t, "z", *spec.ContainsCharacter)
	require.Len(t, matches, 1)
	assert.Equal(t, "contains_character", matches[0].Recognizer)
}

func TestInterpretContainsDigit(t *testing.T) {
	spec, _ := Interpret("strings that contain 7")

	require.NotNil(t, spec.ContainsCharacter)
	assert.Equal(t, "7", *spec.ContainsCharacter)
}

func TestInterpretFirstVowel(t *testing.T) {
	spec, matches := Interpret("strings that contain the first vowel")

	require.NotNil(t, spec.ContainsCharacter)
	assert.Equal(t, "a", *spec.ContainsCharacter)
	require.Len(t, matches, 1)
	assert.Equal(t, "first_vowel", matches[0].Recognizer)
}

func TestInterpretWordCount(t *testing.T) {
	spec, _ := Interpret("strings with exactly three words")

	require.NotNil(t, spec.WordCount)
	assert.Equal(t, 3, *spec.WordCount)
}

func TestInterpretWordCountDigits(t *testing.T) {
	spec, _ := Interpret("show me 2 word strings")

	require.NotNil(t, spec.WordCount)
	assert.Equal(t, 2, *spec.WordCount)
}

func TestInterpretUnrecognizedQueryYieldsEmptySpec(t *testing.T) {
	spec, matches := Interpret("xyzzy plugh")

	assert.True(t, spec.IsEmpty())
	assert.Empty(t, matches)
}

func TestInterpretEmptyQueryYieldsEmptySpec(t *testing.T) {
	spec, matches := Interpret("")

	assert.True(t, spec.IsEmpty())
	assert.Empty(t, matches)
}

func TestInterpretFirstMatchWinsOnConflict(t *testing.T) {
	spec, _ := Interpret("single word strings with three words")

	require.NotNil(t, spec.WordCount)
	assert.Equal(t, 1, *spec.WordCount)
}

func TestInterpretIsCaseAndWhitespaceInsensitive(t *testing.T) {
	spec, _ := Interpret("  Palindromic   strings LONGER than TEN characters ")

	require.NotNil(t, spec.IsPalindrome)
	assert.True(t, *spec.IsPalindrome)
	require.NotNil(t, spec.MinLength)
	assert.Equal(t, 11, *spec.MinLength)
}

func TestInterpretCombinedBounds(t *testing.T) {
	spec, matches := Interpret("palindromes longer than 3 characters and shorter than 10 characters")

	require.NotNil(t, spec.MinLength)
	assert.Equal(t, 4, *spec.MinLength)
	require.NotNil(t, spec.MaxLength)
	assert.Equal(t, 9, *spec.MaxLength)
	require.NotNil(t, spec.IsPalindrome)
	assert.Len(t, matches, 3)
}
