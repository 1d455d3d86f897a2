package valueobjects

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputePropertiesBasics(t *testing.T) {
	props := ComputeProperties("hello world")

	assert.Equal(t, 11, props.Length)
	assert.False(t, props.IsPalindrome)
	assert.Equal(t, 2, props.WordCount)
	assert.Equal(t, 8, props.UniqueCharacters)
	assert.Equal(t, 3, props.CharacterFrequencyMap["l"])
	assert.Equal(t, 2, props.CharacterFrequencyMap["o"])
	assert.Equal(t, 1, props.CharacterFrequencyMap[" "])
}

func TestComputePropertiesEmptyString(t *testing.T) {
	props := ComputeProperties("")

	assert.Equal(t, 0, props.Length)
	assert.True(t, props.IsPalindrome)
	assert.Equal(t, 0, props.WordCount)
	assert.Equal(t, 0, props.UniqueCharacters)
	assert.Empty(t, props.CharacterFrequencyMap)
}

func TestLengthCountsRunesNotBytes(t *testing.T) {
	props := ComputeProperties("héllo")

	assert.Equal(t, 5, props.Length)
	assert.Equal(t, 1, props.CharacterFrequencyMap["é"])
}

func TestPalindromeIgnoresCaseOnly(t *testing.T) {
	assert.True(t, ComputeProperties("Racecar").IsPalindrome)
	assert.True(t, ComputeProperties("a").IsPalindrome)
	assert.False(t, ComputeProperties("ab").IsPalindrome)

	// Whitespace is significant, so multi-word palindromic phrases only
	// qualify when the spacing itself mirrors.
	assert.False(t, ComputeProperties("never odd or even").IsPalindrome)
	assert.True(t, ComputeProperties("aba aba").IsPalindrome)
}

func TestUniqueCharactersIsCaseSensitive(t *testing.T) {
	props := ComputeProperties("Aa")

	assert.Equal(t, 2, props.UniqueCharacters)
}

func TestWordCountCollapsesWhitespace(t *testing.T) {
	assert.Equal(t, 2, ComputeProperties("  hello   world  ").WordCount)
	assert.Equal(t, 0, ComputeProperties("   ").WordCount)
}

func TestHashValue(t *testing.T) {
	assert.Equal(t,
		"ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad",
		HashValue("abc"))

	props := ComputeProperties("abc")
	assert.Equal(t, HashValue("abc"), props.SHA256Hash)
}
