package valueobjects

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// StringProperties holds the derived properties of an analyzed string.
// All fields are computed once from the raw value and never mutated.
type StringProperties struct {
	Length                int            `json:"length"`
	IsPalindrome          bool           `json:"is_palindrome"`
	UniqueCharacters      int            `json:"unique_characters"`
	WordCount             int            `json:"word_count"`
	SHA256Hash            string         `json:"sha256_hash"`
	CharacterFrequencyMap map[string]int `json:"character_frequency_map"`
}

// HashValue returns the hex-encoded SHA-256 digest of the raw UTF-8 bytes
// of value. The digest doubles as the record's identity: identical values
// always produce identical ids.
func HashValue(value string) string {
	sum := sha256.Sum256([]byte(value))
	return hex.EncodeToString(sum[:])
}

// ComputeProperties derives all properties from value. It is pure and never
// fails, including for the empty string.
//
// Length counts Unicode code points, not bytes. UniqueCharacters counts
// distinct code points of the raw string and is case-sensitive ("Aa" has
// two unique characters). The frequency map is keyed by each character's
// string form so multi-byte characters survive JSON round-trips.
func ComputeProperties(value string) StringProperties {
	runes := []rune(value)
	freq := make(map[string]int, len(runes))
	for _, r := range runes {
		freq[string(r)]++
	}

	return StringProperties{
		Length:                len(runes),
		IsPalindrome:          isPalindrome(value),
		UniqueCharacters:      len(freq),
		WordCount:             len(strings.Fields(value)),
		SHA256Hash:            HashValue(value),
		CharacterFrequencyMap: freq,
	}
}

// isPalindrome reports whether value reads identically forwards and
// backwards after case normalization. Whitespace is significant. Empty and
// single-character strings are palindromes by definition.
func isPalindrome(value string) bool {
	runes := []rune(strings.ToLower(value))
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		if runes[i] != runes[j] {
			return false
		}
	}
	return true
}
