package filtering

import (
	"regexp"
	"strconv"
	"strings"
)

// Match records which recognizer assigned which FilterSpec field, and the
// text fragment that triggered it. Matches are surfaced in logs and
// metrics so every parsed query stays traceable.
type Match struct {
	Recognizer string `json:"recognizer"`
	Field      string `json:"field"`
	Fragment   string `json:"fragment"`
}

// recognizer is one entry in the interpretation rule table. Each recognizer
// scans the whole normalized query independently and may assign at most one
// FilterSpec field. Recognizers never consume text, so several of them can
// fire on the same query.
type recognizer struct {
	name  string
	apply func(q string, spec *FilterSpec) (field, fragment string, ok bool)
}

// recognizers is the ordered rule table. Order is a contract: the first
// recognizer to assign a field wins and later recognizers never overwrite
// it. New phrasings are additions to this table, not new code paths.
var recognizers = []recognizer{
	{"palindrome", applyPalindrome},
	{"single_word", applySingleWord},
	{"word_count", applyWordCount},
	{"min_length_strict", applyMinLengthStrict},
	{"min_length_inclusive", applyMinLengthInclusive},
	{"max_length_strict", applyMaxLengthStrict},
	{"max_length_inclusive", applyMaxLengthInclusive},
	{"contains_character", applyContainsCharacter},
	{"first_vowel", applyFirstVowel},
}

// numberPattern matches a digit literal or a spelled-out number word.
const numberPattern = `([0-9]+|one|two|three|four|five|six|seven|eight|nine|ten)`

var (
	wordCountRe    = regexp.MustCompile(`\b` + numberPattern + `\s+words?\b`)
	minStrictRe    = regexp.MustCompile(`\b(?:longer|more)\s+than\s+` + numberPattern + `\s+characters?\b`)
	minInclusiveRe = regexp.MustCompile(`\bat\s+least\s+` + numberPattern + `\s+characters?\b`)
	maxStrictRe    = regexp.MustCompile(`\b(?:shorter|less)\s+than\s+` + numberPattern + `\s+characters?\b`)
	maxInclusiveRe = regexp.MustCompile(`\bat\s+most\s+` + numberPattern + `\s+characters?\b`)
	containsRe     = regexp.MustCompile(`\bcontain(?:s|ing)?\s+(?:the\s+letter\s+)?([a-z0-9])\b`)
)

var numberWords = map[string]int{
	"one": 1, "two": 2, "three": 3, "four": 4, "five": 5,
	"six": 6, "seven": 7, "eight": 8, "nine": 9, "ten": 10,
}

// Interpret converts free-form query text into a FilterSpec by running the
// recognizer table over the normalized text. Unrecognized text degrades to
// an empty spec (which matches every record); interpretation never fails.
func Interpret(query string) (FilterSpec, []Match) {
	q := normalize(query)

	var spec FilterSpec
	var matches []Match
	for _, r := range recognizers {
		if field, fragment, ok := r.apply(q, &spec); ok {
			matches = append(matches, Match{
				Recognizer: r.name,
				Field:      field,
				Fragment:   fragment,
			})
		}
	}
	return spec, matches
}

// normalize lower-cases the query and collapses all whitespace runs to
// single spaces so the phrase patterns only have to handle one form.
func normalize(query string) string {
	return strings.Join(strings.Fields(strings.ToLower(query)), " ")
}

func parseNumber(token string) (int, bool) {
	if n, ok := numberWords[token]; ok {
		return n, true
	}
	n, err := strconv.Atoi(token)
	if err != nil {
		return 0, false
	}
	return n, true
}

func applyPalindrome(q string, spec *FilterSpec) (string, string, bool) {
	if spec.IsPalindrome != nil {
		return "", "", false
	}
	for _, token := range []string{"palindromic", "palindrome"} {
		if strings.Contains(q, token) {
			v := true
			spec.IsPalindrome = &v
			return "is_palindrome", token, true
		}
	}
	return "", "", false
}

func applySingleWord(q string, spec *FilterSpec) (string, string, bool) {
	if spec.WordCount != nil {
		return "", "", false
	}
	for _, phrase := range []string{"single word", "one word"} {
		if strings.Contains(q, phrase) {
			n := 1
			spec.WordCount = &n
			return "word_count", phrase, true
		}
	}
	return "", "", false
}

func applyWordCount(q string, spec *FilterSpec) (string, string, bool) {
	if spec.WordCount != nil {
		return "", "", false
	}
	m := wordCountRe.FindStringSubmatch(q)
	if m == nil {
		return "", "", false
	}
	n, ok := parseNumber(m[1])
	if !ok {
		return "", "", false
	}
	spec.WordCount = &n
	return "word_count", m[0], true
}

// matchLength extracts the numeric bound from re and applies delta, which
// encodes the strict-versus-inclusive off-by-one ("longer than 10" means a
// minimum of 11, "at least 10" means exactly 10).
func matchLength(q string, re *regexp.Regexp, delta int) (int, string, bool) {
	m := re.FindStringSubmatch(q)
	if m == nil {
		return 0, "", false
	}
	n, ok := parseNumber(m[1])
	if !ok {
		return 0, "", false
	}
	return n + delta, m[0], true
}

func applyMinLengthStrict(q string, spec *FilterSpec) (string, string, bool) {
	if spec.MinLength != nil {
		return "", "", false
	}
	n, fragment, ok := matchLength(q, minStrictRe, 1)
	if !ok {
		return "", "", false
	}
	spec.MinLength = &n
	return "min_length", fragment, true
}

func applyMinLengthInclusive(q string, spec *FilterSpec) (string, string, bool) {
	if spec.MinLength != nil {
		return "", "", false
	}
	n, fragment, ok := matchLength(q, minInclusiveRe, 0)
	if !ok {
		return "", "", false
	}
	spec.MinLength = &n
	return "min_length", fragment, true
}

func applyMaxLengthStrict(q string, spec *FilterSpec) (string, string, bool) {
	if spec.MaxLength != nil {
		return "", "", false
	}
	n, fragment, ok := matchLength(q, maxStrictRe, -1)
	if !ok {
		return "", "", false
	}
	spec.MaxLength = &n
	return "max_length", fragment, true
}

func applyMaxLengthInclusive(q string, spec *FilterSpec) (string, string, bool) {
	if spec.MaxLength != nil {
		return "", "", false
	}
	n, fragment, ok := matchLength(q, maxInclusiveRe, 0)
	if !ok {
		return "", "", false
	}
	spec.MaxLength = &n
	return "max_length", fragment, true
}

func applyContainsCharacter(q string, spec *FilterSpec) (string, string, bool) {
	if spec.ContainsCharacter != nil {
		return "", "", false
	}
	m := containsRe.FindStringSubmatch(q)
	if m == nil {
		return "", "", false
	}
	spec.ContainsCharacter = &m[1]
	return "contains_character", m[0], true
}

// applyFirstVowel keeps an idiom the original API supported: asking for
// strings that "contain the first vowel" filters on the letter "a".
func applyFirstVowel(q string, spec *FilterSpec) (string, string, bool) {
	if spec.ContainsCharacter != nil {
		return "", "", false
	}
	const phrase = "contain the first vowel"
	if !strings.Contains(q, phrase) {
		return "", "", false
	}
	a := "a"
	spec.ContainsCharacter = &a
	return "contains_character", phrase, true
}
