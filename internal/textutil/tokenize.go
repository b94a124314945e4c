package textutil

import (
	"regexp"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// wordPattern matches runs of Unicode word characters and apostrophes.
var wordPattern = regexp.MustCompile(`[\p{L}\p{N}_']+`)

// TermFreq maps a normalized term to the number of times it occurs.
type TermFreq map[string]int

// Term is a single entry of a TermFreq, used for ordered output.
type Term struct {
	Text  string `json:"term"`
	Count int    `json:"count"`
}

// expansion rewrites a token matching pattern into replacement.
type expansion struct {
	pattern     string
	replacement string
}

// tokenRule reports whether it applies to a token and, if so, the terms the
// token contributes.
type tokenRule func(token string) ([]string, bool)

var exactContractions = []expansion{
	{"she's", "she is"},
	{"he's", "he is"},
	{"it's", "it is"},
	{"there's", "there is"},
}

// Order matters: "can't" must be tried before "n't".
var embeddedContractions = []expansion{
	{"'ll", " will"},
	{"'m", " am"},
	{"'re", " are"},
	{"'ve", " have"},
	{"can't", "cannot"},
	{"n't", " not"},
}

// 'd is dropped rather than expanded because "had" and "would" need context.
var droppedSuffixes = []expansion{
	{"'s", ""},
	{"'d", ""},
}

// tokenRules are evaluated in order; the first rule that applies wins.
var tokenRules = []tokenRule{
	exactRule(exactContractions),
	substringRule(embeddedContractions, true),
	substringRule(droppedSuffixes, false),
}

func exactRule(table []expansion) tokenRule {
	return func(token string) ([]string, bool) {
		for _, e := range table {
			if token == e.pattern {
				return strings.Fields(e.replacement), true
			}
		}
		return nil, false
	}
}

// substringRule replaces every occurrence of the first contained pattern.
// When split is false the rewritten token is counted as a single term.
func substringRule(table []expansion, split bool) tokenRule {
	return func(token string) ([]string, bool) {
		for _, e := range table {
			if !strings.Contains(token, e.pattern) {
				continue
			}
			rewritten := strings.ReplaceAll(token, e.pattern, e.replacement)
			if split {
				return strings.Fields(rewritten), true
			}
			return []string{rewritten}, true
		}
		return nil, false
	}
}

// Tokenize lowercases text and returns its word/apostrophe runs with
// surrounding apostrophes trimmed. A bare apostrophe yields an empty token.
func Tokenize(text string) []string {
	lowered := cases.Lower(language.Und).String(text)
	raw := wordPattern.FindAllString(lowered, -1)
	tokens := make([]string, 0, len(raw))
	for _, token := range raw {
		tokens = append(tokens, strings.Trim(token, "'"))
	}
	return tokens
}

// ExpandToken applies the contraction rules to a single trimmed token.
func ExpandToken(token string) []string {
	for _, rule := range tokenRules {
		if terms, ok := rule(token); ok {
			return terms
		}
	}
	return []string{token}
}

// Vectorize builds the term-frequency map of text. Empty input yields an
// empty map.
func Vectorize(text string) TermFreq {
	freq := make(TermFreq)
	for _, token := range Tokenize(text) {
		for _, term := range ExpandToken(token) {
			freq[term]++
		}
	}
	return freq
}

// Total returns the number of counted terms.
func (tf TermFreq) Total() int {
	total := 0
	for _, count := range tf {
		total += count
	}
	return total
}

// Sorted returns the entries ordered by descending count, then by term.
func (tf TermFreq) Sorted() []Term {
	terms := make([]Term, 0, len(tf))
	for text, count := range tf {
		terms = append(terms, Term{Text: text, Count: count})
	}
	sort.Slice(terms, func(i, j int) bool {
		if terms[i].Count != terms[j].Count {
			return terms[i].Count > terms[j].Count
		}
		return terms[i].Text < terms[j].Text
	})
	return terms
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
