package textutil

import (
	"reflect"
	"testing"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "simple words",
			input: "Hello World",
			want:  []string{"hello", "world"},
		},
		{
			name:  "keeps inner apostrophes",
			input: "Don't stop",
			want:  []string{"don't", "stop"},
		},
		{
			name:  "trims surrounding apostrophes",
			input: "'hello' ''world''",
			want:  []string{"hello", "world"},
		},
		{
			name:  "handles punctuation",
			input: "Hello, World! How are you?",
			want:  []string{"hello", "world", "how", "are", "you"},
		},
		{
			name:  "keeps digits and underscores",
			input: "test123 snake_case",
			want:  []string{"test123", "snake_case"},
		},
		{
			name:  "unicode letters",
			input: "Café ÜBER",
			want:  []string{"café", "über"},
		},
		{
			name:  "bare apostrophe",
			input: "a ' b",
			want:  []string{"a", "", "b"},
		},
		{
			name:  "empty string",
			input: "",
			want:  []string{},
		},
		{
			name:  "punctuation only",
			input: "?! ...",
			want:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tokenize(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("Tokenize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestExpandToken(t *testing.T) {
	tests := []struct {
		token string
		want  []string
	}{
		{"she's", []string{"she", "is"}},
		{"he's", []string{"he", "is"}},
		{"it's", []string{"it", "is"}},
		{"there's", []string{"there", "is"}},
		{"you'll", []string{"you", "will"}},
		{"i'm", []string{"i", "am"}},
		{"they're", []string{"they", "are"}},
		{"we've", []string{"we", "have"}},
		{"can't", []string{"cannot"}},
		{"don't", []string{"do", "not"}},
		{"won't", []string{"wo", "not"}},
		{"dog's", []string{"dog"}},
		{"i'd", []string{"i"}},
		{"what's", []string{"what"}},
		{"plain", []string{"plain"}},
		{"", []string{""}},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			got := ExpandToken(tt.token)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("ExpandToken(%q) = %q, want %q", tt.token, got, tt.want)
			}
		})
	}
}

func TestExpandTokenEmbeddedBeatsSuffix(t *testing.T) {
	// "'re" is checked before "'s" is ever considered.
	got := ExpandToken("who're's")
	want := []string{"who", "are's"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("ExpandToken() = %q, want %q", got, want)
	}
}

func TestVectorize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  TermFreq
	}{
		{
			name:  "exact contraction",
			input: "she's happy",
			want:  TermFreq{"she": 1, "is": 1, "happy": 1},
		},
		{
			name:  "cannot",
			input: "can't stop",
			want:  TermFreq{"cannot": 1, "stop": 1},
		},
		{
			name:  "possessive",
			input: "dog's bone",
			want:  TermFreq{"dog": 1, "bone": 1},
		},
		{
			name:  "counts repeats case-insensitively",
			input: "The the THE cat",
			want:  TermFreq{"the": 3, "cat": 1},
		},
		{
			name:  "expansion merges with plain words",
			input: "it's what it is",
			want:  TermFreq{"it": 2, "is": 2, "what": 1},
		},
		{
			name:  "bare apostrophe counts as empty term",
			input: "' hello",
			want:  TermFreq{"": 1, "hello": 1},
		},
		{
			name:  "empty",
			input: "",
			want:  TermFreq{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Vectorize(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("Vectorize(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestTermFreqSortedAndTotal(t *testing.T) {
	tf := Vectorize("b a b c c c")
	if tf.Total() != 6 {
		t.Fatalf("Total() = %d, want 6", tf.Total())
	}
	got := tf.Sorted()
	want := []Term{{"c", 3}, {"b", 2}, {"a", 1}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Sorted() = %v, want %v", got, want)
	}

	tie := TermFreq{"z": 1, "a": 1}.Sorted()
	if tie[0].Text != "a" {
		t.Fatalf("expected ties broken alphabetically, got %v", tie)
	}
}
