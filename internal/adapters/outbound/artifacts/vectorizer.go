// Package artifacts loads the pre-trained inference artifacts exported by the training pipeline:
// the structure n-gram vectorizer and the XGBoost interaction classifier.
package artifacts

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"regexp"
	"strings"
	"unicode"

	"github.com/cleitonmarx/drugfood-interactions/internal/common"
	"github.com/cleitonmarx/drugfood-interactions/internal/domain"
)

// Analyzer selects how a structure string is split into terms.
type Analyzer string

const (
	Analyzer_Char   Analyzer = "char"
	Analyzer_CharWB Analyzer = "char_wb"
	Analyzer_Word   Analyzer = "word"
)

var (
	whiteSpaces = regexp.MustCompile(`\s\s+`)
	wordToken   = regexp.MustCompile(`[\p{L}\p{N}_]{2,}`)
)

// vectorizerFile is the JSON layout of an exported count/tf-idf vectorizer.
type vectorizerFile struct {
	Analyzer    Analyzer       `json:"analyzer"`
	NgramRange  [2]int         `json:"ngram_range"`
	Lowercase   bool           `json:"lowercase"`
	Binary      bool           `json:"binary"`
	SublinearTF bool           `json:"sublinear_tf"`
	Norm        string         `json:"norm"`
	Vocabulary  map[string]int `json:"vocabulary"`
	IDF         []float64      `json:"idf"`
}

// NgramVectorizer maps a structure string onto a fixed term vocabulary.
// It is read-only after construction and safe for concurrent use.
type NgramVectorizer struct {
	analyzer    Analyzer
	minN, maxN  int
	lowercase   bool
	binary      bool
	sublinearTF bool
	norm        string
	vocabulary  map[string]int
	idf         []float64
}

// LoadNgramVectorizer reads a vectorizer artifact from path.
func LoadNgramVectorizer(path string) (*NgramVectorizer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, domain.NewConfigurationErr("read vectorizer artifact: %v", err)
	}
	return ParseNgramVectorizer(data)
}

// ParseNgramVectorizer decodes and validates a vectorizer artifact.
func ParseNgramVectorizer(data []byte) (*NgramVectorizer, error) {
	var f vectorizerFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, domain.NewConfigurationErr("decode vectorizer artifact: %v", err)
	}

	switch f.Analyzer {
	case Analyzer_Char, Analyzer_CharWB, Analyzer_Word:
	case "":
		f.Analyzer = Analyzer_Char
	default:
		return nil, domain.NewConfigurationErr("unsupported vectorizer analyzer %q", f.Analyzer)
	}

	minN, maxN := f.NgramRange[0], f.NgramRange[1]
	if minN == 0 && maxN == 0 {
		minN, maxN = 1, 1
	}
	if minN < 1 || maxN < minN {
		return nil, domain.NewConfigurationErr("invalid ngram_range [%d, %d]", minN, maxN)
	}

	switch f.Norm {
	case "", "l1", "l2":
	default:
		return nil, domain.NewConfigurationErr("unsupported vectorizer norm %q", f.Norm)
	}

	if len(f.Vocabulary) == 0 {
		return nil, domain.NewConfigurationErr("vectorizer vocabulary is empty")
	}
	seen := make([]bool, len(f.Vocabulary))
	for term, idx := range f.Vocabulary {
		if idx < 0 || idx >= len(f.Vocabulary) || seen[idx] {
			return nil, domain.NewConfigurationErr("vocabulary index %d for term %q is out of range or duplicated", idx, term)
		}
		seen[idx] = true
	}
	if f.IDF != nil && len(f.IDF) != len(f.Vocabulary) {
		return nil, domain.NewConfigurationErr("idf has %d weights for a vocabulary of %d terms", len(f.IDF), len(f.Vocabulary))
	}

	return &NgramVectorizer{
		analyzer:    f.Analyzer,
		minN:        minN,
		maxN:        maxN,
		lowercase:   f.Lowercase,
		binary:      f.Binary,
		sublinearTF: f.SublinearTF,
		norm:        f.Norm,
		vocabulary:  f.Vocabulary,
		idf:         f.IDF,
	}, nil
}

// Width returns the vocabulary size.
func (v *NgramVectorizer) Width() int {
	return len(v.vocabulary)
}

// Transform returns the weighted term vector of structure. Terms outside the vocabulary are ignored.
func (v *NgramVectorizer) Transform(structure string) ([]float64, error) {
	if v == nil || v.vocabulary == nil {
		return nil, domain.NewConfigurationErr("vectorizer is not loaded")
	}

	out := make([]float64, len(v.vocabulary))
	for _, term := range v.terms(structure) {
		if idx, ok := v.vocabulary[term]; ok {
			out[idx]++
		}
	}

	for i, c := range out {
		if c == 0 {
			continue
		}
		switch {
		case v.binary:
			c = 1
		case v.sublinearTF:
			c = 1 + math.Log(c)
		}
		if v.idf != nil {
			c *= v.idf[i]
		}
		out[i] = c
	}

	switch v.norm {
	case "l2":
		common.L2Normalize(out)
	case "l1":
		l1Normalize(out)
	}
	return out, nil
}

func (v *NgramVectorizer) terms(s string) []string {
	if v.lowercase {
		s = strings.ToLower(s)
	}
	switch v.analyzer {
	case Analyzer_Word:
		return wordNgrams(wordToken.FindAllString(s, -1), v.minN, v.maxN)
	case Analyzer_CharWB:
		return charWBNgrams(s, v.minN, v.maxN)
	default:
		return charNgrams(whiteSpaces.ReplaceAllString(s, " "), v.minN, v.maxN)
	}
}

func charNgrams(s string, minN, maxN int) []string {
	runes := []rune(s)
	var out []string
	for n := minN; n <= maxN && n <= len(runes); n++ {
		for i := 0; i+n <= len(runes); i++ {
			out = append(out, string(runes[i:i+n]))
		}
	}
	return out
}

// charWBNgrams builds character n-grams inside word boundaries, padding every word with a space.
// Words shorter than n contribute their padded form once.
func charWBNgrams(s string, minN, maxN int) []string {
	var out []string
	for _, word := range strings.FieldsFunc(s, unicode.IsSpace) {
		w := []rune(" " + word + " ")
		for n := minN; n <= maxN; n++ {
			offset := 0
			out = append(out, string(w[offset:min(offset+n, len(w))]))
			for offset+n < len(w) {
				offset++
				out = append(out, string(w[offset:min(offset+n, len(w))]))
			}
			if offset == 0 {
				break
			}
		}
	}
	return out
}

func wordNgrams(tokens []string, minN, maxN int) []string {
	var out []string
	for n := minN; n <= maxN && n <= len(tokens); n++ {
		for i := 0; i+n <= len(tokens); i++ {
			out = append(out, strings.Join(tokens[i:i+n], " "))
		}
	}
	return out
}

func l1Normalize(v []float64) {
	var sum float64
	for _, x := range v {
		sum += math.Abs(x)
	}
	if sum == 0 {
		return
	}
	for i := range v {
		v[i] /= sum
	}
}

var _ domain.StructureVectorizer = (*NgramVectorizer)(nil)

// String describes the vectorizer configuration for logs.
func (v *NgramVectorizer) String() string {
	return fmt.Sprintf("%s[%d,%d] vocabulary=%d norm=%q idf=%t", v.analyzer, v.minN, v.maxN, len(v.vocabulary), v.norm, v.idf != nil)
}
