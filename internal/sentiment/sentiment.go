// Package sentiment scores user feedback text with keyword-based weighted
// scoring on a 1.0 to 5.0 scale. It is deliberately lexicon-driven rather
// than model-driven so results stay deterministic and auditable.
package sentiment

import (
	_ "embed"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/BurntSushi/toml"
)

//go:embed lexicon.toml
var embeddedLexicon []byte

var (
	punctRe = regexp.MustCompile(`[^\w\s]`)
	spaceRe = regexp.MustCompile(`\s+`)
)

// Lexicon holds the keyword sets that drive scoring. The four sentiment
// classes are expected to be disjoint.
type Lexicon struct {
	VeryPositive []string `toml:"very_positive"`
	Positive     []string `toml:"positive"`
	Negative     []string `toml:"negative"`
	VeryNegative []string `toml:"very_negative"`
	Negations    []string `toml:"negations"`
	Intensifiers []string `toml:"intensifiers"`
}

// LoadLexicon reads a lexicon from path, or falls back to the embedded
// default when path is empty or the file does not exist.
func LoadLexicon(path string) (*Lexicon, error) {
	data := embeddedLexicon
	if path != "" {
		if b, err := os.ReadFile(path); err == nil {
			data = b
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read lexicon %s: %w", path, err)
		}
	}

	var lex Lexicon
	if err := toml.Unmarshal(data, &lex); err != nil {
		return nil, fmt.Errorf("failed to parse lexicon: %w", err)
	}
	return &lex, nil
}

// DefaultLexicon returns the embedded lexicon. It panics only if the
// embedded file is malformed, which is a build defect.
func DefaultLexicon() *Lexicon {
	lex, err := LoadLexicon("")
	if err != nil {
		panic(err)
	}
	return lex
}

// Signals counts the sentiment indicators found in a text. The class
// counters are fractional because intensified matches count 1.5.
type Signals struct {
	VeryPositive float64 `json:"very_positive"`
	Positive     float64 `json:"positive"`
	Negative     float64 `json:"negative"`
	VeryNegative float64 `json:"very_negative"`
	Negations    int     `json:"negations"`
	Intensifiers int     `json:"intensifiers"`
}

// Result is the sentiment analysis of a single text.
type Result struct {
	Score      float64 `json:"score"`
	Label      string  `json:"label"`
	Confidence float64 `json:"confidence"`
	Signals    Signals `json:"signals"`
}

// Analyzer scores texts against a lexicon. Construct with NewAnalyzer.
type Analyzer struct {
	veryPositive map[string]bool
	positive     map[string]bool
	negative     map[string]bool
	veryNegative map[string]bool
	negations    map[string]bool
	intensifiers map[string]bool
}

func NewAnalyzer(lex *Lexicon) *Analyzer {
	return &Analyzer{
		veryPositive: toSet(lex.VeryPositive),
		positive:     toSet(lex.Positive),
		negative:     toSet(lex.Negative),
		veryNegative: toSet(lex.VeryNegative),
		negations:    toSet(lex.Negations),
		intensifiers: toSet(lex.Intensifiers),
	}
}

func toSet(words []string) map[string]bool {
	set := make(map[string]bool, len(words))
	for _, w := range words {
		set[w] = true
	}
	return set
}

// cleanText lowercases the input and strips punctuation so tokens match
// the lexicon entries.
func cleanText(text string) string {
	text = strings.ToLower(text)
	text = punctRe.ReplaceAllString(text, " ")
	text = spaceRe.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

// Analyze scores a single text. A negation immediately before a keyword
// flips its polarity; an intensifier immediately before it amplifies its
// weight by 1.5. Texts with no sentiment keywords score neutral 3.0 with
// low confidence.
func (a *Analyzer) Analyze(text string) Result {
	words := strings.Fields(cleanText(text))

	var signals Signals
	for i, word := range words {
		negated := i > 0 && a.negations[words[i-1]]
		multiplier := 1.0
		if i > 0 && a.intensifiers[words[i-1]] {
			multiplier = 1.5
		}

		switch {
		case a.veryPositive[word]:
			if negated {
				signals.VeryNegative += multiplier
			} else {
				signals.VeryPositive += multiplier
			}
		case a.positive[word]:
			if negated {
				signals.Negative += multiplier
			} else {
				signals.Positive += multiplier
			}
		case a.negative[word]:
			if negated {
				signals.Positive += multiplier
			} else {
				signals.Negative += multiplier
			}
		case a.veryNegative[word]:
			if negated {
				signals.Positive += multiplier
			} else {
				signals.VeryNegative += multiplier
			}
		}

		if a.negations[word] {
			signals.Negations++
		}
		if a.intensifiers[word] {
			signals.Intensifiers++
		}
	}

	total := signals.VeryPositive + signals.Positive + signals.Negative + signals.VeryNegative
	if total == 0 {
		return Result{Score: 3.0, Label: "Neutral", Confidence: 0.3, Signals: signals}
	}

	weighted := signals.VeryPositive*5.0 +
		signals.Positive*4.0 +
		signals.Negative*2.0 +
		signals.VeryNegative*1.0
	score := weighted / total

	return Result{
		Score:      round2(score),
		Label:      scoreLabel(score),
		Confidence: round2(minFloat(total/5.0, 1.0)),
		Signals:    signals,
	}
}

func scoreLabel(score float64) string {
	switch {
	case score >= 4.5:
		return "Very Positive"
	case score >= 3.5:
		return "Positive"
	case score >= 2.5:
		return "Neutral"
	case score >= 1.5:
		return "Negative"
	default:
		return "Very Negative"
	}
}

func minFloat(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
