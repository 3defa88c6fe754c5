// Package topics builds the shared term-weighting matrices over the review
// corpus and fits the two factorization models on top of them.
package topics

import (
	"regexp"
	"strings"
)

var (
	urlPattern   = regexp.MustCompile(`https?://\S+|www\.\S+`)
	emailPattern = regexp.MustCompile(`\S+@\S+`)
	nonAlpha     = regexp.MustCompile(`[^a-z\s]`)
)

// Tokenizer normalizes review text for the topic models: lowercase, URLs and
// emails stripped, punctuation removed, stop words and short tokens dropped,
// remaining words reduced to a root form.
type Tokenizer struct {
	stop map[string]struct{}
}

// NewTokenizer builds a tokenizer with the standard English stop list plus
// the domain exclusions (generic app/banking vocabulary that would otherwise
// dominate every topic).
func NewTokenizer() *Tokenizer {
	stop := make(map[string]struct{}, len(englishStopwords)+len(domainStopwords))
	for _, w := range englishStopwords {
		stop[w] = struct{}{}
	}
	for _, w := range domainStopwords {
		stop[w] = struct{}{}
	}
	return &Tokenizer{stop: stop}
}

func (t *Tokenizer) Tokens(text string) []string {
	text = strings.ToLower(text)
	text = urlPattern.ReplaceAllString(text, " ")
	text = emailPattern.ReplaceAllString(text, " ")
	text = nonAlpha.ReplaceAllString(text, " ")

	fields := strings.Fields(text)
	out := make([]string, 0, len(fields))
	for _, w := range fields {
		if len(w) < 3 {
			continue
		}
		if _, skip := t.stop[w]; skip {
			continue
		}
		w = lemmatize(w)
		if len(w) < 3 {
			continue
		}
		out = append(out, w)
	}
	return out
}

// lemmatize applies light suffix stripping, enough to fold the common
// inflections of review vocabulary (crashes/crashing/crashed -> crash).
func lemmatize(w string) string {
	switch {
	case strings.HasSuffix(w, "sses"):
		return w[:len(w)-2]
	case hasAnySuffix(w, "shes", "ches", "xes", "zes") && len(w) > 4:
		return w[:len(w)-2]
	case strings.HasSuffix(w, "ies") && len(w) > 4:
		return w[:len(w)-3] + "y"
	case strings.HasSuffix(w, "ing") && len(w) > 5:
		return undouble(w[:len(w)-3])
	case strings.HasSuffix(w, "ed") && len(w) > 4 && !strings.HasSuffix(w, "eed"):
		return undouble(w[:len(w)-2])
	case strings.HasSuffix(w, "s") && !strings.HasSuffix(w, "ss") && !strings.HasSuffix(w, "us") && len(w) > 3:
		return w[:len(w)-1]
	default:
		return w
	}
}

func hasAnySuffix(w string, suffixes ...string) bool {
	for _, s := range suffixes {
		if strings.HasSuffix(w, s) {
			return true
		}
	}
	return false
}

func undouble(w string) string {
	n := len(w)
	if n >= 2 && w[n-1] == w[n-2] && !isVowel(w[n-1]) && w[n-1] != 's' && w[n-1] != 'l' {
		return w[:n-1]
	}
	return w
}

func isVowel(c byte) bool {
	switch c {
	case 'a', 'e', 'i', 'o', 'u':
		return true
	}
	return false
}
