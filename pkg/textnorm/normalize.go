// Package textnorm turns raw text into the canonical token stream used by the
// language model and the corrector: lowercased, stripped of URLs, punctuation
// and digit runs, with tokens rejoined by single spaces. Normalize is
// idempotent on its own output.
package textnorm

import (
	"regexp"
	"strings"
)

const punctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

var (
	urlPattern   = regexp.MustCompile(`[a-z][a-z0-9+.-]*://\S+`)
	digitPattern = regexp.MustCompile(`\d+`)
	tokenPattern = regexp.MustCompile(`\w+`)
)

type options struct {
	keepCase   bool
	keepURLs   bool
	keepPunct  bool
	keepDigits bool
	stopwords  map[string]struct{}
}

type Option func(*options)

// KeepCase disables lowercasing.
func KeepCase() Option {
	return func(o *options) { o.keepCase = true }
}

// KeepURLs disables URL stripping.
func KeepURLs() Option {
	return func(o *options) { o.keepURLs = true }
}

// KeepPunctuation disables punctuation stripping.
func KeepPunctuation() Option {
	return func(o *options) { o.keepPunct = true }
}

// KeepDigits disables digit-run stripping.
func KeepDigits() Option {
	return func(o *options) { o.keepDigits = true }
}

// DropStopwords removes the given stopwords after tokenization.
func DropStopwords(stopwords map[string]struct{}) Option {
	return func(o *options) { o.stopwords = stopwords }
}

func Normalize(text string, opts ...Option) string {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	if !o.keepCase {
		text = strings.ToLower(text)
	}
	if !o.keepURLs {
		text = urlPattern.ReplaceAllString(text, "")
	}
	if !o.keepPunct {
		text = strings.Map(func(r rune) rune {
			if strings.ContainsRune(punctuation, r) {
				return -1
			}
			return r
		}, text)
	}
	if !o.keepDigits {
		text = digitPattern.ReplaceAllString(text, "")
	}

	tokens := tokenPattern.FindAllString(text, -1)
	if o.stopwords != nil {
		kept := tokens[:0]
		for _, token := range tokens {
			if _, ok := o.stopwords[token]; !ok {
				kept = append(kept, token)
			}
		}
		tokens = kept
	}

	return strings.Join(tokens, " ")
}
