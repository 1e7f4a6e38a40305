// Package template substitutes named {placeholder} tokens in phrase text.
package template

import (
	"regexp"
	"strings"
	"sync"
)

// Separators configures the punctuation recognized as a leading separator when
// an empty substitution removes a placeholder. Both comma glyphs are included
// by default so one substitution pass serves base and target language text.
type Separators struct {
	Commas []rune
}

// Western recognizes only the ASCII comma.
var Western = Separators{Commas: []rune{','}}

// CJK additionally recognizes the full-width comma used in Chinese text.
var CJK = Separators{Commas: []rune{',', '，'}}

var (
	spaceRun = regexp.MustCompile(`\s+`)

	patternMu sync.Mutex
	patterns  = map[string]keyPatterns{}
)

type keyPatterns struct {
	comma *regexp.Regexp
	space *regexp.Regexp
	plain *regexp.Regexp
}

// Substitute replaces every {key} token in template with the matching value.
// Empty (post-trim) values remove the token together with one leading
// separator: a comma with surrounding whitespace, else a run of whitespace.
// The result has whitespace runs collapsed and ends trimmed, which makes the
// function idempotent. Both comma glyphs are recognized.
func Substitute(template string, values map[string]string) string {
	return SubstituteWith(CJK, template, values)
}

// SubstituteWith is Substitute with an explicit separator configuration.
func SubstituteWith(seps Separators, template string, values map[string]string) string {
	result := template
	for key, value := range values {
		p := patternsFor(seps, key)
		if strings.TrimSpace(value) == "" {
			result = p.comma.ReplaceAllString(result, "")
			result = p.space.ReplaceAllString(result, "")
			result = p.plain.ReplaceAllString(result, "")
			continue
		}
		result = p.plain.ReplaceAllLiteralString(result, value)
	}
	return strings.TrimSpace(spaceRun.ReplaceAllString(result, " "))
}

func patternsFor(seps Separators, key string) keyPatterns {
	id := string(seps.Commas) + "\x00" + key
	patternMu.Lock()
	defer patternMu.Unlock()
	if p, ok := patterns[id]; ok {
		return p
	}
	quoted := regexp.QuoteMeta(key)
	commas := regexp.QuoteMeta(string(seps.Commas))
	p := keyPatterns{
		comma: regexp.MustCompile(`\s*[` + commas + `]\s*\{` + quoted + `\}`),
		space: regexp.MustCompile(`\s+\{` + quoted + `\}`),
		plain: regexp.MustCompile(`\{` + quoted + `\}`),
	}
	patterns[id] = p
	return p
}
