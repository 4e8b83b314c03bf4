// Copyright (c) 2026 Melodee. All rights reserved.

// Package normalize produces the comparison-safe forms of free-text names
// stored alongside every named catalog entity.
//
// # Forms
//
// Name produces the case/diacritic-folded form used for fuzzy lookup and
// dedup candidate generation. It is deliberately lossy and never a
// uniqueness key: distinct names may normalize identically.
//
// SortName produces the locale-aware sort key, stripping leading articles
// ("The Beatles" sorts under B). The article list comes from the
// processing.ignoredarticles setting so deployments can localize it.
package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// foldDiacritics decomposes to NFD, drops combining marks, recomposes.
var foldDiacritics = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Name returns the normalized comparison form of a name: diacritics folded,
// upper-cased, punctuation removed and whitespace collapsed. The empty
// string normalizes to the empty string.
func Name(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}

	folded, _, err := transform.String(foldDiacritics, s)
	if err != nil {
		// Fold failure leaves the input untouched; upper-casing below still
		// gives a usable comparison form.
		folded = s
	}

	var b strings.Builder
	b.Grow(len(folded))
	lastSpace := true
	for _, r := range folded {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(unicode.ToUpper(r))
			lastSpace = false
		case unicode.IsSpace(r):
			if !lastSpace {
				b.WriteRune(' ')
				lastSpace = true
			}
		default:
			// Punctuation is dropped entirely so "AC/DC" and "ACDC" meet.
		}
	}

	return strings.TrimSpace(b.String())
}

// SortName returns the sort key for a name, stripping a single leading
// article from the given list (matched case-insensitively against the first
// word). A name that is nothing but an article is returned unchanged.
func SortName(s string, ignoredArticles []string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}

	first, rest, found := strings.Cut(s, " ")
	if !found {
		return s
	}

	rest = strings.TrimSpace(rest)
	if rest == "" {
		return s
	}

	for _, article := range ignoredArticles {
		if strings.EqualFold(first, article) {
			return rest
		}
	}

	return s
}
