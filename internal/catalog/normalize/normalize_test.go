package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain ascii", "Boards of Canada", "BOARDS OF CANADA"},
		{"diacritics folded", "Björk", "BJORK"},
		{"accents folded", "Céline Dion", "CELINE DION"},
		{"punctuation dropped", "AC/DC", "ACDC"},
		{"apostrophe dropped", "Guns N' Roses", "GUNS N ROSES"},
		{"whitespace collapsed", "  The   Beatles  ", "THE BEATLES"},
		{"digits kept", "Blink-182", "BLINK182"},
		{"empty", "", ""},
		{"only punctuation", "!!!", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Name(tt.input))
		})
	}
}

func TestNameCollisionsAreExpected(t *testing.T) {
	// Distinct names may fold to the same form; that is the point of the
	// normalized column being non-unique.
	assert.Equal(t, Name("Björk"), Name("Bjork"))
	assert.Equal(t, Name("AC/DC"), Name("ACDC"))
}

func TestSortName(t *testing.T) {
	articles := []string{"THE", "EL", "LA", "LOS", "LAS", "LE", "LES"}

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"strips the", "The Beatles", "Beatles"},
		{"strips el", "El Guincho", "Guincho"},
		{"case-insensitive match", "the Kinks", "Kinks"},
		{"no article", "Boards of Canada", "Boards of Canada"},
		{"article only", "The", "The"},
		{"article mid-name left alone", "Florence + The Machine", "Florence + The Machine"},
		{"single word", "Radiohead", "Radiohead"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SortName(tt.input, articles))
		})
	}
}

func TestSortNameNoArticles(t *testing.T) {
	assert.Equal(t, "The Beatles", SortName("The Beatles", nil))
}
