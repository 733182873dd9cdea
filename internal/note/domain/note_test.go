package domain

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestDisplayTitlePrefersTitle(t *testing.T) {
	n := &Note{Title: "Renovation ideas", Content: "long content"}
	assert.Equal(t, "Renovation ideas", n.DisplayTitle())
}

func TestDisplayTitleShortContent(t *testing.T) {
	n := &Note{Content: "short thought"}
	assert.Equal(t, "short thought", n.DisplayTitle())
}

func TestDisplayTitleTruncatesLongContent(t *testing.T) {
	n := &Note{Content: strings.Repeat("a", 80)}
	got := n.DisplayTitle()
	assert.Equal(t, strings.Repeat("a", 50)+"...", got)
}

func TestDisplayTitleTruncatesByRunes(t *testing.T) {
	// multi-byte content must not be split mid-rune
	n := &Note{Content: strings.Repeat("я", 80)}
	got := n.DisplayTitle()
	assert.True(t, utf8.ValidString(got))
	assert.Equal(t, strings.Repeat("я", 50)+"...", got)
}
