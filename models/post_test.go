package models

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPreviewLeavesShortBodiesAlone(t *testing.T) {
	for _, body := range []string{"", "short", strings.Repeat("a", 200)} {
		post := Post{Title: "t", Body: body}
		assert.Equal(t, body, post.Preview().Body)
	}
}

func TestPreviewTruncatesLongBodies(t *testing.T) {
	post := Post{Title: "t", Body: strings.Repeat("a", 201)}

	preview := post.Preview()
	assert.Equal(t, strings.Repeat("a", 200)+"...", preview.Body)
	assert.Len(t, []rune(preview.Body), 203)

	// the original is untouched
	assert.Len(t, post.Body, 201)
}

func TestPreviewCountsRunesNotBytes(t *testing.T) {
	post := Post{Title: "t", Body: strings.Repeat("é", 250)}

	preview := post.Preview()
	assert.Equal(t, strings.Repeat("é", 200)+"...", preview.Body)
}
