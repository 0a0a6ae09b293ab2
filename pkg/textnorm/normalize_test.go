package textnorm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	t.Run("lowercase and punctuation", func(t *testing.T) {
		got := Normalize("Hello, World! It's me.")
		assert.Equal(t, "hello world its me", got)
	})

	t.Run("strips urls", func(t *testing.T) {
		got := Normalize("see https://example.com/page?q=1 for details")
		assert.Equal(t, "see for details", got)
	})

	t.Run("strips digit runs", func(t *testing.T) {
		got := Normalize("route 66 goes 1000 miles")
		assert.Equal(t, "route goes miles", got)
	})

	t.Run("collapses whitespace", func(t *testing.T) {
		got := Normalize("the   cat\t\nsat")
		assert.Equal(t, "the cat sat", got)
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Equal(t, "", Normalize(""))
		assert.Equal(t, "", Normalize("123 !!! 456"))
	})

	t.Run("idempotent", func(t *testing.T) {
		once := Normalize("The QUICK brown-fox, jumped over https://a.b 42 times!")
		assert.Equal(t, once, Normalize(once))
	})

	t.Run("stopwords", func(t *testing.T) {
		stop := map[string]struct{}{"the": {}, "a": {}}
		got := Normalize("the cat sat on a mat", DropStopwords(stop))
		assert.Equal(t, "cat sat on mat", got)
	})

	t.Run("keep options", func(t *testing.T) {
		got := Normalize("Cat 9", KeepCase(), KeepDigits())
		assert.Equal(t, "Cat 9", got)
	})
}
