package token

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerate(t *testing.T) {
	code, err := Generate(6)
	assert.NoError(t, err)
	assert.Equal(t, 6, len(code))

	for _, c := range code {
		assert.True(t, strings.ContainsRune(alphabet, c))
	}

	code2, err := Generate(6)
	assert.NoError(t, err)
	assert.NotEqual(t, code, code2)
}
