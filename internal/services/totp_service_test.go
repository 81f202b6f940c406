package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateRandomCode(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		code := generateRandomCode(backupCodeLength)
		assert.Len(t, code, backupCodeLength)

		// Ambiguous characters are excluded from the charset
		for _, c := range "IO01" {
			assert.False(t, strings.ContainsRune(code, c), "code %q contains ambiguous char %c", code, c)
		}
		seen[code] = true
	}

	// 50 draws from a 32^8 space colliding would mean the generator is broken
	assert.Greater(t, len(seen), 45)
}
