package helper

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateReferenceNumber(t *testing.T) {
	ref := GenerateReferenceNumber("REF")
	assert.True(t, strings.HasPrefix(ref, "REF"))
	// prefix + 14-digit timestamp + 4 random digits
	assert.Len(t, ref, 3+14+4)
	for _, r := range ref[3:] {
		assert.True(t, r >= '0' && r <= '9', "ref body must be digits, got %q", ref)
	}
}

func TestGenerateReferenceNumber_DefaultPrefix(t *testing.T) {
	ref := GenerateReferenceNumber("")
	assert.True(t, strings.HasPrefix(ref, "REF"))
}
