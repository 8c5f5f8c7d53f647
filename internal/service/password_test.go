package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSHA1Verifier(t *testing.T) {
	v := SHA1Verifier{}

	// sha1("admin")
	const adminDigest = "d033e22ae348aeb5660fc2140aec35850c4da997"

	t.Run("matching password", func(t *testing.T) {
		assert.True(t, v.Verify("admin", adminDigest))
	})

	t.Run("wrong password", func(t *testing.T) {
		assert.False(t, v.Verify("nimda", adminDigest))
	})

	t.Run("empty submitted against real digest", func(t *testing.T) {
		assert.False(t, v.Verify("", adminDigest))
	})

	t.Run("empty digest accepts anything", func(t *testing.T) {
		assert.True(t, v.Verify("whatever", ""))
		assert.True(t, v.Verify("", ""))
	})
}

func TestHashPassword(t *testing.T) {
	assert.Equal(t, "d033e22ae348aeb5660fc2140aec35850c4da997", HashPassword("admin"))
}
