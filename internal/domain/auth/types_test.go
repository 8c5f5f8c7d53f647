package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUser_RequiresPassword(t *testing.T) {
	assert.True(t, User{Username: "admin", PasswordDigest: "d033e22ae348aeb5660fc2140aec35850c4da997"}.RequiresPassword())
	assert.False(t, User{Username: "bootstrap"}.RequiresPassword())
}
