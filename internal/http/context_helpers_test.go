package httpx

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	domainauth "github.com/anstylian/petclinic/internal/domain/auth"
)

func TestUserContextRoundTrip(t *testing.T) {
	user := &domainauth.User{ID: 1, Username: "admin"}

	ctx := SetUserInContext(context.Background(), user)
	got, ok := GetUserFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, user, got)
}

func TestGetUserFromEmptyContext(t *testing.T) {
	got, ok := GetUserFromContext(context.Background())
	assert.False(t, ok)
	assert.Nil(t, got)
}

func TestSetNilUserIsNoOp(t *testing.T) {
	ctx := context.Background()
	assert.Equal(t, ctx, SetUserInContext(ctx, nil))
}
