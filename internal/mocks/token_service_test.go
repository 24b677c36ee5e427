package mocks_test

import (
	"context"
	"testing"

	"github.com/ntua-el20123/fridge-mate-app/internal/mocks"
	"github.com/ntua-el20123/fridge-mate-app/internal/service/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockTokenService(t *testing.T) {
	t.Parallel()

	m := &mocks.MockTokenService{Token: "tok", Claims: &auth.Claims{Subject: "client"}}

	token, err := m.GenerateToken(context.Background(), "client")
	require.NoError(t, err)
	assert.Equal(t, "tok", token)

	claims, err := m.ValidateToken(context.Background(), "tok")
	require.NoError(t, err)
	assert.Equal(t, "client", claims.Subject)

	_, err = m.ValidateToken(context.Background(), "other")
	assert.ErrorIs(t, err, auth.ErrInvalidToken)

	m.ValidateErr = auth.ErrExpiredToken
	_, err = m.ValidateToken(context.Background(), "tok")
	assert.ErrorIs(t, err, auth.ErrExpiredToken)
}
