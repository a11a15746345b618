package usecase

import (
	"testing"

	"github.com/stretchr/testify/require"

	bCtx "github.com/x-xyz/lendapi/base/ctx"
	"github.com/x-xyz/lendapi/domain"
)

func TestSignAndParseToken(t *testing.T) {
	ctx := bCtx.Background()
	auth := New("secret")

	token, err := auth.SignToken(ctx, domain.Address("0xABCD000000000000000000000000000000000001"))
	require.NoError(t, err)
	require.NotEmpty(t, token)

	address, err := auth.ParseToken(ctx, token)
	require.NoError(t, err)
	require.Equal(t, "0xabcd000000000000000000000000000000000001", address)
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	ctx := bCtx.Background()
	auth := New("secret")

	_, err := auth.ParseToken(ctx, "not-a-token")
	require.Error(t, err)
}

func TestParseTokenRejectsForeignSecret(t *testing.T) {
	ctx := bCtx.Background()

	token, err := New("secret-a").SignToken(ctx, domain.Address("0xabc"))
	require.NoError(t, err)

	_, err = New("secret-b").ParseToken(ctx, token)
	require.Error(t, err)
}
