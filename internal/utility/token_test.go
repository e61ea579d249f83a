package utility

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pno_restaurants/internal/common"
)

const testSecret = "test-secret"

func TestCreateAndParseToken(t *testing.T) {
	token, err := CreateToken(testSecret, "user-123", time.Hour)
	require.NoError(t, err)

	claims, err := ParseToken(testSecret, token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.UserID)
}

func TestParseToken_WrongSecret(t *testing.T) {
	token, err := CreateToken(testSecret, "user-123", time.Hour)
	require.NoError(t, err)

	_, err = ParseToken("other-secret", token)
	assert.True(t, errors.Is(err, common.ErrTokenInvalid))
}

func TestParseToken_Expired(t *testing.T) {
	token, err := CreateToken(testSecret, "user-123", -time.Minute)
	require.NoError(t, err)

	_, err = ParseToken(testSecret, token)
	assert.True(t, errors.Is(err, common.ErrTokenExpired))
}

func TestNonceRoundTrip(t *testing.T) {
	nonce, err := CreateNonce(testSecret, "save_restaurant_menus", "abc123", time.Hour)
	require.NoError(t, err)

	assert.NoError(t, VerifyNonce(testSecret, nonce, "save_restaurant_menus", "abc123"))
}

// Nonce chỉ hợp lệ cho đúng action và listing đã gắn lúc phát
func TestVerifyNonce_Mismatch(t *testing.T) {
	nonce, err := CreateNonce(testSecret, "save_restaurant_menus", "abc123", time.Hour)
	require.NoError(t, err)

	assert.True(t, errors.Is(VerifyNonce(testSecret, nonce, "save_restaurant_items", "abc123"), common.ErrNonceInvalid))
	assert.True(t, errors.Is(VerifyNonce(testSecret, nonce, "save_restaurant_menus", "other"), common.ErrNonceInvalid))
	assert.True(t, errors.Is(VerifyNonce("other-secret", nonce, "save_restaurant_menus", "abc123"), common.ErrNonceInvalid))
	assert.True(t, errors.Is(VerifyNonce(testSecret, "garbage", "save_restaurant_menus", "abc123"), common.ErrNonceInvalid))
}

func TestVerifyNonce_Expired(t *testing.T) {
	nonce, err := CreateNonce(testSecret, "save_restaurant_menus", "abc123", -time.Minute)
	require.NoError(t, err)

	assert.True(t, errors.Is(VerifyNonce(testSecret, nonce, "save_restaurant_menus", "abc123"), common.ErrNonceInvalid))
}
