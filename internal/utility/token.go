package utility

import (
	"fmt"
	"time"

	"github.com/dgrijalva/jwt-go"

	"pno_restaurants/internal/common"
)

// JwtClaims chứa data được mã hóa trong JWT token đăng nhập.
type JwtClaims struct {
	UserID string `json:"userId"`
	jwt.StandardClaims
}

// NonceClaims chứa data của nonce bảo vệ form submission.
// Nonce gắn với một action và một listing cụ thể, hết hạn theo cấu hình.
type NonceClaims struct {
	Action    string `json:"action"`
	ListingID string `json:"listingId"`
	jwt.StandardClaims
}

// CreateToken tạo JWT token đăng nhập cho user
func CreateToken(secret string, userID string, lifetime time.Duration) (string, error) {
	claims := JwtClaims{
		UserID: userID,
		StandardClaims: jwt.StandardClaims{
			IssuedAt:  time.Now().Unix(),
			ExpiresAt: time.Now().Add(lifetime).Unix(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// ParseToken xác thực và giải mã JWT token đăng nhập.
// Trả về common.ErrTokenExpired nếu token hết hạn, common.ErrTokenInvalid nếu sai chữ ký/format.
func ParseToken(secret string, tokenStr string) (*JwtClaims, error) {
	claims := &JwtClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		if ve, ok := err.(*jwt.ValidationError); ok && ve.Errors&jwt.ValidationErrorExpired != 0 {
			return nil, common.ErrTokenExpired
		}
		return nil, common.ErrTokenInvalid
	}
	if !token.Valid {
		return nil, common.ErrTokenInvalid
	}
	return claims, nil
}

// CreateNonce tạo nonce cho một form action trên một listing.
// Nonce được nhúng vào form render ra và phải nộp kèm khi submit.
func CreateNonce(secret string, action string, listingID string, lifetime time.Duration) (string, error) {
	claims := NonceClaims{
		Action:    action,
		ListingID: listingID,
		StandardClaims: jwt.StandardClaims{
			IssuedAt:  time.Now().Unix(),
			ExpiresAt: time.Now().Add(lifetime).Unix(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign nonce: %w", err)
	}
	return signed, nil
}

// VerifyNonce kiểm tra nonce hợp lệ cho đúng action và listing.
// Mọi trường hợp sai (hết hạn, sai chữ ký, sai action, sai listing) đều trả về common.ErrNonceInvalid.
func VerifyNonce(secret string, nonce string, action string, listingID string) error {
	claims := &NonceClaims{}
	token, err := jwt.ParseWithClaims(nonce, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return common.ErrNonceInvalid
	}
	if claims.Action != action || claims.ListingID != listingID {
		return common.ErrNonceInvalid
	}
	return nil
}
