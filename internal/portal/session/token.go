package session

import (
	"github.com/aquiroz/invoiceportal/internal/common"
	"github.com/aquiroz/invoiceportal/internal/portal/models"
	"github.com/golang-jwt/jwt/v5"
)

// markerClaims is the payload of the persisted session marker. It carries
// the sanitized account only; the secret is never written into a marker.
type markerClaims struct {
	jwt.RegisteredClaims
	AccountID  string      `json:"accountId"`
	Name       string      `json:"name"`
	Email      string      `json:"email"`
	DocumentID string      `json:"documentId"`
	Role       models.Role `json:"role"`
}

func generateMarker(account models.Account, secretKey []byte) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, markerClaims{
		AccountID:  account.ID,
		Name:       account.Name,
		Email:      account.Email,
		DocumentID: account.DocumentID,
		Role:       account.Role,
	})

	return token.SignedString(secretKey)
}

func parseMarker(tokenString string, secretKey []byte) (*markerClaims, error) {
	claims := &markerClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	})
	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, common.ErrInvalidToken
	}

	return claims, nil
}
