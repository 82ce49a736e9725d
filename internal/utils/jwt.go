package utils

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/MKhiriev/go-recipe-keeper/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidTokenOptions = errors.New("invalid token options")
	ErrInvalidTokenSubject = errors.New("token subject is not a user id")
)

// TokenOptions holds the signing parameters shared by issuing and parsing.
type TokenOptions struct {
	Issuer   string
	SignKey  string
	Duration time.Duration
	// Leeway tolerates clock skew when checking exp and iat.
	Leeway time.Duration
}

func (o TokenOptions) validate() error {
	if o.Issuer == "" || o.SignKey == "" || o.Duration <= 0 {
		return ErrInvalidTokenOptions
	}
	return nil
}

// IssueUserToken signs an HS256 access token for userID. Each token gets a
// random jti so two tokens issued in the same second still differ.
func IssueUserToken(userID int64, opts TokenOptions) (models.Token, error) {
	if err := opts.validate(); err != nil {
		return models.Token{}, err
	}

	now := time.Now()
	claims := &models.Token{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    opts.Issuer,
			Subject:   strconv.FormatInt(userID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(opts.Duration)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(opts.SignKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error signing user token: %w", err)
	}

	return models.Token{Token: token, RegisteredClaims: claims.RegisteredClaims, SignedString: signed, UserID: userID}, nil
}

// ParseUserToken verifies raw and returns its claims with UserID filled.
// Only HS256 is accepted; exp is mandatory.
func ParseUserToken(raw string, opts TokenOptions) (models.Token, error) {
	claims := &models.Token{}
	token, err := jwt.ParseWithClaims(raw, claims, func(*jwt.Token) (any, error) {
		return []byte(opts.SignKey), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(opts.Issuer),
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
		jwt.WithLeeway(opts.Leeway),
	)
	if err != nil {
		return models.Token{}, fmt.Errorf("error parsing user token: %w", err)
	}

	userID, err := claims.GetUserID()
	if err != nil || userID <= 0 {
		return models.Token{}, ErrInvalidTokenSubject
	}

	claims.Token = token
	claims.SignedString = raw
	claims.UserID = userID
	return *claims, nil
}
