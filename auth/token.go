// Package auth contains the session token codec and the identity provider
// adapter.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/spf13/viper"
)

var (
	ErrTokenInvalid = errors.New("session token invalid")
	ErrTokenExpired = errors.New("session token expired")
)

const (
	// LongTTL is used for the token issued at first social sign-in.
	LongTTL = 30 * 24 * time.Hour

	// ShortTTL is used for every re-issued token (verify, phone update,
	// register-or-update).
	ShortTTL = 24 * time.Hour
)

// Claims are the identity fields embedded in a session token. They may go
// stale after issuance; every mutating profile operation re-issues a fresh
// token instead of invalidating old ones.
type Claims struct {
	Email         string `json:"userEmail"`
	Name          string `json:"userName"`
	Picture       string `json:"userPicture"`
	ContactNumber string `json:"contactNumber"`
}

// IssueToken signs the claims with the process-wide secret.
func IssueToken(cl *Claims, ttl time.Duration) (string, error) {
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"userEmail":     cl.Email,
		"userName":      cl.Name,
		"userPicture":   cl.Picture,
		"contactNumber": cl.ContactNumber,
		"iat":           time.Now().Unix(),
		"exp":           time.Now().Add(ttl).Unix(),
	})

	return t.SignedString([]byte(viper.GetString("jwt.secret")))
}

// DecodeToken verifies the signature and expiry and returns the embedded
// claims. It fails closed: anything other than a well-formed, unexpired token
// signed with the current secret comes back as ErrTokenInvalid or
// ErrTokenExpired.
func DecodeToken(token string) (*Claims, error) {
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (any, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, ErrTokenInvalid
		}

		return []byte(viper.GetString("jwt.secret")), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}

		return nil, ErrTokenInvalid
	}

	mc, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrTokenInvalid
	}

	email, _ := mc["userEmail"].(string)
	if email == "" {
		return nil, ErrTokenInvalid
	}

	name, _ := mc["userName"].(string)
	picture, _ := mc["userPicture"].(string)
	contact, _ := mc["contactNumber"].(string)

	return &Claims{
		Email:         email,
		Name:          name,
		Picture:       picture,
		ContactNumber: contact,
	}, nil
}
