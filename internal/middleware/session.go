package middleware

import (
	"errors"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// SessionCookie names the cookie carrying the signed admin session token.
const SessionCookie = "admin_session"

const sessionIssuer = "meat-donation-service"

// AdminSubject is the single principal the access gate knows about.
const AdminSubject = "admin"

// SignSession issues a signed, expiring admin session token.
func SignSession(secret string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   AdminSubject,
		Issuer:    sessionIssuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// VerifySession validates a session token's signature, issuer, and expiry.
func VerifySession(secret, tokenString string) error {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil {
		return err
	}
	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid {
		return errors.New("invalid session token")
	}
	if claims.Issuer != sessionIssuer || claims.Subject != AdminSubject {
		return errors.New("invalid session claims")
	}
	return nil
}

// AdminGate protects admin-only views: requests without a valid session
// cookie are redirected to the login page.
func AdminGate(secret, loginPath string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(SessionCookie)
			if err != nil || VerifySession(secret, cookie.Value) != nil {
				http.Redirect(w, r, loginPath, http.StatusFound)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
