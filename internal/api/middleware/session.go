package middleware

import (
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// CookieName is the browser session cookie. Its value is a signed HS256
// JWT carrying only the random session ID. The credential itself never
// leaves the gateway.
const CookieName = "admin_session"

const ctxKeySessionID = "session_id"

// Cookies issues and validates the signed session cookie.
type Cookies struct {
	secret []byte
	ttl    time.Duration
}

// NewCookies creates a cookie manager. ttl bounds the cookie's lifetime;
// it matches the secondary token store expiry so neither outlives the
// other.
func NewCookies(secret string, ttl time.Duration) *Cookies {
	if ttl <= 0 {
		ttl = 7 * 24 * time.Hour
	}
	return &Cookies{secret: []byte(secret), ttl: ttl}
}

// Middleware parses the session cookie on every request and, when the
// signature and expiry check out, stores the session ID in the echo
// context. An invalid or missing cookie is not an error here; the auth
// gate decides what an absent session means per route.
func (k *Cookies) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if sid, ok := k.read(c); ok {
				c.Set(ctxKeySessionID, sid)
			}
			return next(c)
		}
	}
}

// NewSessionID returns a fresh random session ID. Generating the ID is
// separate from writing the cookie so login can authenticate first and
// leave the browser's existing cookie alone on failure.
func NewSessionID() string {
	return uuid.NewString()
}

// Issue signs sid into the session cookie. Called only after a
// successful login.
func (k *Cookies) Issue(c echo.Context, sid string) error {
	claims := jwt.MapClaims{
		"sid": sid,
		"exp": time.Now().Add(k.ttl).Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(k.secret)
	if err != nil {
		return err
	}

	c.SetCookie(&http.Cookie{
		Name:     CookieName,
		Value:    signed,
		Path:     "/",
		MaxAge:   int(k.ttl.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// Clear expires the session cookie.
func (k *Cookies) Clear(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func (k *Cookies) read(c echo.Context) (string, bool) {
	cookie, err := c.Cookie(CookieName)
	if err != nil || cookie.Value == "" {
		return "", false
	}

	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(cookie.Value, claims, func(token *jwt.Token) (interface{}, error) {
		if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return k.secret, nil
	})
	if err != nil || !tkn.Valid {
		return "", false
	}

	sid, _ := claims["sid"].(string)
	return sid, sid != ""
}

// SessionID returns the session ID parsed by Middleware, or empty when
// the request carried no valid cookie.
func SessionID(c echo.Context) string {
	sid, _ := c.Get(ctxKeySessionID).(string)
	return sid
}
