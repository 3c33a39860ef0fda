package cookie

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Yanolja-Travel-Innovation-2025/backend/internal/pkg/config"
)

const AccessTokenCookieName = "access_token"

var sameSiteModes = map[string]http.SameSite{
	"strict": http.SameSiteStrictMode,
	"lax":    http.SameSiteLaxMode,
	"none":   http.SameSiteNoneMode,
}

// SetAccessTokenCookie stores the token as an HttpOnly cookie that lives as long as the token.
func SetAccessTokenCookie(c *gin.Context, cfg config.CookieConfig, accessToken string, expiry time.Duration) {
	write(c, cfg, accessToken, int(expiry.Seconds()))
}

func ClearAccessTokenCookie(c *gin.Context, cfg config.CookieConfig) {
	write(c, cfg, "", -1)
}

// GetAccessToken returns "" when the cookie is absent.
func GetAccessToken(c *gin.Context) string {
	token, _ := c.Cookie(AccessTokenCookieName)
	return token
}

func write(c *gin.Context, cfg config.CookieConfig, value string, maxAge int) {
	c.SetSameSite(sameSite(cfg.SameSite))
	c.SetCookie(AccessTokenCookieName, value, maxAge, "/", cfg.Domain, cfg.Secure, true)
}

// sameSite falls back to Lax for unknown values.
func sameSite(mode string) http.SameSite {
	if m, ok := sameSiteModes[strings.ToLower(mode)]; ok {
		return m
	}
	return http.SameSiteLaxMode
}
