package middleware

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/kisanbazaar/kisanbazaar-backend/api/responses"
	"github.com/kisanbazaar/kisanbazaar-backend/pkg/config"
	pkgerrors "github.com/kisanbazaar/kisanbazaar-backend/pkg/errors"
	"github.com/kisanbazaar/kisanbazaar-backend/pkg/logger"
	"github.com/kisanbazaar/kisanbazaar-backend/pkg/redis"
)

const maxRateLimitBodyBytes = 1 << 20

// AuthRateLimitPolicy describes the fixed-window limits applied to one
// credential endpoint. Email limits guard a single account, IP limits guard
// wide spraying from one source.
type AuthRateLimitPolicy struct {
	Scope      string
	Window     time.Duration
	EmailLimit int
	IPLimit    int
}

func LoginRateLimitPolicy(cfg config.AuthRateLimitConfig) AuthRateLimitPolicy {
	return AuthRateLimitPolicy{
		Scope:      "login",
		Window:     cfg.LoginWindow,
		EmailLimit: cfg.LoginEmailLimit,
		IPLimit:    cfg.LoginIPLimit,
	}
}

func RegisterRateLimitPolicy(cfg config.AuthRateLimitConfig) AuthRateLimitPolicy {
	return AuthRateLimitPolicy{
		Scope:      "register",
		Window:     cfg.RegisterWindow,
		EmailLimit: cfg.RegisterEmailLimit,
		IPLimit:    cfg.RegisterIPLimit,
	}
}

// AuthRateLimit throttles credential endpoints per client IP and per target
// email. On Redis failure requests pass through; auth availability wins over
// strict throttling.
func AuthRateLimit(store *redis.Client, policy AuthRateLimitPolicy, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if store == nil {
				next.ServeHTTP(w, r)
				return
			}

			ctx := r.Context()
			ip := clientIP(r)

			if policy.IPLimit > 0 && ip != "" {
				scope := fmt.Sprintf("%s:ip:%s", policy.Scope, hashValue(ip))
				allowed, _, err := store.FixedWindowAllow(ctx, scope, int64(policy.IPLimit), policy.Window)
				if err != nil {
					if logg != nil {
						logg.Warn(logg.WithField(ctx, "scope", scope), "rate limit check failed")
					}
				} else if !allowed {
					responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeRateLimit, "too many attempts, try again later"))
					return
				}
			}

			if policy.EmailLimit > 0 {
				email := extractEmail(r)
				if email != "" {
					scope := fmt.Sprintf("%s:email:%s", policy.Scope, hashValue(email))
					allowed, _, err := store.FixedWindowAllow(ctx, scope, int64(policy.EmailLimit), policy.Window)
					if err != nil {
						if logg != nil {
							logg.Warn(logg.WithField(ctx, "scope", scope), "rate limit check failed")
						}
					} else if !allowed {
						responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeRateLimit, "too many attempts, try again later"))
						return
					}
				}
			}

			next.ServeHTTP(w, r)
		})
	}
}

func clientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		parts := strings.Split(fwd, ",")
		ip := strings.TrimSpace(parts[0])
		if ip != "" {
			return ip
		}
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return strings.TrimSpace(r.RemoteAddr)
	}
	return host
}

// extractEmail peeks at the JSON body for the email field and restores the
// body for the downstream handler.
func extractEmail(r *http.Request) string {
	if r.Body == nil {
		return ""
	}
	raw, err := io.ReadAll(io.LimitReader(r.Body, maxRateLimitBodyBytes))
	_ = r.Body.Close()
	r.Body = io.NopCloser(bytes.NewReader(raw))
	if err != nil || len(raw) == 0 {
		return ""
	}

	var payload struct {
		Email string `json:"email"`
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return ""
	}
	return strings.ToLower(strings.TrimSpace(payload.Email))
}

func hashValue(value string) string {
	sum := sha256.Sum256([]byte(value))
	return hex.EncodeToString(sum[:8])
}
