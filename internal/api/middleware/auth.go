package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/elibrary/library-system/internal/api/metrics"
	"github.com/elibrary/library-system/internal/core/domain"
	"github.com/elibrary/library-system/internal/core/ports"
)

// Context keys set by the authentication gate.
const (
	CtxUsername = "username"
	CtxRoles    = "roles"
	CtxIdentity = "identity"
)

// Auth is the authentication gate. It runs ahead of any role check and
// attaches the authenticated identity to the request context when a valid
// bearer token is presented.
//
// Failure handling is asymmetric on purpose: a missing or invalid token
// lets the request continue anonymously (role checks downstream will reject
// it if the operation needs one), while an expired token hard-fails with a
// re-authenticate signal so clients can tell a stale session apart from a
// missing one.
func Auth(codec ports.TokenCodec, resolver ports.IdentityResolver, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw, ok := bearerToken(c.Request().Header.Get("Authorization"))
			if !ok {
				return next(c)
			}

			subject, err := codec.Verify(raw)
			if err != nil {
				if err == domain.ErrTokenExpired {
					metrics.TokenVerificationsTotal.WithLabelValues("expired").Inc()
					return echo.NewHTTPError(http.StatusUnauthorized, "session expired, please log in again")
				}
				metrics.TokenVerificationsTotal.WithLabelValues("invalid").Inc()
				log.Debug().Str("path", c.Path()).Msg("discarding invalid bearer token")
				return next(c)
			}
			metrics.TokenVerificationsTotal.WithLabelValues("valid").Inc()

			// Idempotent attachment: at most one identity per request.
			if c.Get(CtxIdentity) != nil {
				return next(c)
			}

			user, err := resolver.LoadByUsername(c.Request().Context(), subject)
			if err != nil {
				if err == domain.ErrUserNotFound {
					log.Debug().Str("subject", subject).Msg("token subject no longer exists")
					return next(c)
				}
				return err
			}

			c.Set(CtxUsername, user.Username)
			c.Set(CtxRoles, domain.RolesFor(user))
			c.Set(CtxIdentity, user)

			return next(c)
		}
	}
}

// bearerToken extracts the credential from an Authorization header. The
// second return is false when the header is absent or not a bearer scheme.
func bearerToken(header string) (string, bool) {
	if header == "" {
		return "", false
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}
