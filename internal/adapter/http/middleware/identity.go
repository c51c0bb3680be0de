package middleware

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"retifica_os/internal/config"
	"retifica_os/internal/domain/entities"
	"retifica_os/internal/infrastructure/logger"
	"retifica_os/internal/usecase/interfaces"
	"retifica_os/pkg"

	jwtmiddleware "github.com/auth0/go-jwt-middleware/v2"
	"github.com/auth0/go-jwt-middleware/v2/jwks"
	"github.com/auth0/go-jwt-middleware/v2/validator"
	"github.com/gin-gonic/gin"
)

const (
	// EmployeeHeader carries the acting employee when token validation is disabled.
	EmployeeHeader = "X-Employee-ID"

	userIDKey  = "user_id"
	claimsKey  = "validated_claims"
	sessionKey = "session"
)

// CustomClaims holds the non-registered claims we read from the access token.
type CustomClaims struct {
	Scope string `json:"scope"`
}

func (c CustomClaims) Validate(ctx context.Context) error {
	return nil
}

// Authenticate picks the token validator when Auth0 is configured and the
// dev header otherwise.
func Authenticate(cfg *config.Config) (gin.HandlerFunc, error) {
	if !cfg.AuthEnabled() {
		logger.L().Warn("[auth][middleware] AUTH0_DOMAIN not set, trusting " + EmployeeHeader)
		return DevIdentity(), nil
	}
	return EnsureValidToken(cfg.Auth0Domain, cfg.Auth0Audience)
}

// EnsureValidToken validates the bearer JWT against the tenant's JWKS and
// stores its subject as the user id.
func EnsureValidToken(domain, audience string) (gin.HandlerFunc, error) {
	issuerURL, err := url.Parse("https://" + domain + "/")
	if err != nil {
		return nil, fmt.Errorf("parse issuer url: %w", err)
	}

	provider := jwks.NewCachingProvider(issuerURL, 5*time.Minute)

	jwtValidator, err := validator.New(
		provider.KeyFunc,
		validator.RS256,
		issuerURL.String(),
		[]string{audience},
		validator.WithCustomClaims(
			func() validator.CustomClaims {
				return &CustomClaims{}
			},
		),
		validator.WithAllowedClockSkew(time.Minute),
	)
	if err != nil {
		return nil, fmt.Errorf("set up jwt validator: %w", err)
	}

	errorHandler := func(w http.ResponseWriter, r *http.Request, err error) {
		logger.L().Info("[auth][middleware] invalid token", logger.ErrorF(err))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		if _, writeErr := w.Write([]byte(`{"success":false,"error":{"code":"INVALID_TOKEN","message":"Failed to validate JWT."}}`)); writeErr != nil {
			logger.L().Warn("[auth][middleware] write error response", logger.ErrorF(writeErr))
		}
	}

	mw := jwtmiddleware.New(
		jwtValidator.ValidateToken,
		jwtmiddleware.WithErrorHandler(errorHandler),
	)

	return func(c *gin.Context) {
		validated := false
		var handler http.HandlerFunc = func(w http.ResponseWriter, r *http.Request) {
			token, ok := r.Context().Value(jwtmiddleware.ContextKey{}).(*validator.ValidatedClaims)
			if !ok {
				return
			}
			validated = true
			c.Set(userIDKey, token.RegisteredClaims.Subject)
			c.Set(claimsKey, token)
		}

		mw.CheckJWT(handler).ServeHTTP(c.Writer, c.Request)
		if !validated {
			c.Abort()
			return
		}
		c.Next()
	}, nil
}

// DevIdentity trusts the employee id sent in EmployeeHeader.
func DevIdentity() gin.HandlerFunc {
	return func(c *gin.Context) {
		if id := strings.TrimSpace(c.GetHeader(EmployeeHeader)); id != "" {
			c.Set(userIDKey, id)
		}
		c.Next()
	}
}

// Session resolves the authenticated user against the roster. Unknown or
// inactive employees are rejected before any handler runs.
func Session(employees interfaces.IEmployeeRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString(userIDKey)
		if userID == "" {
			abort(c, pkg.NewDomainErrorSimple("UNAUTHENTICATED", "missing employee identity", http.StatusUnauthorized))
			return
		}

		emp, err := employees.GetByID(c.Request.Context(), userID)
		if err != nil {
			logger.L().Error("[auth][middleware] roster lookup failed", logger.String("employee_id", userID), logger.ErrorF(err))
			abort(c, pkg.NewDomainError("INTERNAL_ERROR", "could not resolve employee", err, http.StatusInternalServerError))
			return
		}
		if emp.ID == "" || !emp.Active {
			abort(c, pkg.NewDomainErrorSimple("UNKNOWN_EMPLOYEE", "employee not found or inactive", http.StatusUnauthorized))
			return
		}

		c.Set(sessionKey, entities.Session{
			UserID:      emp.ID,
			Name:        emp.Name,
			Role:        emp.Role,
			Specialties: emp.Specialties,
		})
		c.Next()
	}
}

// CurrentSession returns the session stored by Session.
func CurrentSession(c *gin.Context) (entities.Session, bool) {
	v, ok := c.Get(sessionKey)
	if !ok {
		return entities.Session{}, false
	}
	sess, ok := v.(entities.Session)
	return sess, ok
}

// SetSession stores sess on the context; handler tests use it in place of Session.
func SetSession(sess entities.Session) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(sessionKey, sess)
		c.Next()
	}
}

func abort(c *gin.Context, appErr *pkg.AppError) {
	c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
}
