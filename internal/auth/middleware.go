package auth

import (
	"errors"
	"net/http"
	"strings"

	"github.com/budget-tracker/backend/internal/httputil"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const contextKeyAccount = "auth-account"

var errAccountLookup = errors.New("an error occurred on the server during your request")

// Middleware rejects requests without a valid bearer token or whose
// account does not exist (anymore). For valid tokens, the account is
// stored in the context, see AccountID and CurrentAccount.
func (s *Service) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		scheme, token, ok := strings.Cut(header, " ")
		if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
			unauthorized(c, ErrUnauthorized)
			return
		}

		id, err := s.Verify(strings.TrimSpace(token))
		if err != nil {
			log.Debug().Str("request-id", requestid.Get(c)).Err(err).Msg("token rejected")
			unauthorized(c, ErrUnauthorized)
			return
		}

		account, err := s.store.AccountByID(c.Request.Context(), id)
		if errors.Is(err, ErrAccountNotFound) {
			unauthorized(c, ErrUnauthorized)
			return
		} else if err != nil {
			log.Error().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err.Error())
			httputil.NewError(c, http.StatusInternalServerError, errAccountLookup)
			c.Abort()
			return
		}

		c.Set(contextKeyAccount, account)
		c.Next()
	}
}

// CurrentAccount returns the authenticated account. The zero Account is
// returned if the request did not pass the Middleware.
func CurrentAccount(c *gin.Context) Account {
	v, ok := c.Get(contextKeyAccount)
	if !ok {
		return Account{}
	}

	account, _ := v.(Account)
	return account
}

// AccountID returns the ID of the authenticated account.
// It is uuid.Nil if the request did not pass the Middleware.
func AccountID(c *gin.Context) uuid.UUID {
	return CurrentAccount(c).ID
}

func unauthorized(c *gin.Context, err error) {
	c.Header("WWW-Authenticate", `Bearer realm="budget-tracker"`)
	httputil.NewError(c, http.StatusUnauthorized, err)
	c.Abort()
}
