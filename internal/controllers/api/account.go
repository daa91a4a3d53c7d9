package api

import (
	"net/http"

	"github.com/budget-tracker/backend/internal/auth"
	"github.com/budget-tracker/backend/internal/httputil"
	"github.com/gin-gonic/gin"
)

func newAccount(a auth.Account) Account {
	return Account{ID: a.ID, Email: a.Email}
}

// @Summary		Register an account
// @Description	Creates a new account. Email addresses are unique, the comparison is case insensitive.
// @Tags			Accounts
// @Accept			json
// @Produce		json
// @Success		201		{object}	AccountResponse
// @Failure		400		{object}	httputil.HTTPError
// @Failure		422		{object}	httputil.HTTPError
// @Failure		500		{object}	httputil.HTTPError
// @Param			account	body		RegisterRequest	true	"Account"
// @Router			/register [post]
func (co Controller) Register(c *gin.Context) {
	var data RegisterRequest
	if err := httputil.BindData(c, &data); err != nil {
		respondError(c, err)
		return
	}

	account, err := co.Credentials.Register(c.Request.Context(), data.Email, data.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, AccountResponse{Status: "account registered", Data: newAccount(account)})
}

// @Summary		Log in
// @Description	Exchanges email address and password for an access token
// @Tags			Accounts
// @Accept			json
// @Produce		json
// @Success		200			{object}	TokenResponse
// @Failure		400			{object}	httputil.HTTPError
// @Failure		401			{object}	httputil.HTTPError
// @Failure		422			{object}	httputil.HTTPError
// @Failure		500			{object}	httputil.HTTPError
// @Param			credentials	body		LoginRequest	true	"Credentials"
// @Router			/login [post]
func (co Controller) Login(c *gin.Context) {
	var data LoginRequest
	if err := httputil.BindData(c, &data); err != nil {
		respondError(c, err)
		return
	}

	token, err := co.Credentials.Authenticate(c.Request.Context(), data.Email, data.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, TokenResponse{
		AccessToken: token.AccessToken,
		TokenType:   token.TokenType,
		ExpiresAt:   token.ExpiresAt,
	})
}

// @Summary		Get the current account
// @Tags			Accounts
// @Produce		json
// @Security		BearerAuth
// @Success		200	{object}	AccountResponse
// @Failure		401	{object}	httputil.HTTPError
// @Router			/me [get]
func (co Controller) GetMe(c *gin.Context) {
	c.JSON(http.StatusOK, AccountResponse{Data: newAccount(auth.CurrentAccount(c))})
}
