package models_test

import (
	"context"

	"github.com/budget-tracker/backend/internal/auth"
	"github.com/budget-tracker/backend/internal/models"
	"github.com/google/uuid"
)

func (suite *TestSuiteStandard) TestAccountStore() {
	store := models.AccountStore{}
	id := uuid.New()

	created, err := store.CreateAccount(context.Background(), auth.Account{ID: id, Email: "jane@example.com", PasswordHash: []byte("hash")})
	suite.Require().Nil(err)
	suite.Assert().Equal(id, created.ID)

	byEmail, err := store.AccountByEmail(context.Background(), "jane@example.com")
	suite.Require().Nil(err)
	suite.Assert().Equal(id, byEmail.ID)
	suite.Assert().Equal([]byte("hash"), byEmail.PasswordHash)

	byID, err := store.AccountByID(context.Background(), id)
	suite.Require().Nil(err)
	suite.Assert().Equal("jane@example.com", byID.Email)
}

func (suite *TestSuiteStandard) TestAccountStoreDuplicate() {
	store := models.AccountStore{}

	_, err := store.CreateAccount(context.Background(), auth.Account{ID: uuid.New(), Email: "jane@example.com", PasswordHash: []byte("hash")})
	suite.Require().Nil(err)

	_, err = store.CreateAccount(context.Background(), auth.Account{ID: uuid.New(), Email: "jane@example.com", PasswordHash: []byte("other")})
	suite.Assert().ErrorIs(err, auth.ErrDuplicateAccount)

	var count int64
	suite.Require().Nil(models.DB.Model(&models.User{}).Count(&count).Error)
	suite.Assert().Equal(int64(1), count)
}

func (suite *TestSuiteStandard) TestAccountStoreNotFound() {
	store := models.AccountStore{}

	_, err := store.AccountByEmail(context.Background(), "nobody@example.com")
	suite.Assert().ErrorIs(err, auth.ErrAccountNotFound)

	_, err = store.AccountByID(context.Background(), uuid.New())
	suite.Assert().ErrorIs(err, auth.ErrAccountNotFound)
}

func (suite *TestSuiteStandard) TestAccountStoreInactive() {
	user := suite.createTestUser("inactive@example.com")
	suite.Require().Nil(models.DB.Model(&user).Update("is_active", false).Error)

	_, err := models.AccountStore{}.AccountByID(context.Background(), user.ID)
	suite.Assert().ErrorIs(err, auth.ErrAccountNotFound)
}

func (suite *TestSuiteStandard) TestAccountStoreWithService() {
	service, err := auth.New(models.AccountStore{}, []byte("a-test-secret-that-is-long-enough-for-hs256"), auth.WithCost(4))
	suite.Require().Nil(err)

	account, err := service.Register(context.Background(), "Jane@Example.com", "correct horse")
	suite.Require().Nil(err)

	token, err := service.Authenticate(context.Background(), "jane@example.com", "correct horse")
	suite.Require().Nil(err)

	id, err := service.Verify(token.AccessToken)
	suite.Require().Nil(err)
	suite.Assert().Equal(account.ID, id)
}
