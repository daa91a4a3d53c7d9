package models

import (
	"context"
	"errors"

	"github.com/budget-tracker/backend/internal/auth"
	"github.com/google/uuid"
)

// AccountStore stores the accounts of the credential service as users in DB.
type AccountStore struct{}

var _ auth.Store = AccountStore{}

func (AccountStore) CreateAccount(ctx context.Context, account auth.Account) (auth.Account, error) {
	user := User{
		DefaultModel: DefaultModel{ID: account.ID},
		Email:        account.Email,
		PasswordHash: account.PasswordHash,
		IsActive:     true,
	}

	err := DB.WithContext(ctx).Create(&user).Error
	if errors.Is(err, ErrEmailNotUnique) {
		return auth.Account{}, auth.ErrDuplicateAccount
	} else if err != nil {
		return auth.Account{}, err
	}

	return user.account(), nil
}

func (AccountStore) AccountByEmail(ctx context.Context, email string) (auth.Account, error) {
	return findAccount(ctx, "email = ?", email)
}

func (AccountStore) AccountByID(ctx context.Context, id uuid.UUID) (auth.Account, error) {
	return findAccount(ctx, "id = ?", id)
}

func findAccount(ctx context.Context, query string, arg any) (auth.Account, error) {
	var user User
	err := DB.WithContext(ctx).
		Where(query, arg).
		Where("is_active = ?", true).
		First(&user).Error

	if errors.Is(err, ErrResourceNotFound) {
		return auth.Account{}, auth.ErrAccountNotFound
	} else if err != nil {
		return auth.Account{}, err
	}

	return user.account(), nil
}

func (u User) account() auth.Account {
	return auth.Account{
		ID:           u.ID,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
	}
}
