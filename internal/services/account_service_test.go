package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weekplan/internal/models/db_models"
	"weekplan/internal/models/request_models"
	"weekplan/internal/services"
	"weekplan/pkg/utils"
)

type fakeAccountRepo struct {
	accounts []db_models.Account
}

func (f *fakeAccountRepo) Insert(_ context.Context, account *db_models.Account) error {
	if account.ID == uuid.Nil {
		account.ID = uuid.New()
	}
	f.accounts = append(f.accounts, *account)
	return nil
}

func (f *fakeAccountRepo) FindById(_ context.Context, id uuid.UUID) (*db_models.Account, error) {
	for _, a := range f.accounts {
		if a.ID == id {
			return &a, nil
		}
	}
	return nil, nil
}

func (f *fakeAccountRepo) FindByEmail(_ context.Context, email string) (*db_models.Account, error) {
	for _, a := range f.accounts {
		if a.Email == email {
			return &a, nil
		}
	}
	return nil, nil
}

func (f *fakeAccountRepo) UserExists(_ context.Context, id uuid.UUID) (bool, error) {
	account, _ := f.FindById(context.Background(), id)
	return account != nil, nil
}

func TestCreateAccount_DuplicateEmail(t *testing.T) {
	repo := &fakeAccountRepo{}
	svc := services.NewAccountService(repo)

	signup := request_models.SignUpRequest{
		DisplayName: "Alex",
		Email:       "alex@example.com",
		Password:    "password123",
	}
	require.NoError(t, svc.CreateAccount(context.Background(), signup))
	require.Len(t, repo.accounts, 1)
	assert.NotEqual(t, "password123", repo.accounts[0].PasswordHash, "passwords must be stored hashed")

	err := svc.CreateAccount(context.Background(), signup)
	require.ErrorIs(t, err, utils.ErrEmailAlreadyExists)
	assert.Len(t, repo.accounts, 1)
}

func TestLogin(t *testing.T) {
	repo := &fakeAccountRepo{}
	svc := services.NewAccountService(repo)

	require.NoError(t, svc.CreateAccount(context.Background(), request_models.SignUpRequest{
		DisplayName: "Alex",
		Email:       "alex@example.com",
		Password:    "password123",
	}))

	token, err := svc.Login(context.Background(), request_models.LoginRequest{
		Email:    "alex@example.com",
		Password: "password123",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	_, err = svc.Login(context.Background(), request_models.LoginRequest{
		Email:    "alex@example.com",
		Password: "wrong",
	})
	require.ErrorIs(t, err, utils.ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), request_models.LoginRequest{
		Email:    "nobody@example.com",
		Password: "password123",
	})
	require.ErrorIs(t, err, utils.ErrInvalidCredentials)
}
