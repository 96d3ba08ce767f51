package admin

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"someswar-temple/internal/auth"
	"someswar-temple/internal/models"
)

type fakeUserRepo struct {
	users map[string]models.User
}

func (f *fakeUserRepo) GetByUsername(ctx context.Context, username string) (models.User, error) {
	user, ok := f.users[username]
	if !ok {
		return models.User{}, mongo.ErrNoDocuments
	}
	return user, nil
}

func testManager() *auth.Manager {
	return &auth.Manager{
		Secret:    []byte("test-secret"),
		AccessTTL: time.Hour,
		Issuer:    "someswar-temple",
	}
}

func testService(t *testing.T) (*Service, *fakeUserRepo) {
	t.Helper()
	hash, err := auth.HashPassword("correct-horse")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	repo := &fakeUserRepo{users: map[string]models.User{
		"admin":  {Username: "admin", PasswordHash: hash, Role: models.UserRoleAdmin},
		"viewer": {Username: "viewer", PasswordHash: hash, Role: "viewer"},
	}}
	return NewService(repo, testManager()), repo
}

func TestLoginSuccess(t *testing.T) {
	s, _ := testService(t)

	result, err := s.Login(context.Background(), "admin", "correct-horse")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if result.Username != "admin" || result.Role != models.UserRoleAdmin {
		t.Fatalf("unexpected result %+v", result)
	}

	claims, err := testManager().Parse(result.Token)
	if err != nil {
		t.Fatalf("token should parse: %v", err)
	}
	if claims.Username != "admin" || claims.Role != models.UserRoleAdmin {
		t.Fatalf("unexpected claims %+v", claims)
	}
}

func TestLoginInvalidCredentials(t *testing.T) {
	s, _ := testService(t)

	cases := []struct {
		username string
		password string
	}{
		{"admin", "wrong-password"},
		{"nobody", "correct-horse"},
		{"viewer", "correct-horse"}, // right password, not an admin
	}
	for _, tc := range cases {
		_, err := s.Login(context.Background(), tc.username, tc.password)
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("login %s/%s: expected ErrInvalidCredentials, got %v", tc.username, tc.password, err)
		}
	}
}
