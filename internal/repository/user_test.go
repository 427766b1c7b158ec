package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/planetary/planetary-api/internal/model"
)

func TestUserCreateAndGetByEmail(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := &model.User{
		FirstName: "Wiliam",
		LastName:  "Herschel",
		Email:     "test@test.com",
		Password:  "P@ssw0rd",
	}
	if err := repo.Create(ctx, user); err != nil {
		t.Fatalf("create: %v", err)
	}
	if user.ID == 0 {
		t.Error("expected generated ID to be set")
	}

	got, err := repo.GetByEmail(ctx, "test@test.com")
	if err != nil {
		t.Fatalf("get by email: %v", err)
	}
	if got.Password != "P@ssw0rd" {
		t.Errorf("password = %q, want P@ssw0rd", got.Password)
	}
	if got.FirstName != "Wiliam" || got.LastName != "Herschel" {
		t.Errorf("name = %q %q, want Wiliam Herschel", got.FirstName, got.LastName)
	}
}

func TestUserCreateDuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	first := &model.User{Email: "dup@test.com", Password: "one"}
	if err := repo.Create(ctx, first); err != nil {
		t.Fatalf("create: %v", err)
	}

	second := &model.User{Email: "dup@test.com", Password: "two"}
	err := repo.Create(ctx, second)
	if !errors.Is(err, ErrDuplicateEmail) {
		t.Errorf("expected ErrDuplicateEmail, got %v", err)
	}

	var count int
	if err := db.Get(&count, `SELECT COUNT(*) FROM users WHERE email = ?`, "dup@test.com"); err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Errorf("row count = %d, want 1", count)
	}
}

func TestUserGetByEmailNotFound(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)

	_, err := repo.GetByEmail(context.Background(), "nobody@test.com")
	if !errors.Is(err, ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserGetByCredentials(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := &model.User{Email: "login@test.com", Password: "secret"}
	if err := repo.Create(ctx, user); err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := repo.GetByCredentials(ctx, "login@test.com", "secret"); err != nil {
		t.Errorf("matching credentials: unexpected error %v", err)
	}

	_, err := repo.GetByCredentials(ctx, "login@test.com", "wrong")
	if !errors.Is(err, ErrUserNotFound) {
		t.Errorf("wrong password: expected ErrUserNotFound, got %v", err)
	}

	_, err = repo.GetByCredentials(ctx, "other@test.com", "secret")
	if !errors.Is(err, ErrUserNotFound) {
		t.Errorf("unknown email: expected ErrUserNotFound, got %v", err)
	}
}

func TestUserExistsByEmail(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	exists, err := repo.ExistsByEmail(ctx, "ghost@test.com")
	if err != nil {
		t.Fatalf("exists: %v", err)
	}
	if exists {
		t.Error("expected false for unknown email")
	}

	if err := repo.Create(ctx, &model.User{Email: "ghost@test.com"}); err != nil {
		t.Fatalf("create: %v", err)
	}

	exists, err = repo.ExistsByEmail(ctx, "ghost@test.com")
	if err != nil {
		t.Fatalf("exists: %v", err)
	}
	if !exists {
		t.Error("expected true after insert")
	}
}
