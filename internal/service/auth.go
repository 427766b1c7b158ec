package service

import (
	"context"
	"errors"
	"time"

	"github.com/planetary/planetary-api/internal/crypto"
	"github.com/planetary/planetary-api/internal/mail"
	"github.com/planetary/planetary-api/internal/model"
	"github.com/planetary/planetary-api/internal/repository"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("email already taken")
	ErrUserNotFound       = errors.New("user not found")
)

// AuthService handles registration, login and password retrieval.
type AuthService struct {
	repo      *repository.UserRepository
	mailer    mail.Sender
	jwtSecret string
	jwtExpiry time.Duration
}

// NewAuthService creates a new AuthService.
func NewAuthService(repo *repository.UserRepository, mailer mail.Sender, secret string, expiry time.Duration) *AuthService {
	return &AuthService{
		repo:      repo,
		mailer:    mailer,
		jwtSecret: secret,
		jwtExpiry: expiry,
	}
}

// Register creates a new user account. The password is stored verbatim.
func (s *AuthService) Register(ctx context.Context, req model.RegisterRequest) error {
	exists, err := s.repo.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return err
	}
	if exists {
		return ErrEmailTaken
	}

	user := &model.User{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		// The unique constraint closes the gap between the pre-check
		// and the insert under concurrent registrations.
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return ErrEmailTaken
		}
		return err
	}

	return nil
}

// Login authenticates a user and returns a bearer token whose subject is
// the email. Unknown email and wrong password are indistinguishable.
func (s *AuthService) Login(ctx context.Context, req model.LoginRequest) (string, error) {
	_, err := s.repo.GetByCredentials(ctx, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}

	return crypto.GenerateToken(req.Email, s.jwtSecret, s.jwtExpiry)
}

// RetrievePassword mails the stored password to the given address.
func (s *AuthService) RetrievePassword(ctx context.Context, email string) error {
	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	body := "Your planetary API password is " + user.Password
	return s.mailer.Send(ctx, email, "Planetary API password", body)
}
