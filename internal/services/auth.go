package services

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/sync/errgroup"

	"github.com/akarpov87/social-feed/internal/logger"
	"github.com/akarpov87/social-feed/internal/models"
)

// Error variables
var (
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByUsername(ctx context.Context, username string) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, username, firstName, lastName, passwordHash string) error
}

// NameReader draws random word pairs for generated credentials.
type NameReader interface {
	RandomFreeName(ctx context.Context) (string, string, error)
	RandomPassphrase(ctx context.Context) (string, string, error)
}

// TokenIssuer generates signed identity tokens.
type TokenIssuer interface {
	Generate(ctx context.Context, username, firstName, lastName string) (string, error)
}

// Credentials is the result of a successful registration or login. Password is
// only set at registration, the single time the generated password is shown.
type Credentials struct {
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Password  string `json:"password,omitempty"`
	Token     string `json:"token"`
}

// AuthService handles registration and login.
type AuthService struct {
	reader UserReader
	writer UserWriter
	names  NameReader
	jwt    TokenIssuer
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader, writer UserWriter, names NameReader, jwt TokenIssuer) *AuthService {
	return &AuthService{
		reader: reader,
		writer: writer,
		names:  names,
		jwt:    jwt,
	}
}

// Register creates a user with generated credentials: the username comes from
// a random unused (first name, last name) pair and the password from a random
// Adjective+Noun pair. The two lookups are independent and run concurrently.
func (svc *AuthService) Register(ctx context.Context) (*Credentials, error) {
	var firstName, lastName, adjective, noun string

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		firstName, lastName, err = svc.names.RandomFreeName(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		adjective, noun, err = svc.names.RandomPassphrase(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		logger.Log.Errorw("failed to draw credential words", "err", err)
		return nil, err
	}

	username := strings.ToLower(firstName + "." + lastName)
	password := upperCaseFirst(adjective) + upperCaseFirst(noun)

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return nil, err
	}

	if err := svc.writer.Save(ctx, username, firstName, lastName, string(hashedPassword)); err != nil {
		logger.Log.Errorw("failed to save user", "username", username, "err", err)
		return nil, err
	}

	token, err := svc.jwt.Generate(ctx, username, firstName, lastName)
	if err != nil {
		logger.Log.Errorw("failed to generate token", "username", username, "err", err)
		return nil, err
	}

	return &Credentials{
		Username:  username,
		FirstName: firstName,
		LastName:  lastName,
		Password:  password,
		Token:     token,
	}, nil
}

// Login authenticates a user and returns a fresh token. Wrong username and
// wrong password are indistinguishable to the caller.
func (svc *AuthService) Login(ctx context.Context, username, password string) (*Credentials, error) {
	user, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return nil, err
	}
	if user == nil {
		logger.Log.Infow("login for unknown user", "username", username)
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		logger.Log.Infow("login with wrong password", "username", username)
		return nil, ErrInvalidCredentials
	}

	token, err := svc.jwt.Generate(ctx, user.Username, user.FirstName, user.LastName)
	if err != nil {
		logger.Log.Errorw("failed to generate token", "err", err)
		return nil, err
	}

	return &Credentials{
		Username:  user.Username,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Token:     token,
	}, nil
}

func upperCaseFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
