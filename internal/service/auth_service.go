package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"eventsite/internal/models"
	"eventsite/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// Domain errors for auth flows.
var (
	ErrMissingFields   = errors.New("name, username and password are required")
	ErrUsernameTaken   = errors.New("username already taken")
	ErrNoSuchUser      = errors.New("no such user")
	ErrInvalidPassword = errors.New("invalid password")
	ErrTokenExpired    = errors.New("expired token")
	ErrTokenInvalid    = errors.New("invalid token")
)

// AuthService handles user auth logic. Secret and TTL come from config;
// nothing here reads the environment.
type AuthService struct {
	users      repository.Users
	signingKey []byte
	tokenTTL   time.Duration
}

func NewAuthService(users repository.Users, secret string, tokenTTL time.Duration) *AuthService {
	return &AuthService{
		users:      users,
		signingKey: []byte(secret),
		tokenTTL:   tokenTTL,
	}
}

// Register hashes the password and creates a new non-admin user. The
// returned user never carries the hash.
func (s *AuthService) Register(name, username, password string) (*models.User, error) {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(username) == "" || strings.TrimSpace(password) == "" {
		return nil, ErrMissingFields
	}
	hash, err := hashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("invalid password: %w", err)
	}
	id, err := s.users.Create(name, username, hash, false)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrUsernameTaken
		}
		return nil, err
	}
	return &models.User{ID: id, Name: name, Username: username}, nil
}

// Claims defines JWT claims. The token carries only the user id; the admin
// flag is re-read from the store on every verification.
type Claims struct {
	jwt.RegisteredClaims
	UserID int `json:"user_id"`
}

// Login validates credentials and returns a signed JWT. The two failure
// modes stay distinguishable for the HTTP layer.
func (s *AuthService) Login(username, password string) (string, error) {
	u, err := s.users.GetByUsername(username)
	if err != nil {
		return "", err
	}
	if u == nil {
		return "", ErrNoSuchUser
	}

	if err := verifyPassword(u.PasswordHash, password); err != nil {
		return "", ErrInvalidPassword
	}

	return s.issueToken(u.ID)
}

// VerifyToken parses the JWT and resolves the embedded user id against the
// store. Expiry and any other verification failure map to distinct errors.
func (s *AuthService) VerifyToken(accessToken string) (*models.User, error) {
	token, err := jwt.ParseWithClaims(accessToken, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		// Ensure HMAC signing is used
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.signingKey, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrTokenInvalid
	}

	u, err := s.users.GetByID(claims.UserID)
	if err != nil {
		return nil, err
	}
	// User deleted since issuance: treat as unauthenticated.
	return u, nil
}

// helper: issue a signed JWT for a user
func (s *AuthService) issueToken(userID int) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		UserID: userID,
	})
	return token.SignedString(s.signingKey)
}

// helper: hash password safely
func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// helper: verify password against hash
func verifyPassword(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}

// isUniqueViolation reports whether err stems from the UNIQUE constraint on
// users.username. modernc/sqlite exposes no typed error for this, so match
// on the driver message.
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint")
}
