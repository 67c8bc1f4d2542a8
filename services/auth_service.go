package services

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"strings"
	"time"

	"github.com/Rellinxe27/task-manager-oauth-week08/database"
	"github.com/Rellinxe27/task-manager-oauth-week08/models"
	"github.com/Rellinxe27/task-manager-oauth-week08/utils/token"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Use the JWTClaims from token package
type JWTClaims = token.JWTClaims

// AuthServiceInterface is the authentication gate the rest of the system
// consumes. It upserts users on OAuth login, issues and revokes sessions, and
// exchanges an authenticated session for a bearer token.
type AuthServiceInterface interface {
	Login(db *database.Database, profile GoogleProfile) (models.User, error)
	CreateSession(db *database.Database, userID uuid.UUID) (string, error)
	CurrentUser(db *database.Database, cookie string) (models.User, error)
	Logout(db *database.Database, cookie string) error
	IssueToken(user models.User) (string, error)
	ValidateToken(tokenString string) (*JWTClaims, error)
	SessionMaxAge() time.Duration
}

type AuthService struct {
	jwtSecret     []byte
	jwtExpiration time.Duration
	sessionMaxAge time.Duration
}

func NewAuthService(jwtSecret string, jwtExpirationHours, sessionMaxAgeHours int) *AuthService {
	return &AuthService{
		jwtSecret:     []byte(jwtSecret),
		jwtExpiration: time.Duration(jwtExpirationHours) * time.Hour,
		sessionMaxAge: time.Duration(sessionMaxAgeHours) * time.Hour,
	}
}

// Login upserts the user record for an OAuth profile: first callback creates
// the record, every later one touches LastLogin.
func (s *AuthService) Login(db *database.Database, profile GoogleProfile) (models.User, error) {
	var user models.User
	err := db.DB.Where("google_id = ?", profile.GoogleID).First(&user).Error

	if err == nil {
		if err := db.DB.Model(&user).Update("last_login", time.Now().UTC()).Error; err != nil {
			return models.User{}, err
		}
		return user, nil
	}

	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return models.User{}, err
	}

	user = models.User{
		ID:          uuid.New(),
		GoogleID:    profile.GoogleID,
		Email:       profile.Email,
		DisplayName: profile.DisplayName,
		FirstName:   profile.FirstName,
		LastName:    profile.LastName,
		Picture:     profile.Picture,
		LastLogin:   time.Now().UTC(),
	}

	if err := db.DB.Create(&user).Error; err != nil {
		return models.User{}, err
	}

	return user, nil
}

// CreateSession issues a new session and returns the cookie value
// "<id>.<secret>". The secret is stored bcrypt-hashed.
func (s *AuthService) CreateSession(db *database.Database, userID uuid.UUID) (string, error) {
	id, err := randomHex(16)
	if err != nil {
		return "", err
	}
	secret, err := randomHex(32)
	if err != nil {
		return "", err
	}

	secretHash, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	session := models.Session{
		ID:         id,
		UserID:     userID,
		SecretHash: string(secretHash),
		ExpiresAt:  time.Now().UTC().Add(s.sessionMaxAge),
	}

	if err := db.DB.Create(&session).Error; err != nil {
		return "", err
	}

	return id + "." + secret, nil
}

// CurrentUser resolves a session cookie to its user. Expired, unknown and
// tampered cookies all come back as ErrSessionNotFound.
func (s *AuthService) CurrentUser(db *database.Database, cookie string) (models.User, error) {
	session, secret, err := s.lookupSession(db, cookie)
	if err != nil {
		return models.User{}, err
	}

	if bcrypt.CompareHashAndPassword([]byte(session.SecretHash), []byte(secret)) != nil {
		return models.User{}, ErrSessionNotFound
	}

	var user models.User
	if err := db.DB.First(&user, "id = ?", session.UserID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, ErrUserNotFound
		}
		return models.User{}, err
	}

	return user, nil
}

func (s *AuthService) Logout(db *database.Database, cookie string) error {
	session, _, err := s.lookupSession(db, cookie)
	if err != nil {
		return err
	}
	return db.DB.Delete(&models.Session{}, "id = ?", session.ID).Error
}

func (s *AuthService) IssueToken(user models.User) (string, error) {
	return token.GenerateToken(user.ID, user.Email, s.jwtSecret, s.jwtExpiration)
}

func (s *AuthService) ValidateToken(tokenString string) (*JWTClaims, error) {
	return token.ValidateToken(tokenString, s.jwtSecret)
}

func (s *AuthService) SessionMaxAge() time.Duration {
	return s.sessionMaxAge
}

func (s *AuthService) lookupSession(db *database.Database, cookie string) (models.Session, string, error) {
	id, secret, ok := strings.Cut(cookie, ".")
	if !ok || id == "" || secret == "" {
		return models.Session{}, "", ErrSessionNotFound
	}

	var session models.Session
	err := db.DB.First(&session, "id = ? AND expires_at > ?", id, time.Now().UTC()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Session{}, "", ErrSessionNotFound
		}
		return models.Session{}, "", err
	}

	return session, secret, nil
}

func randomHex(n int) (string, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

var _ AuthServiceInterface = (*AuthService)(nil)
