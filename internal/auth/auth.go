// Package auth implements the mock authentication the rest of the app
// trusts: three built-in demo accounts plus locally registered users kept
// in the mock_users slot. There is no real security boundary; the point is
// to hand a stable username to the task layer.
package auth

import (
	"encoding/json"
	"errors"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/martalocci/taskdeck/internal/logger"
	"github.com/martalocci/taskdeck/internal/model"
	"github.com/martalocci/taskdeck/internal/store"
)

var (
	// ErrInvalidCredentials is returned for any failed login. Deliberately
	// generic so the message never reveals which part was wrong.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrUsernameTaken is returned when registering an existing or reserved
	// username.
	ErrUsernameTaken = errors.New("username already exists")

	// ErrMissingFields is returned when username or password is blank.
	ErrMissingFields = errors.New("username and password are required")

	// ErrInvalidRole is returned for a role outside the registration set.
	ErrInvalidRole = errors.New("invalid role")
)

// builtin is a hard-coded demo account. Passwords are plain text on
// purpose: these are published demo credentials.
type builtin struct {
	username string
	password string
	role     string
}

var builtins = []builtin{
	{"admin", "admin123", model.RoleAdministrator},
	{"user", "user123", model.RoleUser},
	{"demo", "demo", model.RoleGuest},
}

// registrationRoles are the roles offered at registration time.
var registrationRoles = []string{model.RoleUser, model.RoleEditor, model.RoleGuest}

// Service authenticates against the built-in accounts and the mock_users
// slot.
type Service struct {
	store store.Store
}

// NewService creates an auth service over the given storage backend.
func NewService(s store.Store) *Service {
	return &Service{store: s}
}

// Login checks the credentials and returns the matching user. Built-in
// accounts are checked first, then registered ones (bcrypt hashes).
func (s *Service) Login(username, password string) (model.User, error) {
	username = strings.TrimSpace(username)

	for _, b := range builtins {
		if b.username == username && b.password == password {
			logger.Info("Login", logger.F("username", username), logger.F("builtin", true))
			return model.User{Username: b.username, Role: b.role}, nil
		}
	}

	for _, u := range s.Users() {
		if u.Username != username {
			continue
		}
		if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil {
			logger.Info("Login", logger.F("username", username))
			return u, nil
		}
		break
	}

	logger.Warn("Login failed", logger.F("username", username))
	return model.User{}, ErrInvalidCredentials
}

// Register creates a local account and appends it to the mock_users slot.
// Reserved built-in names and existing usernames are rejected.
func (s *Service) Register(username, password, role string) (model.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return model.User{}, ErrMissingFields
	}
	if role == "" {
		role = model.RoleUser
	}
	if !validRole(role) {
		return model.User{}, ErrInvalidRole
	}

	for _, b := range builtins {
		if b.username == username {
			return model.User{}, ErrUsernameTaken
		}
	}
	users := s.Users()
	for _, u := range users {
		if u.Username == username {
			return model.User{}, ErrUsernameTaken
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return model.User{}, err
	}

	user := model.User{
		Username:     username,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    time.Now().UTC(),
	}
	users = append(users, user)

	data, err := json.Marshal(users)
	if err != nil {
		return model.User{}, err
	}
	if err := s.store.Write(store.SlotUsers, data); err != nil {
		return model.User{}, err
	}

	logger.Info("User registered", logger.F("username", username), logger.F("role", role))
	return user, nil
}

// Users returns the registered accounts. An absent or malformed slot is
// treated as empty.
func (s *Service) Users() []model.User {
	data, err := s.store.Read(store.SlotUsers)
	if err != nil {
		logger.Warn("Failed to read user slot", logger.F("error", err))
		return []model.User{}
	}
	if len(data) == 0 {
		return []model.User{}
	}

	var users []model.User
	if err := json.Unmarshal(data, &users); err != nil {
		logger.Warn("Malformed user slot, treating as empty", logger.F("error", err))
		return []model.User{}
	}
	return users
}

func validRole(role string) bool {
	for _, r := range registrationRoles {
		if r == role {
			return true
		}
	}
	return false
}
