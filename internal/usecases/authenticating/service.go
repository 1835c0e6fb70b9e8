package authenticating

import (
	"fmt"
	"strings"
	"time"

	"github.com/MuzammilFarook/dress-showroom-management/infrastructure/repository"
	"github.com/MuzammilFarook/dress-showroom-management/internal/config"
	"github.com/MuzammilFarook/dress-showroom-management/internal/domain"
	"github.com/MuzammilFarook/dress-showroom-management/internal/usecases/scoping"
	"github.com/MuzammilFarook/dress-showroom-management/pkg/apiErrors"
	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

// adminUsername is the bootstrap owner account; it can never be
// deactivated.
const adminUsername = "admin"

type Authenticator interface {
	LoginUser(username, password string) (string, error)
	ValidateToken(tokenString string) (*domain.Claims, error)
	CreateUser(req *domain.CreateUserRequest) (*domain.User, error)
	ListUsersForCaller(caller *domain.Claims) ([]*domain.User, error)
	ListSalesReps(caller *domain.Claims, requestedOutlet string) ([]*domain.User, error)
	DeactivateUser(userID int64) error
	GetUserProfile(userID int64) (*domain.User, error)
}

type Service struct {
	userRepo repository.UserRepository
	cfg      *config.Config
}

func NewService(userRepo repository.UserRepository, cfg *config.Config) Authenticator {
	return &Service{
		userRepo: userRepo,
		cfg:      cfg,
	}
}

func (s *Service) LoginUser(username, password string) (string, error) {
	if username == "" || password == "" {
		return "", NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "username and password are required")
	}

	username = handleUsername(username)

	user, err := s.userRepo.GetUserByUsername(username)
	if err != nil {
		return "", NewAuthError(err, apiErrors.ErrDatabaseOperation, "error looking up user")
	}

	if user == nil {
		return "", NewAuthError(ErrUserNotFound, apiErrors.ErrUserNotFound, "user not found")
	}

	if !user.Active {
		return "", NewUserAuthError(ErrUserDisabled, apiErrors.ErrUserDisabled, user.ID, "account deactivated")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", NewUserAuthError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, user.ID, "wrong password")
	}

	token, err := generateJWT(user, s.cfg.Auth.SecretKey, s.cfg.Auth.TokenTTL)
	if err != nil {
		return "", NewAuthError(err, apiErrors.ErrInternalServer, "error signing token")
	}

	return token, nil
}

func handleUsername(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func generateJWT(user *domain.User, secretKey string, ttl time.Duration) (string, error) {
	claims := domain.Claims{
		UserID:       user.ID,
		UserName:     user.Username,
		UserFullName: user.FullName,
		UserRole:     user.Role,
		UserOutlet:   user.Outlet,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secretKey))
}

func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.Auth.SecretKey), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*domain.Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

// CreateUser registers a new user with the role-default password. Only the
// handler's OWNER gate reaches this.
func (s *Service) CreateUser(req *domain.CreateUserRequest) (*domain.User, error) {
	if req.Username == "" || req.FullName == "" || req.Outlet == "" {
		return nil, NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "username, full name and outlet are required")
	}

	if !req.Role.Valid() {
		return nil, NewAuthError(ErrInvalidRole, apiErrors.ErrInvalidFormat, fmt.Sprintf("unknown role %q", req.Role))
	}

	// No outlet may be named like the wildcard unless the user is an
	// all-outlets owner.
	if req.Outlet == domain.WildcardOutlet && req.Role != domain.RoleOwner {
		return nil, NewAuthError(ErrInvalidRole, apiErrors.ErrInvalidFormat, "only owners may have the all-outlets scope")
	}

	username := handleUsername(req.Username)

	existing, err := s.userRepo.GetUserByUsername(username)
	if err != nil {
		return nil, NewAuthError(err, apiErrors.ErrDatabaseOperation, "error looking up user")
	}
	if existing != nil {
		return nil, NewAuthError(ErrUserAlreadyExists, apiErrors.ErrUserAlreadyExists, "username already exists")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(defaultPassword(req.Role)), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Username:     username,
		PasswordHash: string(hashedPassword),
		FullName:     req.FullName,
		Role:         req.Role,
		Outlet:       req.Outlet,
		Active:       true,
	}

	user, err = s.userRepo.CreateUser(user)
	if err != nil {
		return nil, NewAuthError(err, apiErrors.ErrDatabaseOperation, "error creating user")
	}

	logrus.WithFields(logrus.Fields{
		"username": user.Username,
		"role":     user.Role,
		"outlet":   user.Outlet,
	}).Info("user created")

	return user, nil
}

// defaultPassword mirrors the legacy provisioning flow; users are expected
// to change it after first login.
func defaultPassword(role domain.Role) string {
	switch role {
	case domain.RoleOwner:
		return "admin123"
	case domain.RoleManager:
		return "manager123"
	default:
		return "sales123"
	}
}

// ListUsersForCaller scopes the directory by role: owners see every active
// user, managers their outlet, sales reps only the reps of their outlet.
func (s *Service) ListUsersForCaller(caller *domain.Claims) ([]*domain.User, error) {
	switch caller.UserRole {
	case domain.RoleOwner:
		return s.userRepo.ListActiveUsers()
	case domain.RoleManager:
		return s.userRepo.ListUsersByOutlet(caller.UserOutlet)
	default:
		return s.userRepo.ListSalesReps(domain.ScopeOutlet(caller.UserOutlet))
	}
}

func (s *Service) ListSalesReps(caller *domain.Claims, requestedOutlet string) ([]*domain.User, error) {
	scope := scoping.ForRole(caller.UserRole).EffectiveScope(caller.UserOutlet, requestedOutlet)
	return s.userRepo.ListSalesReps(scope)
}

// DeactivateUser soft-deletes: the row survives for the referential
// integrity of historical transactions.
func (s *Service) DeactivateUser(userID int64) error {
	user, err := s.userRepo.GetUserByID(userID)
	if err != nil {
		return err
	}
	if user == nil {
		return NewAuthError(ErrUserNotFound, apiErrors.ErrUserNotFound, "user not found")
	}

	if user.Username == adminUsername {
		return NewUserAuthError(ErrProtectedUser, apiErrors.ErrInsufficientPrivilege, user.ID, "the admin user cannot be deactivated")
	}

	return s.userRepo.DeactivateUser(userID)
}

func (s *Service) GetUserProfile(userID int64) (*domain.User, error) {
	user, err := s.userRepo.GetUserByID(userID)
	if err != nil {
		logrus.Error(err)
		return nil, err
	}
	if user == nil {
		return nil, NewAuthError(ErrUserNotFound, apiErrors.ErrUserNotFound, "user not found")
	}

	user.PasswordHash = ""
	return user, nil
}
