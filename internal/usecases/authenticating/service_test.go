package authenticating

import (
	"testing"
	"time"

	"github.com/MuzammilFarook/dress-showroom-management/infrastructure/repository/mocks"
	"github.com/MuzammilFarook/dress-showroom-management/internal/config"
	"github.com/MuzammilFarook/dress-showroom-management/internal/domain"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func newTestService(t *testing.T) (Authenticator, *mocks.MockUserRepository) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	userRepo := mocks.NewMockUserRepository(ctrl)
	cfg := &config.Config{
		Auth: config.Auth{
			SecretKey: "test-secret",
			TokenTTL:  time.Hour,
		},
	}

	return NewService(userRepo, cfg), userRepo
}

func activeUser(t *testing.T, password string) *domain.User {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)

	return &domain.User{
		ID:           1,
		Username:     "manager1",
		PasswordHash: string(hash),
		FullName:     "Manager Outlet One",
		Role:         domain.RoleManager,
		Outlet:       "Outlet 1",
		Active:       true,
	}
}

func TestLoginUser(t *testing.T) {
	t.Run("valid credentials yield a verifiable token", func(t *testing.T) {
		service, userRepo := newTestService(t)

		userRepo.EXPECT().
			GetUserByUsername("manager1").
			Return(activeUser(t, "manager123"), nil)

		token, err := service.LoginUser("manager1", "manager123")

		assert.NoError(t, err)
		assert.NotEmpty(t, token)

		claims, err := service.ValidateToken(token)
		assert.NoError(t, err)
		assert.Equal(t, "manager1", claims.UserName)
		assert.Equal(t, domain.RoleManager, claims.UserRole)
		assert.Equal(t, "Outlet 1", claims.UserOutlet)
	})

	t.Run("username is trimmed and lowercased", func(t *testing.T) {
		service, userRepo := newTestService(t)

		userRepo.EXPECT().
			GetUserByUsername("manager1").
			Return(activeUser(t, "manager123"), nil)

		_, err := service.LoginUser("  Manager1 ", "manager123")

		assert.NoError(t, err)
	})

	t.Run("wrong password is rejected", func(t *testing.T) {
		service, userRepo := newTestService(t)

		userRepo.EXPECT().
			GetUserByUsername("manager1").
			Return(activeUser(t, "manager123"), nil)

		token, err := service.LoginUser("manager1", "nope")

		assert.ErrorIs(t, err, ErrInvalidCredentials)
		assert.Empty(t, token)
	})

	t.Run("deactivated user cannot log in", func(t *testing.T) {
		service, userRepo := newTestService(t)

		user := activeUser(t, "manager123")
		user.Active = false
		userRepo.EXPECT().GetUserByUsername("manager1").Return(user, nil)

		_, err := service.LoginUser("manager1", "manager123")

		assert.ErrorIs(t, err, ErrUserDisabled)
	})

	t.Run("unknown user", func(t *testing.T) {
		service, userRepo := newTestService(t)

		userRepo.EXPECT().GetUserByUsername("ghost").Return(nil, nil)

		_, err := service.LoginUser("ghost", "whatever")

		assert.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("missing credentials", func(t *testing.T) {
		service, _ := newTestService(t)

		_, err := service.LoginUser("", "")

		assert.ErrorIs(t, err, ErrMissingRequiredData)
	})
}

func TestValidateToken(t *testing.T) {
	service, _ := newTestService(t)

	_, err := service.ValidateToken("not-a-token")

	assert.Error(t, err)
}

func TestCreateUser(t *testing.T) {
	validRequest := func() *domain.CreateUserRequest {
		return &domain.CreateUserRequest{
			Username: "sales9",
			FullName: "Sales Rep Nine",
			Role:     domain.RoleSales,
			Outlet:   "Outlet 1",
		}
	}

	t.Run("creates an active user with the role-default password", func(t *testing.T) {
		service, userRepo := newTestService(t)

		userRepo.EXPECT().GetUserByUsername("sales9").Return(nil, nil)
		userRepo.EXPECT().
			CreateUser(gomock.Any()).
			DoAndReturn(func(user *domain.User) (*domain.User, error) {
				assert.True(t, user.Active)
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("sales123")))
				user.ID = 9
				return user, nil
			})

		user, err := service.CreateUser(validRequest())

		assert.NoError(t, err)
		assert.Equal(t, int64(9), user.ID)
	})

	t.Run("duplicate username is rejected", func(t *testing.T) {
		service, userRepo := newTestService(t)

		userRepo.EXPECT().
			GetUserByUsername("sales9").
			Return(&domain.User{ID: 3, Username: "sales9"}, nil)

		user, err := service.CreateUser(validRequest())

		assert.ErrorIs(t, err, ErrUserAlreadyExists)
		assert.Nil(t, user)
	})

	t.Run("only owners may carry the all-outlets scope", func(t *testing.T) {
		service, _ := newTestService(t)

		req := validRequest()
		req.Outlet = domain.WildcardOutlet

		user, err := service.CreateUser(req)

		assert.Error(t, err)
		assert.Nil(t, user)
	})

	t.Run("unknown role is rejected", func(t *testing.T) {
		service, _ := newTestService(t)

		req := validRequest()
		req.Role = "INTERN"

		user, err := service.CreateUser(req)

		assert.ErrorIs(t, err, ErrInvalidRole)
		assert.Nil(t, user)
	})
}

func TestListUsersForCaller(t *testing.T) {
	t.Run("owner sees every active user", func(t *testing.T) {
		service, userRepo := newTestService(t)

		userRepo.EXPECT().ListActiveUsers().Return([]*domain.User{{ID: 1}, {ID: 2}}, nil)

		users, err := service.ListUsersForCaller(&domain.Claims{UserRole: domain.RoleOwner})

		assert.NoError(t, err)
		assert.Len(t, users, 2)
	})

	t.Run("manager sees their outlet", func(t *testing.T) {
		service, userRepo := newTestService(t)

		userRepo.EXPECT().ListUsersByOutlet("Outlet 2").Return(nil, nil)

		_, err := service.ListUsersForCaller(&domain.Claims{
			UserRole:   domain.RoleManager,
			UserOutlet: "Outlet 2",
		})

		assert.NoError(t, err)
	})

	t.Run("sales rep sees the reps of their outlet", func(t *testing.T) {
		service, userRepo := newTestService(t)

		userRepo.EXPECT().
			ListSalesReps(gomock.Any()).
			DoAndReturn(func(scope domain.Scope) ([]*domain.User, error) {
				assert.Equal(t, "Outlet 3", scope.Outlet())
				return nil, nil
			})

		_, err := service.ListUsersForCaller(&domain.Claims{
			UserRole:   domain.RoleSales,
			UserOutlet: "Outlet 3",
		})

		assert.NoError(t, err)
	})
}

func TestDeactivateUser(t *testing.T) {
	t.Run("soft-deletes a regular user", func(t *testing.T) {
		service, userRepo := newTestService(t)

		userRepo.EXPECT().GetUserByID(int64(5)).Return(&domain.User{ID: 5, Username: "sales2"}, nil)
		userRepo.EXPECT().DeactivateUser(int64(5)).Return(nil)

		assert.NoError(t, service.DeactivateUser(5))
	})

	t.Run("the admin user is protected", func(t *testing.T) {
		service, userRepo := newTestService(t)

		userRepo.EXPECT().GetUserByID(int64(1)).Return(&domain.User{ID: 1, Username: "admin"}, nil)

		err := service.DeactivateUser(1)

		assert.ErrorIs(t, err, ErrProtectedUser)

		var authErr *AuthError
		if assert.True(t, errors.As(err, &authErr)) {
			assert.Equal(t, int64(1), authErr.UserID)
		}
	})

	t.Run("unknown user", func(t *testing.T) {
		service, userRepo := newTestService(t)

		userRepo.EXPECT().GetUserByID(int64(99)).Return(nil, nil)

		err := service.DeactivateUser(99)

		assert.ErrorIs(t, err, ErrUserNotFound)
	})
}
