package service

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopmart/shopmart/internal/models"
	"github.com/shopmart/shopmart/internal/service/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestUserService_Register(t *testing.T) {
	t.Run("creates_store_and_account_together", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		users := mocks.NewMockUserRepository(ctrl)
		users.EXPECT().CreateUserWithStore(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, user *models.User, store *models.Store) (*models.User, error) {
				assert.Equal(t, store.ID, user.StoreID)
				assert.Equal(t, "Ravi Kirana", store.Name)
				assert.Equal(t, "ravi", user.Login)
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("s3cret")))
				return user, nil
			})

		svc := NewUserService(users)
		user, err := svc.Register(context.Background(), "ravi", "s3cret", "Ravi Kirana")

		require.NoError(t, err)
		require.NotNil(t, user)
		assert.NotEqual(t, uuid.Nil, user.ID)
		assert.NotEqual(t, uuid.Nil, user.StoreID)
	})

	t.Run("taken_login_creates_nothing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		users := mocks.NewMockUserRepository(ctrl)
		users.EXPECT().CreateUserWithStore(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, models.ErrConflictData)

		svc := NewUserService(users)
		_, err := svc.Register(context.Background(), "ravi", "s3cret", "Ravi Kirana")

		assert.ErrorIs(t, err, models.ErrConflictData)
	})

	t.Run("missing_field_rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		users := mocks.NewMockUserRepository(ctrl)
		users.EXPECT().CreateUserWithStore(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		svc := NewUserService(users)
		for _, args := range [][3]string{
			{"", "s3cret", "Ravi Kirana"},
			{"ravi", "", "Ravi Kirana"},
			{"ravi", "s3cret", ""},
		} {
			_, err := svc.Register(context.Background(), args[0], args[1], args[2])
			assert.ErrorIs(t, err, models.ErrValidation)
		}
	})
}
