package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"oolongblog/dao"
	"oolongblog/internal/auth"
	"oolongblog/utils"
)

func TestInit_OnlyOnce(t *testing.T) {
	db := setupTestDB()
	svc := NewAuthService(dao.NewAdminDAO(db))

	admin, err := svc.Init("boss", "secret123", "站长")
	assert.NoError(t, err)
	assert.NotZero(t, admin.ID)

	_, err = svc.Init("other", "secret456", "第二个")
	assert.ErrorIs(t, err, ErrAlreadyInitialized)
}

func TestLogin_TokenCarriesAdminRole(t *testing.T) {
	db := setupTestDB()
	svc := NewAuthService(dao.NewAdminDAO(db))

	_, err := svc.Init("boss", "secret123", "站长")
	assert.NoError(t, err)

	token, admin, err := svc.Login("boss", "secret123")
	assert.NoError(t, err)
	assert.Equal(t, "boss", admin.Username)

	claims, err := auth.ParseToken(token)
	assert.NoError(t, err)
	assert.Equal(t, auth.RoleAdmin, claims.Role)
	assert.Equal(t, admin.ID, claims.UserID)
}

func TestLogin_UniformErrorForBadCredentials(t *testing.T) {
	db := setupTestDB()
	svc := NewAuthService(dao.NewAdminDAO(db))

	_, err := svc.Init("boss", "secret123", "站长")
	assert.NoError(t, err)

	_, _, wrongPassword := svc.Login("boss", "wrong-password")
	_, _, unknownUser := svc.Login("nobody", "secret123")

	assert.ErrorIs(t, wrongPassword, ErrInvalidCredentials)
	assert.ErrorIs(t, unknownUser, ErrInvalidCredentials)
	// 错误信息完全一致，调用方无法区分账号是否存在
	assert.Equal(t, wrongPassword.Error(), unknownUser.Error())
}

func TestInit_PasswordIsHashed(t *testing.T) {
	db := setupTestDB()
	svc := NewAuthService(dao.NewAdminDAO(db))

	admin, err := svc.Init("boss", "secret123", "站长")
	assert.NoError(t, err)
	assert.NotEqual(t, "secret123", admin.Password)
	assert.True(t, utils.CheckPasswordHash("secret123", admin.Password))
}
