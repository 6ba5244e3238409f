package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"oolongblog/dao"
	"oolongblog/internal/auth"
)

func TestRegister_DuplicateEmail(t *testing.T) {
	db := setupTestDB()
	svc := NewVisitorService(dao.NewVisitorDAO(db))

	token, visitor, err := svc.Register("Ann", "a@x.com", "secret1")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, "a@x.com", visitor.Email)

	_, _, err = svc.Register("Ann", "a@x.com", "secret1")
	assert.ErrorIs(t, err, ErrEmailTaken)
	assert.Equal(t, "邮箱已被注册", err.Error())
}

func TestVisitorLogin_TokenCarriesVisitorRole(t *testing.T) {
	db := setupTestDB()
	svc := NewVisitorService(dao.NewVisitorDAO(db))

	_, registered, err := svc.Register("Ann", "a@x.com", "secret1")
	assert.NoError(t, err)

	token, visitor, err := svc.Login("a@x.com", "secret1")
	assert.NoError(t, err)
	assert.Equal(t, registered.ID, visitor.ID)
	assert.NotNil(t, visitor)

	claims, err := auth.ParseToken(token)
	assert.NoError(t, err)
	assert.Equal(t, auth.RoleVisitor, claims.Role)
}

func TestVisitorLogin_UniformErrorForBadCredentials(t *testing.T) {
	db := setupTestDB()
	svc := NewVisitorService(dao.NewVisitorDAO(db))

	_, _, err := svc.Register("Ann", "a@x.com", "secret1")
	assert.NoError(t, err)

	_, _, wrongPassword := svc.Login("a@x.com", "nope-nope")
	_, _, unknownEmail := svc.Login("b@x.com", "secret1")

	assert.ErrorIs(t, wrongPassword, ErrInvalidVisitorCredentials)
	assert.ErrorIs(t, unknownEmail, ErrInvalidVisitorCredentials)
}

func TestVisitorLogin_SyntheticVisitorCannotLogin(t *testing.T) {
	db := setupTestDB()
	visitorDAO := dao.NewVisitorDAO(db)
	svc := NewVisitorService(visitorDAO)

	// 合成访客没有密码
	synthetic, err := visitorDAO.FindOrCreateSynthetic(1)
	assert.NoError(t, err)

	_, _, err = svc.Login(synthetic.Email, "anything-goes")
	assert.ErrorIs(t, err, ErrInvalidVisitorCredentials)
}

func TestChangePassword(t *testing.T) {
	db := setupTestDB()
	svc := NewVisitorService(dao.NewVisitorDAO(db))

	_, visitor, err := svc.Register("Ann", "a@x.com", "secret1")
	assert.NoError(t, err)

	err = svc.ChangePassword(visitor.ID, "wrong-old", "newsecret")
	assert.ErrorIs(t, err, ErrWrongOldPassword)

	err = svc.ChangePassword(visitor.ID, "secret1", "newsecret")
	assert.NoError(t, err)

	_, _, err = svc.Login("a@x.com", "secret1")
	assert.ErrorIs(t, err, ErrInvalidVisitorCredentials)
	_, _, err = svc.Login("a@x.com", "newsecret")
	assert.NoError(t, err)
}
