package service

import (
	"errors"

	"oolongblog/dao"
	"oolongblog/internal/auth"
	"oolongblog/model"
	"oolongblog/utils"
)

// 对外统一口径：查无此人和密码错误返回同一个错误，
// 调用方无法区分账号是否存在。
var ErrInvalidCredentials = errors.New("用户名或密码错误")
var ErrAlreadyInitialized = errors.New("管理员已存在")

// AuthService 管理员登录与一次性初始化
type AuthService struct {
	admins *dao.AdminDAO
}

// NewAuthService 创建一个新的 AuthService 实例
func NewAuthService(admins *dao.AdminDAO) *AuthService {
	return &AuthService{admins: admins}
}

// Login 校验管理员凭据并签发 admin 角色令牌
func (s *AuthService) Login(username, password string) (string, *model.Admin, error) {
	admin, err := s.admins.GetByUsername(username)
	if err != nil {
		return "", nil, ErrInvalidCredentials
	}
	if !utils.CheckPasswordHash(password, admin.Password) {
		return "", nil, ErrInvalidCredentials
	}
	token, err := auth.GenerateToken(admin.ID, auth.RoleAdmin)
	if err != nil {
		return "", nil, err
	}
	return token, admin, nil
}

// Init 一次性创建首个管理员，已有管理员时拒绝
func (s *AuthService) Init(username, password, nickname string) (*model.Admin, error) {
	hashed, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}
	admin := &model.Admin{
		Username: username,
		Password: hashed,
		Nickname: nickname,
	}
	created, err := s.admins.CreateIfNone(admin)
	if err != nil {
		return nil, err
	}
	if !created {
		return nil, ErrAlreadyInitialized
	}
	return admin, nil
}

// Initialized 是否已存在管理员
func (s *AuthService) Initialized() (bool, error) {
	count, err := s.admins.Count()
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Profile 当前管理员资料
func (s *AuthService) Profile(id uint) (*model.Admin, error) {
	return s.admins.GetByID(id)
}
