package service

import (
	"errors"

	"oolongblog/dao"
	"oolongblog/internal/auth"
	"oolongblog/model"
	"oolongblog/utils"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

var ErrEmailTaken = errors.New("邮箱已被注册")
var ErrInvalidVisitorCredentials = errors.New("邮箱或密码错误")
var ErrWrongOldPassword = errors.New("旧密码错误")
var ErrBrokenAccount = errors.New("账户异常")

// VisitorService 访客注册、登录与个人资料
type VisitorService struct {
	visitors *dao.VisitorDAO
}

// NewVisitorService 创建一个新的 VisitorService 实例
func NewVisitorService(visitors *dao.VisitorDAO) *VisitorService {
	return &VisitorService{visitors: visitors}
}

// Register 注册新访客并直接签发 visitor 令牌。
// 先查重给出友好错误；并发窗口里漏网的由邮箱唯一索引兜住，
// 冲突错误同样映射为 ErrEmailTaken。
func (s *VisitorService) Register(nickname, email, password string) (string, *model.Visitor, error) {
	if _, err := s.visitors.GetByEmail(email); err == nil {
		return "", nil, ErrEmailTaken
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		return "", nil, err
	}
	visitor := &model.Visitor{
		Nickname: nickname,
		Email:    email,
		Password: hashed,
	}
	if err := s.visitors.Create(visitor); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return "", nil, ErrEmailTaken
		}
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
			return "", nil, ErrEmailTaken
		}
		return "", nil, err
	}

	token, err := auth.GenerateToken(visitor.ID, auth.RoleVisitor)
	if err != nil {
		return "", nil, err
	}
	return token, visitor, nil
}

// Login 校验访客凭据并签发 visitor 角色令牌。
// 合成访客没有密码，同样按凭据错误处理。
func (s *VisitorService) Login(email, password string) (string, *model.Visitor, error) {
	visitor, err := s.visitors.GetByEmail(email)
	if err != nil || visitor.Password == "" {
		return "", nil, ErrInvalidVisitorCredentials
	}
	if !utils.CheckPasswordHash(password, visitor.Password) {
		return "", nil, ErrInvalidVisitorCredentials
	}

	_ = s.visitors.TouchLastLogin(visitor.ID)

	token, err := auth.GenerateToken(visitor.ID, auth.RoleVisitor)
	if err != nil {
		return "", nil, err
	}
	return token, visitor, nil
}

// Profile 访客资料
func (s *VisitorService) Profile(id uint) (*model.Visitor, error) {
	return s.visitors.GetByID(id)
}

// UpdateProfile 更新昵称/头像
func (s *VisitorService) UpdateProfile(id uint, nickname, avatar *string) (*model.Visitor, error) {
	updates := map[string]interface{}{}
	if nickname != nil {
		updates["nickname"] = *nickname
	}
	if avatar != nil {
		updates["avatar"] = *avatar
	}
	if len(updates) > 0 {
		if err := s.visitors.UpdateProfile(id, updates); err != nil {
			return nil, err
		}
	}
	return s.visitors.GetByID(id)
}

// ChangePassword 校验旧密码后换新密码
func (s *VisitorService) ChangePassword(id uint, oldPassword, newPassword string) error {
	visitor, err := s.visitors.GetByID(id)
	if err != nil || visitor.Password == "" {
		return ErrBrokenAccount
	}
	if !utils.CheckPasswordHash(oldPassword, visitor.Password) {
		return ErrWrongOldPassword
	}
	hashed, err := utils.HashPassword(newPassword)
	if err != nil {
		return err
	}
	return s.visitors.UpdatePassword(id, hashed)
}
