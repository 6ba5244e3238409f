package service

import (
	"errors"
	"math/rand"

	"oolongblog/dao"
	"oolongblog/model"

	"gorm.io/gorm"
)

var ErrFriendNotFound = errors.New("友链不存在")

// 申请时未提供头像则随机挑一个 emoji
var defaultAvatars = []string{"🌟", "🚀", "💻", "🎨", "📚", "🔥", "⚡", "🎯", "💎", "🌈"}

// FriendService 友情链接与审核
type FriendService struct {
	friends *dao.FriendDAO
}

// NewFriendService 创建一个新的 FriendService 实例
func NewFriendService(friends *dao.FriendDAO) *FriendService {
	return &FriendService{friends: friends}
}

// ListPublic 公开列表，只返回已通过的友链
func (s *FriendService) ListPublic() ([]model.FriendLink, error) {
	return s.friends.ListApproved()
}

// ListAll 后台完整列表
func (s *FriendService) ListAll() ([]model.FriendLink, error) {
	return s.friends.ListAll()
}

// Apply 提交友链申请，初始状态待审核
func (s *FriendService) Apply(name, avatar, url, description string) (*model.FriendLink, error) {
	if avatar == "" {
		avatar = defaultAvatars[rand.Intn(len(defaultAvatars))]
	}
	link := &model.FriendLink{
		Name:        name,
		Avatar:      avatar,
		URL:         url,
		Description: description,
		Status:      model.FriendPending,
	}
	if err := s.friends.Create(link); err != nil {
		return nil, err
	}
	return link, nil
}

// SetStatus 审核友链
func (s *FriendService) SetStatus(id uint, status int) (*model.FriendLink, error) {
	if _, err := s.friends.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFriendNotFound
		}
		return nil, err
	}
	if err := s.friends.Update(id, map[string]interface{}{"status": status}); err != nil {
		return nil, err
	}
	return s.friends.GetByID(id)
}

// Update 编辑友链字段
func (s *FriendService) Update(id uint, updates map[string]interface{}) (*model.FriendLink, error) {
	if _, err := s.friends.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFriendNotFound
		}
		return nil, err
	}
	if len(updates) > 0 {
		if err := s.friends.Update(id, updates); err != nil {
			return nil, err
		}
	}
	return s.friends.GetByID(id)
}

// Delete 删除友链
func (s *FriendService) Delete(id uint) error {
	if _, err := s.friends.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrFriendNotFound
		}
		return err
	}
	return s.friends.Delete(id)
}
