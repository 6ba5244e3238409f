package service

import (
	"encoding/json"
	"errors"

	"oolongblog/dao"
	"oolongblog/internal/auth"
	"oolongblog/model"

	"gorm.io/gorm"
)

var ErrMomentNotFound = errors.New("说说不存在")

// MomentItem 说说视图：图片列反序列化成数组，附带评论/点赞数
type MomentItem struct {
	model.Moment
	Images       []string `json:"images"`
	CommentCount int64    `json:"commentCount"`
	LikeCount    int64    `json:"likeCount"`
}

// MomentService 说说与点赞
type MomentService struct {
	moments  *dao.MomentDAO
	comments *dao.CommentDAO
	visitors *dao.VisitorDAO
}

// NewMomentService 创建一个新的 MomentService 实例
func NewMomentService(moments *dao.MomentDAO, comments *dao.CommentDAO, visitors *dao.VisitorDAO) *MomentService {
	return &MomentService{moments: moments, comments: comments, visitors: visitors}
}

func decodeImages(raw string) []string {
	if raw == "" {
		return []string{}
	}
	var images []string
	if err := json.Unmarshal([]byte(raw), &images); err != nil {
		return []string{}
	}
	return images
}

// List 分页返回说说
func (s *MomentService) List(page, pageSize int) (*PageResult, error) {
	total, moments, err := s.moments.List(page, pageSize)
	if err != nil {
		return nil, err
	}

	ids := make([]uint, 0, len(moments))
	for _, m := range moments {
		ids = append(ids, m.ID)
	}
	commentCounts, err := s.comments.CountByMomentIDs(ids)
	if err != nil {
		return nil, err
	}
	likeCounts, err := s.moments.CountLikes(ids)
	if err != nil {
		return nil, err
	}

	items := make([]MomentItem, 0, len(moments))
	for _, m := range moments {
		items = append(items, MomentItem{
			Moment:       m,
			Images:       decodeImages(m.Images),
			CommentCount: commentCounts[m.ID],
			LikeCount:    likeCounts[m.ID],
		})
	}
	return &PageResult{Total: total, Page: page, PageSize: pageSize, Data: items}, nil
}

// Get 单条说说
func (s *MomentService) Get(id uint) (*MomentItem, error) {
	moment, err := s.moments.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMomentNotFound
		}
		return nil, err
	}
	return &MomentItem{Moment: *moment, Images: decodeImages(moment.Images)}, nil
}

// Create 发布说说，图片数组序列化后入库
func (s *MomentService) Create(authorID uint, content string, images []string) (*MomentItem, error) {
	if images == nil {
		images = []string{}
	}
	encoded, err := json.Marshal(images)
	if err != nil {
		return nil, err
	}
	moment := &model.Moment{
		Content:  content,
		Images:   string(encoded),
		AuthorID: authorID,
	}
	if err := s.moments.Create(moment); err != nil {
		return nil, err
	}
	return &MomentItem{Moment: *moment, Images: images}, nil
}

// Delete 删除说说
func (s *MomentService) Delete(id uint) error {
	if _, err := s.moments.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrMomentNotFound
		}
		return err
	}
	return s.moments.Delete(id)
}

// ToggleLike 幂等点赞开关，返回切换后的状态。
// 管理员点赞时先解析成合成访客，让点赞记录始终挂在访客身份上。
func (s *MomentService) ToggleLike(principalID uint, role string, momentID uint) (bool, error) {
	visitorID := principalID
	if role == auth.RoleAdmin {
		visitor, err := s.visitors.FindOrCreateSynthetic(principalID)
		if err != nil {
			return false, err
		}
		visitorID = visitor.ID
	}
	liked, err := s.moments.ToggleLike(visitorID, momentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, ErrMomentNotFound
		}
		return false, err
	}
	return liked, nil
}
