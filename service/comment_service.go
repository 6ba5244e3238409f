package service

import (
	"errors"

	"oolongblog/dao"
	"oolongblog/internal/auth"
	"oolongblog/model"

	"gorm.io/gorm"
)

var ErrInvalidTarget = errors.New("必须指定文章或说说")
var ErrParentNotFound = errors.New("父评论不存在")
var ErrNestedReply = errors.New("只能回复一级评论")
var ErrCommentNotFound = errors.New("评论不存在")

// 后台审核列表的封顶条数
const moderationListLimit = 100

// CommentService 两级评论线程
type CommentService struct {
	comments *dao.CommentDAO
	visitors *dao.VisitorDAO
}

// NewCommentService 创建一个新的 CommentService 实例
func NewCommentService(comments *dao.CommentDAO, visitors *dao.VisitorDAO) *CommentService {
	return &CommentService{comments: comments, visitors: visitors}
}

// ListThread 顶层评论（最新在前）带各自的回复（最早在前）
func (s *CommentService) ListThread(articleID, momentID *uint, page, pageSize int) ([]model.Comment, error) {
	return s.comments.ListThread(articleID, momentID, page, pageSize)
}

// ListAll 后台审核的平铺列表
func (s *CommentService) ListAll() ([]model.Comment, error) {
	return s.comments.ListAll(moderationListLimit)
}

// Create 发表评论或回复。目标必须恰好是一篇文章或一条说说；
// 管理员身份会解析成合成访客，让两种主体走同一条评论管道；
// 回复只允许挂在顶层评论下面。
func (s *CommentService) Create(principalID uint, role, content string, articleID, momentID, parentID *uint) (*model.Comment, error) {
	if (articleID == nil) == (momentID == nil) {
		return nil, ErrInvalidTarget
	}

	visitorID := principalID
	if role == auth.RoleAdmin {
		visitor, err := s.visitors.FindOrCreateSynthetic(principalID)
		if err != nil {
			return nil, err
		}
		visitorID = visitor.ID
	}

	if parentID != nil {
		parent, err := s.comments.GetByID(*parentID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrParentNotFound
			}
			return nil, err
		}
		if parent.ParentID != nil {
			return nil, ErrNestedReply
		}
	}

	comment := &model.Comment{
		Content:   content,
		VisitorID: visitorID,
		ArticleID: articleID,
		MomentID:  momentID,
		ParentID:  parentID,
	}
	if err := s.comments.Create(comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// Delete 删除评论，连同名下的回复
func (s *CommentService) Delete(id uint) error {
	if _, err := s.comments.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCommentNotFound
		}
		return err
	}
	return s.comments.DeleteWithReplies(id)
}
