package request

type CreateCommentRequest struct {
	Content   string `json:"content" binding:"required"`
	ArticleID *uint  `json:"articleId" binding:"omitempty,min=1"`
	MomentID  *uint  `json:"momentId" binding:"omitempty,min=1"`
	ParentID  *uint  `json:"parentId" binding:"omitempty,min=1"`
}

type ListCommentsQuery struct {
	Page      int   `form:"page" binding:"omitempty,min=1"`
	PageSize  int   `form:"pageSize" binding:"omitempty,min=1,max=50"`
	ArticleID *uint `form:"articleId" binding:"omitempty,min=1"`
	MomentID  *uint `form:"momentId" binding:"omitempty,min=1"`
}
