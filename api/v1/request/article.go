package request

type CreateArticleRequest struct {
	Title    string   `json:"title" binding:"required"`
	Excerpt  string   `json:"excerpt" binding:"required"`
	Content  string   `json:"content" binding:"required"`
	Cover    string   `json:"cover" binding:"omitempty,url"`
	Category string   `json:"category" binding:"required"`
	Tags     []string `json:"tags"`
	Status   *int     `json:"status" binding:"omitempty,min=0,max=1"`
}

type UpdateArticleRequest struct {
	Title    *string   `json:"title" binding:"omitempty,min=1"`
	Excerpt  *string   `json:"excerpt" binding:"omitempty,min=1"`
	Content  *string   `json:"content" binding:"omitempty,min=1"`
	Cover    *string   `json:"cover" binding:"omitempty,url"`
	Category *string   `json:"category" binding:"omitempty,min=1"`
	Tags     *[]string `json:"tags"`
	Status   *int      `json:"status" binding:"omitempty,min=0,max=1"`
}

type ListArticlesQuery struct {
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"pageSize" binding:"omitempty,min=1,max=100"`
	Category string `form:"category"`
	Status   *int   `form:"status" binding:"omitempty,min=0,max=1"`
	Keyword  string `form:"keyword"`
}
