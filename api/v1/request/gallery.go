package request

type CreateImageRequest struct {
	URL         string   `json:"url" binding:"required,url"`
	Thumbnail   string   `json:"thumbnail" binding:"omitempty,url"`
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description"`
	Category    string   `json:"category" binding:"required"`
	Tags        []string `json:"tags"`
}

type UpdateImageRequest struct {
	URL         *string   `json:"url" binding:"omitempty,url"`
	Thumbnail   *string   `json:"thumbnail" binding:"omitempty,url"`
	Title       *string   `json:"title" binding:"omitempty,min=1"`
	Description *string   `json:"description"`
	Category    *string   `json:"category" binding:"omitempty,min=1"`
	Tags        *[]string `json:"tags"`
}

type ListGalleryQuery struct {
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"pageSize" binding:"omitempty,min=1,max=50"`
	Category string `form:"category"`
}
