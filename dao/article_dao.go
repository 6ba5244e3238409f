package dao

import (
	"oolongblog/model"

	"gorm.io/gorm"
)

// ArticleFilter 文章列表的过滤条件，Page 从 1 开始
type ArticleFilter struct {
	Page     int
	PageSize int
	Category string
	Keyword  string
	Status   *int
}

type ArticleDAO struct {
	db   *gorm.DB
	tags *TagDAO
}

// NewArticleDAO 创建一个新的 ArticleDAO 实例
func NewArticleDAO(db *gorm.DB, tags *TagDAO) *ArticleDAO {
	return &ArticleDAO{db: db, tags: tags}
}

func (dao *ArticleDAO) listQuery(f ArticleFilter) *gorm.DB {
	q := dao.db.Model(&model.Article{})
	if f.Category != "" {
		q = q.Where("category = ?", f.Category)
	}
	if f.Status != nil {
		q = q.Where("status = ?", *f.Status)
	}
	if f.Keyword != "" {
		kw := "%" + f.Keyword + "%"
		q = q.Where("title LIKE ? OR excerpt LIKE ?", kw, kw)
	}
	return q
}

// List 返回匹配总数和当前页数据，最新在前
func (dao *ArticleDAO) List(f ArticleFilter) (int64, []model.Article, error) {
	var total int64
	if err := dao.listQuery(f).Count(&total).Error; err != nil {
		return 0, nil, err
	}

	var articles []model.Article
	err := dao.listQuery(f).
		Preload("Author", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "nickname", "avatar")
		}).
		Preload("Tags").
		Order("created_at DESC").
		Offset((f.Page - 1) * f.PageSize).
		Limit(f.PageSize).
		Find(&articles).Error
	return total, articles, err
}

// GetByID 查询单篇文章，带作者和标签
func (dao *ArticleDAO) GetByID(id uint) (*model.Article, error) {
	var article model.Article
	err := dao.db.
		Preload("Author", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "nickname", "avatar")
		}).
		Preload("Tags").
		First(&article, id).Error
	if err != nil {
		return nil, err
	}
	return &article, nil
}

// IncrementViews 浏览数 +1，无鉴权 fire-and-forget
func (dao *ArticleDAO) IncrementViews(id uint) error {
	return dao.db.Model(&model.Article{}).Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + 1")).Error
}

// Create 写入文章并在同一事务里解析标签
func (dao *ArticleDAO) Create(article *model.Article, tagNames []string) error {
	return dao.db.Transaction(func(tx *gorm.DB) error {
		tags, err := dao.tags.ResolveNames(tx, tagNames)
		if err != nil {
			return err
		}
		article.Tags = tags
		return tx.Create(article).Error
	})
}

// Update 更新文章字段；tagNames 非 nil 时整体替换标签关联
func (dao *ArticleDAO) Update(id uint, updates map[string]interface{}, tagNames *[]string) error {
	return dao.db.Transaction(func(tx *gorm.DB) error {
		if len(updates) > 0 {
			if err := tx.Model(&model.Article{}).Where("id = ?", id).Updates(updates).Error; err != nil {
				return err
			}
		}
		if tagNames != nil {
			tags, err := dao.tags.ResolveNames(tx, *tagNames)
			if err != nil {
				return err
			}
			article := model.Article{ID: id}
			if err := tx.Model(&article).Association("Tags").Replace(tags); err != nil {
				return err
			}
		}
		return nil
	})
}

// Delete 删除文章及其评论和标签关联
func (dao *ArticleDAO) Delete(id uint) error {
	return dao.db.Transaction(func(tx *gorm.DB) error {
		article := model.Article{ID: id}
		if err := tx.Model(&article).Association("Tags").Clear(); err != nil {
			return err
		}
		if err := tx.Where("article_id = ?", id).Delete(&model.Comment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Article{}, id).Error
	})
}
