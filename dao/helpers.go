package dao

import "gorm.io/gorm"

// countGrouped 按外键列聚合行数，给列表页拼 commentCount/likeCount 用
func countGrouped(db *gorm.DB, mdl interface{}, column string, ids []uint) (map[uint]int64, error) {
	counts := make(map[uint]int64, len(ids))
	if len(ids) == 0 {
		return counts, nil
	}

	type row struct {
		ID    uint
		Total int64
	}
	var rows []row
	err := db.Model(mdl).
		Select(column+" AS id, COUNT(*) AS total").
		Where(column+" IN ?", ids).
		Group(column).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, r := range rows {
		counts[r.ID] = r.Total
	}
	return counts, nil
}
