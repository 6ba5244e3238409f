package model

// Setting 站点配置，key-value 字符串对，
// 复合字段（社交链接、时间线）以 JSON 字符串存放在 Value 里
type Setting struct {
	Key   string `gorm:"primaryKey;size:100" json:"key"`
	Value string `gorm:"type:text" json:"value"`
}
