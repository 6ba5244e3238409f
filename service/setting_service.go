package service

import (
	"oolongblog/dao"
	"oolongblog/model"
)

// 站点配置默认值，数据库里的行覆盖同名键
var defaultSettings = map[string]string{
	"siteTitle":          "My Blog",
	"siteDescription":    "一个简洁的个人博客系统",
	"siteKeywords":       "博客,技术,分享",
	"footerText":         "",
	"announcement":       "",
	"profileNickname":    "",
	"profileTitle":       "",
	"profileBio":         "",
	"profileSkills":      "",
	"profileHobbies":     "",
	"profileSocialLinks": "[]",
	"timelineItems":      "[]",
	"footerSiteName":     "My Blog",
	"footerDescription":  "",
}

// 可以匿名访问的配置键白名单
var publicSettingKeys = []string{
	"siteTitle", "siteDescription", "siteKeywords",
	"footerText", "announcement",
	"profileNickname", "profileTitle", "profileBio", "profileSkills",
	"profileHobbies", "profileSocialLinks", "timelineItems",
	"footerSiteName", "footerDescription",
}

// SettingService 站点配置的 key-value 存取
type SettingService struct {
	settings *dao.SettingDAO
}

// NewSettingService 创建一个新的 SettingService 实例
func NewSettingService(settings *dao.SettingDAO) *SettingService {
	return &SettingService{settings: settings}
}

func (s *SettingService) merged() (map[string]string, error) {
	rows, err := s.settings.All()
	if err != nil {
		return nil, err
	}
	result := make(map[string]string, len(defaultSettings))
	for k, v := range defaultSettings {
		result[k] = v
	}
	for _, row := range rows {
		result[row.Key] = row.Value
	}
	return result, nil
}

// Public 白名单内的公开配置
func (s *SettingService) Public() (map[string]string, error) {
	all, err := s.merged()
	if err != nil {
		return nil, err
	}
	public := make(map[string]string, len(publicSettingKeys))
	for _, key := range publicSettingKeys {
		public[key] = all[key]
	}
	return public, nil
}

// All 后台用的完整配置
func (s *SettingService) All() (map[string]string, error) {
	return s.merged()
}

// Set 写入单个配置项
func (s *SettingService) Set(key, value string) (*model.Setting, error) {
	return s.settings.Upsert(key, value)
}

// SetMany 一个事务里批量写入配置
func (s *SettingService) SetMany(items []model.Setting) error {
	return s.settings.UpsertMany(items)
}
