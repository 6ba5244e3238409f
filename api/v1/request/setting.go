package request

type SettingItem struct {
	Key   string `json:"key" binding:"required"`
	Value string `json:"value"`
}
