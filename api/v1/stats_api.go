package v1

import (
	"net/http"

	"oolongblog/dao"

	"github.com/gin-gonic/gin"
)

// StatsAPI 后台首页的聚合计数
type StatsAPI struct {
	stats *dao.StatsDAO
}

// NewStatsAPI 创建一个新的 StatsAPI 实例
func NewStatsAPI(stats *dao.StatsDAO) *StatsAPI {
	return &StatsAPI{stats: stats}
}

// Overview 各内容表的数量与总浏览/点赞
func (a *StatsAPI) Overview(c *gin.Context) {
	stats, err := a.stats.Overview()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, stats)
}
