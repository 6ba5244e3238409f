package logger

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Logger 全局日志实例
var Logger = logrus.New()

// Init 配置日志级别和格式；release 模式下输出 JSON
func Init(release bool) {
	Logger.SetOutput(os.Stdout)
	if release {
		Logger.SetLevel(logrus.InfoLevel)
		Logger.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: "2006-01-02 15:04:05",
		})
		return
	}
	Logger.SetLevel(logrus.DebugLevel)
	Logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})
}
