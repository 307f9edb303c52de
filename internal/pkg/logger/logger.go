package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"

	"go-hongbao/config"
)

// New 创建 worker 独立的日志实例
// 日志写入 <path>/<name>.log, 可同时输出到标准输出
func New(conf *config.Log, name string) (*logrus.Logger, func(), error) {
	if err := os.MkdirAll(conf.Path, 0755); err != nil {
		return nil, nil, err
	}

	file, err := os.OpenFile(filepath.Join(conf.Path, name+".log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, err
	}

	var out io.Writer = file
	if conf.Stdout {
		out = io.MultiWriter(file, os.Stdout)
	}

	log := logrus.New()
	log.SetOutput(out)
	log.SetLevel(ParseLevel(conf.Level))
	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05.000",
	})

	return log, func() { _ = file.Close() }, nil
}

// WorkerName 日志文件名称
func WorkerName(app string, index int) string {
	if index < 0 {
		return app
	}
	return fmt.Sprintf("%s_%d", app, index)
}

func ParseLevel(value string) logrus.Level {
	level, err := logrus.ParseLevel(strings.TrimSpace(value))
	if err != nil {
		return logrus.InfoLevel
	}
	return level
}
