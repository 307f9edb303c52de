package config

// Log 日志配置
type Log struct {
	Path   string `json:"path" yaml:"path"`     // 日志目录
	Level  string `json:"level" yaml:"level"`   // debug / info / warn / error
	Stdout bool   `json:"stdout" yaml:"stdout"` // 是否同时输出到标准输出
}
