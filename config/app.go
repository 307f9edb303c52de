package config

type App struct {
	Name    string `json:"name" yaml:"name"`
	Debug   bool   `json:"debug" yaml:"debug"`
	Workers int    `json:"workers" yaml:"workers" validate:"gt=0"` // 并发 worker 数
}
