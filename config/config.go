package config

import (
	"fmt"
	"io/ioutil"
	"math/rand"
	"sort"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v2"
)

// Config 配置信息
type Config struct {
	App      *App              `json:"app" yaml:"app" validate:"required"`
	Log      *Log              `json:"log" yaml:"log" validate:"required"`
	MySQL    map[string]*MySQL `json:"mysql" yaml:"mysql" validate:"required,min=1,dive,required"`
	Redis    *Redis            `json:"redis" yaml:"redis"`
	RabbitMQ *RabbitMQ         `json:"rabbitmq" yaml:"rabbitmq"`
	Prepare  *Prepare          `json:"prepare" yaml:"prepare" validate:"required"`
	Run      *Run              `json:"run" yaml:"run" validate:"required"`
	Audit    *Audit            `json:"audit" yaml:"audit" validate:"required"`
}

// ReadConfig 读取并校验配置文件
func ReadConfig(filename string) (*Config, error) {
	content, err := ioutil.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	return Parse(content)
}

// Parse 解析 yaml 配置内容
func Parse(content []byte) (*Config, error) {
	conf := &Config{}
	if err := yaml.Unmarshal(content, conf); err != nil {
		return nil, fmt.Errorf("解析 config.yaml 读取错误: %w", err)
	}

	conf.applyDefaults()

	if err := conf.Validate(); err != nil {
		return nil, err
	}

	return conf, nil
}

// Validate 校验配置项
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config validate: %w", err)
	}

	for name, server := range c.MySQL {
		for _, replica := range server.Replicas {
			if _, ok := c.MySQL[replica]; !ok {
				return fmt.Errorf("mysql [%s] replica [%s] is not configured", name, replica)
			}
		}
	}

	return nil
}

// Debug 调试模式
func (c *Config) Debug() bool {
	return c.App.Debug
}

func (c *Config) GetLogPath() string {
	return c.Log.Path
}

// ServerNames 已配置的 MySQL 服务器名称(有序)
func (c *Config) ServerNames() []string {
	names := make([]string, 0, len(c.MySQL))
	for name := range c.MySQL {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// PickMySQL 选择 MySQL 服务器
// 指定 name 时直接使用该配置, 否则在所有配置中随机选择一个
func (c *Config) PickMySQL(r *rand.Rand, name string) (string, *MySQL, error) {
	if name != "" {
		server, ok := c.MySQL[name]
		if !ok {
			return "", nil, fmt.Errorf("mysql server [%s] is not configured", name)
		}
		return name, server, nil
	}

	names := c.ServerNames()
	if len(names) == 0 {
		return "", nil, fmt.Errorf("no mysql server configured")
	}

	name = names[r.Intn(len(names))]

	return name, c.MySQL[name], nil
}

// ReplicasOf 返回服务器的只读副本配置
func (c *Config) ReplicasOf(server *MySQL) []*MySQL {
	replicas := make([]*MySQL, 0, len(server.Replicas))
	for _, name := range server.Replicas {
		if replica, ok := c.MySQL[name]; ok {
			replicas = append(replicas, replica)
		}
	}

	return replicas
}

func (c *Config) applyDefaults() {
	if c.App == nil {
		c.App = &App{}
	}
	if c.App.Name == "" {
		c.App.Name = "hongbao"
	}
	if c.App.Workers <= 0 {
		c.App.Workers = 1
	}

	if c.Log == nil {
		c.Log = &Log{Stdout: true}
	}
	if c.Log.Path == "" {
		c.Log.Path = "./log"
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}

	for _, server := range c.MySQL {
		if server == nil {
			continue
		}
		if server.Port == 0 {
			server.Port = 3306
		}
		if server.Charset == "" {
			server.Charset = "utf8mb4"
		}
	}

	if c.RabbitMQ != nil && c.RabbitMQ.ExchangeName == "" {
		c.RabbitMQ.ExchangeName = "hongbao"
	}

	if c.Prepare == nil {
		c.Prepare = &Prepare{}
	}
	c.Prepare.applyDefaults()

	if c.Run == nil {
		c.Run = &Run{}
	}
	c.Run.applyDefaults()

	if c.Audit == nil {
		c.Audit = &Audit{}
	}
}
