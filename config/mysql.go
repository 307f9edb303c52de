package config

import "fmt"

// MySQL 数据库配置信息
type MySQL struct {
	Host       string   `json:"host" yaml:"host" validate:"required"`
	Port       int      `json:"port" yaml:"port" validate:"gt=0"`
	UserName   string   `json:"username" yaml:"username" validate:"required"`
	Password   string   `json:"password" yaml:"password"`
	Charset    string   `json:"charset" yaml:"charset"`
	Database   string   `json:"database" yaml:"database" validate:"required"`
	Replicas   []string `json:"replicas" yaml:"replicas"`       // 只读副本(其它服务器配置名称)
	GeneralLog bool     `json:"general_log" yaml:"general_log"` // 运行期间开启 general_log
}

func (m *MySQL) GetDsn() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=True&loc=Local",
		m.UserName, m.Password, m.Host, m.Port, m.Database, m.Charset)
}

func (m *MySQL) Addr() string {
	return fmt.Sprintf("%s:%d", m.Host, m.Port)
}
