package config

import (
	"github.com/GDVFox/zigzin/lexer_node/external"
	"github.com/GDVFox/zigzin/util"
	"github.com/GDVFox/zigzin/util/httplib"
)

// Conf глобальный конфиг синглтон.
var Conf = NewConfig()

// Config конфигурация сервиса.
type Config struct {
	HTTP    *httplib.HTTPConfig     `yaml:"http"`
	Logging *util.LoggingConfig     `yaml:"logging"`
	Storage *external.StorageConfig `yaml:"storage"`
}

// NewConfig создает конфиг с настройками по-умолчанию
func NewConfig() *Config {
	return &Config{
		HTTP:    httplib.NewHTTPConfig(),
		Logging: util.NewLoggingConfig(),
		Storage: external.NewStorageConfig(),
	}
}
