package config

import (
	"log"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

type MarketplaceConfig struct {
	Env           string `yaml:"env"`
	HTTPServer    `yaml:"http_server"`
	MarketplaceDB `yaml:"marketplace_db"`
	RedisCache    `yaml:"redis_cache"`
	KafkaService  `yaml:"kafka-service"`
	LogConfig     `yaml:"log_config"`
	Migrations    `yaml:"migrations"`
}

type HTTPServer struct {
	Host        string `yaml:"host"`
	Port        string `yaml:"port"`
	MetricsPort string `yaml:"metrics_port"`
}

type MarketplaceDB struct {
	Dsn string `yaml:"dsn"`
}

type RedisCache struct {
	Addr       string `yaml:"addr"`
	Password   string `yaml:"password"`
	DB         int    `yaml:"db"`
	TTLSeconds int    `yaml:"ttl_seconds" env-default:"60"`
}

type KafkaService struct {
	Host       string `yaml:"host"`
	Port       string `yaml:"port"`
	Username   string `yaml:"username"`
	Password   string `yaml:"password"`
	Mechanism  string `yaml:"mechanism"`
	TLSEnabled bool   `yaml:"tls_enabled"`
}

type LogConfig struct {
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
	LogOutput string `yaml:"log_output"`
}

type Migrations struct {
	Path string `yaml:"path"`
}

func MustLoad() *MarketplaceConfig {
	configPath := os.Getenv("MARKETPLACE_CONFIG_PATH")

	if configPath == "" {
		log.Fatalf("MARKETPLACE_CONFIG_PATH was not found\n")
	}

	if _, err := os.Stat(configPath); err != nil {
		log.Fatalf("failed to find config file: %v\n", err)
	}

	var cfg MarketplaceConfig
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("failed to read config file: %v", err)
	}

	return &cfg
}
