package config

import (
	"fmt"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

type HTTPConfig struct {
	Host         string
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

type MongoConfig struct {
	URI              string
	Database         string
	ConnectTimeout   time.Duration
	SelectTimeout    time.Duration
	MaxPoolSize      uint64
	OperationTimeout time.Duration
}

type StorageConfig struct {
	UploadsDir string
	ImagesDir  string
}

type AdminConfig struct {
	Name     string
	Email    string
	Password string
}

type MailConfig struct {
	ResendAPIKey     string
	NotificationFrom string
	NotificationTo   string
	ReplyFrom        string
	AdminPanelURL    string
}

type AppConfig struct {
	Environment      string
	HTTP             HTTPConfig
	Mongo            MongoConfig
	Storage          StorageConfig
	Admin            AdminConfig
	Mail             MailConfig
	AllowCORSOrigins []string
}

func Load() (*AppConfig, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	v.SetEnvPrefix("MECHGENZ")
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("load config file: %w", err)
		}
	}

	var cfg AppConfig
	if err := v.Unmarshal(&cfg, func(dc *mapstructure.DecoderConfig) {
		dc.TagName = "mapstructure"
		dc.DecodeHook = mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		)
	}); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment", "development")

	v.SetDefault("http.host", "0.0.0.0")
	v.SetDefault("http.port", 8000)
	v.SetDefault("http.readtimeout", "10s")
	v.SetDefault("http.writetimeout", "30s")
	v.SetDefault("http.idletimeout", "60s")

	v.SetDefault("mongo.uri", "mongodb://127.0.0.1:27017")
	v.SetDefault("mongo.database", "MECHGENZ")
	v.SetDefault("mongo.connecttimeout", "10s")
	v.SetDefault("mongo.selecttimeout", "10s")
	v.SetDefault("mongo.maxpoolsize", 10)
	v.SetDefault("mongo.operationtimeout", "10s")

	v.SetDefault("storage.uploadsdir", "uploads")
	v.SetDefault("storage.imagesdir", "public/images")

	v.SetDefault("admin.name", "MECHGENZ Admin")
	v.SetDefault("admin.email", "mechgenz4@gmail.com")
	v.SetDefault("admin.password", "mechgenz4")

	v.SetDefault("mail.notificationfrom", "MECHGENZ Contact Form <mechgenz4@gmail.com>")
	v.SetDefault("mail.notificationto", "mechgenz4@gmail.com")
	v.SetDefault("mail.replyfrom", "noreply@resend.dev")
	v.SetDefault("mail.adminpanelurl", "http://localhost:5173/admin/user-inquiries")

	v.SetDefault("allowcorsorigins", "http://localhost:5173,http://localhost:3000,https://mechgenz.com")
}
