package config

import (
	"flag"
	"log"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env         string      `yaml:"env" env:"ENV" env-default:"production"`
	PGSQL       PQSQL       `yaml:"pgsql" env-required:"true"`
	HTTPServer  HTTPServer  `yaml:"http_server" env-required:"true"`
	Redis       Redis       `yaml:"redis"`
	JWT         JWT         `yaml:"jwt"`
	MinIO       MinIO       `yaml:"minio"`
	Media       Media       `yaml:"media"`
	Leaderboard Leaderboard `yaml:"leaderboard"`
	Retention   Retention   `yaml:"retention"`
}

type HTTPServer struct {
	Address string `yaml:"address" env:"HTTP_ADDRESS" env-default:"localhost:8080"`
}

type PQSQL struct {
	Host     string `yaml:"host" env-default:"localhost"`
	Port     string `yaml:"port" env-default:"5432"`
	User     string `yaml:"user" env-default:"postgres"`
	Password string `yaml:"password" env-default:"password"`
	DBName   string `yaml:"dbname" env-default:"bragboard_db"`
	SSLMode  string `yaml:"sslmode" env-default:"disable"`
}

type Redis struct {
	Address  string `yaml:"address" env-default:"localhost:6379"`
	Password string `yaml:"password" env-default:""`
	DB       int    `yaml:"db" env-default:"0"`
}

type JWT struct {
	Secret           string `yaml:"secret" env:"JWT_SECRET" env-default:"super_secret_key"`
	AccessTTLMinutes int    `yaml:"access_ttl_minutes" env-default:"30"`
	RefreshTTLDays   int    `yaml:"refresh_ttl_days" env-default:"7"`
}

type MinIO struct {
	Endpoint        string `yaml:"endpoint" env-default:"localhost:9000"`
	AccessKeyID     string `yaml:"access_key_id" env:"MINIO_ACCESS_KEY"`
	SecretAccessKey string `yaml:"secret_access_key" env:"MINIO_SECRET_KEY"`
	BucketName      string `yaml:"bucket_name" env-default:"bragboard-media"`
	UseSSL          bool   `yaml:"use_ssl" env-default:"false"`
}

type Media struct {
	MaxFileSize      int64    `yaml:"max_file_size" env-default:"5242880"`
	PresignedURLTTL  int      `yaml:"presigned_url_ttl" env-default:"900"`
	AllowedMimeTypes []string `yaml:"allowed_mime_types" env-default:"image/jpeg,image/png,image/gif"`
}

// Leaderboard holds the scoring weights and default list size. The weights have
// changed between product revisions, so they are configuration rather than code.
type Leaderboard struct {
	SentWeight     int `yaml:"sent_weight" env-default:"10"`
	ReceivedWeight int `yaml:"received_weight" env-default:"15"`
	TaggedWeight   int `yaml:"tagged_weight" env-default:"5"`
	CommentWeight  int `yaml:"comment_weight" env-default:"2"`
	DefaultTopN    int `yaml:"default_top_n" env-default:"5"`
}

type Retention struct {
	PurgeAfterDays  int `yaml:"purge_after_days" env-default:"30"`
	IntervalMinutes int `yaml:"interval_minutes" env-default:"60"`
}

func MustLoad() *Config {
	var configPath string

	configPath = os.Getenv("CONFIG_PATH")

	if configPath == "" {
		flags := flag.String("config", "", "Path to config file")
		flag.Parse()
		configPath = *flags

		if configPath == "" {
			log.Fatal("config path must be provided")
		}
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		log.Fatalf("config file does not exist at path: %s", configPath)
	}

	var cfg Config

	err := cleanenv.ReadConfig(configPath, &cfg)

	if err != nil {
		log.Fatalf("failed to read config: %s", err)
	}

	return &cfg
}
