package config

import (
	"errors"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	Server      struct {
		Port            string `env:"PORT" envDefault:"3000"`
		ReadTimeout     int    `env:"READ_TIMEOUT" envDefault:"10"`
		WriteTimeout    int    `env:"WRITE_TIMEOUT" envDefault:"15"`
		IdleTimeout     int    `env:"IDLE_TIMEOUT" envDefault:"60"`
		ShutdownTimeout int    `env:"SHUTDOWN_TIMEOUT" envDefault:"10"`
	} `envPrefix:"SERVER_"`
	Database struct {
		DSN            string `env:"DSN,required"`
		ConnectTimeout int    `env:"CONNECT_TIMEOUT" envDefault:"10"`
		QueryTimeout   int    `env:"QUERY_TIMEOUT" envDefault:"10"`
		MaxOpenConns   int    `env:"MAX_OPEN_CONNS" envDefault:"10"`
		MaxIdleConns   int    `env:"MAX_IDLE_CONNS" envDefault:"10"`
		MaxIdleTime    int    `env:"MAX_IDLE_TIME" envDefault:"60"`
	} `envPrefix:"DATABASE_"`
	Storage struct {
		// 勤務表全体を 1 文書として保存するときのキー。フォーマットを変えるときはキーも変える
		Key string `env:"KEY" envDefault:"staff-sync-data-v1"`
	} `envPrefix:"STORAGE_"`
	Auth struct {
		// 閲覧用・編集用の共有パスワード。デモ値のまま運用しないこと
		ViewPassword     string `env:"VIEW_PASSWORD" envDefault:"1111"`
		EditPassword     string `env:"EDIT_PASSWORD" envDefault:"9999"`
		LockoutThreshold int    `env:"LOCKOUT_THRESHOLD" envDefault:"5"`
		LockoutWindow    int    `env:"LOCKOUT_WINDOW" envDefault:"300"` // 秒
	} `envPrefix:"AUTH_"`
	JWT struct {
		Expiration int    `env:"EXPIRATION" envDefault:"43200"` // 12 時間
		Secret     string `env:"SECRET,required"`
	} `envPrefix:"JWT_"`
	Gemini struct {
		APIKey  string `env:"API_KEY,required"`
		Model   string `env:"MODEL" envDefault:"gemini-2.5-flash"`
		Timeout int    `env:"TIMEOUT" envDefault:"60"`
	} `envPrefix:"GEMINI_"`
	Email struct {
		DigestTo string `env:"DIGEST_TO"` // 週次ダイジェストの既定の宛先
		SMTP     struct {
			Username    string `env:"USERNAME,required"`
			Password    string `env:"PASSWORD,required"`
			Host        string `env:"HOST,required"`
			Port        int    `env:"PORT" envDefault:"465"`
			DialTimeout int    `env:"DIAL_TIMEOUT" envDefault:"10"`
		} `envPrefix:"SMTP_"`
	} `envPrefix:"EMAIL_"`
	RabbitMQ struct {
		DSN            string `env:"DSN,required"`
		PublishTimeout int    `env:"PUBLISH_TIMEOUT" envDefault:"10"`
	} `envPrefix:"RABBITMQ_"`
	Redis struct {
		Host                string `env:"HOST" envDefault:"localhost"`
		Port                int    `env:"PORT" envDefault:"6379"`
		Password            string `env:"PASSWORD,required"`
		OperationExpiration int    `env:"OPERATION_EXPIRATION" envDefault:"10"`
	} `envPrefix:"REDIS_"`
}

func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		aggErr := env.AggregateError{}
		if ok := errors.As(err, &aggErr); ok {
			// ログを読みやすくするため最初のエラーだけ返す
			return nil, aggErr.Errors[0]
		}
	}

	return cfg, nil
}
