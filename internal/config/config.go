package config

import (
	"github.com/spf13/viper"
)

// Config is populated from environment variables; in a cluster deployment the
// DB/Redis/queue settings come in per pod.
type Config struct {
	DBHost             string `mapstructure:"DB_HOST"`
	DBPort             string `mapstructure:"DB_PORT"`
	DBUser             string `mapstructure:"DB_USER"`
	DBPassword         string `mapstructure:"DB_PASSWORD"`
	DBName             string `mapstructure:"DB_NAME"`
	ServerPort         string `mapstructure:"SERVER_PORT"`
	RedisAddr          string `mapstructure:"REDIS_ADDR"`
	AWSRegion          string `mapstructure:"AWS_REGION"`
	WorkdaySQSQueueURL string `mapstructure:"WORKDAY_SQS_QUEUE_URL"`
	EmailSQSQueueURL   string `mapstructure:"EMAIL_SQS_QUEUE_URL"`
	AWSEndpoint        string `mapstructure:"AWS_ENDPOINT"`
	HRExportURL        string `mapstructure:"HR_EXPORT_URL"`
	MailDomain         string `mapstructure:"MAIL_DOMAIN"`
	SenderEmail        string `mapstructure:"SENDER_EMAIL"`
	IsLocalDev         bool   `mapstructure:"IS_LOCAL_DEV"`
}

// LoadConfig reads configuration from file or environment variables.
func LoadConfig() (config Config, err error) {
	viper.SetDefault("DB_HOST", "db")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_USER", "user")
	viper.SetDefault("DB_PASSWORD", "password")
	viper.SetDefault("DB_NAME", "timeclock_db")
	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("REDIS_ADDR", "redis:6379")
	viper.SetDefault("AWS_REGION", "us-east-1") // Default region for AWS services
	viper.SetDefault("WORKDAY_SQS_QUEUE_URL", "http://localstack:4566/000000000000/workday-queue")
	viper.SetDefault("EMAIL_SQS_QUEUE_URL", "http://localstack:4566/000000000000/email-queue")
	viper.SetDefault("AWS_ENDPOINT", "http://localstack:4566")
	viper.SetDefault("HR_EXPORT_URL", "http://localhost:8081/")
	viper.SetDefault("MAIL_DOMAIN", "timeclock-service.com")
	viper.SetDefault("SENDER_EMAIL", "summary@timeclock-service.com")
	viper.SetDefault("IS_LOCAL_DEV", false)

	// Read in environment variables that match the keys.
	viper.AutomaticEnv()

	err = viper.Unmarshal(&config)
	return
}
