package utils

import (
	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Crypto   CryptoConfig
	Payment  PaymentConfig
	Storage  StorageConfig
}

type AppConfig struct {
	Name    string
	Port    string
	Debug   bool
	LogPath string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	MaxConns int32
}

// CryptoConfig carries the email-encryption key material (hex encoded) and
// the bcrypt cost. Key and IV are required; startup aborts without them.
type CryptoConfig struct {
	EncryptionKey string
	EncryptionIV  string
	BcryptCost    int
}

type PaymentConfig struct {
	StripeSecretKey string
	Currency        string
}

type StorageConfig struct {
	Bucket   string
	Region   string
	Key      string
	Secret   string
	Endpoint string
	BaseURL  string
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("DB_MAX_CONNS", 10)
	viper.SetDefault("BCRYPT_COST", 10)
	viper.SetDefault("PAYMENT_CURRENCY", "usd")
	viper.SetDefault("S3_REGION", "us-east-1")
	viper.SetDefault("LOG_PATH", "logs/")

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	viper.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:    viper.GetString("APP_NAME"),
			Port:    viper.GetString("PORT"),
			Debug:   viper.GetBool("DEBUG"),
			LogPath: viper.GetString("LOG_PATH"),
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			Name:     viper.GetString("DB_NAME"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASS"),
			MaxConns: viper.GetInt32("DB_MAX_CONNS"),
		},
		Crypto: CryptoConfig{
			EncryptionKey: viper.GetString("ENCRYPTION_KEY"),
			EncryptionIV:  viper.GetString("ENCRYPTION_IV"),
			BcryptCost:    viper.GetInt("BCRYPT_COST"),
		},
		Payment: PaymentConfig{
			StripeSecretKey: viper.GetString("STRIPE_SECRET_KEY"),
			Currency:        viper.GetString("PAYMENT_CURRENCY"),
		},
		Storage: StorageConfig{
			Bucket:   viper.GetString("S3_BUCKET"),
			Region:   viper.GetString("S3_REGION"),
			Key:      viper.GetString("S3_KEY"),
			Secret:   viper.GetString("S3_SECRET"),
			Endpoint: viper.GetString("S3_ENDPOINT"),
			BaseURL:  viper.GetString("S3_URL"),
		},
	}

	return config, nil
}
