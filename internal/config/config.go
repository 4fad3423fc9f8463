// internal/config/config.go
package config

import (
	"log"

	"github.com/spf13/viper"
)

type Config struct {
	Database struct {
		URL string `mapstructure:"url"`
	} `mapstructure:"database"`
	Server struct {
		Port string `mapstructure:"port"`
	} `mapstructure:"server"`
	JWT struct {
		SecretKey string `mapstructure:"secret_key"`
	} `mapstructure:"jwt"`
	Auth struct {
		MaxLoginAttempts int `mapstructure:"max_login_attempts"`
		LockoutSeconds   int `mapstructure:"lockout_seconds"`
	} `mapstructure:"auth"`
	CORS struct {
		AllowedOrigins []string `mapstructure:"allowed_origins"`
	} `mapstructure:"cors"`
	Log struct {
		Level string `mapstructure:"level"`
	} `mapstructure:"log"`
}

var Cfg Config

func LoadConfig(path string) error {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(path)
	viper.AddConfigPath(".")

	viper.SetEnvPrefix("APP")
	viper.AutomaticEnv()
	viper.BindEnv("database.url", "DATABASE_URL")
	viper.BindEnv("server.port", "PORT")
	viper.BindEnv("jwt.secret_key", "JWT_SECRET_KEY")
	viper.BindEnv("cors.allowed_origins", "CORS_ORIGINS")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Println("Warning: Config file not found. Using default settings or environment variables if available.")
		} else {
			log.Printf("Error reading config file: %s\n", err)
			return err
		}
	}

	if err := viper.Unmarshal(&Cfg); err != nil {
		log.Printf("Error unmarshalling config: %s\n", err)
		return err
	}

	if Cfg.Server.Port == "" {
		log.Printf("Server port not set, using default '%s'", DefaultServerPort)
		Cfg.Server.Port = DefaultServerPort
	}
	if Cfg.Database.URL == "" {
		log.Println("Warning: Database URL is not set in config.")
	}
	if Cfg.JWT.SecretKey == "" {
		// Development fallback only. Set APP_JWT_SECRET_KEY in production.
		log.Println("Warning: JWT secret key not set, using insecure development default.")
		Cfg.JWT.SecretKey = DefaultJWTSecretKey
	}
	if Cfg.Auth.MaxLoginAttempts <= 0 {
		Cfg.Auth.MaxLoginAttempts = DefaultMaxLoginAttempts
	}
	if Cfg.Auth.LockoutSeconds <= 0 {
		Cfg.Auth.LockoutSeconds = DefaultLockoutSeconds
	}
	if len(Cfg.CORS.AllowedOrigins) == 0 {
		Cfg.CORS.AllowedOrigins = []string{"*"}
	}
	if Cfg.Log.Level == "" {
		Cfg.Log.Level = DefaultLogLevel
	}

	log.Println("Config loaded successfully")
	log.Printf("Server Port: %s", Cfg.Server.Port)
	log.Printf("Max Login Attempts: %d", Cfg.Auth.MaxLoginAttempts)

	return nil
}
