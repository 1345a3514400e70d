package configs

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Port           string
	AppEnv         string
	APIBaseURL     string
	APITimeout     time.Duration
	APIToken       string
	DBDriver       string
	DBSource       string
	AMQPURL        string
	AMQPExchange   string
	CORSOrigins    []string
	CatalogRetries int
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PORT", "8000")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("API_BASE_URL", "http://localhost:5000/api")
	v.SetDefault("API_TIMEOUT", "10s")
	v.SetDefault("API_TOKEN", "")
	v.SetDefault("DB_DRIVER", "sqlite")
	v.SetDefault("DB_SOURCE", "pdv.db")
	v.SetDefault("AMQP_URL", "")
	v.SetDefault("AMQP_EXCHANGE", "pdv_events")
	v.SetDefault("CORS_ORIGINS", "*")
	v.SetDefault("CATALOG_RETRIES", 3)
}

// LoadConfig reads .env (optional) and the process environment.
func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("ℹ️ no .env file, using environment")
	}
	return FromViper(newViper())
}

func newViper() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()
	return v
}

// FromViper builds a Config from an already populated viper instance.
func FromViper(v *viper.Viper) *Config {
	timeout := v.GetDuration("API_TIMEOUT")
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	var origins []string
	for _, o := range strings.Split(v.GetString("CORS_ORIGINS"), ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	return &Config{
		Port:           v.GetString("PORT"),
		AppEnv:         v.GetString("APP_ENV"),
		APIBaseURL:     strings.TrimRight(v.GetString("API_BASE_URL"), "/"),
		APITimeout:     timeout,
		APIToken:       v.GetString("API_TOKEN"),
		DBDriver:       strings.ToLower(v.GetString("DB_DRIVER")),
		DBSource:       v.GetString("DB_SOURCE"),
		AMQPURL:        v.GetString("AMQP_URL"),
		AMQPExchange:   v.GetString("AMQP_EXCHANGE"),
		CORSOrigins:    origins,
		CatalogRetries: v.GetInt("CATALOG_RETRIES"),
	}
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}
