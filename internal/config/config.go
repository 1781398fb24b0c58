// Package config provides the structures and loading routine for the
// application configuration.
package config

import (
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config is the top-level structure holding all application settings.
type Config struct {
	Env             string `yaml:"env" env:"ENV" env-default:"local"`
	HTTPServer      `yaml:"http_server"`
	RedisConnection `yaml:"redis_connection"`
	BackendAPI      `yaml:"backend_api"`
	SessionStore    `yaml:"session_store"`
	ContactForm     `yaml:"contact_form"`
}

// HTTPServer holds the settings of the web server itself.
type HTTPServer struct {
	Address     string        `yaml:"address" env-default:":8080"`
	Timeout     time.Duration `yaml:"timeout" env-default:"10s"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env-default:"60s"`
}

// RedisConnection holds the settings for the redis connection backing
// the session store.
type RedisConnection struct {
	Address     string        `yaml:"address" env-default:"localhost:6379"`
	Password    string        `yaml:"password" env:"REDIS_PASSWORD"`
	User        string        `yaml:"user"`
	DB          int           `yaml:"db" env-default:"0"`
	MaxRetries  int           `yaml:"max_retries" env-default:"3"`
	DialTimeout time.Duration `yaml:"dial_timeout" env-default:"5s"`
	Timeout     time.Duration `yaml:"timeout" env-default:"5s"`
}

// BackendAPI holds the settings for the remote Success Tech Lab REST API
// that owns all persistence and business rules.
type BackendAPI struct {
	BaseURL string        `yaml:"base_url" env:"BACKEND_API_URL" env-default:"https://success-backnd.onrender.com/api"`
	Timeout time.Duration `yaml:"timeout" env-default:"10s"`
}

// SessionStore holds cookie and lifetime settings for browser sessions.
type SessionStore struct {
	CookieName string        `yaml:"cookie_name" env-default:"stl_session"`
	TTL        time.Duration `yaml:"ttl" env-default:"24h"`
	Secure     bool          `yaml:"secure" env-default:"true"`
}

// ContactForm holds the access key for the third-party form submission
// service the contact page posts to.
type ContactForm struct {
	AccessKey string `yaml:"access_key" env:"CONTACT_FORM_ACCESS_KEY"`
}

// MustLoad reads the configuration from the file named by CONFIG_PATH
// and exits the process when it cannot.
func MustLoad() *Config {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		log.Fatal("CONFIG_PATH is not set")
	}
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		log.Fatalf("file: %s - does not exist", configPath)
	}
	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("cannot read config: %s", err)
	}
	return &cfg
}
