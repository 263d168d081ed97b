package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	App       AppConfig
	Session   SessionConfig
	Redis     RedisConfig
	RateLimit RateLimitConfig
	Groq      GroqConfig
	Roadmap   RoadmapConfig
	Practice  PracticeConfig
	GitHub    GitHubConfig
}

type AppConfig struct {
	AppName     string
	Environment string
	HTTPPort    string
	FrontendURL string
}

type SessionConfig struct {
	Secret string
	TTL    time.Duration
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	TTL      time.Duration
}

func (r RedisConfig) Addr() string {
	if r.Host == "" {
		return ""
	}
	port := r.Port
	if port == "" {
		port = "6379"
	}
	return r.Host + ":" + port
}

type RateLimitConfig struct {
	MaxAttempts int
	Window      time.Duration
}

type GroqConfig struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
}

type RoadmapConfig struct {
	StepDelay time.Duration
}

type PracticeConfig struct {
	Timeout time.Duration
}

// GitHubConfig points the portfolio client at the REST API. Token is optional
// and only raises the unauthenticated rate limit.
type GitHubConfig struct {
	BaseURL string
	Token   string
	Timeout time.Duration
}

var errMissingRequiredEnv = errors.New("missing required environment variables")

func setDefaults(v *viper.Viper) {
	v.SetDefault("FRONTEND_URL", "http://localhost:5173")
	v.SetDefault("SESSION_SECRET", "codecraft-dev-secret")
	v.SetDefault("SESSION_TTL", "24h")
	v.SetDefault("REDIS_PORT", "6379")
	v.SetDefault("REDIS_TTL", "5m")
	v.SetDefault("RATE_LIMIT_MAX_ATTEMPTS", 5)
	v.SetDefault("RATE_LIMIT_WINDOW", "60s")
	v.SetDefault("GROQ_BASE_URL", "https://api.groq.com/openai/v1")
	v.SetDefault("GROQ_MODEL", "llama-3.3-70b-versatile")
	v.SetDefault("GROQ_TIMEOUT", "30s")
	v.SetDefault("ROADMAP_STEP_DELAY", "800ms")
	v.SetDefault("PRACTICE_TIMEOUT", "10s")
	v.SetDefault("GITHUB_BASE_URL", "https://api.github.com")
	v.SetDefault("GITHUB_TIMEOUT", "10s")
}

// Load reads .env when present, then the process environment. Missing
// required keys are reported together.
func Load() (Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()
	setDefaults(v)

	return load(v)
}

func load(v *viper.Viper) (Config, error) {
	cfg := Config{}

	var missing []string
	req := func(key string) string {
		s := strings.TrimSpace(v.GetString(key))
		if s == "" {
			missing = append(missing, key)
		}
		return s
	}
	opt := func(key string) string {
		return strings.TrimSpace(v.GetString(key))
	}

	cfg.App = AppConfig{
		AppName:     req("APP_NAME"),
		Environment: req("APP_ENV"),
		HTTPPort:    req("HTTP_PORT"),
		FrontendURL: opt("FRONTEND_URL"),
	}

	cfg.Session = SessionConfig{
		Secret: opt("SESSION_SECRET"),
		TTL:    v.GetDuration("SESSION_TTL"),
	}

	cfg.Redis = RedisConfig{
		Host:     opt("REDIS_HOST"),
		Port:     opt("REDIS_PORT"),
		Password: opt("REDIS_PASSWORD"),
		TTL:      v.GetDuration("REDIS_TTL"),
	}

	cfg.RateLimit = RateLimitConfig{
		MaxAttempts: v.GetInt("RATE_LIMIT_MAX_ATTEMPTS"),
		Window:      v.GetDuration("RATE_LIMIT_WINDOW"),
	}

	cfg.Groq = GroqConfig{
		APIKey:  opt("GROQ_API_KEY"),
		BaseURL: opt("GROQ_BASE_URL"),
		Model:   opt("GROQ_MODEL"),
		Timeout: v.GetDuration("GROQ_TIMEOUT"),
	}

	cfg.Roadmap = RoadmapConfig{StepDelay: v.GetDuration("ROADMAP_STEP_DELAY")}
	cfg.Practice = PracticeConfig{Timeout: v.GetDuration("PRACTICE_TIMEOUT")}
	cfg.GitHub = GitHubConfig{
		BaseURL: opt("GITHUB_BASE_URL"),
		Token:   opt("GITHUB_TOKEN"),
		Timeout: v.GetDuration("GITHUB_TIMEOUT"),
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errMissingRequiredEnv, strings.Join(missing, ", "))
	}

	if cfg.Session.TTL <= 0 {
		return Config{}, fmt.Errorf("invalid SESSION_TTL: must be positive")
	}

	return cfg, nil
}
