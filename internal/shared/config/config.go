package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	defaultLLMBaseURL = "https://api.groq.com/openai/v1/chat/completions"
	defaultLLMModel   = "llama3-70b-8192"
	defaultOrigins    = "http://localhost:5173,http://localhost:5174,https://ai-job-resume-coach.vercel.app,https://*.vercel.app"
)

// Config holds application configuration.
type Config struct {
	Port               string
	Env                string
	CORSAllowOrigin    []string
	LLMAPIKey          string
	LLMBaseURL         string
	LLMModel           string
	LLMTimeout         time.Duration
	MaxUploadBytes     int64
	AcceptedExtensions []string
	RateLimitRPS       float64
	RateLimitBurst     int
	TrustedProxies     []string
	LogLevel           string
	LogFormat          string
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	// Best-effort load of local env files for dev convenience.
	loadEnvFiles(".env", "cmd/.env")

	v := viper.New()
	v.AutomaticEnv()
	setDefaults(v)

	apiKey := strings.TrimSpace(v.GetString("GROQ_API_KEY"))
	if apiKey == "" {
		apiKey = strings.TrimSpace(v.GetString("LLM_API_KEY"))
	}

	timeout := time.Duration(v.GetInt("LLM_TIMEOUT_SECONDS")) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return Config{
		Port:               v.GetString("PORT"),
		Env:                normalizeEnv(v.GetString("ENV")),
		CORSAllowOrigin:    splitAndTrim(v.GetString("CORS_ALLOW_ORIGINS")),
		LLMAPIKey:          apiKey,
		LLMBaseURL:         strings.TrimSpace(v.GetString("LLM_BASE_URL")),
		LLMModel:           strings.TrimSpace(v.GetString("LLM_MODEL")),
		LLMTimeout:         timeout,
		MaxUploadBytes:     v.GetInt64("MAX_UPLOAD_BYTES"),
		AcceptedExtensions: normalizeExtensions(splitAndTrim(v.GetString("ACCEPTED_EXTENSIONS"))),
		RateLimitRPS:       v.GetFloat64("RATE_LIMIT_RPS"),
		RateLimitBurst:     v.GetInt("RATE_LIMIT_BURST"),
		TrustedProxies:     splitAndTrim(v.GetString("TRUSTED_PROXIES")),
		LogLevel:           strings.ToLower(strings.TrimSpace(v.GetString("LOG_LEVEL"))),
		LogFormat:          strings.ToLower(strings.TrimSpace(v.GetString("LOG_FORMAT"))),
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PORT", "8000")
	v.SetDefault("ENV", "dev")
	v.SetDefault("CORS_ALLOW_ORIGINS", defaultOrigins)
	v.SetDefault("LLM_BASE_URL", defaultLLMBaseURL)
	v.SetDefault("LLM_MODEL", defaultLLMModel)
	v.SetDefault("LLM_TIMEOUT_SECONDS", 30)
	v.SetDefault("MAX_UPLOAD_BYTES", 10<<20)
	v.SetDefault("ACCEPTED_EXTENSIONS", ".pdf")
	v.SetDefault("RATE_LIMIT_RPS", 1)
	v.SetDefault("RATE_LIMIT_BURST", 10)
	v.SetDefault("TRUSTED_PROXIES", "")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
}

func splitAndTrim(raw string) []string {
	parts := strings.Split(raw, ",")
	var out []string
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, strings.TrimSuffix(trimmed, "/"))
		}
	}
	return out
}

func normalizeExtensions(exts []string) []string {
	out := make([]string, 0, len(exts))
	for _, ext := range exts {
		ext = strings.ToLower(ext)
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		out = append(out, ext)
	}
	if len(out) == 0 {
		return []string{".pdf"}
	}
	return out
}

func normalizeEnv(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "production", "prod":
		return "production"
	case "staging":
		return "staging"
	case "local":
		return "local"
	default:
		return "dev"
	}
}
