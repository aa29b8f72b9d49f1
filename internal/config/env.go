package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Env struct {
	AppAddr string
	GinMode string

	DBUser string
	DBPass string
	DBHost string
	DBName string

	JWTSecret string

	RazorpayKeyID  string
	RazorpaySecret string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	CORSOrigins []string

	LogLevel  string
	LogFormat string

	CallbackRPS   float64
	CallbackBurst int
}

// LoadEnv reads configuration from the environment. A local .env file is
// loaded first when present so development does not need exported vars.
func LoadEnv() Env {
	_ = godotenv.Load()

	env := Env{
		AppAddr:        getenv("APP_ADDR", ":8080"),
		GinMode:        getenv("GIN_MODE", ""),
		DBUser:         getenv("DB_USER", "root"),
		DBPass:         getenv("DB_PASS", ""),
		DBHost:         getenv("DB_HOST", "127.0.0.1:3306"),
		DBName:         getenv("DB_NAME", "travelease"),
		JWTSecret:      getenv("JWT_SECRET", "super-secret-key-change-me"),
		RazorpayKeyID:  getenv("RAZORPAY_KEY_ID", ""),
		RazorpaySecret: getenv("RAZORPAY_KEY_SECRET", ""),
		RedisAddr:      getenv("REDIS_ADDR", ""),
		RedisPassword:  getenv("REDIS_PASSWORD", ""),
		LogLevel:       getenv("LOG_LEVEL", "info"),
		LogFormat:      getenv("LOG_FORMAT", "json"),
	}

	if v, err := strconv.Atoi(getenv("REDIS_DB", "0")); err == nil {
		env.RedisDB = v
	}

	env.CallbackRPS = 5
	if v, err := strconv.ParseFloat(getenv("CALLBACK_RPS", ""), 64); err == nil && v > 0 {
		env.CallbackRPS = v
	}
	env.CallbackBurst = 10
	if v, err := strconv.Atoi(getenv("CALLBACK_BURST", "")); err == nil && v > 0 {
		env.CallbackBurst = v
	}

	origins := getenv("CORS_ALLOWED_ORIGINS", "")
	if origins == "" {
		env.CORSOrigins = []string{
			"http://localhost:3000",
			"http://localhost:5173",
			"http://127.0.0.1:3000",
			"http://127.0.0.1:5173",
		}
	} else {
		for _, o := range strings.Split(origins, ",") {
			if o = strings.TrimSpace(o); o != "" {
				env.CORSOrigins = append(env.CORSOrigins, o)
			}
		}
	}

	return env
}

func getenv(key, def string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	return v
}
