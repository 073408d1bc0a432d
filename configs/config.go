package configs

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/Yon-ln/33s/entity"
)

type Config struct {
	Port string

	// Upstream menu API. Primary is probed at startup; on failure the
	// fallback becomes the active base for the whole process.
	PrimaryAPIBase  string
	FallbackAPIBase string

	// Single admin credential pair for the console.
	AdminUser         string
	AdminPasswordHash string

	JWTSecret string
	JWTTTL    time.Duration

	Window        entity.ServiceWindow
	SlideshowFile string
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("no .env file, using environment as-is")
	}

	cfg := &Config{
		Port:              getEnv("PORT", "8000"),
		PrimaryAPIBase:    getEnv("PRIMARY_API_BASE", "https://33stheoldgrocery-beh6a0dmhufqbaf4.ukwest-01.azurewebsites.net"),
		FallbackAPIBase:   getEnv("FALLBACK_API_BASE", "https://localhost:7176"),
		AdminUser:         getEnv("ADMIN_USER", "admin"),
		AdminPasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),
		JWTSecret:         getEnv("JWT_SECRET", "changeme"),
		JWTTTL:            24 * time.Hour,
		SlideshowFile:     getEnv("SLIDESHOW_FILE", "slideshow.json"),
	}

	def := entity.DefaultServiceWindow()
	cfg.Window = entity.ServiceWindow{
		BrunchStart: getEnvInt("BRUNCH_START", def.BrunchStart),
		CoffeeStart: getEnvInt("COFFEE_START", def.CoffeeStart),
		DinnerStart: getEnvInt("DINNER_START", def.DinnerStart),
		CloseTime:   getEnvInt("CLOSE_TIME", def.CloseTime),
	}
	if err := cfg.Window.Validate(); err != nil {
		log.Warn().Err(err).Msg("invalid service window in env, using defaults")
		cfg.Window = def
	}
	return cfg
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Warn().Str("key", key).Str("value", v).Msg("not an integer, using fallback")
		return fallback
	}
	return n
}
