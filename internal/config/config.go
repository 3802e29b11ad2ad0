package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config carries every per-deployment value: database target, CORS origin,
// the SISEMA geoserver endpoint and the URL the browser should call.
type Config struct {
	Port string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// Single origin allowed to call the API cross-origin (the SPA host).
	AllowedOrigin string

	// Base URL published to the browser via /env.js as window.env.API_URL.
	PublicAPIURL string

	// SISEMA WFS endpoint and the two fixed layer identifiers proxied by
	// the API.
	SisemaWFSURL             string
	LayerUnidadesConservacao string
	LayerImoveisCompensacao  string
}

// Load reads the environment (plus configs/.env when present) and fills in
// development defaults for anything unset.
func Load() *Config {
	_ = godotenv.Load("configs/.env")

	return &Config{
		Port:       getenv("PORT", "8080"),
		DBHost:     getenv("DB_HOST", "localhost"),
		DBPort:     getenv("DB_PORT", "5432"),
		DBUser:     getenv("DB_USER", "postgres"),
		DBPassword: getenv("DB_PASSWORD", "postgres"),
		DBName:     getenv("DB_NAME", "compensacao"),
		DBSSLMode:  getenv("DB_SSLMODE", "disable"),

		AllowedOrigin: getenv("ALLOWED_ORIGIN", "http://localhost:5173"),
		PublicAPIURL:  getenv("PUBLIC_API_URL", "http://localhost:8080"),

		SisemaWFSURL: getenv("SISEMA_WFS_URL",
			"https://idesisema.meioambiente.mg.gov.br/geoserver/ows"),
		LayerUnidadesConservacao: getenv("SISEMA_LAYER_UC",
			"geonode:unidades_conservacao"),
		LayerImoveisCompensacao: getenv("SISEMA_LAYER_IMOVEIS",
			"geonode:imoveis_compensacao"),
	}
}

// DSN builds the Postgres connection string from the DB fields.
func (c *Config) DSN() string {
	return "postgres://" + c.DBUser + ":" + c.DBPassword + "@" +
		c.DBHost + ":" + c.DBPort + "/" + c.DBName + "?sslmode=" + c.DBSSLMode
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
