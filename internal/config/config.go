package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Neo4jURI      string
	Neo4jUser     string
	Neo4jPassword string
	Neo4jDatabase string
	JWTSecret     string
	HTTPPort      string
	QueryTimeout  time.Duration
	PageLimitMax  int
}

func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Neo4jURI:      getEnv("NEO4J_URI", "neo4j://localhost:7687"),
		Neo4jUser:     getEnv("NEO4J_USERNAME", "neo4j"),
		Neo4jPassword: getEnv("NEO4J_PASSWORD", "neo"),
		Neo4jDatabase: getEnv("NEO4J_DATABASE", "neo4j"),
		JWTSecret:     getEnv("JWT_SECRET", "super-secret"),
		HTTPPort:      getEnv("HTTP_PORT", "8080"),
		QueryTimeout:  time.Duration(getEnvInt("QUERY_TIMEOUT_MS", 15000)) * time.Millisecond,
		PageLimitMax:  getEnvInt("PAGE_LIMIT_MAX", 100),
	}
}

func getEnv(key, def string) string {
	v := os.Getenv(key)
	if v == "" {
		log.Printf("[config] %s no está seteado, usando valor por defecto\n", key)
		return def
	}
	return v
}

func getEnvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("[config] %s no es un entero válido (%q), usando %d\n", key, v, def)
		return def
	}
	return n
}
