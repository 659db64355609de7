package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	QuestionSourceFile   = "file"
	QuestionSourceSQLite = "sqlite"

	StorageMemory = "memory"
	StorageSQLite = "sqlite"
	StorageRedis  = "redis"
	StorageNone   = "none"
)

// Config contém as configurações da aplicação.
type Config struct {
	Port     string
	LogLevel string
	Database DatabaseConfig
	Quiz     QuizConfig
	Storage  StorageConfig
	Auth     AuthConfig

	AllowedOrigins []string
}

type DatabaseConfig struct {
	DSN           string // Caminho do arquivo SQLite
	MigrationsDir string
}

type QuizConfig struct {
	Source       string // file | sqlite
	QuestionsDir string
	DefaultCount int
}

type StorageConfig struct {
	Driver        string // memory | sqlite | redis | none
	RedisAddr     string
	RedisPassword string
	RedisDB       int
}

type AuthConfig struct {
	JWTSecret string
	JWTIssuer string
}

// Load carrega as configurações das variáveis de ambiente ou usa padrões.
// Um arquivo .env no diretório atual é lido se existir.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Port:     getEnv("PORT", "8080"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
		Database: DatabaseConfig{
			DSN:           getEnv("DB_DSN", "./satsang.db"),
			MigrationsDir: getEnv("MIGRATIONS_DIR", "migrations"),
		},
		Quiz: QuizConfig{
			Source:       strings.ToLower(getEnv("QUESTION_SOURCE", QuestionSourceFile)),
			QuestionsDir: getEnv("QUESTIONS_DIR", "data/quiz"),
			DefaultCount: getEnvInt("DEFAULT_QUESTION_COUNT", 10),
		},
		Storage: StorageConfig{
			Driver:        strings.ToLower(getEnv("STORAGE_DRIVER", StorageMemory)),
			RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
			RedisPassword: getEnv("REDIS_PASSWORD", ""),
			RedisDB:       getEnvInt("REDIS_DB", 0),
		},
		Auth: AuthConfig{
			JWTSecret: getEnv("AUTH_JWT_SECRET", ""),
			JWTIssuer: getEnv("AUTH_JWT_ISSUER", ""),
		},
		AllowedOrigins: getEnvList("CORS_ALLOWED_ORIGINS", []string{"*"}),
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvList(key string, fallback []string) []string {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}

	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	if len(items) == 0 {
		return fallback
	}
	return items
}
