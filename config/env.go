// Package config loads application configuration from config/app.json and a
// .env file, in that order (.env wins). Process environment variables override
// both files. File values are read once and cached; every accessor falls back
// to a sane local-development default.
package config

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"sync"
)

const (
	defaultDBDialect   = "mysql"
	defaultDBHost      = "localhost"
	defaultDBPort      = "3306"
	defaultDBName      = "backoffice"
	defaultDBUser      = "root"
	defaultRedisHost   = "localhost"
	defaultRedisPort   = "6379"
	defaultCORSOrigin  = "http://localhost:3000"
	defaultJWTSecret   = "change-me-in-production"
	defaultAppPort     = "8080"
	defaultAppEnv      = "local"
	defaultOpenAIModel = "gpt-3.5-turbo"
)

var (
	loadOnce sync.Once
	loadErr  error

	mu     sync.RWMutex
	values = defaultValues()
)

func Load() error {
	loadOnce.Do(func() {
		loadErr = loadFromFiles("config/app.json", ".env")
	})
	return loadErr
}

func defaultValues() map[string]string {
	return map[string]string{
		"DB_DIALECT":     defaultDBDialect,
		"DB_HOST":        defaultDBHost,
		"DB_PORT":        defaultDBPort,
		"DB_NAME":        defaultDBName,
		"DB_USER":        defaultDBUser,
		"DB_PASS":        "",
		"REDIS_HOST":     defaultRedisHost,
		"REDIS_PORT":     defaultRedisPort,
		"REDIS_PASSWORD": "",
		"CORS_ORIGIN":    defaultCORSOrigin,
		"JWT_SECRET":     defaultJWTSecret,
		"APP_PORT":       defaultAppPort,
		"APP_ENV":        defaultAppEnv,
		"ADMIN_EMAIL":    "",
		"ADMIN_PASSWORD": "",
		"OPENAI_API_KEY": "",
		"OPENAI_MODEL":   defaultOpenAIModel,
	}
}

// DatabaseDialect returns the configured SQL dialect, constrained to the
// drivers the binary links against.
func DatabaseDialect() string {
	_ = Load()

	dialect := strings.ToLower(get("DB_DIALECT", defaultDBDialect))
	switch dialect {
	case "mysql", "postgres", "sqlite", "sqlserver":
		return dialect
	default:
		return defaultDBDialect
	}
}

func DatabaseHost() string { _ = Load(); return get("DB_HOST", defaultDBHost) }
func DatabasePort() string { _ = Load(); return get("DB_PORT", defaultDBPort) }
func DatabaseName() string { _ = Load(); return get("DB_NAME", defaultDBName) }
func DatabaseUser() string { _ = Load(); return get("DB_USER", defaultDBUser) }
func DatabasePass() string { _ = Load(); return get("DB_PASS", "") }

func RedisAddr() string {
	_ = Load()
	return get("REDIS_HOST", defaultRedisHost) + ":" + get("REDIS_PORT", defaultRedisPort)
}

func RedisPassword() string { _ = Load(); return get("REDIS_PASSWORD", "") }

func CORSOrigin() string { _ = Load(); return get("CORS_ORIGIN", defaultCORSOrigin) }

func JWTSecret() string { _ = Load(); return get("JWT_SECRET", defaultJWTSecret) }

func AppPort() string { _ = Load(); return get("APP_PORT", defaultAppPort) }

func AppEnv() string { _ = Load(); return get("APP_ENV", defaultAppEnv) }

// AdminEmail and AdminPassword form the single back-office login identity.
// AdminPassword may hold either a plaintext value or a bcrypt hash.
func AdminEmail() string    { _ = Load(); return get("ADMIN_EMAIL", "") }
func AdminPassword() string { _ = Load(); return get("ADMIN_PASSWORD", "") }

func OpenAIKey() string   { _ = Load(); return get("OPENAI_API_KEY", "") }
func OpenAIModel() string { _ = Load(); return get("OPENAI_MODEL", defaultOpenAIModel) }

func loadFromFiles(configPath, envPath string) error {
	loaded := defaultValues()

	if err := mergeJSONConfig(configPath, loaded); err != nil {
		if !os.IsNotExist(err) {
			return err
		}
	}

	if err := mergeDotEnv(envPath, loaded); err != nil {
		if !os.IsNotExist(err) {
			return err
		}
	}

	mu.Lock()
	values = loaded
	mu.Unlock()

	return nil
}

func mergeJSONConfig(path string, out map[string]string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	var raw map[string]interface{}
	if err := json.NewDecoder(file).Decode(&raw); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}

	for key, val := range raw {
		s, ok := val.(string)
		if !ok {
			continue
		}

		k := strings.ToUpper(strings.TrimSpace(key))
		if k == "" {
			continue
		}
		out[k] = strings.TrimSpace(s)
	}

	return nil
}

func mergeDotEnv(path string, out map[string]string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		idx := strings.IndexByte(line, '=')
		if idx <= 0 {
			continue
		}

		key := strings.ToUpper(strings.TrimSpace(line[:idx]))
		value := strings.TrimSpace(line[idx+1:])
		value = strings.Trim(value, `"'`)
		if key == "" {
			continue
		}
		out[key] = value
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	return nil
}

func get(key, fallback string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}

	mu.RLock()
	defer mu.RUnlock()

	if value := strings.TrimSpace(values[key]); value != "" {
		return value
	}

	return fallback
}

// Get reads any config key by name with an optional fallback.
func Get(key, fallback string) string {
	_ = Load()
	return get(key, fallback)
}
