package config

import (
	"os"
)

type Config struct {
	DBHost        string
	DBPort        string
	DBUser        string
	DBPassword    string
	DBName        string
	RedisHost     string
	RedisPort     string
	SessionSecret string
	GinMode       string
	ServerAddr    string

	// Keycloak admin connection used by the directory-sync collaborator
	KeycloakURL          string
	KeycloakRealm        string
	KeycloakClientID     string
	KeycloakMasterRealm  string
	KeycloakMasterClient string
	KeycloakMasterUser   string
	KeycloakMasterPswd   string
}

func Load() *Config {
	return &Config{
		DBHost:        getEnv("DB_HOST", "localhost"),
		DBPort:        getEnv("DB_PORT", "3306"),
		DBUser:        getEnv("DB_USER", "ticketing"),
		DBPassword:    getEnv("DB_PASSWORD", "ticketing"),
		DBName:        getEnv("DB_NAME", "ticketing_project"),
		RedisHost:     getEnv("REDIS_HOST", "localhost"),
		RedisPort:     getEnv("REDIS_PORT", "6379"),
		SessionSecret: getEnv("SESSION_SECRET", "default-secret-key-change-me"),
		GinMode:       getEnv("GIN_MODE", "debug"),
		ServerAddr:    getEnv("SERVER_ADDR", ":8080"),

		KeycloakURL:          getEnv("KEYCLOAK_AUTH_SERVER_URL", ""),
		KeycloakRealm:        getEnv("KEYCLOAK_REALM", "ticketing-realm"),
		KeycloakClientID:     getEnv("KEYCLOAK_CLIENT_ID", "ticketing-app"),
		KeycloakMasterRealm:  getEnv("KEYCLOAK_MASTER_REALM", "master"),
		KeycloakMasterClient: getEnv("KEYCLOAK_MASTER_CLIENT", "admin-cli"),
		KeycloakMasterUser:   getEnv("KEYCLOAK_MASTER_USER", "admin"),
		KeycloakMasterPswd:   getEnv("KEYCLOAK_MASTER_PASSWORD", ""),
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
