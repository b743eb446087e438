package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

var (
	JwtSecret      string
	DbHost         string
	DbPort         string
	DbUser         string
	DbPassword     string
	DbName         string
	ServerPort     string
	Issuer         string
	MinioEndpoint  string
	MinioAccessKey string
	MinioSecretKey string
	MinioUseSSL    bool
	MinioBucket    string
	RolePolicyPath string

	Roles RolePolicy
)

// RolePolicy maps route areas to the roles allowed to reach them.
type RolePolicy struct {
	Admin        []string `yaml:"admin"`
	DeliveryHead []string `yaml:"delivery_head"`
}

func LoadConfig() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, using environment variables")
	}

	JwtSecret = getEnv("JWT_SECRET", "defaultsecret")
	DbHost = getEnv("DB_HOST", "localhost")
	DbPort = getEnv("DB_PORT", "5432")
	DbUser = getEnv("DB_USER", "postgres")
	DbPassword = getEnv("DB_PASSWORD", "password")
	DbName = getEnv("DB_NAME", "crm")
	ServerPort = getEnv("SERVER_PORT", "8080")
	Issuer = getEnv("ISSUER", "crm")
	RolePolicyPath = getEnv("ROLE_POLICY_PATH", "config/roles.yaml")

	MinioEndpoint = getEnv("MINIO_ENDPOINT", "localhost:9000")
	MinioAccessKey = getEnv("MINIO_ACCESS_KEY", "minio")
	MinioSecretKey = getEnv("MINIO_SECRET_KEY", "minio123")
	MinioBucket = getEnv("MINIO_BUCKET", "crm-attachments")
	MinioUseSSL, _ = strconv.ParseBool(getEnv("MINIO_USE_SSL", "false"))

	LoadRolePolicy()
}

// LoadRolePolicy reads the role grants. A missing file falls back to the
// built-in grants so tests and local runs work without config on disk.
func LoadRolePolicy() {
	Roles = RolePolicy{
		Admin:        []string{"admin"},
		DeliveryHead: []string{"admin", "delivery_head"},
	}

	data, err := os.ReadFile(RolePolicyPath)
	if err != nil {
		log.Printf("No role policy file at %s, using defaults", RolePolicyPath)
		return
	}
	if err := yaml.Unmarshal(data, &Roles); err != nil {
		log.Fatalf("Failed to parse role policy %s: %v", RolePolicyPath, err)
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
