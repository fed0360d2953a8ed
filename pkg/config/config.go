package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde
// env y opcionalmente desde variables.env).
type Config struct {
	App   AppConfig
	Mongo MongoConfig
	JWT   JWTConfig
	HTTP  HTTPConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// MongoConfig configuración del almacén de documentos.
type MongoConfig struct {
	URI      string // connection string completo (DB_MONGO)
	Database string
}

// JWTConfig configuración de JWT.
type JWTConfig struct {
	Secret   string
	ExpHours int // horas de vigencia del token
	Issuer   string
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Load lee la configuración desde variables de entorno y, si existe, desde
// el archivo variables.env. Las env vars tienen prioridad. Nombres
// esperados: APP_ENV, DB_MONGO, DB_NAME, SECRETA, PORT, etc.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("variables")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "crm-api"),
		},
		Mongo: MongoConfig{
			URI:      getString(v, "DB_MONGO", "mongodb://localhost:27017"),
			Database: getString(v, "DB_NAME", "crmclientes"),
		},
		JWT: JWTConfig{
			Secret:   getString(v, "SECRETA", ""),
			ExpHours: getInt(v, "JWT_EXPIRATION_HOURS", 24),
			Issuer:   getString(v, "JWT_ISSUER", "crm-api"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "PORT", 4000),
		},
	}

	if cfg.JWT.Secret == "" {
		return nil, fmt.Errorf("config: SECRETA es obligatoria")
	}

	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
