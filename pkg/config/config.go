package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App        AppConfig
	HTTP       HTTPConfig
	Storage    StorageConfig
	Session    SessionConfig
	Admin      AdminConfig
	Restaurant RestaurantConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
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

// StorageConfig configuración del almacenamiento local clave-valor.
// Toda la colección de registros vive serializada bajo una sola clave (Key)
// dentro del archivo JSON apuntado por Path.
type StorageConfig struct {
	Path string // ruta del archivo JSON del bucket local
	Key  string // clave bajo la cual se guarda la colección completa
}

// SessionConfig configuración del token de sesión (JWT).
// El token solo es válido mientras la sesión exista en el registro en memoria:
// las sesiones nunca se persisten y un reinicio las olvida todas.
type SessionConfig struct {
	Secret     string
	Expiration int // minutos
	Issuer     string
}

// AdminConfig par de credenciales fijas del administrador.
// Comparación en texto plano: comportamiento heredado del sistema original,
// endurecerlo está explícitamente fuera de alcance.
type AdminConfig struct {
	Username string
	Password string
}

// RestaurantConfig identidad estática del restaurante (branding).
type RestaurantConfig struct {
	Name           string
	WhatsAppNumber string // número destino de los pedidos, con prefijo de país
	WelcomeMessage string
	PrimaryColor   string
	SecondaryColor string
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, HTTP_PORT, STORAGE_PATH, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "restaurante-api"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		Storage: StorageConfig{
			Path: getString(v, "STORAGE_PATH", "./data/restaurant.json"),
			Key:  getString(v, "STORAGE_KEY", "restaurant-data"),
		},
		Session: SessionConfig{
			Secret:     getString(v, "SESSION_JWT_SECRET", ""),
			Expiration: getInt(v, "SESSION_JWT_EXPIRATION_MINUTES", 480),
			Issuer:     getString(v, "SESSION_JWT_ISSUER", "restaurante-api"),
		},
		Admin: AdminConfig{
			Username: getString(v, "ADMIN_USERNAME", "admin"),
			Password: getString(v, "ADMIN_PASSWORD", "admin"),
		},
		Restaurant: RestaurantConfig{
			Name:           getString(v, "RESTAURANT_NAME", "Sabor da Esquina"),
			WhatsAppNumber: getString(v, "RESTAURANT_WHATSAPP", "+258822937027"),
			WelcomeMessage: getString(v, "RESTAURANT_WELCOME", "Bem-vindo ao Sabor da Esquina!"),
			PrimaryColor:   getString(v, "RESTAURANT_PRIMARY_COLOR", "#ea1d2c"),
			SecondaryColor: getString(v, "RESTAURANT_SECONDARY_COLOR", "#22c55e"),
		},
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
