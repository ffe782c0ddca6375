package config

// AppConfig holds the application configuration
type AppConfig struct {
	Addr           string
	DefaultTheme   string
	AllowedOrigins []string
}
