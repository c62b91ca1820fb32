package config

import "time"

type Config struct {
	Environment Environment
	Log         Log
	HTTP        HTTPServer
	BaseURL     string `env:"BASE_URL" envDefault:"http://localhost:8080"`

	Database Database `envPrefix:"DB_"`
	Redis    Redis    `envPrefix:"REDIS_"`
	Payment  Payment  `envPrefix:"PAYMENT_"`
	Cart     Cart     `envPrefix:"CART_"`
	Notify   Notify   `envPrefix:"NOTIFY_"`
}

type Environment struct {
	Name string `env:"ENVIRONMENT" envDefault:"development"`
}

type Log struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

type HTTPServer struct {
	Host string `env:"HTTP_HOST" envDefault:"0.0.0.0"`
	Port string `env:"HTTP_PORT" envDefault:"8080"`
}

type Database struct {
	Path string `env:"PATH" envDefault:"storefront.db"`
}

type Redis struct {
	Addr string `env:"ADDR" envDefault:"localhost:6379"`
	DB   int    `env:"DB" envDefault:"0"`
}

type Payment struct {
	BaseApiURL string `env:"BASE_API_URL"`
	SecretKey  string `env:"SECRET_KEY"`
	PublicKey  string `env:"PUBLIC_KEY"`
	Currency   string `env:"CURRENCY" envDefault:"USD"`
}

type Cart struct {
	// MaxQuantity caps a single line's quantity; 0 means unlimited.
	MaxQuantity int    `env:"MAX_QUANTITY" envDefault:"0"`
	KeyPrefix   string `env:"KEY_PREFIX" envDefault:"storefront:cart:"`
}

type Notify struct {
	TTL time.Duration `env:"TTL" envDefault:"5s"`
}
