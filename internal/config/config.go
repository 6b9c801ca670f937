package config

import (
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type OrderConfig struct {
	Env        string `yaml:"env" env-default:"local"`
	HTTPServer `yaml:"http_server"`
	OrderDB    `yaml:"order_db"`
	LogConfig  `yaml:"log_config"`
	Cashfree   `yaml:"cashfree"`
	Kafka      `yaml:"kafka"`
	Payments   `yaml:"payments"`
}

type HTTPServer struct {
	Host string `yaml:"host" env-default:"0.0.0.0"`
	Port string `yaml:"port" env-default:"8080"`
}

type OrderDB struct {
	Dsn            string `yaml:"dsn" env:"ORDER_DB_DSN"`
	MigrationsPath string `yaml:"migrations_path"`
}

type LogConfig struct {
	LogLevel  string `yaml:"log_level" env-default:"info"`
	LogFormat string `yaml:"log_format" env-default:"json"`
	LogOutput string `yaml:"log_output" env-default:"stdout"`
}

// Cashfree holds the gateway credentials and endpoints. Credentials are
// injected into the client constructor, never set as process-wide state.
type Cashfree struct {
	BaseURL      string        `yaml:"base_url" env:"CASHFREE_BASE_URL" env-default:"https://sandbox.cashfree.com/pg"`
	ClientID     string        `yaml:"client_id" env:"CASHFREE_CLIENT_ID"`
	ClientSecret string        `yaml:"client_secret" env:"CASHFREE_CLIENT_SECRET"`
	APIVersion   string        `yaml:"api_version" env-default:"2023-08-01"`
	Timeout      time.Duration `yaml:"timeout" env-default:"10s"`
	// ClientURL is the storefront base used to build the client return URL.
	ClientURL string `yaml:"client_url" env:"CLIENT_URL"`
	// NotifyURL is the full public URL of our webhook endpoint.
	NotifyURL string `yaml:"notify_url" env:"NOTIFY_URL"`
}

type Kafka struct {
	Host  string `yaml:"host"`
	Port  string `yaml:"port"`
	Topic string `yaml:"topic" env-default:"order-events"`
}

type Payments struct {
	Currency string `yaml:"currency" env-default:"INR"`
	// RequireCustomerEmail selects the strict payment-path validation.
	// The lenient storefront path only requires name and phone.
	RequireCustomerEmail bool `yaml:"require_customer_email" env-default:"true"`
}

func MustLoad() *OrderConfig {

	// Processing env config variable and file
	configPath := os.Getenv("ORDER_CONFIG_PATH")

	if configPath == "" {
		log.Fatalf("ORDER_CONFIG_PATH was not found\n")
	}

	if _, err := os.Stat(configPath); err != nil {
		log.Fatalf("failed to find config file: %v\n", err)
	}

	// YAML to struct object
	var cfg OrderConfig
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("failed to read config file: %v", err)
	}

	return &cfg
}
