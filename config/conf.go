package config

import (
	"os"
	"strings"
)

// Conf carries every knob the service reads from the environment.
// Values come from the environment (optionally seeded by a .env file in main).
type Conf struct {
	Env            string
	Port           string
	EndpointPrefix string

	// WhatsApp checkout deep link settings.
	StoreName      string
	WhatsAppNumber string

	// Kafka brokers for catalog-updated events. Empty means events are
	// disabled and the catalog cache falls back to interval refresh only.
	KafkaBrokers []string

	// Consul agent address. Empty means registration is skipped.
	ConsulAddr string

	// PEM file with the RSA public key of the external auth service.
	AuthPublicKeyFile string
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Load reads the service configuration from the environment.
func Load() Conf {
	cfg := Conf{
		Env:               getEnv("APP_ENV", "dev"),
		Port:              getEnv("APP_PORT", "8080"),
		EndpointPrefix:    getEnv("SERVICE_ENDPOINT_PREFIX", "/v1/storefront"),
		StoreName:         getEnv("STORE_NAME", "Trident Nova"),
		WhatsAppNumber:    getEnv("STORE_WHATSAPP_NUMBER", "917871947562"),
		ConsulAddr:        os.Getenv("CONSUL_HTTP_ADDR"),
		AuthPublicKeyFile: getEnv("AUTH_PUBLIC_KEY_FILE", "keys/auth.pem"),
	}
	if brokers := os.Getenv("KAFKA_BROKERS"); brokers != "" {
		cfg.KafkaBrokers = strings.Split(brokers, ",")
	}
	return cfg
}
