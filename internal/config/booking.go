package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

type BookingConfig struct {
	StoreDriver       string
	Currency          string
	PaymentSessionTTL time.Duration
	PaymentRefPrefix  string
	PaymentDeepLink   string
	QRImageSize       int
	CatalogCacheTTL   time.Duration
	AMQPURL           string
	EventsExchange    string
	AdminEmail        string
	AdminPassword     string
}

// bookingEnv maps viper keys to the environment variables that override them.
// The keys match the lowercased names viper gives entries read from .env.
var bookingEnv = map[string]string{
	"store_driver":            "STORE_DRIVER",
	"booking_currency":        "BOOKING_CURRENCY",
	"payment_session_ttl":     "PAYMENT_SESSION_TTL",
	"payment_ref_prefix":      "PAYMENT_REF_PREFIX",
	"payment_deep_link":       "PAYMENT_DEEP_LINK",
	"payment_qr_size":         "PAYMENT_QR_SIZE",
	"catalog_cache_ttl":       "CATALOG_CACHE_TTL",
	"amqp_url":                "AMQP_URL",
	"booking_events_exchange": "BOOKING_EVENTS_EXCHANGE",
	"admin_email":             "ADMIN_EMAIL",
	"admin_password":          "ADMIN_PASSWORD",
}

// BindBookingEnv lets environment variables override the booking keys of the
// loaded config file.
func BindBookingEnv() {
	for key, env := range bookingEnv {
		viper.BindEnv(key, env)
	}
}

// LoadBookingConfig reads the booking settings from viper, so values come from
// the environment first and the .env file second.
func LoadBookingConfig() *BookingConfig {
	BindBookingEnv()

	viper.SetDefault("store_driver", "postgres")
	viper.SetDefault("booking_currency", "INR")
	viper.SetDefault("payment_ref_prefix", "PAY")
	viper.SetDefault("payment_deep_link", "homefix://pay")
	viper.SetDefault("booking_events_exchange", "booking.events")

	return &BookingConfig{
		StoreDriver:       strings.ToLower(viper.GetString("store_driver")),
		Currency:          viper.GetString("booking_currency"),
		PaymentSessionTTL: getDuration("payment_session_ttl", 15*time.Minute),
		PaymentRefPrefix:  viper.GetString("payment_ref_prefix"),
		PaymentDeepLink:   viper.GetString("payment_deep_link"),
		QRImageSize:       getInt("payment_qr_size", 256),
		CatalogCacheTTL:   getDuration("catalog_cache_ttl", 10*time.Minute),
		AMQPURL:           viper.GetString("amqp_url"),
		EventsExchange:    viper.GetString("booking_events_exchange"),
		AdminEmail:        viper.GetString("admin_email"),
		AdminPassword:     viper.GetString("admin_password"),
	}
}

// UsesMemoryStore reports whether repositories should live in process memory
func (c *BookingConfig) UsesMemoryStore() bool {
	return c.StoreDriver == "memory"
}

// getInt falls back when the value is missing or not a positive number.
func getInt(key string, defaultVal int) int {
	if !viper.IsSet(key) {
		return defaultVal
	}
	if val := viper.GetInt(key); val > 0 {
		return val
	}
	return defaultVal
}

// getDuration falls back when the value is missing or does not parse.
func getDuration(key string, defaultVal time.Duration) time.Duration {
	if val := viper.GetString(key); val != "" {
		if duration, err := time.ParseDuration(val); err == nil {
			return duration
		}
	}
	return defaultVal
}
