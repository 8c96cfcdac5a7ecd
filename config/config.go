package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cast"
)

// Config holds the settings shared by the server and the order command.
type Config struct {
	Port     string
	Country  string
	Language string
	StoreID  string

	DatabaseURL string

	RedisAddr     string
	RedisPassword string
	RedisDB       int
	MenuCacheTTL  time.Duration

	HTTPTimeout time.Duration

	LogMode string
	LogFile string

	Customer Customer
	Card     Card
	Order    Order
}

type Customer struct {
	FirstName  string
	LastName   string
	Email      string
	Phone      string
	Street     string
	City       string
	Region     string
	PostalCode string
}

type Card struct {
	Number       string
	Expiration   string
	SecurityCode string
	PostalCode   string
}

// Order describes what cmd/order puts in the cart.
type Order struct {
	ProductCode string
	VariantCode string
	Toppings    string
	CouponCode  string
	Place       bool
}

// Load reads .env when present, then the process environment.
func Load() *Config {
	// A missing .env is fine; the environment may be set some other way.
	_ = godotenv.Load()

	return &Config{
		Port:     get("PORT", "8080"),
		Country:  get("PIZZAPI_COUNTRY", "us"),
		Language: get("PIZZAPI_LANG", "en"),
		StoreID:  os.Getenv("PIZZAPI_STORE_ID"),

		DatabaseURL: os.Getenv("DATABASE_URL"),

		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisDB:       cast.ToInt(get("REDIS_DB", "0")),
		MenuCacheTTL:  duration("MENU_CACHE_TTL", 15*time.Minute),

		HTTPTimeout: duration("HTTP_TIMEOUT", 30*time.Second),

		LogMode: get("LOG_MODE", "development"),
		LogFile: os.Getenv("LOG_FILE"),

		Customer: Customer{
			FirstName:  os.Getenv("PIZZAPI_FIRST_NAME"),
			LastName:   os.Getenv("PIZZAPI_LAST_NAME"),
			Email:      os.Getenv("PIZZAPI_EMAIL"),
			Phone:      os.Getenv("PIZZAPI_PHONE"),
			Street:     os.Getenv("PIZZAPI_STREET"),
			City:       os.Getenv("PIZZAPI_CITY"),
			Region:     os.Getenv("PIZZAPI_REGION"),
			PostalCode: os.Getenv("PIZZAPI_POSTAL_CODE"),
		},
		Card: Card{
			Number:       os.Getenv("PIZZAPI_CARD_NUMBER"),
			Expiration:   os.Getenv("PIZZAPI_CARD_EXPIRATION"),
			SecurityCode: os.Getenv("PIZZAPI_CARD_CVV"),
			PostalCode:   os.Getenv("PIZZAPI_CARD_POSTAL_CODE"),
		},
		Order: Order{
			ProductCode: get("PIZZAPI_PRODUCT", "S_PIZZA"),
			VariantCode: get("PIZZAPI_VARIANT", "14SCREEN"),
			Toppings:    os.Getenv("PIZZAPI_TOPPINGS"),
			CouponCode:  os.Getenv("PIZZAPI_COUPON"),
			Place:       cast.ToBool(os.Getenv("PIZZAPI_PLACE")),
		},
	}
}

func get(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func duration(key string, fallback time.Duration) time.Duration {
	d, err := cast.ToDurationE(os.Getenv(key))
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}
