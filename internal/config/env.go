package config

import (
	"os"
	"strconv"
	"strings"
)

type Env struct {
	AppAddr string
	GinMode string
	DBDSN   string

	JWTSecret string

	// Remote booking providers. The service-account customer IDs identify
	// this system (not the travel customer) on the remote side.
	HotelServiceURL string
	TaxiServiceURL  string
	HotelCustomerID int64
	TaxiCustomerID  int64

	ServiceAccountName  string
	ServiceAccountEmail string
	ServiceAccountPhone string
}

func LoadEnv() Env {
	return Env{
		AppAddr:             getEnv("APP_ADDR", ":8080"),
		GinMode:             strings.TrimSpace(os.Getenv("GIN_MODE")),
		DBDSN:               getEnv("DB_DSN", "root:@tcp(127.0.0.1:3306)/travel_agent?parseTime=true&loc=Local&charset=utf8mb4&timeout=5s&readTimeout=30s&writeTimeout=30s"),
		JWTSecret:           getEnv("JWT_SECRET", "super-secret-key-change-me"),
		HotelServiceURL:     getEnv("HOTEL_SERVICE_URL", "http://localhost:8081"),
		TaxiServiceURL:      getEnv("TAXI_SERVICE_URL", "http://localhost:8082"),
		HotelCustomerID:     getEnvInt64("HOTEL_CUSTOMER_ID", 5),
		TaxiCustomerID:      getEnvInt64("TAXI_CUSTOMER_ID", 30003),
		ServiceAccountName:  getEnv("SERVICE_ACCOUNT_NAME", "Travel Agent"),
		ServiceAccountEmail: getEnv("SERVICE_ACCOUNT_EMAIL", "agent@travel.example.com"),
		ServiceAccountPhone: getEnv("SERVICE_ACCOUNT_PHONE", "01234567858"),
	}
}

func getEnv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getEnvInt64(key string, def int64) int64 {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return def
	}
	return n
}
