package configs

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	DBSource string
	Port     string
	ShopName string
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using process environment")
	}

	return &Config{
		DBSource: getEnv("DB_SOURCE", "sushi.db"),
		Port:     getEnv("PORT", "8000"),
		ShopName: getEnv("SHOP_NAME", "Mr.R Sushi"),
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}
