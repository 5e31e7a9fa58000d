package config

import (
	"fmt"
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/abhinavsrinivasan/diabetes-me/models"
)

type Config struct {
	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string

	JWTSecret string

	SpoonacularAPIKey string
	ImportMaxCarbs    int // grams per serving cap for imported recipes
	ImportMaxSugar    int
	ImportLimit       int // records per import page
}

// Load reads .env (when present) and the environment.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using environment")
	}

	viper.AutomaticEnv()
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("IMPORT_MAX_CARBS", 35)
	viper.SetDefault("IMPORT_MAX_SUGAR", 15)
	viper.SetDefault("IMPORT_LIMIT", 50)

	return &Config{
		DBHost:            viper.GetString("DB_HOST"),
		DBUser:            viper.GetString("DB_USER"),
		DBPassword:        viper.GetString("DB_PASSWORD"),
		DBName:            viper.GetString("DB_NAME"),
		DBPort:            viper.GetString("DB_PORT"),
		JWTSecret:         viper.GetString("JWT_SECRET"),
		SpoonacularAPIKey: viper.GetString("SPOONACULAR_API_KEY"),
		ImportMaxCarbs:    viper.GetInt("IMPORT_MAX_CARBS"),
		ImportMaxSugar:    viper.GetInt("IMPORT_MAX_SUGAR"),
		ImportLimit:       viper.GetInt("IMPORT_LIMIT"),
	}
}

var DB *gorm.DB

func InitDB(cfg *Config) {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		cfg.DBHost,
		cfg.DBUser,
		cfg.DBPassword,
		cfg.DBName,
		cfg.DBPort,
	)

	var err error
	// TranslateError so a racing insert surfaces gorm.ErrDuplicatedKey
	// instead of a raw pq error.
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = DB.AutoMigrate(
		&models.User{},
		&models.Recipe{},
		&models.Profile{},
	)
	if err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}
}
