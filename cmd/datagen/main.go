package main

import (
	"context"
	"log/slog"
	"os"
	"strconv"
	"time"

	"storefront/cmd"
	"storefront/internal/adapters/out/postgres"
	"storefront/internal/datagen"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	gormDB, err := gorm.Open(gormpostgres.Open(configs.PostgresDSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	if err = postgres.Migrate(gormDB); err != nil {
		log.Fatalf("Error migrating database schema: %v", err)
	}

	app := cmd.NewCompositionRoot(configs, gormDB)

	sizes := datagen.Sizes{
		Customers:  intEnv(configs.DatagenCustomers, 1000),
		Addresses:  intEnv(configs.DatagenAddresses, 1000),
		Categories: intEnv(configs.DatagenCategories, 50),
		Suppliers:  intEnv(configs.DatagenSuppliers, 100),
		Products:   intEnv(configs.DatagenProducts, 1000),
		Discounts:  intEnv(configs.DatagenDiscounts, 100),
		Orders:     intEnv(configs.DatagenOrders, 5000),
		ChunkSize:  intEnv(configs.DatagenChunkSize, 1000),
	}
	seed := uint64(intEnv(configs.DatagenSeed, 0))

	generator := datagen.NewGenerator(gormDB, app.UnitOfWorkFactory(), sizes, seed, logger)

	started := time.Now()
	if err = generator.Run(context.Background()); err != nil {
		log.Fatalf("Data generation failed: %v", err)
	}
	logger.Info("Data generation completed", "orders", sizes.Orders, "elapsed", time.Since(started))
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		DBHost:     goDotEnvVariable("DB_HOST"),
		DBPort:     goDotEnvVariable("DB_PORT"),
		DBUser:     goDotEnvVariable("DB_USER"),
		DBPassword: goDotEnvVariable("DB_PASSWORD"),
		DBName:     goDotEnvVariable("DB_NAME"),
		DBSslMode:  goDotEnvVariable("DB_SSLMODE"),

		DatagenCustomers:  os.Getenv("DATAGEN_CUSTOMERS"),
		DatagenAddresses:  os.Getenv("DATAGEN_ADDRESSES"),
		DatagenCategories: os.Getenv("DATAGEN_CATEGORIES"),
		DatagenSuppliers:  os.Getenv("DATAGEN_SUPPLIERS"),
		DatagenProducts:   os.Getenv("DATAGEN_PRODUCTS"),
		DatagenDiscounts:  os.Getenv("DATAGEN_DISCOUNTS"),
		DatagenOrders:     os.Getenv("DATAGEN_ORDERS"),
		DatagenChunkSize:  os.Getenv("DATAGEN_CHUNK_SIZE"),
		DatagenSeed:       os.Getenv("DATAGEN_SEED"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func intEnv(raw string, fallback int) int {
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		log.Fatalf("Invalid numeric setting %q: %v", raw, err)
	}
	return value
}
