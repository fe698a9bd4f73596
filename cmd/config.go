package cmd

import "fmt"

// Config carries all runtime settings, loaded from the environment by the
// entry points.
type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	DatagenCustomers  string
	DatagenAddresses  string
	DatagenCategories string
	DatagenSuppliers  string
	DatagenProducts   string
	DatagenDiscounts  string
	DatagenOrders     string
	DatagenChunkSize  string
	DatagenSeed       string
}

// PostgresDSN builds the connection string for the configured database.
func (c Config) PostgresDSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}
