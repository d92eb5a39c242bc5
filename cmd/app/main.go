package main

import (
	"fmt"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/DevonBastiansz/courier-manager/cmd"
	"github.com/DevonBastiansz/courier-manager/internal/adapters/out/postgres/accountrepo"
	"github.com/DevonBastiansz/courier-manager/internal/adapters/out/postgres/shipmentrepo"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	db := mustOpenDB(configs)
	app := cmd.NewCompositionRoot(configs, db)
	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:   goDotEnvVariable("HTTP_PORT"),
		DBHost:     goDotEnvVariable("DB_HOST"),
		DBPort:     goDotEnvVariable("DB_PORT"),
		DBUser:     goDotEnvVariable("DB_USER"),
		DBPassword: goDotEnvVariable("DB_PASSWORD"),
		DBName:     goDotEnvVariable("DB_NAME"),
		DBSslMode:  goDotEnvVariable("DB_SSLMODE"),
		JWTSecret:  goDotEnvVariable("JWT_SECRET"),
		TokenTTL:   durationEnvVariable("TOKEN_TTL"),
		BcryptCost: intEnvVariable("BCRYPT_COST"),
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

// durationEnvVariable parses a duration from the environment.
// An empty or malformed value yields zero, which downstream constructors
// replace with their defaults.
func durationEnvVariable(key string) time.Duration {
	d, err := time.ParseDuration(goDotEnvVariable(key))
	if err != nil {
		return 0
	}
	return d
}

func intEnvVariable(key string) int {
	n, err := strconv.Atoi(goDotEnvVariable(key))
	if err != nil {
		return 0
	}
	return n
}

func mustOpenDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword,
		configs.DBName, configs.DBSslMode,
	)

	// TranslateError turns the unique-index violation into
	// gorm.ErrDuplicatedKey, which the repositories map to conflicts.
	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = db.AutoMigrate(&accountrepo.AccountDTO{}, &shipmentrepo.ShipmentDTO{})
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	return db
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	app.CreateHTTPServer().RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
