package database

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"barmaja/config"
	"barmaja/logging"
	"barmaja/models"
	"barmaja/oops"

	"github.com/rs/zerolog"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// DbInstance struct holds the database connection instance
type DbInstance struct {
	Db *gorm.DB
}

// Database is the global database instance
var Database DbInstance

// ConnectDb opens the configured database and stores it globally.
// Migrations are run separately by the migrate command or on serve.
func ConnectDb() error {
	cfg := config.AppConfig
	db, err := Open(cfg.DBDriver, DSN(cfg))
	if err != nil {
		return err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return oops.New(err, "failed to get database instance")
	}
	if cfg.DBDriver != "sqlite" {
		sqlDB.SetMaxOpenConns(10)
		sqlDB.SetMaxIdleConns(5)
		sqlDB.SetConnMaxLifetime(time.Hour)
	}

	logging.Info().Str("driver", cfg.DBDriver).Str("database", cfg.DBName).Msg("Connected to database")
	Database = DbInstance{Db: db}
	return nil
}

// DSN builds the connection string for the configured driver. For sqlite,
// DB_NAME is the file path.
func DSN(cfg *config.Config) string {
	switch cfg.DBDriver {
	case "mysql":
		return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
			cfg.DBUser, cfg.DBPassword, cfg.DBHost, cfg.DBPort, cfg.DBName)
	case "sqlite":
		return cfg.DBName + "?_foreign_keys=on"
	default:
		return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
			cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort)
	}
}

// Open connects with unique-constraint violations translated to
// gorm.ErrDuplicatedKey.
func Open(driver, dsn string) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch driver {
	case "postgres":
		dialector = postgres.Open(dsn)
	case "mysql":
		dialector = mysql.Open(dsn)
	case "sqlite":
		dialector = sqlite.Open(dsn)
	default:
		return nil, oops.New(nil, "unsupported DB_DRIVER %q", driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
		Logger:         newGormLogger(),
	})
	if err != nil {
		return nil, oops.New(err, "failed to connect to %s", driver)
	}
	return db, nil
}

// RunMigrations creates or updates every table and unique index.
func RunMigrations(db *gorm.DB) error {
	logging.Info().Msg("Running Migrations...")

	err := db.AutoMigrate(
		&models.User{},
		&models.Course{},
		&models.CourseContent{},
		&models.BlogPost{},
		&models.Enrollment{},
		&models.CourseComment{},
		&models.CourseContentComment{},
	)
	if err != nil {
		return oops.New(err, "migration failed")
	}

	logging.Info().Msg("Migrations completed successfully.")
	return nil
}

// IsUniqueViolation reports whether err came from a unique index. Drivers
// that gorm cannot translate are matched on their message.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "duplicate entry")
}

// ForUpdate adds a row lock to tx. sqlite has no SELECT ... FOR UPDATE and
// already serializes writers, so it is left unchanged there.
func ForUpdate(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "sqlite" {
		return tx
	}
	return tx.Clauses(clause.Locking{Strength: "UPDATE"})
}

func newGormLogger() logger.Interface {
	level := logger.Warn
	switch {
	case config.AppConfig == nil:
		level = logger.Silent
	case config.AppConfig.LogLevel <= zerolog.DebugLevel:
		level = logger.Info
	case config.AppConfig.LogLevel > zerolog.WarnLevel:
		level = logger.Silent
	}
	return logger.New(gormWriter{}, logger.Config{
		SlowThreshold:             500 * time.Millisecond,
		LogLevel:                  level,
		IgnoreRecordNotFoundError: true,
	})
}

// gormWriter forwards gorm's printf-style output to zerolog.
type gormWriter struct{}

func (gormWriter) Printf(format string, args ...interface{}) {
	logging.GlobalLogger().Debug().Str("component", "gorm").Msg(fmt.Sprintf(format, args...))
}
