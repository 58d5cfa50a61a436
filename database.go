package main

import (
	"fmt"
	"strings"

	"starWarsApi/models"

	"github.com/glebarez/sqlite"
	"github.com/lib/pq"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

const (
	postgresDriver = "postgres"
	sqliteDriver   = "sqlite"
)

// databaseDsn maps a DATABASE_URL onto a driver and the dsn that driver expects.
// postgres:// and postgresql:// URLs become libpq keyword strings, sqlite:///
// URLs follow the SQLAlchemy convention (four slashes for an absolute path) and
// anything else is treated as a sqlite file path.
func databaseDsn(url string) (string, string, error) {
	if strings.HasPrefix(url, "postgres://") || strings.HasPrefix(url, "postgresql://") {
		dsn, err := pq.ParseURL(url)

		if err != nil {
			return "", "", fmt.Errorf("invalid postgres url: %w", err)
		}

		return postgresDriver, dsn + " TimeZone=Etc/UTC", nil
	}

	path := strings.TrimPrefix(url, "sqlite:///")

	if path == "" {
		return "", "", fmt.Errorf("invalid sqlite url: %q", url)
	}

	if path != ":memory:" {
		path = "file:" + path
	}

	separator := "?"

	if strings.Contains(path, "?") {
		separator = "&"
	}

	return sqliteDriver, path + separator + "_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)", nil
}

func SetupDatabaseConnection(databaseConfig DatabaseConfig) (*gorm.DB, error) {
	driver, dsn, err := databaseDsn(databaseConfig.Url)

	if err != nil {
		return nil, err
	}

	var dialector gorm.Dialector

	if driver == postgresDriver {
		dialector = postgres.Open(dsn)
	} else {
		dialector = sqlite.Open(dsn)
	}

	logMode := gormLogger.Silent

	if databaseConfig.LogQueries {
		logMode = gormLogger.Info
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         gormLogger.Default.LogMode(logMode),
		TranslateError: true,
	})

	if err != nil {
		return nil, fmt.Errorf("failed to open %s database: %w", driver, err)
	}

	sqlDb, err := db.DB()

	if err != nil {
		return nil, err
	}

	sqlDb.SetMaxIdleConns(databaseConfig.MaxIdleConnections)
	sqlDb.SetMaxOpenConns(databaseConfig.MaxOpenConnections)

	if err := MigrateDatabase(db); err != nil {
		return nil, err
	}

	log.Info().Str("driver", driver).Msg("database ready")

	return db, nil
}

func MigrateDatabase(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.Character{},
		&models.Planet{},
		&models.Favorite{},
	)

	if err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	return nil
}
