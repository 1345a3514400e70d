package configs

import (
	"fmt"

	"github.com/AndersonMairnck/frontFynanceo/entity"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var db *gorm.DB

func DB() *gorm.DB {
	return db
}

// Dialector picks the gorm driver for the journal database.
func Dialector(driver, source string) (gorm.Dialector, error) {
	switch driver {
	case "", "sqlite":
		return sqlite.Open(source), nil
	case "postgres":
		return postgres.Open(source), nil
	case "mysql":
		return mysql.Open(source), nil
	}
	return nil, fmt.Errorf("unsupported DB_DRIVER %q", driver)
}

func ConnectionDB(cfg *Config) error {
	d, err := Dialector(cfg.DBDriver, cfg.DBSource)
	if err != nil {
		return err
	}
	gcfg := &gorm.Config{}
	if cfg.IsProduction() {
		gcfg.Logger = logger.Default.LogMode(logger.Warn)
	}
	database, err := gorm.Open(d, gcfg)
	if err != nil {
		return fmt.Errorf("failed to connect database: %w", err)
	}
	db = database
	return nil
}

func SetupDatabase() error {
	return db.AutoMigrate(&entity.SaleRecord{})
}
