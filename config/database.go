package config

import (
	"fmt"
	"strings"

	"coursecatalog/pkg/logger"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// DB is the global GORM database instance used throughout the application.
var DB *gorm.DB

// ConnectDB establishes the database connection using GORM.
// The default driver is sqlite with a single database file; set DB_DRIVER=mysql
// to run against a MySQL server instead.
func ConnectDB() error {
	var (
		db  *gorm.DB
		err error
	)

	switch strings.ToLower(Cfg.DBDriver) {
	case "mysql":
		logger.Infof("Connecting to database %s@%s:%d/%s", Cfg.DBUser, Cfg.DBHost, Cfg.DBPort, Cfg.DBName)
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			Cfg.DBUser,
			Cfg.DBPass,
			Cfg.DBHost,
			Cfg.DBPort,
			Cfg.DBName,
		)
		db, err = gorm.Open(mysql.Open(dsn), &gorm.Config{})
	case "sqlite", "":
		logger.Infof("Opening sqlite database file %s", Cfg.DBPath)
		db, err = gorm.Open(sqlite.Open(Cfg.DBPath), &gorm.Config{})
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q (expected sqlite or mysql)", Cfg.DBDriver)
	}

	if err != nil {
		logger.Errorf("GORM connection failed: %v", err)
		return err
	}
	logger.Infof("GORM connected successfully using %s driver", Cfg.DBDriver)

	DB = db
	return nil
}
