package db

import (
	"database/sql"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var SQLDB *sql.DB
var DB *gorm.DB

// Init_DB 打开 sqlite 数据库并迁移历史记录表
func Init_DB(path string) error {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetConnMaxLifetime(time.Hour)
	DB = db
	SQLDB = sqlDB

	return db.AutoMigrate(&RunDetail{}, &WarningRecord{}, &OperationLog{})
}
