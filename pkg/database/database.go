package database

import (
	"fmt"
	"log"

	"studyspace_backend/internal/config"
	"studyspace_backend/internal/model"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
		cfg.Charset,
		cfg.ParseTime,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})

	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")
	return db, nil
}

// Migrate 建表。study_material 的主键是 (video_id, user_id) 复合键，
// 同一用户对同一视频只有一行最新记录。
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&model.StudyMaterial{},
		&model.StudyTask{},
		&model.Reminder{},
	)
	if err != nil {
		return err
	}

	log.Println("Database migration completed")
	return nil
}
