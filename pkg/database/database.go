package database

import (
	"codelearn_backend/internal/config"
	"codelearn_backend/internal/model"
	"fmt"
	"log"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDB(cfg *config.DatabaseConfig, migrate bool) (*gorm.DB, error) {
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

	if !migrate {
		return db, nil
	}

	err = db.AutoMigrate(
		&model.User{},
		&model.ExerciseProgress{},
		&model.ExerciseState{},
		&model.FeedbackTemplate{},
		&model.ReviewRequestLog{},
	)
	if err != nil {
		return nil, err
	}

	log.Println("Database migration completed")

	// 反馈模板为空时写入内置语料
	var count int64
	db.Model(&model.FeedbackTemplate{}).Count(&count)
	if count == 0 {
		for _, t := range defaultFeedbackTemplates() {
			db.Create(&t)
		}
		log.Println("Seeded default feedback templates")
	}

	return db, nil
}
