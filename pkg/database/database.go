package database

import (
	"codista_lms/internal/config"
	"codista_lms/internal/model"
	"fmt"
	"log"

	"golang.org/x/crypto/bcrypt"
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
		Logger: logger.Default.LogMode(logger.Warn),
	})

	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	return db, nil
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.Course{},
		&model.Progress{},
		&model.Question{},
		&model.Reply{},
	)
}

// Seed ensures the default instructor account exists and syncs the
// bundled course catalog, keyed by title so reruns update in place.
func Seed(db *gorm.DB) error {
	var instructor model.User
	err := db.Where("email = ?", "instructor@codista.com").First(&instructor).Error
	if err == gorm.ErrRecordNotFound {
		hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		instructor = model.User{
			Name:     "Chief Instructor",
			Email:    "instructor@codista.com",
			Password: string(hashed),
			Role:     model.Instructor,
		}
		if err := db.Create(&instructor).Error; err != nil {
			return err
		}
		log.Println("Default instructor created")
	} else if err != nil {
		return err
	}

	for _, seed := range SeedCourses {
		var course model.Course
		err := db.Where("title = ?", seed.Title).First(&course).Error
		switch err {
		case gorm.ErrRecordNotFound:
			course = seed
			course.InstructorID = instructor.ID
			if course.InstructorName == "" {
				course.InstructorName = instructor.Name
			}
			if err := db.Create(&course).Error; err != nil {
				return err
			}
		case nil:
			// full overwrite, instructor fields included
			course.Description = seed.Description
			course.VideoURL = seed.VideoURL
			course.Category = seed.Category
			course.InstructorID = instructor.ID
			course.InstructorName = seed.InstructorName
			if course.InstructorName == "" {
				course.InstructorName = instructor.Name
			}
			if err := db.Save(&course).Error; err != nil {
				return err
			}
		default:
			return err
		}
	}

	log.Printf("Database synced: %d catalog courses", len(SeedCourses))
	return nil
}
