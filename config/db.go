package config

import (
	"fmt"
	"kidfit/domain"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var db *gorm.DB

// GetDatabaseURL builds the database connection string.
func GetDatabaseURL() string {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		os.Getenv("DB_HOST"), os.Getenv("DB_PORT"), os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"), os.Getenv("DB_DATABASE"))
	return dsn
}

// BootDB initializes the database connection and runs migrations.
func BootDB() (*gorm.DB, error) {
	url := GetDatabaseURL()
	var err error

	db, err = gorm.Open(postgres.Open(url), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := autoMigrate(db); err != nil {
		return db, err
	}

	fmt.Println("DB initialized")
	return db, nil
}

func autoMigrate(db *gorm.DB) error {
	// Enums must exist before the columns that use them.
	if err := db.Exec(`DO $$ BEGIN
		IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'role_enum') THEN
			CREATE TYPE role_enum AS ENUM ('parent', 'center', 'teacher');
		END IF;
	END $$`).Error; err != nil {
		return fmt.Errorf("failed to create role ENUM: %w", err)
	}

	if err := db.Exec(`DO $$ BEGIN
		IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'enrollment_status_enum') THEN
			CREATE TYPE enrollment_status_enum AS ENUM ('active', 'pending', 'paused', 'cancelled');
		END IF;
	END $$`).Error; err != nil {
		return fmt.Errorf("failed to create enrollment status ENUM: %w", err)
	}

	if err := db.Exec(`DO $$ BEGIN
		IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'attendance_status_enum') THEN
			CREATE TYPE attendance_status_enum AS ENUM ('present', 'absent', 'late', 'excused');
		END IF;
	END $$`).Error; err != nil {
		return fmt.Errorf("failed to create attendance status ENUM: %w", err)
	}

	// Tables without foreign keys first.
	if err := db.AutoMigrate(
		&domain.User{},
		&domain.Category{},
	); err != nil {
		return fmt.Errorf("failed to migrate base tables: %w", err)
	}

	// Then the relational tables, leaves last.
	if err := db.AutoMigrate(
		&domain.Parent{},
		&domain.Center{},
		&domain.Teacher{},
		&domain.Child{},
		&domain.Program{},
		&domain.Schedule{},
		&domain.Enrollment{},
		&domain.Attendance{},
	); err != nil {
		return fmt.Errorf("failed to migrate relational tables: %w", err)
	}

	return seedCategories(db)
}

// seedCategories installs the default taxonomy on first boot.
func seedCategories(db *gorm.DB) error {
	var count int64
	if err := db.Model(&domain.Category{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count categories: %w", err)
	}
	if count > 0 {
		return nil
	}

	fmt.Println("Seeding default categories....")

	roots := []domain.Category{
		{Name: "Sports", Description: "Physical activities and sports programs", Icon: "bi-trophy", Color: "#28a745"},
		{Name: "Arts & Crafts", Description: "Creative and artistic programs", Icon: "bi-palette", Color: "#6f42c1"},
		{Name: "Academic", Description: "Educational and academic subjects", Icon: "bi-book", Color: "#007bff"},
		{Name: "Technology", Description: "Programming, robotics, and tech skills", Icon: "bi-cpu", Color: "#17a2b8"},
		{Name: "Music", Description: "Musical instruments and vocal training", Icon: "bi-music-note", Color: "#fd7e14"},
		{Name: "Languages", Description: "Foreign language learning", Icon: "bi-translate", Color: "#20c997"},
	}
	if err := db.Create(&roots).Error; err != nil {
		return fmt.Errorf("failed to seed root categories: %w", err)
	}

	byName := make(map[string]int, len(roots))
	for _, c := range roots {
		byName[c.Name] = c.CategoryID
	}
	parentOf := func(name string) *int {
		id := byName[name]
		return &id
	}

	level2 := []domain.Category{
		{Name: "Martial Arts", ParentID: parentOf("Sports"), Icon: "bi-person-arms-up", Color: "#dc3545"},
		{Name: "Team Sports", ParentID: parentOf("Sports"), Icon: "bi-people", Color: "#28a745"},
		{Name: "Individual Sports", ParentID: parentOf("Sports"), Icon: "bi-person", Color: "#ffc107"},
		{Name: "Visual Arts", ParentID: parentOf("Arts & Crafts"), Icon: "bi-brush", Color: "#6f42c1"},
		{Name: "Performing Arts", ParentID: parentOf("Arts & Crafts"), Icon: "bi-mask", Color: "#e83e8c"},
		{Name: "Mathematics", ParentID: parentOf("Academic"), Icon: "bi-calculator", Color: "#007bff"},
		{Name: "Science", ParentID: parentOf("Academic"), Icon: "bi-flask", Color: "#17a2b8"},
	}
	if err := db.Create(&level2).Error; err != nil {
		return fmt.Errorf("failed to seed subcategories: %w", err)
	}
	for _, c := range level2 {
		byName[c.Name] = c.CategoryID
	}

	level3 := []domain.Category{
		{Name: "Boxing", ParentID: parentOf("Martial Arts"), Icon: "bi-hand-fist", Color: "#dc3545"},
		{Name: "Karate", ParentID: parentOf("Martial Arts"), Icon: "bi-person-arms-up", Color: "#fd7e14"},
		{Name: "Football", ParentID: parentOf("Team Sports"), Icon: "bi-soccer", Color: "#28a745"},
	}
	if err := db.Create(&level3).Error; err != nil {
		return fmt.Errorf("failed to seed leaf categories: %w", err)
	}

	return nil
}
