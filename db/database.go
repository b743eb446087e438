package db

import (
	"fmt"
	"log"

	"github.com/medialoc/crm-go/config"
	"github.com/medialoc/crm-go/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func createEnums() {
	enums := []string{
		`DO $$ BEGIN CREATE TYPE user_role AS ENUM ('admin', 'delivery_head', 'sales_executive'); EXCEPTION WHEN duplicate_object THEN null; END $$;`,
		`DO $$ BEGIN CREATE TYPE account_type AS ENUM ('Client', 'Partner', 'Vendor'); EXCEPTION WHEN duplicate_object THEN null; END $$;`,
		`DO $$ BEGIN CREATE TYPE project_status AS ENUM ('Not Started', 'In Progress', 'On Hold', 'Completed', 'Cancelled'); EXCEPTION WHEN duplicate_object THEN null; END $$;`,
		`DO $$ BEGIN CREATE TYPE task_status AS ENUM ('To Do', 'In Progress', 'Blocked', 'Done'); EXCEPTION WHEN duplicate_object THEN null; END $$;`,
		`DO $$ BEGIN CREATE TYPE update_type AS ENUM ('Call', 'Email', 'Meeting', 'Follow-up', 'Internal Discussion', 'Client Update'); EXCEPTION WHEN duplicate_object THEN null; END $$;`,
		`DO $$ BEGIN CREATE TYPE delivery_project_type AS ENUM ('QVO', 'DT'); EXCEPTION WHEN duplicate_object THEN null; END $$;`,
	}

	for _, enum := range enums {
		if err := DB.Exec(enum).Error; err != nil {
			log.Printf("Failed to create enum: %s, error: %v", enum, err)
		}
	}
}

func Init() {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		config.DbHost,
		config.DbPort,
		config.DbUser,
		config.DbPassword,
		config.DbName,
	)

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to DB:", err)
	}

	createEnums()

	if err := DB.AutoMigrate(
		&models.User{},
		&models.Account{},
		&models.Project{},
		&models.Task{},
		&models.Update{},
		&models.Attachment{},
		&models.DeliveryStatus{},
		&models.AuditLog{},
	); err != nil {
		log.Fatal("Failed to migrate DB:", err)
	}
}
