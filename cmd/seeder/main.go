package main

import (
	"log"

	"github.com/youssefrramdan/care-insight-api/internal/config"
	"github.com/youssefrramdan/care-insight-api/internal/database"
	"github.com/youssefrramdan/care-insight-api/internal/models"
	"github.com/youssefrramdan/care-insight-api/internal/seeds"
)

func main() {
	config.LoadConfig()
	database.Connect()

	log.Println("🔄 Running migrations (just in case)...")
	database.DB.AutoMigrate(
		&models.Specialty{},
		&models.User{},
		&models.WorkingHour{},
		&models.MedicalDocument{},
		&models.Appointment{},
		&models.AppointmentFile{},
		&models.Review{},
		&models.HealthTalk{},
		&models.HealthTalkComment{},
		&models.HealthTalkLike{},
		&models.MedicalRecord{},
		&models.RecordMedication{},
		&models.RecordAttachment{},
		&models.Message{},
	)

	seeds.SeedSpecialties()
	if _, err := seeds.GetOrCreateAdminUser(); err != nil {
		log.Fatalf("❌ Failed to create admin user: %v", err)
	}
	seeds.SeedDemoUsers()

	log.Println("✅ Seeding Complete!")
}
