package seeds

import (
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/youssefrramdan/care-insight-api/internal/database"
	"github.com/youssefrramdan/care-insight-api/internal/models"
	"github.com/youssefrramdan/care-insight-api/pkg/utils"
)

func GetOrCreateAdminUser() (models.User, error) {
	log.Println("👤 Checking Admin User...")

	email := "admin@careinsight.com"

	var user models.User
	err := database.DB.Where("email = ?", email).First(&user).Error

	if err == nil {
		log.Printf("   ✅ Admin User found: %s", user.Email)
		return user, nil
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte("CareInsightAdmin2026!"), 12)

	user = models.User{
		ID:          utils.GenerateID(),
		FullName:    "Care Insight Team",
		Email:       email,
		PhoneNumber: "+201000000000",
		Password:    string(hash),
		Role:        models.RoleAdmin,
		IsVerified:  true,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	if err := database.DB.Create(&user).Error; err != nil {
		return models.User{}, err
	}

	log.Printf("   ✅ Admin User Created: %s", user.Email)
	return user, nil
}

func SeedDemoUsers() {
	log.Println("👥 Seeding Demo Users...")

	var oncology models.Specialty
	if err := database.DB.Where("name = ?", "Oncology").First(&oncology).Error; err != nil {
		log.Println("   ⚠️ Oncology specialty missing, run specialty seed first")
		return
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte("password123"), 12)

	doctor := models.User{
		ID:                utils.GenerateID(),
		FullName:          "Dr. Sarah Hassan",
		Email:             "sarah.hassan@careinsight.com",
		PhoneNumber:       "+201111111111",
		Gender:            models.GenderFemale,
		Password:          string(hash),
		Role:              models.RoleDoctor,
		IsVerified:        true,
		SpecialtyID:       &oncology.ID,
		WorkPlace:         "Cairo Oncology Center",
		ClinicLocation:    "12 Kasr El Aini St, Cairo",
		YearsOfExperience: 11,
		ProfessionalBio:   "Consultant oncologist focused on early detection and personalized treatment plans.",
		WorkingHours: []models.WorkingHour{
			{ID: utils.GenerateID(), Day: "sunday", From: "09:00", To: "15:00"},
			{ID: utils.GenerateID(), Day: "tuesday", From: "09:00", To: "15:00"},
			{ID: utils.GenerateID(), Day: "thursday", From: "12:00", To: "18:00"},
		},
	}
	doctor.RecomputeAvailability()

	patient := models.User{
		ID:               utils.GenerateID(),
		FullName:         "Omar Khaled",
		Email:            "omar.khaled@example.com",
		PhoneNumber:      "+201222222222",
		Gender:           models.GenderMale,
		Password:         string(hash),
		Role:             models.RolePatient,
		IsVerified:       true,
		Age:              34,
		Height:           178,
		Weight:           82,
		BloodType:        "O+",
		MedicalCondition: "Stable, under periodic followup",
		ChronicDiseases:  []string{"hypertension"},
	}

	for _, u := range []models.User{doctor, patient} {
		var existing models.User
		if err := database.DB.Where("email = ?", u.Email).First(&existing).Error; err == nil {
			log.Printf("   ℹ️ User %s already exists", u.Email)
			continue
		}
		if err := database.DB.Create(&u).Error; err != nil {
			log.Printf("   ❌ Failed to seed user %s: %v", u.Email, err)
		} else {
			log.Printf("   👤 User Added: %s (%s)", u.FullName, u.Role)
		}
	}
}
