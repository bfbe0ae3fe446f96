package seeds

import (
	"log"

	"github.com/youssefrramdan/care-insight-api/internal/database"
	"github.com/youssefrramdan/care-insight-api/internal/models"
	"github.com/youssefrramdan/care-insight-api/pkg/utils"
)

func SeedSpecialties() {
	log.Println("🩺 Seeding Medical Specialties...")

	specialties := []models.Specialty{
		{
			Name:        "Oncology",
			Description: "Diagnosis and treatment of cancer, including chemotherapy, radiation therapy, and targeted treatment plans.",
			ImageCover:  "https://images.unsplash.com/photo-1579154204601-01588f351e67?q=80&w=2670&auto=format&fit=crop",
		},
		{
			Name:        "Radiology",
			Description: "Medical imaging for diagnosis: X-ray, MRI, CT, and ultrasound interpretation.",
			ImageCover:  "https://images.unsplash.com/photo-1516069677018-378515003435?q=80&w=2670&auto=format&fit=crop",
		},
		{
			Name:        "Dermatology",
			Description: "Conditions of the skin, hair, and nails, from acne to melanoma screening.",
			ImageCover:  "https://images.unsplash.com/photo-1612349317150-e413f6a5b16d?q=80&w=2670&auto=format&fit=crop",
		},
		{
			Name:        "Neurology",
			Description: "Disorders of the brain, spinal cord, and nervous system.",
			ImageCover:  "https://images.unsplash.com/photo-1559757175-5700dde675bc?q=80&w=2670&auto=format&fit=crop",
		},
		{
			Name:        "Genetic Medicine",
			Description: "Hereditary condition assessment, gene variation analysis, and genetic counseling.",
			ImageCover:  "https://images.unsplash.com/photo-1583912267550-d6c2ac3196c0?q=80&w=2670&auto=format&fit=crop",
		},
		{
			Name:        "General Medicine",
			Description: "Primary care, routine checkups, and referrals to specialist consultations.",
			ImageCover:  "https://images.unsplash.com/photo-1576091160399-112ba8d25d1f?q=80&w=2670&auto=format&fit=crop",
		},
	}

	for _, s := range specialties {
		var existing models.Specialty
		if err := database.DB.Where("name = ?", s.Name).First(&existing).Error; err == nil {
			log.Printf("   ℹ️ Specialty %s already exists", s.Name)
			continue
		}

		s.ID = utils.GenerateID()
		if err := database.DB.Create(&s).Error; err != nil {
			log.Printf("   ❌ Failed to seed specialty %s: %v", s.Name, err)
		} else {
			log.Printf("   🩺 Specialty Added: %s", s.Name)
		}
	}
}
