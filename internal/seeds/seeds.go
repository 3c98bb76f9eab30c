package seeds

import (
	"log"
	"os"

	"github.com/CampusCore/ERP-Backend/internal/auth"
	"github.com/CampusCore/ERP-Backend/internal/students"
	"github.com/CampusCore/ERP-Backend/internal/utils"
	"github.com/goccy/go-yaml"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gorm.io/gorm"
)

// Manifest is the YAML shape of a demo-data file.
type Manifest struct {
	Admins   []AdminSeed   `yaml:"admins"`
	Students []StudentSeed `yaml:"students"`
}

type AdminSeed struct {
	Email    string `yaml:"email"`
	Password string `yaml:"password"`
}

type StudentSeed struct {
	Email      string `yaml:"email"`
	Password   string `yaml:"password"`
	Name       string `yaml:"name"`
	Surname    string `yaml:"surname"`
	DOB        string `yaml:"dob"`
	Department string `yaml:"department"`
	Semester   string `yaml:"semester"`
	RollNumber string `yaml:"rollNumber"`
}

func Load(path string) (Manifest, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Manifest{}, err
	}

	var m Manifest
	if err := yaml.Unmarshal(raw, &m); err != nil {
		return Manifest{}, err
	}
	return m, nil
}

// Apply creates the manifest's users the same way the registration
// handlers do. Existing emails are left alone so reseeding is safe.
func Apply(gdb *gorm.DB, m Manifest) error {
	titler := cases.Title(language.English)

	for _, seed := range m.Admins {
		exists, err := userExists(gdb, seed.Email)
		if err != nil {
			return err
		}
		if exists {
			log.Printf("seed: admin %s already exists, skipping", seed.Email)
			continue
		}

		hashed, err := bcrypt.GenerateFromPassword([]byte(seed.Password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		admin := auth.User{
			UserID:         utils.GenerateUUID(),
			Email:          seed.Email,
			HashedPassword: string(hashed),
			Role:           auth.RoleAdmin,
		}
		if err := gdb.Create(&admin).Error; err != nil {
			return err
		}
		log.Printf("seed: created admin %s", seed.Email)
	}

	for _, seed := range m.Students {
		exists, err := userExists(gdb, seed.Email)
		if err != nil {
			return err
		}
		if exists {
			log.Printf("seed: student %s already exists, skipping", seed.Email)
			continue
		}

		hashed, err := bcrypt.GenerateFromPassword([]byte(seed.Password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}

		name := titler.String(seed.Name)
		surname := titler.String(seed.Surname)
		user := auth.User{
			UserID:         utils.GenerateUUID(),
			Email:          seed.Email,
			HashedPassword: string(hashed),
			Role:           auth.RoleStudent,
			Name:           name,
			Surname:        surname,
			DOB:            seed.DOB,
			Department:     seed.Department,
			Semester:       seed.Semester,
			RollNumber:     seed.RollNumber,
		}
		record := students.New(seed.Email, name, surname, seed.DOB,
			seed.RollNumber, seed.Department, seed.Semester)

		err = gdb.Transaction(func(tx *gorm.DB) error {
			if err := tx.Create(&user).Error; err != nil {
				return err
			}
			return tx.Create(record).Error
		})
		if err != nil {
			return err
		}
		log.Printf("seed: created student %s", seed.Email)
	}

	return nil
}

func userExists(gdb *gorm.DB, email string) (bool, error) {
	var count int64
	err := gdb.Model(&auth.User{}).Where("email = ?", email).Count(&count).Error
	return count > 0, err
}
