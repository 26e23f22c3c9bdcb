package seed

import (
	"context"
	"fmt"
	"time"

	"hospital-admin-api/config"
	"hospital-admin-api/internal/domain/entity"
	"hospital-admin-api/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Seeder fills an empty database with an administrator and sample records.
// Running it again only creates what is still missing.
type Seeder struct {
	db          *gorm.DB
	log         *logrus.Logger
	userRepo    repository.UserRepository
	doctorRepo  repository.DoctorRepository
	patientRepo repository.PatientRepository
}

// Result counts the rows a run actually inserted
type Result struct {
	Users    int
	Doctors  int
	Patients int
}

func NewSeeder(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	doctorRepo repository.DoctorRepository,
	patientRepo repository.PatientRepository,
) *Seeder {
	return &Seeder{
		db:          db,
		log:         log,
		userRepo:    userRepo,
		doctorRepo:  doctorRepo,
		patientRepo: patientRepo,
	}
}

var sampleDoctors = []entity.Doctor{
	{Name: "Dr. Ana Souza", CPF: "111.111.111-11", Specialty: "Cardiology", CRM: "CRM-SP-100001", Address: "Av. Paulista, 1000, Sao Paulo"},
	{Name: "Dr. Bruno Lima", CPF: "222.222.222-22", Specialty: "Dermatology", CRM: "CRM-RJ-200002", Address: "Rua das Laranjeiras, 200, Rio de Janeiro"},
	{Name: "Dr. Carla Mendes", CPF: "333.333.333-33", Specialty: "Pediatrics", CRM: "CRM-MG-300003", Address: "Av. Afonso Pena, 300, Belo Horizonte"},
}

var samplePatients = []struct {
	entity.Patient
	birthDate string
}{
	{entity.Patient{Name: "Joao Pereira", CPF: "444.444.444-44", Phone: "+55 11 90000-0001", Email: "joao.pereira@example.com", Address: "Rua A, 10, Sao Paulo"}, "1985-03-12"},
	{entity.Patient{Name: "Maria Oliveira", CPF: "555.555.555-55", Phone: "+55 21 90000-0002", Email: "maria.oliveira@example.com", Address: "Rua B, 20, Rio de Janeiro"}, "1992-07-25"},
	{entity.Patient{Name: "Pedro Santos", CPF: "666.666.666-66", Phone: "+55 31 90000-0003", Email: "pedro.santos@example.com", Address: "Rua C, 30, Belo Horizonte"}, "2001-11-02"},
}

func (s *Seeder) Run(ctx context.Context, admin config.SeedConfig) (*Result, error) {
	tx := s.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	result := &Result{}

	existing, err := s.userRepo.FindByEmail(tx, admin.AdminEmail)
	if err != nil {
		return nil, fmt.Errorf("failed to look up admin: %w", err)
	}
	if existing == nil {
		hashed, err := bcrypt.GenerateFromPassword([]byte(admin.AdminPassword), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash admin password: %w", err)
		}
		if err := s.userRepo.Create(tx, &entity.User{Name: "Administrator", Email: admin.AdminEmail, Password: string(hashed)}); err != nil {
			return nil, fmt.Errorf("failed to create admin: %w", err)
		}
		result.Users++
	}

	for _, d := range sampleDoctors {
		exists, err := s.doctorExists(tx, d)
		if err != nil {
			return nil, fmt.Errorf("failed to look up doctor %s: %w", d.CRM, err)
		}
		if exists {
			continue
		}
		doctor := d
		if err := s.doctorRepo.Create(tx, &doctor); err != nil {
			return nil, fmt.Errorf("failed to create doctor %s: %w", d.CRM, err)
		}
		result.Doctors++
	}

	for _, p := range samplePatients {
		exists, err := s.patientExists(tx, p.Patient)
		if err != nil {
			return nil, fmt.Errorf("failed to look up patient %s: %w", p.Email, err)
		}
		if exists {
			continue
		}
		birthDate, err := time.Parse(entity.DateLayout, p.birthDate)
		if err != nil {
			return nil, err
		}
		patient := p.Patient
		patient.BirthDate = birthDate
		if err := s.patientRepo.Create(tx, &patient); err != nil {
			return nil, fmt.Errorf("failed to create patient %s: %w", p.Email, err)
		}
		result.Patients++
	}

	if err := tx.Commit().Error; err != nil {
		return nil, fmt.Errorf("failed to commit seed: %w", err)
	}

	s.log.WithFields(logrus.Fields{
		"users":    result.Users,
		"doctors":  result.Doctors,
		"patients": result.Patients,
	}).Info("Seed completed")

	return result, nil
}

// doctorExists matches a sample doctor on either unique key, CRM or CPF
func (s *Seeder) doctorExists(tx *gorm.DB, d entity.Doctor) (bool, error) {
	found, err := s.doctorRepo.FindByCRM(tx, d.CRM, 0)
	if err != nil || found != nil {
		return found != nil, err
	}
	found, err = s.doctorRepo.FindByCPF(tx, d.CPF, 0)
	return found != nil, err
}

// patientExists matches a sample patient on either unique key, email or CPF
func (s *Seeder) patientExists(tx *gorm.DB, p entity.Patient) (bool, error) {
	found, err := s.patientRepo.FindByEmail(tx, p.Email, 0)
	if err != nil || found != nil {
		return found != nil, err
	}
	found, err = s.patientRepo.FindByCPF(tx, p.CPF, 0)
	return found != nil, err
}
