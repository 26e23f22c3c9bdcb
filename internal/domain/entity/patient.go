package entity

import "time"

// Patient represents a person receiving care at the hospital
type Patient struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	CPF       string    `gorm:"column:cpf;type:varchar(20);uniqueIndex:idx_patients_cpf;not null" json:"cpf"`
	BirthDate time.Time `gorm:"type:date;not null" json:"birthDate"`
	Phone     string    `gorm:"type:varchar(30);not null" json:"phone"`
	Email     string    `gorm:"type:varchar(255);uniqueIndex:idx_patients_email;not null" json:"email"`
	Address   string    `gorm:"type:text;not null" json:"address"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`

	// Relationships
	Appointments []Appointment `gorm:"foreignKey:PatientID" json:"appointments,omitempty"`
}

func (Patient) TableName() string {
	return "patients"
}
