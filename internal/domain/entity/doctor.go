package entity

import "time"

// Doctor represents a registered physician, identified by CRM
type Doctor struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	CPF       string    `gorm:"column:cpf;type:varchar(20);uniqueIndex:idx_doctors_cpf;not null" json:"cpf"`
	Specialty string    `gorm:"type:varchar(100);not null;index" json:"specialty"`
	CRM       string    `gorm:"column:crm;type:varchar(50);uniqueIndex:idx_doctors_crm;not null" json:"crm"`
	Address   string    `gorm:"type:text;not null" json:"address"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`

	// Relationships
	Appointments []Appointment `gorm:"foreignKey:DoctorID" json:"appointments,omitempty"`
}

func (Doctor) TableName() string {
	return "doctors"
}
