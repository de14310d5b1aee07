package entity

import (
	"time"

	"github.com/google/uuid"
)

// Patient is the role record for users with role 'patient'
type Patient struct {
	ID                       uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID                   uuid.UUID  `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	BloodGroup               string     `gorm:"type:varchar(10)" json:"blood_group,omitempty"`
	DateOfBirth              *time.Time `gorm:"type:date" json:"date_of_birth,omitempty"`
	Gender                   string     `gorm:"type:varchar(20)" json:"gender,omitempty"`
	AddressLine1             string     `gorm:"type:text" json:"address_line_1,omitempty"`
	AddressLine2             string     `gorm:"type:text" json:"address_line_2,omitempty"`
	City                     string     `gorm:"type:varchar(100)" json:"city,omitempty"`
	State                    string     `gorm:"type:varchar(100)" json:"state,omitempty"`
	Country                  string     `gorm:"type:varchar(100)" json:"country,omitempty"`
	Pincode                  string     `gorm:"type:varchar(20)" json:"pincode,omitempty"`
	EmergencyContactName     string     `gorm:"type:text" json:"emergency_contact_name,omitempty"`
	EmergencyContactPhone    string     `gorm:"type:varchar(20)" json:"emergency_contact_phone,omitempty"`
	EmergencyContactRelation string     `gorm:"type:varchar(50)" json:"emergency_contact_relation,omitempty"`
	MedicalHistory           JSON       `gorm:"type:jsonb" json:"medical_history,omitempty"`
	CurrentMedications       JSON       `gorm:"type:jsonb" json:"current_medications,omitempty"`
	Allergies                JSON       `gorm:"type:jsonb" json:"allergies,omitempty"`
	ChronicConditions        JSON       `gorm:"type:jsonb" json:"chronic_conditions,omitempty"`
	InsuranceProvider        string     `gorm:"type:text" json:"insurance_provider,omitempty"`
	InsurancePolicyNumber    string     `gorm:"type:varchar(100)" json:"insurance_policy_number,omitempty"`
	CreatedAt                time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt                time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Patient) TableName() string {
	return "patients"
}
