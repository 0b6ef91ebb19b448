package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Partner represents an account holder whose bookmaker accounts the
// team operates
type Partner struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name      string    `gorm:"type:varchar(100);not null" json:"name"`
	Contact   string    `gorm:"type:varchar(100)" json:"contact,omitempty"`
	Notes     string    `gorm:"type:text" json:"notes,omitempty"`
	IsActive  *bool     `gorm:"default:true" json:"is_active"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	Bookmakers []Bookmaker `gorm:"foreignKey:PartnerID" json:"-"`
}

// TableName specifies the table name for Partner model
func (*Partner) TableName() string {
	return "partners"
}

// BeforeCreate sets up the model before creation
func (p *Partner) BeforeCreate(_ *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// Validate performs validation on the partner model
func (p *Partner) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return ErrInvalidPartnerName
	}
	return nil
}
