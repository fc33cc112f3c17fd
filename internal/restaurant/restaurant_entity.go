package restaurant

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Restaurant struct {
	ID        uuid.UUID      `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	OwnerID   uuid.UUID      `gorm:"column:owner_id;type:uuid;not null;index"`
	Name      string         `gorm:"column:name;type:varchar(255);not null"`
	Address   string         `gorm:"column:address;type:text;not null"`
	ContactNo string         `gorm:"column:contact_no;type:varchar(50);not null"`
	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index"`
}

func (Restaurant) TableName() string {
	return "restaurants"
}
