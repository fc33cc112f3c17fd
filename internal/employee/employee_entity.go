package employee

import (
	"time"

	"github.com/dongjrperez-netizen/RestuarantProject-sub002/internal/role"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Employee struct {
	ID           uuid.UUID      `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	RestaurantID uuid.UUID      `gorm:"column:restaurant_id;type:uuid;not null;index"`
	FirstName    string         `gorm:"column:first_name;type:varchar(255);not null"`
	MiddleName   string         `gorm:"column:middle_name;type:varchar(255)"`
	LastName     string         `gorm:"column:last_name;type:varchar(255);not null"`
	Email        string         `gorm:"column:email;type:text;not null;uniqueIndex"`
	Password     string         `gorm:"column:password;type:text;not null"`
	RoleID       int            `gorm:"column:role_id;type:int;not null"`
	DateOfBirth  *time.Time     `gorm:"column:date_of_birth;type:date"`
	Gender       string         `gorm:"column:gender;type:varchar(10)"`
	IsActive     bool           `gorm:"column:is_active;default:true"`
	CreatedAt    time.Time      `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time      `gorm:"column:updated_at;autoUpdateTime"`
	DeletedAt    gorm.DeletedAt `gorm:"column:deleted_at;index"`
}

func (Employee) TableName() string {
	return "employees"
}

// Role resolves the stored role id against the closed role set.
func (e Employee) Role() (role.Role, bool) {
	return role.FromID(e.RoleID)
}

func (e Employee) FullName() string {
	if e.MiddleName != "" {
		return e.FirstName + " " + e.MiddleName + " " + e.LastName
	}
	return e.FirstName + " " + e.LastName
}
