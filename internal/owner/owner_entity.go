package owner

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Owner is a restaurant-owner account ("web" guard identity). Registration
// guarantees address/email/phonenumber uniqueness across this table.
type Owner struct {
	ID              uuid.UUID      `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	FirstName       string         `gorm:"column:first_name;type:varchar(255);not null"`
	MiddleName      string         `gorm:"column:middle_name;type:varchar(255)"`
	LastName        string         `gorm:"column:last_name;type:varchar(255);not null"`
	Address         string         `gorm:"column:address;type:text;not null;uniqueIndex"`
	Email           string         `gorm:"column:email;type:text;not null;uniqueIndex"`
	PhoneNumber     string         `gorm:"column:phonenumber;type:varchar(50);not null;uniqueIndex"`
	Password        string         `gorm:"column:password;type:text;not null"`
	DateOfBirth     *time.Time     `gorm:"column:date_of_birth;type:date"`
	Gender          string         `gorm:"column:gender;type:varchar(10)"`
	EmailVerifiedAt *time.Time     `gorm:"column:email_verified_at"`
	Subscription    string         `gorm:"column:subscription;type:varchar(20);default:none"`
	SubscribedUntil *time.Time     `gorm:"column:subscribed_until"`
	IsActive        bool           `gorm:"column:is_active;default:true"`
	CreatedAt       time.Time      `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt       time.Time      `gorm:"column:updated_at;autoUpdateTime"`
	DeletedAt       gorm.DeletedAt `gorm:"column:deleted_at;index"`
}

func (Owner) TableName() string {
	return "users"
}

const (
	SubscriptionNone   = "none"
	SubscriptionDemo   = "demo"
	SubscriptionActive = "active"
)
