package reservation

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Table statuses. A reserved table flips back to available when its
// reservation lapses; the sweep runs every fifteen minutes.
const (
	TableAvailable = "available"
	TableReserved  = "reserved"
	TableOccupied  = "occupied"
)

// Reservation statuses.
const (
	StatusReserved  = "reserved"
	StatusSeated    = "seated"
	StatusExpired   = "expired"
	StatusCancelled = "cancelled"
)

type DiningTable struct {
	ID           uuid.UUID      `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	RestaurantID uuid.UUID      `gorm:"column:restaurant_id;type:uuid;not null;index"`
	Number       int            `gorm:"column:number;type:int;not null"`
	Capacity     int            `gorm:"column:capacity;type:int;not null"`
	Status       string         `gorm:"column:status;type:varchar(20);default:available"`
	CreatedAt    time.Time      `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time      `gorm:"column:updated_at;autoUpdateTime"`
	DeletedAt    gorm.DeletedAt `gorm:"column:deleted_at;index"`
}

func (DiningTable) TableName() string {
	return "dining_tables"
}

type Reservation struct {
	ID           uuid.UUID      `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	RestaurantID uuid.UUID      `gorm:"column:restaurant_id;type:uuid;not null;index"`
	TableID      uuid.UUID      `gorm:"column:table_id;type:uuid;not null;index"`
	GuestName    string         `gorm:"column:guest_name;type:varchar(255);not null"`
	GuestPhone   string         `gorm:"column:guest_phone;type:varchar(50)"`
	PartySize    int            `gorm:"column:party_size;type:int;not null"`
	ReservedFor  time.Time      `gorm:"column:reserved_for;not null"`
	ExpiresAt    time.Time      `gorm:"column:expires_at;not null;index"`
	Status       string         `gorm:"column:status;type:varchar(20);default:reserved"`
	CreatedAt    time.Time      `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time      `gorm:"column:updated_at;autoUpdateTime"`
	DeletedAt    gorm.DeletedAt `gorm:"column:deleted_at;index"`
}

func (Reservation) TableName() string {
	return "reservations"
}
