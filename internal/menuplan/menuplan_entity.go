package menuplan

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MenuPlan is a dated menu for a restaurant. Plans whose end date has passed
// are archived by the nightly job, never deleted.
type MenuPlan struct {
	ID           uuid.UUID      `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	RestaurantID uuid.UUID      `gorm:"column:restaurant_id;type:uuid;not null;index"`
	Name         string         `gorm:"column:name;type:varchar(255);not null"`
	Description  string         `gorm:"column:description;type:text"`
	StartDate    time.Time      `gorm:"column:start_date;type:date;not null"`
	EndDate      time.Time      `gorm:"column:end_date;type:date;not null"`
	Archived     bool           `gorm:"column:archived;default:false;index"`
	CreatedAt    time.Time      `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time      `gorm:"column:updated_at;autoUpdateTime"`
	DeletedAt    gorm.DeletedAt `gorm:"column:deleted_at;index"`
}

func (MenuPlan) TableName() string {
	return "menu_plans"
}

// Active reports whether the plan covers the given day.
func (m MenuPlan) Active(day time.Time) bool {
	d := day.Truncate(24 * time.Hour)
	return !m.Archived && !m.StartDate.After(d) && !m.EndDate.Before(d)
}
