package domain

import "time"

// Employee is the directory row the HR aggregation joins against for the
// department grouping. Managed outside this service; read-only here.
type Employee struct {
	ID         string    `gorm:"primaryKey" json:"id"`
	Name       string    `gorm:"not null" json:"name"`
	Department string    `gorm:"not null;default:''" json:"department"`
	CreatedAt  time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"createdAt"`
}

func (Employee) TableName() string {
	return "employees"
}
