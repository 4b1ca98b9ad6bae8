package model

import (
	"time"

	"github.com/google/uuid"
)

// StaffFilterAll — сентинел "все мастера" для фильтра по мастеру
const StaffFilterAll = "all"

type Staff struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}
