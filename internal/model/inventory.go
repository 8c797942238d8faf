package model

import "time"

// Inventory item physical condition states. Spanish labels are part of the
// wire contract shared with the frontend.
const (
	StatusBueno      = "Bueno"
	StatusDefectuoso = "Defectuoso"
	StatusDanado     = "Dañado"
	StatusPiezas     = "Piezas"
	StatusBaja       = "Baja"
)

// InventoryStatuses lists every valid item state.
var InventoryStatuses = []string{
	StatusBueno, StatusDefectuoso, StatusDanado, StatusPiezas, StatusBaja,
}

// InventoryItem is a tracked physical asset. Folio is the human-assigned
// identifier, distinct from the numeric primary key.
type InventoryItem struct {
	ID             uint   `gorm:"primaryKey"`
	Folio          string `gorm:"uniqueIndex;not null"`
	Brand          string `gorm:"not null"`
	Model          string `gorm:"not null"`
	CategoryID     uint   `gorm:"index;not null"`
	DepartmentID   uint   `gorm:"index;not null"`
	Status         string `gorm:"type:varchar(20);not null;default:'Bueno'"`
	SerialNumber   *string
	PurchaseDate   *time.Time
	WarrantyExpiry *time.Time
	Notes          *string
	CreatedAt      time.Time
	UpdatedAt      time.Time

	Category   *Category   `gorm:"foreignKey:CategoryID"`
	Department *Department `gorm:"foreignKey:DepartmentID"`
}

func (InventoryItem) TableName() string { return "inventory" }

// ValidInventoryStatus reports whether s is one of the known item states.
func ValidInventoryStatus(s string) bool {
	for _, v := range InventoryStatuses {
		if v == s {
			return true
		}
	}
	return false
}
