package model

import "time"

// TimeLayout is the wire format for asset timestamps.
const TimeLayout = "2006-01-02 15:04:05"

// Asset represents a tracked piece of physical equipment.
//
// AssetNumber is the external key; the numeric ID is internal and never used
// for lookup. The barcode index is partial so any number of assets may have
// no barcode while non-empty barcodes stay unique.
type Asset struct {
	ID           int64     `gorm:"primaryKey" json:"id"`
	AssetNumber  string    `gorm:"uniqueIndex;size:128;not null" json:"asset_number"`
	SerialNumber string    `gorm:"size:128" json:"serial_number"`
	Barcode      string    `gorm:"size:128;index:idx_assets_barcode,unique,where:barcode <> ''" json:"barcode"`
	Location     string    `gorm:"size:256" json:"location"`
	Status       string    `gorm:"size:64" json:"status"`
	StaffName    string    `gorm:"size:128" json:"staff_name"`
	StaffNumber  string    `gorm:"size:64" json:"staff_number"`
	Condition    string    `gorm:"size:64" json:"condition"`
	DateAdded    time.Time `gorm:"not null" json:"-"`
	LastUpdated  time.Time `gorm:"not null" json:"-"`
}

// Status values used by the interface. The store accepts free text.
const (
	StatusAvailable = "Available"
	StatusAssigned  = "Assigned"
	StatusInRepair  = "In Repair"
	StatusRetired   = "Retired"
)

// Condition values used by the interface. The store accepts free text.
const (
	ConditionExcellent = "Excellent"
	ConditionGood      = "Good"
	ConditionFair      = "Fair"
	ConditionPoor      = "Poor"
	ConditionDamaged   = "Damaged"
)
