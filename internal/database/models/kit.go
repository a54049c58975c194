package models

import (
	"github.com/google/uuid"
)

// Kit represents a named, reusable set of required equipment/material/tool
// items for a job type. A kit always has at least one base item; deactivation
// is soft because assignments keep referencing it.
type Kit struct {
	BaseModel
	TenantID uuid.UUID `json:"tenant_id" gorm:"type:uuid;not null;index;uniqueIndex:idx_kits_tenant_code" validate:"required"`
	Code     string    `json:"code" gorm:"size:60;not null;uniqueIndex:idx_kits_tenant_code" validate:"required,min=1,max=60"`
	Name     string    `json:"name" gorm:"size:100;not null" validate:"required,min=1,max=100"`
	IsActive bool      `json:"is_active" gorm:"default:true"`

	// Relationships
	Items    []KitItem    `json:"items,omitempty" gorm:"foreignKey:KitID;constraint:OnDelete:CASCADE"`
	Variants []KitVariant `json:"variants,omitempty" gorm:"foreignKey:KitID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Kit
func (Kit) TableName() string {
	return "kits"
}

// KitItem represents one line of a kit's item set. Items with a nil VariantID
// belong to the kit's base set; items with a VariantID belong to that variant's
// alternate set.
type KitItem struct {
	TenantModel
	KitID     uuid.UUID  `json:"kit_id" gorm:"type:uuid;not null;index" validate:"required"`
	VariantID *uuid.UUID `json:"variant_id,omitempty" gorm:"type:uuid;index"`
	ItemName  string     `json:"item_name" gorm:"size:100;not null" validate:"required,min=1,max=100"`
	ItemType  ItemType   `json:"item_type" gorm:"type:varchar(20);not null" validate:"required"`
	Quantity  float64    `json:"quantity" gorm:"not null" validate:"min=0"`
	Unit      string     `json:"unit" gorm:"size:30;not null" validate:"required,min=1,max=30"`
	Required  bool       `json:"required" gorm:"default:true"`
}

// TableName returns the table name for KitItem
func (KitItem) TableName() string {
	return "kit_items"
}

// KitVariant represents an alternate item set for a kit, selected under a
// specific condition tag (for example "winter" or "commercial").
type KitVariant struct {
	TenantModel
	KitID        uuid.UUID `json:"kit_id" gorm:"type:uuid;not null;index" validate:"required"`
	Name         string    `json:"name" gorm:"size:100;not null" validate:"required,min=1,max=100"`
	ConditionTag string    `json:"condition_tag" gorm:"size:60"`

	// Relationships
	Items []KitItem `json:"items,omitempty" gorm:"foreignKey:VariantID"`
}

// TableName returns the table name for KitVariant
func (KitVariant) TableName() string {
	return "kit_variants"
}
