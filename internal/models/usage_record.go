package models

// UsageRecord is an immutable consumption entry against a box type.
// BoxName is a snapshot of the box's name at record time and is not
// kept in sync with later renames. Date is the calendar day (UTC,
// YYYY-MM-DD) the usage applies to, distinct from CreatedAt.
type UsageRecord struct {
	BaseModel
	BoxTypeID    string `gorm:"type:uuid;index;not null" json:"box_type_id"`
	BoxName      string `gorm:"type:varchar(255);not null" json:"box_name"`
	QuantityUsed int    `gorm:"not null" json:"quantity_used"`
	Date         string `gorm:"type:varchar(10);index;not null" json:"date"`
}
