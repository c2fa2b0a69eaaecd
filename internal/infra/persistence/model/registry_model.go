package model

import (
	"time"

	"github.com/google/uuid"
)

// FactoryStateModel mirrors the 'factory_states' table, one row per registry kind.
// Amounts are stored as BIGINT; the use cases keep them within math.MaxInt64.
type FactoryStateModel struct {
	Kind               string `gorm:"type:varchar(16);primaryKey"`
	Admin              string `gorm:"type:varchar(44);not null"`
	RegistrationFee    int64  `gorm:"not null;default:0"`
	TotalFeesCollected int64  `gorm:"not null;default:0"`
	EntityCount        int64  `gorm:"not null;default:0"`
	Paused             bool   `gorm:"not null;default:false"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// TableName explicitly sets the table name for GORM.
func (FactoryStateModel) TableName() string {
	return "factory_states"
}

// ProfileModel mirrors the 'profiles' table shared by users and vendors.
type ProfileModel struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Kind      string          `gorm:"type:varchar(16);not null;index:idx_profiles_kind_created"`
	Address   string          `gorm:"type:varchar(44);not null;unique"`
	Owner     string          `gorm:"type:varchar(44);not null;index"`
	Name      string          `gorm:"type:varchar(32);not null"`
	Bio       string          `gorm:"type:varchar(280);not null;default:''"`
	Products  []*ProductModel `gorm:"foreignKey:ProfileID"`
	CreatedAt time.Time       `gorm:"index:idx_profiles_kind_created"`
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProfileModel) TableName() string {
	return "profiles"
}

// NameRecordModel mirrors the 'name_records' table. The composite primary key enforces name uniqueness.
type NameRecordModel struct {
	Kind      string    `gorm:"type:varchar(16);primaryKey"`
	Name      string    `gorm:"type:varchar(32);primaryKey"`
	ProfileID uuid.UUID `gorm:"type:uuid;not null;unique"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (NameRecordModel) TableName() string {
	return "name_records"
}

// ProductModel mirrors the 'products' table. ProfileID references profiles.id.
type ProductModel struct {
	ProfileID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProductID   string    `gorm:"type:varchar(32);primaryKey"`
	Seq         int64     `gorm:"autoIncrement;not null"`
	Price       int64     `gorm:"not null"`
	Description string    `gorm:"type:varchar(128);not null;default:''"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}

// AccountModel mirrors the 'accounts' table of the funds ledger.
type AccountModel struct {
	Address   string `gorm:"type:varchar(44);primaryKey"`
	Balance   int64  `gorm:"not null;default:0"`
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (AccountModel) TableName() string {
	return "accounts"
}

// EventModel mirrors the 'events' table of the activity feed.
type EventModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	Type           string    `gorm:"type:varchar(64);not null"`
	Kind           string    `gorm:"type:varchar(16);not null;index:idx_events_kind_occurred"`
	Actor          string    `gorm:"type:varchar(44);not null"`
	ProfileName    string    `gorm:"type:varchar(32)"`
	ProfileAddress string    `gorm:"type:varchar(44)"`
	Amount         int64     `gorm:"not null;default:0"`
	OldValue       string    `gorm:"type:text"`
	NewValue       string    `gorm:"type:text"`
	RequestID      string    `gorm:"type:varchar(64)"`
	OccurredAt     time.Time `gorm:"not null;index:idx_events_kind_occurred"`
	RecordedAt     time.Time `gorm:"autoCreateTime"`
}

// TableName explicitly sets the table name for GORM.
func (EventModel) TableName() string {
	return "events"
}
