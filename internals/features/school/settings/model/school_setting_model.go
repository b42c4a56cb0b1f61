// file: internals/features/school/settings/model/school_setting_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// SchoolSettingModel merepresentasikan tabel `school_settings`.
// Satu record aktif utk identitas sekolah (header/footer rapor, kontak, logo).
type SchoolSettingModel struct {
	SchoolSettingID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:school_setting_id" json:"school_setting_id"`

	SchoolSettingName    string `gorm:"type:varchar(160);not null;column:school_setting_name" json:"school_setting_name"`
	SchoolSettingMotto   string `gorm:"type:text;not null;default:'';column:school_setting_motto" json:"school_setting_motto"`
	SchoolSettingPhone   string `gorm:"type:varchar(32);not null;default:'';column:school_setting_phone" json:"school_setting_phone"`
	SchoolSettingEmail   string `gorm:"type:varchar(120);not null;default:'';column:school_setting_email" json:"school_setting_email"`
	SchoolSettingAddress string `gorm:"type:text;not null;default:'';column:school_setting_address" json:"school_setting_address"`

	SchoolSettingLogoURL    string `gorm:"type:text;not null;default:'';column:school_setting_logo_url" json:"school_setting_logo_url"`
	SchoolSettingFooterText string `gorm:"type:text;not null;default:'';column:school_setting_footer_text" json:"school_setting_footer_text"`

	SchoolSettingIsActive bool `gorm:"not null;default:true;column:school_setting_is_active;index" json:"school_setting_is_active"`

	SchoolSettingCreatedAt time.Time `gorm:"type:timestamptz;not null;autoCreateTime;column:school_setting_created_at" json:"school_setting_created_at"`
	SchoolSettingUpdatedAt time.Time `gorm:"type:timestamptz;not null;autoUpdateTime;column:school_setting_updated_at" json:"school_setting_updated_at"`
}

func (SchoolSettingModel) TableName() string { return "school_settings" }
