// file: internals/features/school/academics/grading/model/report_audit_log_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const AuditActionGenerateReport = "generate_report"

// ReportAuditLogModel merepresentasikan tabel `report_audit_logs`.
// Append-only: tidak pernah di-update/di-delete oleh core ini.
type ReportAuditLogModel struct {
	ReportAuditLogID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:report_audit_log_id" json:"report_audit_log_id"`

	ReportAuditLogActorID    uuid.UUID `gorm:"type:uuid;not null;column:report_audit_log_actor_id;index" json:"report_audit_log_actor_id"`
	ReportAuditLogAction     string    `gorm:"type:varchar(40);not null;column:report_audit_log_action" json:"report_audit_log_action"`
	ReportAuditLogTargetType string    `gorm:"type:varchar(40);not null;column:report_audit_log_target_type" json:"report_audit_log_target_type"`
	ReportAuditLogTargetID   uuid.UUID `gorm:"type:uuid;not null;column:report_audit_log_target_id;index" json:"report_audit_log_target_id"`

	ReportAuditLogDetails datatypes.JSON `gorm:"type:jsonb;column:report_audit_log_details" json:"report_audit_log_details,omitempty"`

	ReportAuditLogCreatedAt time.Time `gorm:"type:timestamptz;not null;autoCreateTime;column:report_audit_log_created_at" json:"report_audit_log_created_at"`
}

func (ReportAuditLogModel) TableName() string { return "report_audit_logs" }
