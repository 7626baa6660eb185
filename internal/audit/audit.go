package audit

import (
	"context"
	"strconv"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/gantangan/gantangan-api/internal/logging"
	"github.com/gantangan/gantangan-api/internal/models"
)

const (
	StatusSuccess = "SUCCESS"
	StatusError   = "ERROR"
)

// Recorder appends one AuditLog row per gated operation attempt. A failed
// write is logged server-side and swallowed so it never masks the outcome of
// the operation being audited.
type Recorder struct {
	DB *gorm.DB
}

func (r *Recorder) Record(ctx context.Context, action string, actorID *uuid.UUID, status string, statusCode int) {
	entry := models.AuditLog{
		Action:     action,
		ActorID:    actorID,
		Timestamp:  time.Now().UTC(),
		Status:     status,
		StatusCode: strconv.Itoa(statusCode),
	}
	if err := r.DB.WithContext(ctx).Create(&entry).Error; err != nil {
		logging.FromContext(ctx).Error("audit_write_failed",
			"action", action, "status", status, "error", err)
	}
}
