package data

import (
	"context"
	"log/slog"

	"github.com/ixugo/goddd/domain/uniqueid"
	"github.com/ixugo/goddd/pkg/orm"
	"github.com/surgtrain/scrub/internal/core/annotation"
	"github.com/surgtrain/scrub/internal/core/bz"
	"gorm.io/gorm"
)

// TimelineNote 旧的时间轴笔记模型（用于迁移）
// 早期版本没有批注类型和显示时长，只有纯文本笔记
type TimelineNote struct {
	ID         uint      `gorm:"primaryKey"`
	Session    string    `gorm:"column:session"`
	VideoTitle string    `gorm:"column:video_title"`
	Ts         float64   `gorm:"column:ts"`
	Note       string    `gorm:"column:note"`
	Doctor     string    `gorm:"column:doctor"`
	CreatedAt  *orm.Time `gorm:"column:created_at"`
}

func (*TimelineNote) TableName() string {
	return "timeline_notes"
}

// MigrateTimelineNotes 迁移 timeline_notes 数据到 video_comments 表
// 批注类型按文本启发式分类补齐，显示时长取默认值
// 迁移完成后，旧表数据保留，建议手动确认后删除
func MigrateTimelineNotes(db *gorm.DB, uni uniqueid.Core) error {
	ctx := context.Background()

	if !db.Migrator().HasTable("timeline_notes") {
		slog.Info("没有需要迁移的旧表数据")
		return nil
	}

	var notes []TimelineNote
	if err := db.WithContext(ctx).Find(&notes).Error; err != nil {
		slog.Error("查询 timeline_notes 失败", "err", err)
		return err
	}

	migratedCount := 0
	for _, n := range notes {
		// 检查是否已迁移过相同的批注
		var existing annotation.Comment
		if err := db.WithContext(ctx).
			Where("session_id = ? AND video_title = ? AND timestamp = ? AND doctor = ?",
				n.Session, n.VideoTitle, n.Ts, n.Doctor).
			First(&existing).Error; err == nil {
			slog.Debug("批注已存在，跳过", "session", n.Session, "ts", n.Ts)
			continue
		}

		comment := annotation.Comment{
			ID:          uni.UniqueID(bz.IDPrefixComment),
			SessionID:   n.Session,
			VideoTitle:  n.VideoTitle,
			Timestamp:   n.Ts,
			Duration:    annotation.DefaultDuration,
			CommentType: annotation.Classify(n.Note).CommentType(),
			CommentText: n.Note,
			Doctor:      n.Doctor,
		}
		if n.CreatedAt != nil {
			comment.CreatedAt = *n.CreatedAt
		}

		if err := db.WithContext(ctx).Create(&comment).Error; err != nil {
			slog.Error("迁移批注失败", "err", err, "session", n.Session, "ts", n.Ts)
			continue
		}
		migratedCount++
	}
	slog.Info("时间轴笔记迁移完成", "total", len(notes), "migrated", migratedCount)

	slog.Info("数据迁移全部完成！旧表数据已保留，请手动确认后删除。")
	return nil
}
