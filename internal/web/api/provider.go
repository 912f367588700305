package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/wire"
	"github.com/ixugo/goddd/domain/uniqueid"
	"github.com/ixugo/goddd/domain/uniqueid/store/uniqueiddb"
	"github.com/ixugo/goddd/pkg/orm"
	"github.com/ixugo/goddd/pkg/web"
	"github.com/surgtrain/scrub/internal/conf"
	"github.com/surgtrain/scrub/internal/core/annotation"
	"github.com/surgtrain/scrub/internal/core/annotation/store/annotationdb"
	"github.com/surgtrain/scrub/internal/core/doctor"
	"github.com/surgtrain/scrub/internal/core/doctor/store/doctordb"
	"github.com/surgtrain/scrub/internal/core/notification"
	"github.com/surgtrain/scrub/internal/core/notification/store/notificationdb"
	"github.com/surgtrain/scrub/internal/core/session"
	"github.com/surgtrain/scrub/internal/core/session/store/sessiondb"
	"gorm.io/gorm"
)

var ProviderSet = wire.NewSet(
	wire.Struct(new(Usecase), "*"),
	NewHTTPHandler,
	NewUniqueID,
	NewDoctorCore,
	NewNotificationCore,
	NewSessionCore,
	NewAnnotationCore,
	NewSessionAPI,
	NewCommentAPI,
	NewNotificationAPI,
	NewUserAPI,
)

type Usecase struct {
	Conf     *conf.Bootstrap
	DB       *gorm.DB
	UniqueID uniqueid.Core

	SessionAPI      SessionAPI
	CommentAPI      CommentAPI
	NotificationAPI NotificationAPI
	UserAPI         UserAPI
}

// NewHTTPHandler 生成Gin框架路由内容
func NewHTTPHandler(uc *Usecase) http.Handler {
	cfg := uc.Conf.Server
	if cfg.HTTP.JwtSecret == "" {
		uc.Conf.Server.HTTP.JwtSecret = orm.GenerateRandomString(32)
	}
	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}
	g := gin.New()
	// 如果启用了 Pprof，设置 Pprof 监控
	if cfg.HTTP.PProf.Enabled {
		web.SetupPProf(g, &cfg.HTTP.PProf.AccessIps)
	}

	setupRouter(g, uc)
	return g
}

// NewUniqueID 唯一 id 生成器
func NewUniqueID(db *gorm.DB) uniqueid.Core {
	return uniqueid.NewCore(uniqueiddb.NewDB(db).AutoMigrate(orm.GetEnabledAutoMigrate()), 5)
}

func NewDoctorCore(db *gorm.DB, uni uniqueid.Core) doctor.Core {
	return doctor.NewCore(doctordb.NewDB(db).AutoMigrate(orm.GetEnabledAutoMigrate()), uni)
}

func NewNotificationCore(db *gorm.DB) notification.Core {
	return notification.NewCore(notificationdb.NewDB(db).AutoMigrate(orm.GetEnabledAutoMigrate()))
}

func NewSessionCore(db *gorm.DB, uni uniqueid.Core, notifyCore notification.Core) session.Core {
	return session.NewCore(
		sessiondb.NewDB(db).AutoMigrate(orm.GetEnabledAutoMigrate()),
		uni,
		session.WithNotifier(notifyCore),
	)
}

func NewAnnotationCore(db *gorm.DB, uni uniqueid.Core, doctorCore doctor.Core, sessionCore session.Core) annotation.Core {
	return annotation.NewCore(
		annotationdb.NewDB(db).AutoMigrate(orm.GetEnabledAutoMigrate()),
		uni,
		annotation.WithNameResolver(doctorCore),
		annotation.WithVideoResolver(sessionCore),
	)
}
