package api

import (
	"github.com/gin-gonic/gin"
	"github.com/ixugo/goddd/pkg/reason"
	"github.com/ixugo/goddd/pkg/web"
	"github.com/surgtrain/scrub/internal/core/notification"
)

type NotificationAPI struct {
	notificationCore notification.Core
}

func NewNotificationAPI(n notification.Core) NotificationAPI {
	return NotificationAPI{notificationCore: n}
}

func registerNotification(r gin.IRouter, api NotificationAPI) {
	group := r.Group("/api/notifications")
	group.GET("", web.WrapH(api.findNotifications))
	group.PUT("/read", web.WrapH(api.markAllRead))
	group.PUT("/:id/read", web.WrapH(api.markRead))
}

type findNotificationsOutput struct {
	Items  []*notification.Notification `json:"items"`
	Total  int64                        `json:"total"`
	Unread int64                        `json:"unread"`
}

func (api NotificationAPI) findNotifications(c *gin.Context, in *notification.FindNotificationsInput) (*findNotificationsOutput, error) {
	in.User = requestDoctor(c)
	if in.User == "" {
		return nil, reason.ErrBadRequest.SetMsg("缺少身份标识")
	}
	items, total, unread, err := api.notificationCore.FindNotifications(c.Request.Context(), in)
	if err != nil {
		return nil, err
	}
	return &findNotificationsOutput{Items: items, Total: total, Unread: unread}, nil
}

func (api NotificationAPI) markRead(c *gin.Context, _ *struct{}) (gin.H, error) {
	user := requestDoctor(c)
	if user == "" {
		return nil, reason.ErrBadRequest.SetMsg("缺少身份标识")
	}
	if err := api.notificationCore.MarkRead(c.Request.Context(), c.Param("id"), user); err != nil {
		return nil, err
	}
	return gin.H{"msg": "ok"}, nil
}

func (api NotificationAPI) markAllRead(c *gin.Context, _ *struct{}) (gin.H, error) {
	user := requestDoctor(c)
	if user == "" {
		return nil, reason.ErrBadRequest.SetMsg("缺少身份标识")
	}
	if err := api.notificationCore.MarkAllRead(c.Request.Context(), user); err != nil {
		return nil, err
	}
	return gin.H{"msg": "ok"}, nil
}
