package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/surgtrain/scrub/internal/conf"
	"github.com/surgtrain/scrub/internal/data"
	"github.com/surgtrain/scrub/internal/rpc"
	"github.com/surgtrain/scrub/internal/web/api"
)

// App 聚合对外服务，HTTP 必开，gRPC 按配置启用
type App struct {
	httpServer *http.Server
	rpcServer  *rpc.Server
	cleanup    func()
}

// Run 装配依赖并启动服务
func Run(bc *conf.Bootstrap, log *slog.Logger) (*App, error) {
	uc, cleanup, err := wireApp(bc, log)
	if err != nil {
		return nil, err
	}

	// 旧版本数据自动迁移
	if err := data.MigrateTimelineNotes(uc.DB, uc.UniqueID); err != nil {
		slog.Error("数据迁移失败", "err", err)
	}

	app := App{cleanup: cleanup}

	app.httpServer = &http.Server{
		Addr:              fmt.Sprintf(":%d", bc.Server.HTTP.Port),
		Handler:           api.NewHTTPHandler(uc),
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		slog.Info("HTTP 服务启动", "port", bc.Server.HTTP.Port)
		if err := app.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP 服务退出", "err", err)
		}
	}()

	if bc.Server.RPC.Enabled {
		app.rpcServer = rpc.NewServer()
		if err := app.rpcServer.Start(bc.Server.RPC.Port); err != nil {
			return nil, err
		}
		slog.Info("gRPC 服务启动", "port", bc.Server.RPC.Port)
	}

	return &app, nil
}

// Shutdown 优雅停机
func (a *App) Shutdown(ctx context.Context) {
	if a.rpcServer != nil {
		a.rpcServer.Stop()
	}
	if err := a.httpServer.Shutdown(ctx); err != nil {
		slog.Error("HTTP 服务停机失败", "err", err)
	}
	if a.cleanup != nil {
		a.cleanup()
	}
}
