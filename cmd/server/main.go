package main

import (
	"context"
	"expvar"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/ixugo/goddd/pkg/system"
	rotatelogs "github.com/lestrrat-go/file-rotatelogs"
	"github.com/surgtrain/scrub/internal/app"
	"github.com/surgtrain/scrub/internal/conf"
	"go.uber.org/zap/exp/zapslog"
	"go.uber.org/zap/zapcore"
)

// 编译时通过 -ldflags 注入
var (
	buildVersion = "dev"
	gitBranch    = "unknown"
	gitHash      = "unknown"
)

func main() {
	var configPath string
	flag.StringVar(&configPath, "c", filepath.Join(system.Getwd(), "configs", "config.toml"), "配置文件路径")
	flag.Parse()

	bc, err := conf.SetupConfig(configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "加载配置失败:", err)
		os.Exit(1)
	}
	bc.BuildVersion = buildVersion

	closeLog, err := setupLogger(bc.Log, bc.Server.Debug)
	if err != nil {
		fmt.Fprintln(os.Stderr, "初始化日志失败:", err)
		os.Exit(1)
	}
	defer closeLog()

	expvar.NewString("git_branch").Set(gitBranch)
	expvar.NewString("git_hash").Set(gitHash)

	a, err := app.Run(bc, slog.Default())
	if err != nil {
		slog.Error("启动失败", "err", err)
		os.Exit(1)
	}
	slog.Info("服务已启动", "version", buildVersion)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	a.Shutdown(ctx)
	slog.Info("服务已退出")
}

// setupLogger 日志落盘按天切割，控制台同步输出
func setupLogger(cfg conf.Log, debug bool) (func(), error) {
	writer, err := rotatelogs.New(
		filepath.Join(system.Getwd(), cfg.Dir, "app.%Y%m%d.log"),
		rotatelogs.WithMaxAge(cfg.MaxAge.Duration()),
		rotatelogs.WithRotationTime(24*time.Hour),
	)
	if err != nil {
		return nil, err
	}

	level := zapcore.InfoLevel
	if err := level.Set(cfg.Level); err != nil {
		level = zapcore.InfoLevel
	}
	if debug {
		level = zapcore.DebugLevel
	}

	encCfg := zapcore.EncoderConfig{
		TimeKey:        "time",
		LevelKey:       "level",
		MessageKey:     "msg",
		CallerKey:      "caller",
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}
	core := zapcore.NewTee(
		zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), zapcore.AddSync(writer), level),
		zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.AddSync(os.Stdout), level),
	)

	slog.SetDefault(slog.New(zapslog.NewHandler(core)))
	return func() { _ = writer.Close() }, nil
}
