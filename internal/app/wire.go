//go:build wireinject

package app

import (
	"log/slog"

	"github.com/google/wire"
	"github.com/surgtrain/scrub/internal/conf"
	"github.com/surgtrain/scrub/internal/data"
	"github.com/surgtrain/scrub/internal/web/api"
)

func wireApp(bc *conf.Bootstrap, log *slog.Logger) (*api.Usecase, func(), error) {
	panic(wire.Build(data.ProviderSet, api.ProviderSet))
}
