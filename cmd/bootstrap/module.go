package bootstrap

import (
	"go.uber.org/fx"

	"github.com/Yanolja-Travel-Innovation-2025/backend/cmd/bootstrap/components"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	MongoModule,
	JWTModule,
	QRModule,
	components.PersistenceModule,
	components.UseCaseModule,
	components.HandlerModule,
)
