package bootstrap

import (
	"food-preorder/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	JWTModule,
	MailerModule,
	components.RepositoryModule,
	components.UseCaseModule,
	components.HandlerModule,
)
