package bootstrap

import (
	"food-preorder/internal/notify"
	"food-preorder/internal/usecase"

	"go.uber.org/fx"
)

var MailerModule = fx.Module("mailer",
	fx.Provide(
		fx.Annotate(
			notify.NewSMTPMailer,
			fx.As(new(usecase.Mailer)),
		),
	),
)
