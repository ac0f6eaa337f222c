package usecase

import (
	"time"

	"food-preorder/internal/usecase/readmodel"

	"github.com/google/uuid"
)

// Mailer sends fire-and-forget notifications. Implementations must never
// block the caller or surface delivery errors.
type Mailer interface {
	SendWelcome(to, name string)
	SendPasswordResetOTP(to, name, code string, validFor time.Duration)
	SendOrderConfirmation(jobID uuid.UUID, order *readmodel.OrderRM)
}
