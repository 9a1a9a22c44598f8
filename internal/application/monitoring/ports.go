package monitoring

import "context"

// Notifier entrega el resultado de un barrido (log, webhook, correo...).
type Notifier interface {
	Notify(ctx context.Context, report *SweepReport) error
}
