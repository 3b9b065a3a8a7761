package app

import (
	"github.com/ghuser/itemapi/pkg/events"
	"github.com/ghuser/itemapi/pkg/logger"
)

// Application holds shared infrastructure dependencies for all services.
// Pass to all service route functions during server initialization.
//
// Logging: app.Logger is backed by a trace-aware handler. Use slog's context methods
// and trace_id, span_id, and request_id are injected automatically:
//
//	app.Logger.InfoContext(ctx, "processing item", "item_id", id)
//	app.Logger.ErrorContext(ctx, "failed to save", "error", err)
//
// Use app.Logger.Info/Error (no context) only for startup and shutdown messages.
type Application struct {
	Logger   logger.Logger
	EventBus *events.EventBus
}
