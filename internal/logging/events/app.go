package events

import "github.com/abhisek/clock25/internal/logging"

// AppTracer records process lifecycle events.
type AppTracer struct{}

var App = AppTracer{}

// Start records the resolved settings a run begins with.
func (AppTracer) Start(payload map[string]any) {
	logging.Trace("app.start", payload)
}

// Exit records how the run ended.
func (AppTracer) Exit(err error) {
	payload := map[string]any{}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("app.exit", payload)
}
