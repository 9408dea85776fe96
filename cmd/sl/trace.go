package main

import (
	"github.com/rs/zerolog"
	"github.com/sl-lang/sl/vm"
)

// traceObserver logs evaluation events.
type traceObserver struct {
	logger zerolog.Logger
}

func (o *traceObserver) OnStep(event vm.StepEvent) bool {
	o.logger.Debug().
		Str("node", event.Node.String()).
		Int("line", event.Position.LineNumber()).
		Int("column", event.Position.ColumnNumber()).
		Int("depth", event.StackDepth).
		Msg("step")
	return true
}

func (o *traceObserver) OnCall(event vm.CallEvent) bool {
	o.logger.Debug().
		Str("procedure", event.Name).
		Int("line", event.Position.LineNumber()).
		Int("depth", event.StackDepth).
		Msg("call")
	return true
}
