// Package converter dispatches documentation model lifecycle events to plugin listeners
package converter

import (
	"github.com/johnstarich/go/sourcelink/internal/model"
	"github.com/johnstarich/go/sourcelink/internal/pipe"
	"github.com/pkg/errors"
)

// Lifecycle events, in the order Convert triggers them
const (
	EventBegin        = "begin"
	EventResolveBegin = "resolveBegin"
	EventResolveEnd   = "resolveEnd"
	EventEnd          = "end"
)

// Context is passed to every listener
type Context struct {
	Project *model.Project
}

// Listener handles a single event
type Listener func(*Context) error

// Converter runs listeners for the model's lifecycle events
type Converter struct {
	listeners map[string][]Listener
}

// New returns a Converter without any listeners
func New() *Converter {
	return &Converter{
		listeners: make(map[string][]Listener),
	}
}

// On subscribes fn to event. Listeners run in the order they subscribed.
func (c *Converter) On(event string, fn Listener) {
	c.listeners[event] = append(c.listeners[event], fn)
}

// Trigger synchronously runs event's listeners, stopping at the first error
func (c *Converter) Trigger(event string, ctx *Context) error {
	listeners := c.listeners[event]
	ops := make([]pipe.OpFunc, len(listeners))
	for i := range listeners {
		listener := listeners[i]
		ops[i] = func() error {
			return listener(ctx)
		}
	}
	return errors.Wrapf(pipe.ChainFuncs(ops...).Do(), "Event %q failed", event)
}

// Convert triggers each lifecycle event once for project
func (c *Converter) Convert(project *model.Project) error {
	ctx := &Context{Project: project}
	events := []string{EventBegin, EventResolveBegin, EventResolveEnd, EventEnd}
	ops := make([]pipe.OpFunc, len(events))
	for i := range events {
		event := events[i]
		ops[i] = func() error {
			return c.Trigger(event, ctx)
		}
	}
	return pipe.ChainFuncs(ops...).Do()
}
