package converter

import (
	"testing"

	"github.com/johnstarich/go/sourcelink/internal/model"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestConvertEventOrder(t *testing.T) {
	t.Parallel()
	c := New()
	project := &model.Project{}
	var events []string
	record := func(name string) Listener {
		return func(ctx *Context) error {
			assert.Same(t, project, ctx.Project)
			events = append(events, name)
			return nil
		}
	}
	c.On(EventEnd, record("end"))
	c.On(EventResolveEnd, record("resolveEnd 1"))
	c.On(EventResolveEnd, record("resolveEnd 2"))
	c.On(EventBegin, record("begin"))

	assert.NoError(t, c.Convert(project))
	assert.Equal(t, []string{"begin", "resolveEnd 1", "resolveEnd 2", "end"}, events)
}

func TestConvertStopsOnError(t *testing.T) {
	t.Parallel()
	c := New()
	var ranEnd bool
	c.On(EventResolveBegin, func(*Context) error {
		return errors.New("some error")
	})
	c.On(EventEnd, func(*Context) error {
		ranEnd = true
		return nil
	})

	err := c.Convert(&model.Project{})
	assert.EqualError(t, err, `Event "resolveBegin" failed: some error`)
	assert.False(t, ranEnd)
}

func TestTriggerNoListeners(t *testing.T) {
	t.Parallel()
	assert.NoError(t, New().Trigger("not-an-event", &Context{}))
}
