package bus

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCommand struct {
	fail bool
}

func (c testCommand) Validate() error {
	if c.fail {
		return errors.New("invalid")
	}
	return nil
}

func TestCommandBusDispatchesToRegisteredHandler(t *testing.T) {
	b := NewCommandBus()

	var handled bool
	err := b.Register(testCommand{}, CommandHandlerFunc(func(ctx context.Context, cmd Command) error {
		handled = true
		return nil
	}))
	require.NoError(t, err)

	require.NoError(t, b.Send(context.Background(), testCommand{}))
	assert.True(t, handled)
}

func TestCommandBusRejectsDuplicateRegistration(t *testing.T) {
	b := NewCommandBus()
	noop := CommandHandlerFunc(func(ctx context.Context, cmd Command) error { return nil })

	require.NoError(t, b.Register(testCommand{}, noop))
	assert.Error(t, b.Register(testCommand{}, noop))
}

func TestCommandBusFailsValidationBeforeDispatch(t *testing.T) {
	b := NewCommandBus()

	var handled bool
	require.NoError(t, b.Register(testCommand{}, CommandHandlerFunc(func(ctx context.Context, cmd Command) error {
		handled = true
		return nil
	})))

	err := b.Send(context.Background(), testCommand{fail: true})
	assert.Error(t, err)
	assert.False(t, handled)
}

func TestCommandBusUnregisteredCommand(t *testing.T) {
	b := NewCommandBus()

	err := b.Send(context.Background(), testCommand{})
	assert.ErrorIs(t, err, ErrHandlerNotFound)
}

func TestPipelineAppliesMiddlewareInOrder(t *testing.T) {
	var order []string
	mw := func(name string) Middleware {
		return func(next CommandHandler) CommandHandler {
			return CommandHandlerFunc(func(ctx context.Context, cmd Command) error {
				order = append(order, name)
				return next.Handle(ctx, cmd)
			})
		}
	}

	p := NewPipeline(mw("outer"), mw("inner"))
	handler := p.Execute(CommandHandlerFunc(func(ctx context.Context, cmd Command) error {
		order = append(order, "handler")
		return nil
	}))

	require.NoError(t, handler.Handle(context.Background(), testCommand{}))
	assert.Equal(t, []string{"outer", "inner", "handler"}, order)
}
