package wiring_test

import (
	"context"
	"testing"

	"github.com/grindlemire/graft"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tarhses/cdeps/internal/app"
	_ "github.com/tarhses/cdeps/internal/wiring"
)

// TestWiring_ResolvesComponents executes the full Graft graph the way main
// does. Every node runs, so an undeclared or misdeclared dependency fails
// here instead of at startup.
func TestWiring_ResolvesComponents(t *testing.T) {
	components, _, err := graft.ExecuteFor[*app.Components](context.Background())
	require.NoError(t, err)

	require.NotNil(t, components)
	assert.NotNil(t, components.App)
	assert.NotNil(t, components.Logger)
	assert.NotNil(t, components.Telemetry)
}
