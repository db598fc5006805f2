package loader_test

import (
	"errors"
	"testing"

	"country-explorer/core/loader"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubFeature struct {
	name    string
	enabled bool
	err     error
	loaded  bool
}

func (s *stubFeature) Name() string    { return s.name }
func (s *stubFeature) IsEnabled() bool { return s.enabled }
func (s *stubFeature) Load(app fiber.Router) error {
	s.loaded = true
	return s.err
}

func TestManager_LoadAll(t *testing.T) {
	on := &stubFeature{name: "countries", enabled: true}
	off := &stubFeature{name: "console", enabled: false}

	m := loader.NewManager(zap.NewNop())
	m.Register(on)
	m.Register(off)

	require.NoError(t, m.LoadAll(fiber.New()))
	assert.True(t, on.loaded)
	assert.False(t, off.loaded)
	assert.Len(t, m.Features(), 2)
}

func TestManager_LoadAllStopsOnError(t *testing.T) {
	broken := &stubFeature{name: "broken", enabled: true, err: errors.New("boom")}
	after := &stubFeature{name: "after", enabled: true}

	m := loader.NewManager(zap.NewNop())
	m.Register(broken)
	m.Register(after)

	err := m.LoadAll(fiber.New())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken")
	assert.ErrorIs(t, err, broken.err)
	assert.False(t, after.loaded)
}
