package fonts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	require.NoError(t, LoadDefaults(14, 10))

	for _, name := range []FontName{HUD, Label, Title} {
		assert.NotNil(t, name.Get(), name)
	}
	assert.Greater(t, int(Title.Get().Metrics().Height), int(HUD.Get().Metrics().Height))
}

func TestLoadFontWithSize_BadData(t *testing.T) {
	assert.Error(t, LoadFontWithSize("broken", []byte("not a font"), 12))
}

func TestGet_UnknownPanics(t *testing.T) {
	assert.Panics(t, func() { FontName("missing").Get() })
}
