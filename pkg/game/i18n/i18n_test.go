package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_EnglishByDefault(t *testing.T) {
	require.NoError(t, Load(DefaultLanguage))
	assert.Equal(t, "You feel a breeze at B3!", Get("WIND_SENSED", "B3"))
}

func TestGet_Spanish(t *testing.T) {
	require.NoError(t, Load("es"))
	t.Cleanup(func() { _ = Load(DefaultLanguage) })
	assert.Equal(t, "¡Sientes viento en las coordenadas C2!", Get("WIND_SENSED", "C2"))
	assert.Equal(t, "El Mundo de Thanos", Get("TITLE"))
}

func TestGet_UnknownKeyFallsThrough(t *testing.T) {
	require.NoError(t, Load(DefaultLanguage))
	assert.Equal(t, "NOT_A_KEY", Get("NOT_A_KEY"))
}

func TestGet_UnknownKeyIgnoresVars(t *testing.T) {
	require.NoError(t, Load(DefaultLanguage))
	assert.Equal(t, "NOT_A_KEY %d", Get("NOT_A_KEY %d", 7))
	assert.Equal(t, "NOT_A_KEY", Get("NOT_A_KEY", "extra"))
}

func TestGet_LoadsDefaultLanguageOnFirstUse(t *testing.T) {
	current = nil
	t.Cleanup(func() { _ = Load(DefaultLanguage) })
	assert.Equal(t, "You feel a breeze at B3!", Get("WIND_SENSED", "B3"))
}

func TestLoad_UnknownLanguage(t *testing.T) {
	assert.Error(t, Load("xx"))
	assert.False(t, IsSupported("xx"))
	assert.True(t, IsSupported("es"))
}
