package eleyo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvironment_ServerURI(t *testing.T) {
	tests := []struct {
		name string
		mode Mode
		want string
	}{
		{name: "production", mode: ModeProduction, want: "https://acc.reg.eleyo.com"},
		{name: "test", mode: ModeTest, want: "https://acc.reg.eleyo.green"},
		{name: "development", mode: ModeDevelopment, want: "https://acc.eleyo.local"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := NewEnvironment(tt.mode, "eleyo.local")
			assert.Equal(t, tt.want, env.ServerURI())
		})
	}
}

func TestEnvironment_SetMode(t *testing.T) {
	env := NewEnvironment(ModeProduction, "")
	assert.Equal(t, "https://acc.reg.eleyo.com", env.ServerURI())

	env.SetMode(ModeTest)
	assert.Equal(t, ModeTest, env.Mode())
	assert.Equal(t, "https://acc.reg.eleyo.green", env.ServerURI())
}

func TestEnvironment_WithBaseURI(t *testing.T) {
	env := NewEnvironment(ModeTest, "").WithBaseURI("http://127.0.0.1:8080/")

	assert.Equal(t, "http://127.0.0.1:8080", env.ServerURI())
	assert.Equal(t, ModeTest, env.Mode())

	env.SetMode(ModeProduction)
	assert.Equal(t, "http://127.0.0.1:8080", env.ServerURI())
}

func TestParseMode(t *testing.T) {
	for in, want := range map[string]Mode{
		"":            ModeProduction,
		"production":  ModeProduction,
		"standard":    ModeProduction,
		"TEST":        ModeTest,
		"development": ModeDevelopment,
		"dev":         ModeDevelopment,
	} {
		got, err := ParseMode(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseMode("staging")
	assert.Error(t, err)
}

func TestMode_String(t *testing.T) {
	assert.Equal(t, "production", ModeProduction.String())
	assert.Equal(t, "test", ModeTest.String())
	assert.Equal(t, "development", ModeDevelopment.String())
	assert.Equal(t, "Mode(7)", Mode(7).String())
}
