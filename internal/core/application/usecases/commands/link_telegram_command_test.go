package commands_test

import (
	"testing"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLinkTelegramCommand_ValidInput(t *testing.T) {
	cmd, err := commands.NewLinkTelegramCommand("tok-1", 42)

	require.NoError(t, err)
	assert.Equal(t, "tok-1", cmd.Token())
	assert.Equal(t, int64(42), cmd.ChatID())
	assert.NoError(t, cmd.Validate())
}

func TestNewLinkTelegramCommand_MissingFields(t *testing.T) {
	_, err := commands.NewLinkTelegramCommand("", 42)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = commands.NewLinkTelegramCommand("tok-1", 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestLinkTelegramCommand_Validate_ZeroValue(t *testing.T) {
	var cmd commands.LinkTelegramCommand

	err := cmd.Validate()

	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrLinkTelegramCommandIsNotConstructed)
}
