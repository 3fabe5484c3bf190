package export

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExportCommand_Metadata(t *testing.T) {
	assert.Equal(t, "export", Cmd.Use)
	assert.Contains(t, Cmd.Short, "CSV")
	assert.NotNil(t, Cmd.Run)
}
