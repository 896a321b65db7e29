package logger_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viewmill/viewmill/internal/logger"
)

func TestDeferLogCollectsErrorsAndWarnings(t *testing.T) {
	log := logger.NewDeferLog()
	source := &logger.Source{Contents: "export default (n) => n;\n"}

	log.AddError(source, logger.Loc{Start: 15}, "something went wrong")
	log.AddWarning(source, logger.Loc{Start: 0}, "heads up")

	assert.True(t, log.HasErrors())

	msgs := log.Done()
	require.Len(t, msgs, 2)
	assert.Equal(t, logger.Warning, msgs[0].Kind)
	assert.Equal(t, "heads up", msgs[0].Data.Text)
	assert.Equal(t, logger.Error, msgs[1].Kind)
	assert.Equal(t, "something went wrong", msgs[1].Data.Text)
}

func TestDeferLogNoErrors(t *testing.T) {
	log := logger.NewDeferLog()
	assert.False(t, log.HasErrors())
	assert.Empty(t, log.Done())
}
