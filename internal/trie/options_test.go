package trie

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestWithLoggerTracesPruning(t *testing.T) {
	for _, kind := range Kinds {
		t.Run(string(kind), func(t *testing.T) {
			var buf bytes.Buffer
			logger := zerolog.New(&buf).Level(zerolog.DebugLevel)

			m, err := New(kind, WithLogger(logger))
			assert.NoError(t, err)

			m.Insert("ab", 1)
			assert.True(t, m.Delete("ab"))

			assert.Contains(t, buf.String(), `"prefix":"ab"`)
			assert.Contains(t, buf.String(), `"prefix":"a"`)
			assert.Contains(t, buf.String(), "pruned")
		})
	}
}

func TestDefaultLoggerIsSilent(t *testing.T) {
	o := newOptions(nil)
	assert.Equal(t, zerolog.Disabled, o.logger.GetLevel())
}
