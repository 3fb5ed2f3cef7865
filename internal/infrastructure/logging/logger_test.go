package logging

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	for _, debug := range []bool{false, true} {
		req := require.New(t)

		log, err := New(debug)

		req.NoError(err)
		req.NotNil(log)
		req.Equal(debug, log.Desugar().Core().Enabled(-1))
	}
}

func TestNop(t *testing.T) {
	require.NotPanics(t, func() {
		Nop().Infow("ignored", "key", "value")
	})
}
