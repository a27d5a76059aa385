package modelconfig_test

import (
	"testing"

	modelconfig "github.com/0xalexb/hjarta-modelconfig"

	"github.com/stretchr/testify/require"
)

func TestVersion_DefaultValues(t *testing.T) {
	t.Parallel()

	require.Equal(t, "dev", modelconfig.Version)
	require.Equal(t, "unknown", modelconfig.Commit)
	require.Equal(t, "unknown", modelconfig.CompiledAt)
}
