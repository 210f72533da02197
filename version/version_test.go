package version

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildIDFor(t *testing.T) {
	id, err := BuildIDFor(time.Date(1994, time.June, 23, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, 10, id)

	_, err = BuildIDFor(time.Date(1990, time.January, 1, 0, 0, 0, 0, time.UTC))
	assert.Error(t, err)
}

func TestCalculateBuildID(t *testing.T) {
	old := BuildDate
	t.Cleanup(func() { BuildDate = old })

	BuildDate = ""
	_, err := CalculateBuildID()
	assert.Error(t, err)
	assert.Equal(t, "dev", Current().String())

	BuildDate = "not-a-date"
	_, err = CalculateBuildID()
	assert.Error(t, err)

	BuildDate = "1994-06-14"
	id, err := CalculateBuildID()
	require.NoError(t, err)
	assert.Equal(t, 1, id)
	assert.Equal(t, "build 1", Current().String())
}
