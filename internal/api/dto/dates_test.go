package dto

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	parsed, err := ParseDate("2022-10-22")
	require.NoError(t, err)
	require.NotNil(t, parsed)
	assert.Equal(t, time.Date(2022, 10, 22, 0, 0, 0, 0, time.UTC), *parsed)

	parsed, err = ParseDate("")
	require.NoError(t, err)
	assert.Nil(t, parsed)

	_, err = ParseDate("22/10/2022")
	assert.Error(t, err)
}

func TestFormatDate(t *testing.T) {
	ts := time.Date(2022, 10, 22, 15, 4, 5, 0, time.UTC)
	assert.Equal(t, "2022-10-22", FormatDate(ts))

	assert.Nil(t, FormatDatePtr(nil))
	formatted := FormatDatePtr(&ts)
	require.NotNil(t, formatted)
	assert.Equal(t, "2022-10-22", *formatted)
}
