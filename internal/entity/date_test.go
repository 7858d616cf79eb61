package entity

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateJSON(t *testing.T) {
	d := NewDate(2020, time.January, 2)

	b, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2020-01-02"`, string(b))

	var back Date
	require.NoError(t, json.Unmarshal(b, &back))
	assert.Equal(t, d.String(), back.String())
}

func TestDateOfDropsTimeOfDay(t *testing.T) {
	d := DateOf(time.Date(2020, time.January, 2, 23, 59, 58, 0, time.UTC))
	assert.Equal(t, "2020-01-02", d.String())
}
