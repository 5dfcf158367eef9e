package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCounts(t *testing.T) {
	c := Counts{}
	c.Inc("devices_sip_device")
	c.Inc("devices_sip_device")
	c.Merge(Counts{"devices_sip_device": 3, "did_local": 1, "vm_transcription": 0})

	assert.Equal(t, Counts{"devices_sip_device": 5, "did_local": 1, "vm_transcription": 0}, c)
	assert.Equal(t, 6, c.Total())
}

func TestMetricMap(t *testing.T) {
	t.Run("Display name always present", func(t *testing.T) {
		m := NewMetricMap("Acme")

		assert.Equal(t, []string{DisplayNameKey}, m.Keys())
		value, ok := m.Value(DisplayNameKey)
		assert.True(t, ok)
		assert.Equal(t, "Acme", value)
	})

	t.Run("Keys and values", func(t *testing.T) {
		m := NewMetricMap("Acme")
		m.Counts["did_toll_free"] = 2
		m.Counts["app_store_voip"] = 1

		assert.Equal(t, []string{DisplayNameKey, "app_store_voip", "did_toll_free"}, m.Keys())

		value, ok := m.Value("did_toll_free")
		assert.True(t, ok)
		assert.Equal(t, "2", value)

		_, ok = m.Value("did_local")
		assert.False(t, ok)

		n, ok := m.Count("app_store_voip")
		assert.True(t, ok)
		assert.Equal(t, 1, n)
	})

	t.Run("JSON is flat", func(t *testing.T) {
		m := NewMetricMap("Acme")
		m.Counts["did_local"] = 4

		data, err := json.Marshal(m)
		require.NoError(t, err)
		assert.JSONEq(t, `{"acctName":"Acme","did_local":4}`, string(data))
	})
}
