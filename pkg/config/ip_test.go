package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAdvertisedURLs(t *testing.T) {
	t.Run("bound address", func(t *testing.T) {
		conf, err := NewConfig("server:\n  bind_address: 10.1.2.3\n  port: 7000", true, nil, nil)
		require.NoError(t, err)
		urls, err := conf.AdvertisedURLs()
		require.NoError(t, err)
		require.Equal(t, []string{"ws://10.1.2.3:7000"}, urls)
	})

	t.Run("unspecified address", func(t *testing.T) {
		conf, err := NewConfig("server:\n  bind_address: 0.0.0.0", true, nil, nil)
		require.NoError(t, err)
		urls, err := conf.AdvertisedURLs()
		require.NoError(t, err)
		require.NotEmpty(t, urls)

		addresses, err := GetLocalIPAddresses(true)
		require.NoError(t, err)
		require.Len(t, urls, len(addresses))
		require.Contains(t, urls, "ws://127.0.0.1:7880")
	})
}
