// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/ava-labs/nftissuer/ids"
	"github.com/ava-labs/nftissuer/utils/crypto/secp256k1"
	"github.com/ava-labs/nftissuer/utils/logging"
	"github.com/ava-labs/nftissuer/wallet/chain/x/issuer"
	"github.com/ava-labs/nftissuer/wallet/chain/x/selector"
)

func getConfig(t *testing.T, args ...string) (Config, error) {
	t.Helper()

	v, err := BuildViper(BuildFlagSet(), args)
	require.NoError(t, err)
	return GetConfig(v)
}

func TestGetConfigDefaults(t *testing.T) {
	require := require.New(t)

	config, err := getConfig(t)
	require.NoError(err)

	expectedKey := new(secp256k1.PrivateKey)
	require.NoError(expectedKey.UnmarshalText([]byte(DefaultPrivateKey)))

	require.Equal(DefaultURI, config.URI)
	require.Equal(expectedKey.Address(), config.PrivateKey.Address())
	require.Equal(expectedKey.Address(), config.Recipient)
	require.Equal(uint32(DefaultGroupID), config.GroupID)
	require.Empty(config.PayloadURLs)
	require.Equal(issuer.DefaultConfig, config.Issuer)
	require.Equal(LocatorTxID, config.Locator)
	require.Equal(selector.FirstDescendant{}, config.OperationLocator())
	require.Equal(logging.Info, config.Logging.LogLevel)
	require.Equal(logging.Info, config.Logging.DisplayLevel)
	require.Equal(logging.Plain, config.Logging.LogFormat)
	require.Empty(config.MetricsAddr)

	require.ErrorIs(config.Verify(), errNoPayloads)
}

func TestGetConfigFlags(t *testing.T) {
	require := require.New(t)

	recipient := ids.GenerateTestShortID()
	config, err := getConfig(t,
		"--"+URIKey+"=http://node:9650",
		"--"+AssetNameKey+"=Hats",
		"--"+GroupIDKey+"=7",
		"--"+PayloadURLsKey+"=https://example.com/0.png,https://example.com/1.png",
		"--"+RecipientKey+"="+recipient.String(),
		"--"+PollFrequencyKey+"=250ms",
		"--"+MaxPollAttemptsKey+"=4",
		"--"+CreationFeeKey+"=10",
		"--"+TxFeeKey+"=1",
		"--"+LocatorKey+"="+LocatorPrefix,
		"--"+LocatorPrefixLenKey+"=12",
		"--"+LogLevelKey+"=debug",
		"--"+LogDisplayLevelKey+"=warn",
		"--"+LogFormatKey+"=json",
		"--"+MetricsAddrKey+"=:9090",
		"--"+APIRateLimitKey+"=5.5",
	)
	require.NoError(err)
	require.NoError(config.Verify())

	require.Equal("http://node:9650", config.URI)
	require.Equal("Hats", config.AssetName)
	require.Equal(uint32(7), config.GroupID)
	require.Equal([]string{"https://example.com/0.png", "https://example.com/1.png"}, config.PayloadURLs)
	require.Equal(recipient, config.Recipient)
	require.Equal(250*time.Millisecond, config.Issuer.PollFrequency)
	require.Equal(4, config.Issuer.MaxPollAttempts)
	require.Equal(uint64(10), config.CreationFee)
	require.Equal(uint64(1), config.TxFee)
	require.Equal(selector.StringPrefixDescendant{Len: 12}, config.OperationLocator())
	require.Equal(logging.Debug, config.Logging.LogLevel)
	require.Equal(logging.Warn, config.Logging.DisplayLevel)
	require.Equal(logging.JSON, config.Logging.LogFormat)
	require.Equal(":9090", config.MetricsAddr)
	require.Equal(5.5, config.APIRateLimit)
}

func TestGetConfigEnv(t *testing.T) {
	require := require.New(t)

	t.Setenv("NFTISSUER_ASSET_SYMBOL", "ENV")
	t.Setenv("NFTISSUER_MAX_UNKNOWN_POLLS", "3")

	config, err := getConfig(t, "--"+AssetNameKey+"=Flag")
	require.NoError(err)
	require.Equal("ENV", config.AssetSymbol)
	require.Equal(3, config.Issuer.MaxUnknownPolls)
	require.Equal("Flag", config.AssetName)
}

func TestGetConfigFile(t *testing.T) {
	require := require.New(t)

	configFile := filepath.Join(t.TempDir(), "config.json")
	require.NoError(os.WriteFile(configFile, []byte(`{
		"asset-name": "File Hats",
		"asset-symbol": "FILE",
		"group-id": 9,
		"payload-urls": ["https://example.com/file.png"]
	}`), 0o600))

	config, err := getConfig(t,
		"--"+ConfigFileKey+"="+configFile,
		"--"+AssetSymbolKey+"=FLAG",
	)
	require.NoError(err)
	require.NoError(config.Verify())
	require.Equal("File Hats", config.AssetName)
	require.Equal("FLAG", config.AssetSymbol)
	require.Equal(uint32(9), config.GroupID)
	require.Equal([]string{"https://example.com/file.png"}, config.PayloadURLs)
}

func TestGetConfigErrors(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		expectedErr error
	}{
		{
			name:        "private key without prefix",
			args:        []string{"--" + PrivateKeyKey + "=ewoqjP7PxY4yr3iLTpLisriqt94hdyDFNgchSxGGztUrTXtNN"},
			expectedErr: errInvalidPrivateKey,
		},
		{
			name:        "unknown log level",
			args:        []string{"--" + LogLevelKey + "=loud"},
			expectedErr: logging.ErrUnknownLevel,
		},
		{
			name:        "negative rate limit",
			args:        []string{"--" + APIRateLimitKey + "=-1"},
			expectedErr: errInvalidRateLimit,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := getConfig(t, test.args...)
			require.ErrorIs(t, err, test.expectedErr)
		})
	}
}

func TestConfigVerify(t *testing.T) {
	valid := func() Config {
		return Config{
			AssetName:        "Hats",
			AssetSymbol:      "HAT",
			PayloadURLs:      []string{"https://example.com/0.png"},
			Issuer:           issuer.DefaultConfig,
			Locator:          LocatorTxID,
			LocatorPrefixLen: DefaultLocatorLen,
		}
	}

	tests := []struct {
		name        string
		modify      func(*Config)
		expectedErr error
	}{
		{
			name:   "valid",
			modify: func(*Config) {},
		},
		{
			name: "no name",
			modify: func(c *Config) {
				c.AssetName = ""
			},
			expectedErr: errEmptyAssetName,
		},
		{
			name: "no symbol",
			modify: func(c *Config) {
				c.AssetSymbol = ""
			},
			expectedErr: errEmptyAssetSymbol,
		},
		{
			name: "unknown locator",
			modify: func(c *Config) {
				c.Locator = "utxo"
			},
			expectedErr: errInvalidLocator,
		},
		{
			name: "empty prefix",
			modify: func(c *Config) {
				c.Locator = LocatorPrefix
				c.LocatorPrefixLen = 0
			},
			expectedErr: errInvalidPrefixLen,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			config := valid()
			test.modify(&config)
			require.ErrorIs(t, config.Verify(), test.expectedErr)
		})
	}
}
