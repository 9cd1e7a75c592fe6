// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/viper"

	"github.com/ava-labs/nftissuer/ids"
	"github.com/ava-labs/nftissuer/utils/crypto/secp256k1"
	"github.com/ava-labs/nftissuer/utils/logging"
	"github.com/ava-labs/nftissuer/vms/avm"
	"github.com/ava-labs/nftissuer/wallet/chain/x/issuer"
	"github.com/ava-labs/nftissuer/wallet/chain/x/selector"
)

var (
	errNoPayloads        = errors.New("no payload URLs provided")
	errInvalidLocator    = errors.New("invalid locator")
	errInvalidPrefixLen  = errors.New("locator prefix length must be positive")
	errInvalidRateLimit  = errors.New("api rate limit must not be negative")
	errEmptyAssetName    = errors.New("asset name must not be empty")
	errEmptyAssetSymbol  = errors.New("asset symbol must not be empty")
	errInvalidPrivateKey = errors.New("invalid private key")
)

type Config struct {
	URI string `json:"uri"`
	// APIRateLimit is the maximum number of requests per second sent to the
	// node. 0 means unlimited.
	APIRateLimit float64 `json:"apiRateLimit"`

	PrivateKey *secp256k1.PrivateKey `json:"-"`

	AssetName   string      `json:"assetName"`
	AssetSymbol string      `json:"assetSymbol"`
	GroupID     uint32      `json:"groupID"`
	PayloadURLs []string    `json:"payloadURLs"`
	Recipient   ids.ShortID `json:"recipient"`

	// CreationFee and TxFee override the fees reported by the node when
	// non-zero.
	CreationFee uint64 `json:"creationFee"`
	TxFee       uint64 `json:"txFee"`

	Issuer issuer.Config `json:"issuer"`

	Locator          string `json:"locator"`
	LocatorPrefixLen int    `json:"locatorPrefixLength"`

	Logging     logging.Config `json:"logging"`
	MetricsAddr string         `json:"metricsAddr"`
}

// OperationLocator returns the locator selected by the config.
func (c Config) OperationLocator() selector.OperationLocator {
	if c.Locator == LocatorPrefix {
		return selector.StringPrefixDescendant{Len: c.LocatorPrefixLen}
	}
	return selector.FirstDescendant{}
}

// GetConfig reads the config from [v]. The fields not needed by every
// command are validated by Verify.
func GetConfig(v *viper.Viper) (Config, error) {
	config := Config{
		URI:          v.GetString(URIKey),
		APIRateLimit: v.GetFloat64(APIRateLimitKey),
		AssetName:    v.GetString(AssetNameKey),
		AssetSymbol:  v.GetString(AssetSymbolKey),
		GroupID:      v.GetUint32(GroupIDKey),
		PayloadURLs:  v.GetStringSlice(PayloadURLsKey),
		CreationFee:  v.GetUint64(CreationFeeKey),
		TxFee:        v.GetUint64(TxFeeKey),
		Issuer: issuer.Config{
			PollFrequency:   v.GetDuration(PollFrequencyKey),
			MaxPollAttempts: v.GetInt(MaxPollAttemptsKey),
			MaxUnknownPolls: v.GetInt(MaxUnknownPollsKey),
		},
		Locator:          v.GetString(LocatorKey),
		LocatorPrefixLen: v.GetInt(LocatorPrefixLenKey),
		MetricsAddr:      v.GetString(MetricsAddrKey),
	}

	config.PrivateKey = new(secp256k1.PrivateKey)
	if err := config.PrivateKey.UnmarshalText([]byte(v.GetString(PrivateKeyKey))); err != nil {
		return Config{}, fmt.Errorf("%w: %w", errInvalidPrivateKey, err)
	}

	recipient, err := avm.ParseServiceAddress(v.GetString(RecipientKey))
	if err != nil {
		return Config{}, err
	}
	if recipient == ids.ShortEmpty {
		recipient = config.PrivateKey.Address()
	}
	config.Recipient = recipient

	config.Logging, err = getLoggingConfig(v)
	if err != nil {
		return Config{}, err
	}
	return config, config.verifyConnection()
}

// Verify checks the fields needed to issue a collection.
func (c Config) Verify() error {
	switch {
	case c.AssetName == "":
		return errEmptyAssetName
	case c.AssetSymbol == "":
		return errEmptyAssetSymbol
	case len(c.PayloadURLs) == 0:
		return errNoPayloads
	case c.Locator != LocatorTxID && c.Locator != LocatorPrefix:
		return fmt.Errorf("%w: %q", errInvalidLocator, c.Locator)
	case c.Locator == LocatorPrefix && c.LocatorPrefixLen <= 0:
		return errInvalidPrefixLen
	default:
		return c.Issuer.Verify()
	}
}

func (c Config) verifyConnection() error {
	if c.APIRateLimit < 0 {
		return errInvalidRateLimit
	}
	return nil
}

func getLoggingConfig(v *viper.Viper) (logging.Config, error) {
	config := logging.Config{
		RotatingWriterConfig: logging.RotatingWriterConfig{
			MaxSize:   v.GetInt(LogRotaterMaxSizeKey),
			MaxFiles:  v.GetInt(LogRotaterMaxFilesKey),
			MaxAge:    v.GetInt(LogRotaterMaxAgeKey),
			Directory: os.ExpandEnv(v.GetString(LogDirKey)),
			Compress:  v.GetBool(LogRotaterCompressKey),
		},
	}

	var err error
	config.LogLevel, err = logging.ToLevel(v.GetString(LogLevelKey))
	if err != nil {
		return config, err
	}

	config.DisplayLevel = config.LogLevel
	if displayLevel := v.GetString(LogDisplayLevelKey); displayLevel != "" {
		config.DisplayLevel, err = logging.ToLevel(displayLevel)
		if err != nil {
			return config, err
		}
	}

	config.LogFormat, err = logging.ToFormat(v.GetString(LogFormatKey))
	return config, err
}
