// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"os"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/ava-labs/nftissuer/wallet/chain/x/issuer"
)

const (
	DefaultURI        = "http://127.0.0.1:9650"
	DefaultGroupID    = 42
	DefaultLocatorLen = 10

	// DefaultPrivateKey is the pre-funded key of local test networks.
	DefaultPrivateKey = "PrivateKey-ewoqjP7PxY4yr3iLTpLisriqt94hdyDFNgchSxGGztUrTXtNN"

	LocatorTxID   = "txid"
	LocatorPrefix = "prefix"
)

// BuildFlagSet returns the flags of the issuer.
func BuildFlagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet(EnvPrefix, pflag.ContinueOnError)
	AddFlags(fs)
	return fs
}

// AddFlags registers the flags of the issuer on [fs].
func AddFlags(fs *pflag.FlagSet) {
	fs.String(ConfigFileKey, "", "Path to a JSON or YAML file holding flag values")

	// API
	fs.String(URIKey, DefaultURI, "URI of the node to issue transactions to")
	fs.Float64(APIRateLimitKey, 0, "Maximum number of API requests per second. 0 disables the limit")

	// Keys
	fs.String(PrivateKeyKey, DefaultPrivateKey, "Private key paying fees, minting and holding the NFTs")

	// Collection
	fs.String(AssetNameKey, "Avalanche Hats", "Name of the NFT asset")
	fs.String(AssetSymbolKey, "HAT", "Symbol of the NFT asset")
	fs.Uint32(GroupIDKey, DefaultGroupID, "Group every NFT is minted in")
	fs.StringSlice(PayloadURLsKey, nil, "URLs referenced by the minted NFTs, one NFT per URL")
	fs.String(RecipientKey, "", "Address the minted NFTs are transferred to. Defaults to the address of the private key")

	// Fees
	fs.Uint64(CreationFeeKey, 0, "Asset creation fee in nAVAX. 0 fetches the fee from the node")
	fs.Uint64(TxFeeKey, 0, "Transaction fee in nAVAX. 0 fetches the fee from the node")

	// Confirmation
	fs.Duration(PollFrequencyKey, issuer.DefaultConfig.PollFrequency, "Delay between two transaction status requests")
	fs.Int(MaxPollAttemptsKey, issuer.DefaultConfig.MaxPollAttempts, "Number of status requests after which a transaction is considered timed out")
	fs.Int(MaxUnknownPollsKey, issuer.DefaultConfig.MaxUnknownPolls, "Number of status requests that may report a transaction as unknown")

	// Locator
	fs.String(LocatorKey, LocatorTxID, "How the UTXOs produced by a transaction are found. One of {txid, prefix}")
	fs.Int(LocatorPrefixLenKey, DefaultLocatorLen, "Number of tx ID characters compared by the prefix locator")

	// Logging
	fs.String(LogLevelKey, "info", "The log level. Should be one of {verbo, debug, trace, info, warn, error, fatal, off}")
	fs.String(LogDisplayLevelKey, "", "The log display level. Defaults to the log level")
	fs.String(LogFormatKey, "plain", "The structure of log format. Should be one of {plain, colors, json}")
	fs.String(LogDirKey, "", "Logging directory. Logs are only displayed when empty")
	fs.Int(LogRotaterMaxSizeKey, 8, "The maximum file size in megabytes of the log file before it gets rotated")
	fs.Int(LogRotaterMaxFilesKey, 7, "The maximum number of old log files to retain. 0 means retain all old log files")
	fs.Int(LogRotaterMaxAgeKey, 0, "The maximum number of days to retain old log files. 0 means retain all old log files")
	fs.Bool(LogRotaterCompressKey, false, "Whether rotated log files are compressed")

	// Metrics
	fs.String(MetricsAddrKey, "", "Address to serve prometheus metrics on. Metrics are not served when empty")
}

// BuildViper parses [args] into [fs] and returns a viper instance reading, in
// order of precedence, the flags, the environment and the config file.
func BuildViper(fs *pflag.FlagSet, args []string) (*viper.Viper, error) {
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return NewViper(fs)
}

// NewViper binds the already parsed [fs] to a new viper instance.
func NewViper(fs *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.SetEnvPrefix(EnvPrefix)
	if err := v.BindPFlags(fs); err != nil {
		return nil, err
	}

	if v.IsSet(ConfigFileKey) {
		v.SetConfigFile(os.ExpandEnv(v.GetString(ConfigFileKey)))
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	}
	return v, nil
}
