// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

// EnvPrefix is prepended to the upper-cased key when a flag is read from the
// environment, with dashes replaced by underscores.
const EnvPrefix = "nftissuer"

const (
	ConfigFileKey         = "config-file"
	URIKey                = "uri"
	PrivateKeyKey         = "private-key"
	AssetNameKey          = "asset-name"
	AssetSymbolKey        = "asset-symbol"
	GroupIDKey            = "group-id"
	PayloadURLsKey        = "payload-urls"
	RecipientKey          = "recipient"
	PollFrequencyKey      = "poll-frequency"
	MaxPollAttemptsKey    = "max-poll-attempts"
	MaxUnknownPollsKey    = "max-unknown-polls"
	CreationFeeKey        = "creation-fee"
	TxFeeKey              = "tx-fee"
	LogLevelKey           = "log-level"
	LogDisplayLevelKey    = "log-display-level"
	LogFormatKey          = "log-format"
	LogDirKey             = "log-dir"
	LogRotaterMaxSizeKey  = "log-rotater-max-size"
	LogRotaterMaxFilesKey = "log-rotater-max-files"
	LogRotaterMaxAgeKey   = "log-rotater-max-age"
	LogRotaterCompressKey = "log-rotater-compress-enabled"
	MetricsAddrKey        = "metrics-addr"
	APIRateLimitKey       = "api-rate-limit"
	LocatorKey            = "locator"
	LocatorPrefixLenKey   = "locator-prefix-length"
)
