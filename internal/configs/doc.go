// Package configs loads and saves the rcli configuration file.
//
// The file is TOML and lives at $RCLI_CONFIG when that is set, otherwise at
// <user config dir>/rcli/config.toml. Every section is optional; missing
// keys keep their built-in defaults:
//
//	[text]
//	sign_format = "blake3"
//	encrypt_format = "xchacha20poly1305"
//
//	[genpass]
//	length = 16
//	uppercase = true
//	lowercase = true
//	number = true
//	symbol = true
//
//	[csv]
//	format = "json"
//	delimiter = ","
//
//	[http]
//	dir = "."
//	port = 8080
//
//	[jwt]
//	secret = ""
//	audience = ""
//	ttl = "14d0h0m"
//
// Command-line flags always win over values from the file.
package configs
