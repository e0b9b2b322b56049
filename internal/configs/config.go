package configs

import (
	"fmt"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/PolarWolf314/rcli/internal/csvconv"
	kerrors "github.com/PolarWolf314/rcli/internal/errors"
	"github.com/PolarWolf314/rcli/internal/genpass"
	"github.com/PolarWolf314/rcli/internal/textcrypt"
)

// EnvConfigPath overrides the config file location.
const EnvConfigPath = "RCLI_CONFIG"

type Config struct {
	Text    TextConfig    `toml:"text" json:"text"`
	Genpass GenpassConfig `toml:"genpass" json:"genpass"`
	CSV     CSVConfig     `toml:"csv" json:"csv"`
	HTTP    HTTPConfig    `toml:"http" json:"http"`
	JWT     JWTConfig     `toml:"jwt" json:"jwt"`
}

type TextConfig struct {
	SignFormat    textcrypt.SignFormat    `toml:"sign_format" json:"sign_format"`
	EncryptFormat textcrypt.EncryptFormat `toml:"encrypt_format" json:"encrypt_format"`
}

type GenpassConfig struct {
	Length    int  `toml:"length" json:"length"`
	Uppercase bool `toml:"uppercase" json:"uppercase"`
	Lowercase bool `toml:"lowercase" json:"lowercase"`
	Number    bool `toml:"number" json:"number"`
	Symbol    bool `toml:"symbol" json:"symbol"`
}

type CSVConfig struct {
	Format    csvconv.Format `toml:"format" json:"format"`
	Delimiter string         `toml:"delimiter" json:"delimiter"`
}

type HTTPConfig struct {
	Dir  string `toml:"dir" json:"dir"`
	Port int    `toml:"port" json:"port"`
}

type JWTConfig struct {
	Secret   string `toml:"secret" json:"secret"`
	Audience string `toml:"audience" json:"audience"`
	TTL      string `toml:"ttl" json:"ttl"`
}

// Default returns the built-in configuration.
func Default() *Config {
	pass := genpass.DefaultOptions()
	return &Config{
		Text: TextConfig{
			SignFormat:    textcrypt.SignBlake3,
			EncryptFormat: textcrypt.EncryptXChaCha20Poly1305,
		},
		Genpass: GenpassConfig{
			Length:    pass.Length,
			Uppercase: pass.Upper,
			Lowercase: pass.Lower,
			Number:    pass.Number,
			Symbol:    pass.Symbol,
		},
		CSV:  CSVConfig{Format: csvconv.JSON, Delimiter: ","},
		HTTP: HTTPConfig{Dir: ".", Port: 8080},
		JWT:  JWTConfig{TTL: "14d0h0m"},
	}
}

// Path returns the config file location without checking that it exists.
func Path() (string, error) {
	if p := os.Getenv(EnvConfigPath); p != "" {
		return p, nil
	}
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("error getting config directory: %w", err)
	}
	return filepath.Join(configDir, "rcli", "config.toml"), nil
}

// Load reads the config file at path on top of the defaults. A missing file
// yields the defaults.
func Load(path string) (*Config, error) {
	config := Default()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return config, nil
	}

	if err := LoadTOML(path, config); err != nil {
		return nil, fmt.Errorf("%w: failed to load config %s: %v", kerrors.ErrInvalidFormat, path, err)
	}

	if _, err := config.CSV.DelimiterRune(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}

	return config, nil
}

// LoadDefault loads the config from Path.
func LoadDefault() (*Config, string, error) {
	path, err := Path()
	if err != nil {
		return nil, "", err
	}
	config, err := Load(path)
	if err != nil {
		return nil, path, err
	}
	return config, path, nil
}

// Save writes config to path, creating parent directories.
func Save(path string, config *Config) error {
	if err := SaveTOML(path, config); err != nil {
		return fmt.Errorf("%w: failed to save config %s: %w", kerrors.ErrWriteOutput, path, err)
	}
	return nil
}

// DelimiterRune returns the single character the delimiter names.
func (c CSVConfig) DelimiterRune() (rune, error) {
	if c.Delimiter == "" {
		return ',', nil
	}
	r, size := utf8.DecodeRuneInString(c.Delimiter)
	if size != len(c.Delimiter) || r == utf8.RuneError {
		return 0, fmt.Errorf("%w: csv delimiter must be a single character, got %q", kerrors.ErrInvalidFormat, c.Delimiter)
	}
	return r, nil
}

// GenpassOptions converts the [genpass] section.
func (c GenpassConfig) GenpassOptions() genpass.Options {
	return genpass.Options{
		Length: c.Length,
		Upper:  c.Uppercase,
		Lower:  c.Lowercase,
		Number: c.Number,
		Symbol: c.Symbol,
	}
}
