package config

import (
	"os"

	"github.com/dmitrijs2005/addressbook/internal/flagx"
	"github.com/dmitrijs2005/addressbook/internal/timex"
	jsoniter "github.com/json-iterator/go"
)

// JsonConfig is a DTO used only for unmarshalling. Pointer fields tell an
// absent key from a zero value, so a partial file only overrides what it
// names.
type JsonConfig struct {
	APIBaseURL     *string         `json:"api_base_url"`
	Storage        *string         `json:"storage"`
	DataDir        *string         `json:"data_dir"`
	DatabaseFile   *string         `json:"database_file"`
	RedisAddr      *string         `json:"redis_addr"`
	RedisPassword  *string         `json:"redis_password"`
	RedisDB        *int            `json:"redis_db"`
	RedisPrefix    *string         `json:"redis_prefix"`
	RequestTimeout *timex.Duration `json:"request_timeout"`
	LogLevel       *string         `json:"log_level"`
}

// parseJson overlays cfg with the file named by -c/-config in args, or by
// ADDRESSBOOK_CONFIG. No file configured means no change.
func parseJson(cfg *Config, args []string) error {
	path := flagx.ConfigFile(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var jc JsonConfig
	if err := jsoniter.ConfigCompatibleWithStandardLibrary.Unmarshal(data, &jc); err != nil {
		return err
	}

	setString(&cfg.APIBaseURL, jc.APIBaseURL)
	setString(&cfg.Storage, jc.Storage)
	setString(&cfg.DataDir, jc.DataDir)
	setString(&cfg.DatabaseFile, jc.DatabaseFile)
	setString(&cfg.RedisAddr, jc.RedisAddr)
	setString(&cfg.RedisPassword, jc.RedisPassword)
	setString(&cfg.RedisPrefix, jc.RedisPrefix)
	setString(&cfg.LogLevel, jc.LogLevel)
	if jc.RedisDB != nil {
		cfg.RedisDB = *jc.RedisDB
	}
	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	return nil
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
