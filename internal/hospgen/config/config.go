package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type OutputCfg struct {
	Dir        string `mapstructure:"dir"`
	StatusFile string `mapstructure:"status_file"`
}

type DBCfg struct {
	Driver   string `mapstructure:"driver"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Database string `mapstructure:"database"`
}

// AzureCfg controls the optional blob upload of every written file.
// Either a full connection string or account name + SAS token is accepted.
type AzureCfg struct {
	Enabled          bool   `mapstructure:"enabled"`
	ConnectionString string `mapstructure:"connection_string"`
	AccountName      string `mapstructure:"account_name"`
	SASToken         string `mapstructure:"sas_token"`
	Container        string `mapstructure:"container"`
	PathPrefix       string `mapstructure:"path_prefix"`
}

type LiveCfg struct {
	IntervalSeconds int `mapstructure:"interval_seconds"`
	Patients        int `mapstructure:"patients"`
	Admissions      int `mapstructure:"admissions"`
}

// Interval returns the tick interval as a duration.
func (l LiveCfg) Interval() time.Duration {
	return time.Duration(l.IntervalSeconds) * time.Second
}

type ServerCfg struct {
	Addr string `mapstructure:"addr"`
}

type CatalogCfg struct {
	File string `mapstructure:"file"`
}

type LoggingCfg struct {
	Level string `mapstructure:"level"`
}

type Config struct {
	Output  OutputCfg  `mapstructure:"output"`
	DB      DBCfg      `mapstructure:"db"`
	Azure   AzureCfg   `mapstructure:"azure"`
	Live    LiveCfg    `mapstructure:"live"`
	Server  ServerCfg  `mapstructure:"server"`
	Catalog CatalogCfg `mapstructure:"catalog"`
	Logging LoggingCfg `mapstructure:"logging"`
}

var cfg *Config

// Load populates global config from a viper instance
func Load(v *viper.Viper) error {
	// set defaults
	v.SetDefault("output.dir", "./amc_output")
	v.SetDefault("output.status_file", "./amc_output/status.json")
	v.SetDefault("db.driver", "mysql")
	v.SetDefault("db.host", "127.0.0.1")
	v.SetDefault("db.database", "amc")
	v.SetDefault("live.interval_seconds", 5)
	v.SetDefault("live.patients", 3)
	v.SetDefault("live.admissions", 10)
	v.SetDefault("server.addr", ":5000")
	v.SetDefault("logging.level", "info")

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return fmt.Errorf("unmarshal config: %w", err)
	}
	if c.DB.Port == 0 {
		if c.DB.Driver == "postgres" {
			c.DB.Port = 5432
		} else {
			c.DB.Port = 3306
		}
	}
	cfg = &c
	return nil
}

func Get() *Config {
	if cfg == nil {
		cfg = &Config{}
	}
	return cfg
}
