package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

type Configs struct {
	Env string `toml:"env"`

	Log              LogConfigs         `toml:"log"`
	Storage          StorageConfigs     `toml:"storage"`
	Redis            RedisConfigs       `toml:"redis"`
	Kafka            KafkaConfigs       `toml:"kafka"`
	Host             HostConfigs        `toml:"host"`
	PrometheusServer ServerConfigs      `toml:"prometheus_server"`
	Chain            ChainConfigs       `toml:"chain"`
	Marketplace      MarketplaceConfigs `toml:"marketplace"`
	Genesis          GenesisConfigs     `toml:"genesis"`
}

type LogConfigs struct {
	Level      string `toml:"level"`
	File       string `toml:"file"`
	MaxSizeMB  int    `toml:"max_size_mb"`
	MaxBackups int    `toml:"max_backups"`
	MaxAgeDays int    `toml:"max_age_days"`
}

type StorageConfigs struct {
	// Engine is one of memory, badger, mysql or sqlite.
	Engine   string          `toml:"engine"`
	Path     string          `toml:"path"`
	Database DatabaseConfigs `toml:"database"`
}

type DatabaseConfigs struct {
	Host     string `toml:"host"`
	Port     string `toml:"port"`
	Database string `toml:"database"`
	User     string `toml:"user"`
	Password string `toml:"password"`
}

func (d DatabaseConfigs) ConnectionString() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		d.User,
		d.Password,
		d.Host,
		d.Port,
		d.Database,
	)
}

type ServerConfigs struct {
	Host string `toml:"host"`
	Port string `toml:"port"`
}

func (c ServerConfigs) Address() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

func (c ServerConfigs) Endpoint() string {
	return fmt.Sprintf("http://%s", c.Address())
}

type HostConfigs struct {
	ServerConfigs
	RPCName string `toml:"rpc_name"`
}

type RedisConfigs struct {
	Addr            string `toml:"addr"`
	MessageQueueKey string `toml:"message_queue_key"`
}

type KafkaConfigs struct {
	Addr       string `toml:"addr"`
	ClientID   string `toml:"client_id"`
	GroupID    string `toml:"group_id"`
	EventTopic string `toml:"event_topic"`
}

// ChainConfigs describes the logical clock of the host. Timestamps are in
// milliseconds, a period lasts T0 milliseconds and is split into ThreadCount
// slots.
type ChainConfigs struct {
	GenesisTimestamp      uint64 `toml:"genesis_timestamp"`
	T0                    uint64 `toml:"t0"`
	ThreadCount           uint64 `toml:"thread_count"`
	ExpiryWindowPeriods   uint64 `toml:"expiry_window_periods"`
	MessagePollIntervalMs int64  `toml:"message_poll_interval_ms"`
}

type MarketplaceConfigs struct {
	Address string `toml:"address"`
	Owner   string `toml:"owner"`

	// Settlement is either approval or escrow.
	Settlement string `toml:"settlement"`

	// FeePolicy is one of none, listing, percentage or modulus. The meaning of
	// Fee depends on it.
	FeePolicy string `toml:"fee_policy"`
	Fee       uint64 `toml:"fee"`

	RecordBuyHistory bool `toml:"record_buy_history"`
	AutoExpire       bool `toml:"auto_expire"`
}

type GenesisConfigs struct {
	Accounts    []AccountConfigs    `toml:"accounts"`
	Collections []CollectionConfigs `toml:"collections"`
}

type AccountConfigs struct {
	Address string `toml:"address"`
	Balance uint64 `toml:"balance"`
}

type CollectionConfigs struct {
	Address     string `toml:"address"`
	Deployer    string `toml:"deployer"`
	Name        string `toml:"name"`
	Symbol      string `toml:"symbol"`
	TotalSupply string `toml:"total_supply"`
	BaseURI     string `toml:"base_uri"`
	TokenURI    string `toml:"token_uri"`
	MintPrice   uint64 `toml:"mint_price"`
	StartTime   uint64 `toml:"start_time"`
	Listed      bool   `toml:"listed"`
}

func Default() Configs {
	return Configs{
		Env: "local",
		Log: LogConfigs{
			Level:      "info",
			MaxSizeMB:  100,
			MaxBackups: 5,
			MaxAgeDays: 30,
		},
		Storage: StorageConfigs{
			Engine: "memory",
			Path:   "./data/kv",
		},
		Redis: RedisConfigs{
			MessageQueueKey: "marketplace:messages",
		},
		Kafka: KafkaConfigs{
			ClientID:   "marketplace",
			GroupID:    "marketplace-events",
			EventTopic: "contract_events",
		},
		Host: HostConfigs{
			ServerConfigs: ServerConfigs{Host: "localhost", Port: "8545"},
			RPCName:       "host",
		},
		PrometheusServer: ServerConfigs{Host: "localhost", Port: "9090"},
		Chain: ChainConfigs{
			GenesisTimestamp:      1704289800000,
			T0:                    16000,
			ThreadCount:           32,
			ExpiryWindowPeriods:   10,
			MessagePollIntervalMs: 500,
		},
		Marketplace: MarketplaceConfigs{
			Address:    "AS1marketplace",
			Settlement: "approval",
			FeePolicy:  "percentage",
			Fee:        2,
			AutoExpire: true,
		},
	}
}

// Load reads the toml file at path on top of the default configurations.
func Load(path string) (Configs, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Configs{}, fmt.Errorf("cannot decode config file %s: %w", path, err)
	}

	return cfg, nil
}
