package config

type (
	Config struct {
		Name            string          `mapstructure:"name"`
		ServerConfig    ServerConfig    `mapstructure:"server"`
		LogConfig       LogConfig       `mapstructure:"log"`
		PersistentStore PersistentStore `mapstructure:"persistentStore"`
	}

	ServerConfig struct {
		HttpPort int `mapstructure:"httpPort"`
	}

	LogConfig struct {
		LogFile string `mapstructure:"logFile"`
		ErrFile string `mapstructure:"errFile"`
	}

	// QueryDefaults holds template-wide execution settings applied to every
	// statement issued through a template. Empty or zero fields are treated
	// as unset and leave the driver defaults untouched.
	QueryDefaults struct {
		PageSize          int    `mapstructure:"pageSize"`
		Consistency       string `mapstructure:"consistency"`
		SerialConsistency string `mapstructure:"serialConsistency"`
		ExecutionProfile  string `mapstructure:"executionProfile"`
	}

	// ExecutionProfile is a named bundle of driver-level execution defaults
	// selectable per statement.
	ExecutionProfile struct {
		PageSize          int    `mapstructure:"pageSize"`
		Consistency       string `mapstructure:"consistency"`
		SerialConsistency string `mapstructure:"serialConsistency"`
	}

	PersistentStore struct {
		PluginName            string                      `mapstructure:"pluginName"`
		Hosts                 string                      `mapstructure:"hosts"`
		Port                  int                         `mapstructure:"port"`
		User                  string                      `mapstructure:"user"`
		Password              string                      `mapstructure:"password"`
		Keyspace              string                      `mapstructure:"keyspace"`
		MaxConns              int                         `mapstructure:"maxConns"`
		ConnectAttributes     map[string]string           `mapstructure:"connectAttributes"`
		ProtoVersion          int                         `mapstructure:"protoVersion"`
		AllowedAuthenticators []string                    `mapstructure:"allowedAuthenticators"`
		Region                string                      `mapstructure:"region"`
		Datacenter            string                      `mapstructure:"datacenter"`
		QueryDefaults         QueryDefaults               `mapstructure:"queryDefaults"`
		Profiles              map[string]ExecutionProfile `mapstructure:"profiles"`
	}
)
