package launcher

// Defaults bundles the baseline configuration values the launcher uses
// before the config file and flags override them.

type Defaults struct {
	Node    NodeDefaults
	Network NetworkDefaults
	HTTP    HTTPDefaults
	Logging LoggingDefaults
}

// NodeDefaults captures top-level node settings (datadir, identity).

type NodeDefaults struct {
	DataDir    string //	Filesystem root of the node. A tsec.toml found here is loaded when --config is not given.
	Name       string //	Human-readable identity attached to every log line.
	ConfigFile string //	File name looked up inside DataDir.
}

// NetworkDefaults selects the network identity.
type NetworkDefaults struct {
	ID   string //	Registry key of the profile to load (main or regtest).
	Port int    //	Expected P2P port. Zero means "whatever the profile says".
}

// HTTPDefaults configures the read-only inspector.
type HTTPDefaults struct {
	Enabled bool
	Addr    string
	Port    int
}

// LoggingDefaults controls log verbosity/format.
type LoggingDefaults struct {
	Verbosity int    //	Log level numeric (0=fatal, 1=error, 2=warn, 3=info, 4=debug, 5=trace).
	Format    string //	Log output format (text vs json).
	Color     bool   //	Whether to use ANSI color codes in logs.
}

// DefaultConfig returns a fully populated Defaults instance.

func DefaultConfig() Defaults {
	return Defaults{
		Node: NodeDefaults{
			DataDir:    "~/.tsec",
			Name:       "tsec",
			ConfigFile: "tsec.toml",
		},
		Network: NetworkDefaults{
			ID: "main",
		},
		HTTP: HTTPDefaults{
			Enabled: false,
			Addr:    "127.0.0.1",
			Port:    9480,
		},
		Logging: LoggingDefaults{
			Verbosity: 3,
			Format:    "text",
			Color:     false,
		},
	}
}
