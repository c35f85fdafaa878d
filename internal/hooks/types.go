package hooks

// HookConfig defines a single hook's configuration.
type HookConfig struct {
	Command string `mapstructure:"command" yaml:"command"`
	Timeout int    `mapstructure:"timeout" yaml:"timeout"` // seconds, default 30
}

// DefaultTimeout is the default timeout for hook execution in seconds.
const DefaultTimeout = 30

// Variables holds template variables that can be expanded in hook commands.
type Variables struct {
	Session string
	Fields  string
}
