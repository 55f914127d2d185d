package config

type Config struct {
	BaseURL             string            `yaml:"base_url"`
	DefaultToken        *string           `yaml:"default_token"`
	DefaultNetwork      *string           `yaml:"default_network"`
	IncludeNetworkParam bool              `yaml:"include_network_param"`
	Activation          *ActivationConfig `yaml:"activation"`
	Recipients          []RecipientConfig `yaml:"recipients"`
}

type ActivationConfig struct {
	URL            string `yaml:"url"`
	TimeoutSeconds *int   `yaml:"timeout_seconds"`
}

type RecipientConfig struct {
	Name    string `yaml:"name"`
	Address string `yaml:"address"`
}

func (c *Config) GetDefaultToken() string {
	if c.DefaultToken == nil {
		return "usdcCreate"
	}

	return *c.DefaultToken
}

func (c *Config) GetDefaultNetwork() string {
	if c.DefaultNetwork == nil {
		return "mainnet-beta"
	}

	return *c.DefaultNetwork
}

// ResolveRecipient looks up the address of a named recipient in the
// configured address book, returning false if no entry matches the name.
func (c *Config) ResolveRecipient(name string) (string, bool) {
	for _, recipient := range c.Recipients {
		if recipient.Name == name {
			return recipient.Address, true
		}
	}

	return "", false
}

func (a *ActivationConfig) GetTimeoutSeconds() int {
	if a.TimeoutSeconds == nil {
		return 10
	}

	return *a.TimeoutSeconds
}
