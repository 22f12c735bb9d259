package models

// EnvVar is one extra environment variable declared by a provider
type EnvVar struct {
	Key   string
	Value string // string form; JSON numbers keep their literal text
}

// ProviderConfig represents a single named provider
type ProviderConfig struct {
	Name        string
	Description string
	BaseURL     string
	APIKey      string
	Models      []string // first entry is the default
	Env         []EnvVar // document order
}

// DefaultModel returns the first declared model, or "" when none are declared
func (p *ProviderConfig) DefaultModel() string {
	if len(p.Models) == 0 {
		return ""
	}
	return p.Models[0]
}

// HasModel reports whether model is one of the declared models
func (p *ProviderConfig) HasModel(model string) bool {
	for _, m := range p.Models {
		if m == model {
			return true
		}
	}
	return false
}

// Config represents the parsed config file.
// Providers keep the order in which they appear in the file.
type Config struct {
	Providers []ProviderConfig
}

// Get returns the provider with the given name
func (c *Config) Get(name string) (*ProviderConfig, bool) {
	for i := range c.Providers {
		if c.Providers[i].Name == name {
			return &c.Providers[i], true
		}
	}
	return nil, false
}

// Names returns the provider names in file order
func (c *Config) Names() []string {
	names := make([]string, 0, len(c.Providers))
	for _, p := range c.Providers {
		names = append(names, p.Name)
	}
	return names
}
