package model

// Flags represents the command line flags.
type Flags struct {
	DiscoveryFile    string
	Format           string
	OutputDir        string
	ConfigPath       string
	RuleDisplayLimit int
	Version          bool
	NoBanner         bool
}
