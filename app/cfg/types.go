package cfg

type Cfg struct {
	// Page-set input
	PagesFile string

	// HTTP server configuration
	Port    string
	BaseUrl string

	// One-shot rendering
	Print  bool
	Format string

	// Application metadata
	Timezone string
	Debug    bool
	Version  string
}
