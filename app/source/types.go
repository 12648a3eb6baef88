package source

// Page-set file types, mapped from YAML.

type File struct {
	BaseURL  string       `yaml:"base_url"`
	Options  FileOptions  `yaml:"options"`
	Pages    []Page       `yaml:"pages"`
	Sitemaps []SitemapRef `yaml:"sitemaps"`
}

// FileOptions mirrors the document configuration surface. Escaping and
// validation default to on when omitted, hence the pointer types.
type FileOptions struct {
	Escaping    *bool             `yaml:"escaping"`
	Validate    *bool             `yaml:"validate"`
	MaxItems    int               `yaml:"max_items"`
	MaxSitemaps int               `yaml:"max_sitemaps"`
	Pretty      bool              `yaml:"pretty"`
	Stylesheet  string            `yaml:"stylesheet"`
	Namespaces  map[string]string `yaml:"namespaces"`
}

type Page struct {
	URL          string        `yaml:"url"`
	LastMod      string        `yaml:"lastmod"`
	Priority     *float64      `yaml:"priority"`
	ChangeFreq   string        `yaml:"changefreq"`
	Title        string        `yaml:"title"`
	Images       []Image       `yaml:"images"`
	Videos       []Video       `yaml:"videos"`
	Translations []Translation `yaml:"translations"`
	Alternates   []Alternate   `yaml:"alternates"`
	News         *News         `yaml:"news"`
}

type Image struct {
	URL     string `yaml:"url"`
	Title   string `yaml:"title"`
	Caption string `yaml:"caption"`
}

type Video struct {
	Title        string   `yaml:"title"`
	Description  string   `yaml:"description"`
	ThumbnailURL string   `yaml:"thumbnail"`
	Duration     *int     `yaml:"duration"`
	Rating       *float64 `yaml:"rating"`
}

type Translation struct {
	Language string `yaml:"language"`
	URL      string `yaml:"url"`
}

type Alternate struct {
	URL   string `yaml:"url"`
	Media string `yaml:"media"`
}

type News struct {
	SiteName        string `yaml:"site_name"`
	Language        string `yaml:"language"`
	PublicationDate string `yaml:"publication_date"`
	Title           string `yaml:"title"`
}

type SitemapRef struct {
	URL     string `yaml:"url"`
	LastMod string `yaml:"lastmod"`
}
