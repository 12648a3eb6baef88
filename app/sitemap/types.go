package sitemap

// ChangeFreq is the expected change frequency of a page.
type ChangeFreq string

const (
	Always  ChangeFreq = "always"
	Hourly  ChangeFreq = "hourly"
	Daily   ChangeFreq = "daily"
	Weekly  ChangeFreq = "weekly"
	Monthly ChangeFreq = "monthly"
	Yearly  ChangeFreq = "yearly"
	Never   ChangeFreq = "never"
)

// Valid reports whether f is one of the seven defined frequencies.
func (f ChangeFreq) Valid() bool {
	switch f {
	case Always, Hourly, Daily, Weekly, Monthly, Yearly, Never:
		return true
	}
	return false
}

// Image is one image annotation attached to a record.
type Image struct {
	URL         string
	Title       string
	Caption     string
	GeoLocation string
	License     string
}

// Video is one video annotation attached to a record. Only thumbnail, title,
// description and duration are rendered; the remaining fields are carried in
// the data model for callers that post-process records.
type Video struct {
	Title        string
	Description  string
	ThumbnailURL string
	Duration     *int     // seconds, non-negative
	Rating       *float64 // 0.0 .. 5.0

	ExpirationDate       string
	ViewCount            *int
	PublicationDate      string
	FamilyFriendly       *bool
	Restriction          string
	GalleryURL           string
	Price                string
	RequiresSubscription *bool
	Platform             string
	Live                 *bool
}

// Translation points at an alternate-language version of a record.
type Translation struct {
	Language string
	URL      string
}

// Alternate points at a device or format variant (mobile, AMP, print) of a
// record. Media holds the media query attribute and may be empty.
type Alternate struct {
	URL   string
	Media string
}

// News carries Google News metadata for a record.
type News struct {
	SiteName        string
	Language        string
	PublicationDate string
	Title           string
	Keywords        string
	StockTickers    string
}

// Record is one published URL with its optional metadata. Duplicate
// locations are allowed; insertion order is preserved on output.
type Record struct {
	Loc        string
	LastMod    string
	Priority   *float64
	ChangeFreq ChangeFreq

	// Title is not part of the XML grammar; it only feeds size estimation.
	Title string

	Images       []Image
	Videos       []Video
	Translations []Translation
	Alternates   []Alternate
	News         *News
}

// Extras bundles the optional rich metadata accepted by Document.Add.
type Extras struct {
	Title        string
	Images       []Image
	Videos       []Video
	Translations []Translation
	Alternates   []Alternate
	News         *News
}

// IndexRecord is one sitemap-file reference stored by an Index.
type IndexRecord struct {
	Loc     string
	LastMod string
}

// clone returns a deep copy so callers can never alias internal state.
func (r Record) clone() Record {
	out := r

	if r.Priority != nil {
		p := *r.Priority
		out.Priority = &p
	}
	if r.Images != nil {
		out.Images = append([]Image(nil), r.Images...)
	}
	if r.Videos != nil {
		out.Videos = make([]Video, len(r.Videos))
		for i, v := range r.Videos {
			out.Videos[i] = v.clone()
		}
	}
	if r.Translations != nil {
		out.Translations = append([]Translation(nil), r.Translations...)
	}
	if r.Alternates != nil {
		out.Alternates = append([]Alternate(nil), r.Alternates...)
	}
	if r.News != nil {
		n := *r.News
		out.News = &n
	}

	return out
}

func (v Video) clone() Video {
	out := v

	out.Duration = cloneInt(v.Duration)
	out.Rating = cloneFloat(v.Rating)
	out.ViewCount = cloneInt(v.ViewCount)
	out.FamilyFriendly = cloneBool(v.FamilyFriendly)
	out.RequiresSubscription = cloneBool(v.RequiresSubscription)
	out.Live = cloneBool(v.Live)

	return out
}

func cloneInt(p *int) *int {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func cloneFloat(p *float64) *float64 {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func cloneBool(p *bool) *bool {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
