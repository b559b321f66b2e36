package sanity

// Image is a Sanity image field with its asset reference.
type Image struct {
	Type  string `json:"_type,omitempty"`
	Asset struct {
		Ref  string `json:"_ref,omitempty"`
		Type string `json:"_type,omitempty"`
		ID   string `json:"_id,omitempty"`
		URL  string `json:"url,omitempty"`
	} `json:"asset"`
	Alt string `json:"alt,omitempty"`
}

// Lead is the persisted inquiry record. The whatsapp and city
// attributes double as generic contact-channel and context fields for
// contact-form submissions; the store schema only has the
// availability-shaped fields, so both sources map into them.
type Lead struct {
	Type        string `json:"_type"`
	Name        string `json:"name"`
	Whatsapp    string `json:"whatsapp"`
	WeddingDate string `json:"weddingDate,omitempty"`
	City        string `json:"city"`
	Source      string `json:"source"`
}

// Lead source tags, one per intake origin.
const (
	LeadSourceAvailability = "Website form"
	LeadSourceContact      = "Contact form"
)

// NewLead creates a lead document with the document type set.
func NewLead(name, whatsapp, weddingDate, city, source string) *Lead {
	return &Lead{
		Type:        "lead",
		Name:        name,
		Whatsapp:    whatsapp,
		WeddingDate: weddingDate,
		City:        city,
		Source:      source,
	}
}

// WeddingStory is a published wedding story document.
type WeddingStory struct {
	ID          string  `json:"_id"`
	Title       string  `json:"title"`
	Slug        string  `json:"slug"`
	Location    string  `json:"location,omitempty"`
	WeddingDate string  `json:"weddingDate,omitempty"`
	HeroImage   *Image  `json:"heroImage,omitempty"`
	ShortIntro  string  `json:"shortIntro,omitempty"`
	Featured    bool    `json:"featured,omitempty"`
	Gallery     []Image `json:"gallery,omitempty"`
}

// FileAsset is a Sanity file field with a resolved asset.
type FileAsset struct {
	Type  string `json:"_type,omitempty"`
	Asset struct {
		ID               string `json:"_id,omitempty"`
		URL              string `json:"url,omitempty"`
		OriginalFilename string `json:"originalFilename,omitempty"`
		MimeType         string `json:"mimeType,omitempty"`
		Size             int64  `json:"size,omitempty"`
	} `json:"asset"`
}

// Film is a wedding film document.
type Film struct {
	ID          string     `json:"_id"`
	Title       string     `json:"title"`
	CoupleNames string     `json:"coupleNames,omitempty"`
	Slug        string     `json:"slug"`
	VideoFile   *FileAsset `json:"videoFile,omitempty"`
	VimeoID     string     `json:"vimeoId,omitempty"`
	Thumbnail   *Image     `json:"thumbnail,omitempty"`
	Featured    bool       `json:"featured,omitempty"`
}

// Testimonial is a couple's quote.
type Testimonial struct {
	ID                string `json:"_id"`
	CoupleNames       string `json:"coupleNames"`
	LocationOrContext string `json:"locationOrContext,omitempty"`
	Quote             string `json:"quote"`
}

// GalleryImage is a single curated gallery image.
type GalleryImage struct {
	ID       string `json:"_id"`
	Title    string `json:"title,omitempty"`
	Image    Image  `json:"image"`
	Featured bool   `json:"featured,omitempty"`
}

// Album is a printed album showcase.
type Album struct {
	ID           string  `json:"_id"`
	Name         string  `json:"name"`
	Description  string  `json:"description,omitempty"`
	CoverImage   *Image  `json:"coverImage,omitempty"`
	DetailImages []Image `json:"detailImages,omitempty"`
}

// PreWeddingShoot is a pre-wedding session document.
type PreWeddingShoot struct {
	ID        string `json:"_id"`
	Title     string `json:"title"`
	Slug      string `json:"slug"`
	Location  string `json:"location,omitempty"`
	HeroImage *Image `json:"heroImage,omitempty"`
	Story     string `json:"story,omitempty"`
}

// HeroImage is the homepage hero configuration.
type HeroImage struct {
	ID            string `json:"_id"`
	Active        bool   `json:"active,omitempty"`
	LeftImage     Image  `json:"leftImage"`
	RightImage    Image  `json:"rightImage"`
	MainTagline   string `json:"mainTagline"`
	SecondaryText string `json:"secondaryText,omitempty"`
}

// About is the studio's about page content.
type About struct {
	ID        string                   `json:"_id"`
	Title     string                   `json:"title"`
	Intro     string                   `json:"intro"`
	MainImage *Image                   `json:"mainImage,omitempty"`
	Story     []map[string]interface{} `json:"story,omitempty"` // portable text blocks
	Values    []AboutValue             `json:"values,omitempty"`
	Awards    []AboutAward             `json:"awards,omitempty"`
	Contact   *AboutContact            `json:"contactInfo,omitempty"`
}

type AboutValue struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

type AboutAward struct {
	Title        string `json:"title,omitempty"`
	Year         string `json:"year,omitempty"`
	Organization string `json:"organization,omitempty"`
}

type AboutContact struct {
	Email       string `json:"email,omitempty"`
	Phone       string `json:"phone,omitempty"`
	Location    string `json:"location,omitempty"`
	SocialLinks struct {
		Instagram string `json:"instagram,omitempty"`
		Vimeo     string `json:"vimeo,omitempty"`
		Website   string `json:"website,omitempty"`
	} `json:"socialLinks,omitempty"`
}
