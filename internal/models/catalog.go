package models

type Game struct {
	Name     string   `json:"name"`
	Abbr     string   `json:"abbr"`
	Features []string `json:"features"`
}

type PricingTier struct {
	Name       string `json:"name"`
	Price      string `json:"price"`
	RobuxPrice string `json:"robuxPrice,omitempty"`
	URL        string `json:"url"`
	RobuxURL   string `json:"robuxUrl,omitempty"`
	SpecialTag string `json:"specialTag,omitempty"`
	IsFeatured bool   `json:"isFeatured,omitempty"`
}

type FAQ struct {
	Question string `json:"q"`
	Answer   string `json:"a"`
}

type Testimonial struct {
	Name  string `json:"name"`
	Stars int    `json:"stars"`
	Text  string `json:"text"`
	Date  string `json:"date"`
}

// Catalog is everything the site and the assistant know about the product.
type Catalog struct {
	Product       string        `json:"product"`
	Games         []Game        `json:"games"`
	Pricing       []PricingTier `json:"pricing"`
	FAQs          []FAQ         `json:"faqs"`
	Testimonials  []Testimonial `json:"testimonials"`
	DiscordInvite string        `json:"discordInvite"`
}
