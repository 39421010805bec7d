package nftitem

// Metadata is the marketplace descriptor of a single item.
// Field order matches https://docs.opensea.io/docs/metadata-standards and is the output order.
// Empty strings and empty attributes are treated as unset and omitted.
type Metadata struct {
	Name string `json:"name,omitempty"`
	// Description may contain markdown
	Description string `json:"description,omitempty"`
	Image       string `json:"image,omitempty"`
	// ImageData is an inline image payload, usually raw svg. It replaces Image on output.
	ImageData       string     `json:"image_data,omitempty"`
	ExternalUrl     string     `json:"external_url,omitempty"`
	BackgroundColor string     `json:"background_color,omitempty" validate:"omitempty,bgcolor"`
	AnimationUrl    string     `json:"animation_url,omitempty"`
	YoutubeUrl      string     `json:"youtube_url,omitempty"`
	Attributes      Attributes `json:"attributes,omitempty"`
}

// Normalize returns a copy that is ready to be rendered. Image is dropped when ImageData is set.
func (m Metadata) Normalize() Metadata {
	if len(m.ImageData) > 0 {
		m.Image = ""
	}
	if len(m.Attributes) > 0 {
		attrs := make(Attributes, len(m.Attributes))
		copy(attrs, m.Attributes)
		m.Attributes = attrs
	}
	return m
}
