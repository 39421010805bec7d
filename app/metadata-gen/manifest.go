package main

import (
	"github.com/spf13/cast"
	"github.com/spf13/viper"
	"github.com/x-xyz/opensea-metadata/domain"
	"github.com/x-xyz/opensea-metadata/domain/nftitem"
	"golang.org/x/xerrors"
)

// itemSpec is a manifest entry. Empty fields fall back to the manifest defaults.
type itemSpec struct {
	File            string          `mapstructure:"file"`
	Name            string          `mapstructure:"name"`
	Description     string          `mapstructure:"description"`
	Image           string          `mapstructure:"image"`
	ImageData       string          `mapstructure:"image_data"`
	ImageDataSrc    string          `mapstructure:"image_data_src"`
	ExternalUrl     string          `mapstructure:"external_url"`
	BackgroundColor string          `mapstructure:"background_color"`
	AnimationUrl    string          `mapstructure:"animation_url"`
	YoutubeUrl      string          `mapstructure:"youtube_url"`
	Attributes      []attributeSpec `mapstructure:"attributes"`
}

type attributeSpec struct {
	TraitType   string      `mapstructure:"trait_type"`
	DisplayType string      `mapstructure:"display_type"`
	Value       interface{} `mapstructure:"value"`
	MaxValue    *float64    `mapstructure:"max_value"`
	// Date turns the attribute into a date attribute, Value is ignored
	Date interface{} `mapstructure:"date"`
}

type manifest struct {
	Defaults itemSpec
	Items    []itemSpec
}

func loadManifest(v *viper.Viper) (*manifest, error) {
	m := &manifest{}
	if err := v.UnmarshalKey("defaults", &m.Defaults); err != nil {
		return nil, xerrors.Errorf("defaults: %v: %w", err, domain.ErrInvalidFormat)
	}
	if err := v.UnmarshalKey("items", &m.Items); err != nil {
		return nil, xerrors.Errorf("items: %v: %w", err, domain.ErrInvalidFormat)
	}
	return m, nil
}

// withDefaults fills the empty fields of s from d. Default attributes come first.
func (s itemSpec) withDefaults(d itemSpec) itemSpec {
	pick := func(v, def string) string {
		if len(v) > 0 {
			return v
		}
		return def
	}
	s.Name = pick(s.Name, d.Name)
	s.Description = pick(s.Description, d.Description)
	s.Image = pick(s.Image, d.Image)
	s.ImageData = pick(s.ImageData, d.ImageData)
	s.ImageDataSrc = pick(s.ImageDataSrc, d.ImageDataSrc)
	s.ExternalUrl = pick(s.ExternalUrl, d.ExternalUrl)
	s.BackgroundColor = pick(s.BackgroundColor, d.BackgroundColor)
	s.AnimationUrl = pick(s.AnimationUrl, d.AnimationUrl)
	s.YoutubeUrl = pick(s.YoutubeUrl, d.YoutubeUrl)
	if len(d.Attributes) > 0 {
		attrs := make([]attributeSpec, 0, len(d.Attributes)+len(s.Attributes))
		attrs = append(attrs, d.Attributes...)
		s.Attributes = append(attrs, s.Attributes...)
	}
	return s
}

// toMetadata converts everything but ImageDataSrc, which needs a reader
func (s itemSpec) toMetadata() (*nftitem.Metadata, error) {
	m := &nftitem.Metadata{
		Name:            s.Name,
		Description:     s.Description,
		Image:           s.Image,
		ImageData:       s.ImageData,
		ExternalUrl:     s.ExternalUrl,
		BackgroundColor: s.BackgroundColor,
		AnimationUrl:    s.AnimationUrl,
		YoutubeUrl:      s.YoutubeUrl,
	}
	for i, a := range s.Attributes {
		attr, err := a.toAttribute()
		if err != nil {
			return nil, xerrors.Errorf("attribute %d (%s): %w", i, a.TraitType, err)
		}
		m.Attributes = append(m.Attributes, attr)
	}
	return m, nil
}

func (a attributeSpec) toAttribute() (nftitem.Attribute, error) {
	displayType, err := nftitem.ParseDisplayType(a.DisplayType)
	if err != nil {
		return nftitem.Attribute{}, err
	}

	if a.Date != nil {
		if displayType != nftitem.DisplayTypeNone && displayType != nftitem.DisplayTypeDate {
			return nftitem.Attribute{}, xerrors.Errorf("date with display type %s: %w", displayType, domain.ErrInvalidFormat)
		}
		date, err := cast.ToTimeE(a.Date)
		if err != nil {
			return nftitem.Attribute{}, xerrors.Errorf("%v: %w", err, domain.ErrInvalidFormat)
		}
		return nftitem.NewDateAttribute(a.TraitType, date), nil
	}

	attr := nftitem.Attribute{
		DisplayType: displayType,
		TraitType:   a.TraitType,
	}
	switch v := a.Value.(type) {
	case nil:
	case string:
		attr.Value = nftitem.StringValue(v)
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64:
		f, err := cast.ToFloat64E(v)
		if err != nil {
			return nftitem.Attribute{}, xerrors.Errorf("%v: %w", err, domain.ErrInvalidFormat)
		}
		attr.Value = nftitem.NumberValue(f)
	default:
		return nftitem.Attribute{}, xerrors.Errorf("unsupported value type %T: %w", v, domain.ErrInvalidFormat)
	}
	if a.MaxValue != nil {
		attr = attr.WithMaxValue(*a.MaxValue)
	}
	return attr, nil
}
