package nftitem

import (
	"time"

	"github.com/x-xyz/opensea-metadata/domain"
	"golang.org/x/xerrors"
)

type DisplayType int

const (
	DisplayTypeNone DisplayType = iota
	DisplayTypeNumber
	DisplayTypeBoostPercentage
	DisplayTypeBoostNumber
	DisplayTypeDate
)

// Token returns the external string of the display type. DisplayTypeNone has no token.
func (d DisplayType) Token() (string, error) {
	switch d {
	case DisplayTypeNone:
		return "", nil
	case DisplayTypeNumber:
		return "number", nil
	case DisplayTypeBoostPercentage:
		return "boost_percentage", nil
	case DisplayTypeBoostNumber:
		return "boost_number", nil
	case DisplayTypeDate:
		return "date", nil
	}
	return "", xerrors.Errorf("unknown display type %d: %w", int(d), domain.ErrInvalidFormat)
}

func (d DisplayType) String() string {
	token, err := d.Token()
	if err != nil {
		return "unknown"
	}
	if len(token) == 0 {
		return "none"
	}
	return token
}

func (d DisplayType) MarshalText() ([]byte, error) {
	token, err := d.Token()
	if err != nil {
		return nil, err
	}
	return []byte(token), nil
}

// ParseDisplayType maps an external token back to its display type. An empty token is DisplayTypeNone.
func ParseDisplayType(token string) (DisplayType, error) {
	switch token {
	case "":
		return DisplayTypeNone, nil
	case "number":
		return DisplayTypeNumber, nil
	case "boost_percentage":
		return DisplayTypeBoostPercentage, nil
	case "boost_number":
		return DisplayTypeBoostNumber, nil
	case "date":
		return DisplayTypeDate, nil
	}
	return DisplayTypeNone, xerrors.Errorf("unknown display type %q: %w", token, domain.ErrInvalidFormat)
}

// Attribute is a single trait row. Value is always written, a nil Value is written as null.
type Attribute struct {
	DisplayType DisplayType    `json:"display_type,omitempty"`
	TraitType   string         `json:"trait_type,omitempty"`
	Value       AttributeValue `json:"value"`
	MaxValue    *NumberValue   `json:"max_value,omitempty"`
}

type Attributes = []Attribute

// NewValueAttribute returns an attribute without trait type
func NewValueAttribute(value AttributeValue) Attribute {
	return Attribute{Value: value}
}

func NewStringAttribute(traitType string, value string) Attribute {
	return Attribute{TraitType: traitType, Value: StringValue(value)}
}

func NewNumberAttribute(traitType string, value float64) Attribute {
	return Attribute{TraitType: traitType, Value: NumberValue(value)}
}

// NewBoundedAttribute returns a numeric attribute with an upper bound, rendered as a progress bar
func NewBoundedAttribute(traitType string, value, maxValue float64) Attribute {
	return NewNumberAttribute(traitType, value).WithMaxValue(maxValue)
}

func NewDisplayAttribute(displayType DisplayType, traitType string, value float64) Attribute {
	return NewNumberAttribute(traitType, value).WithDisplayType(displayType)
}

// NewDateAttribute stores date as unix seconds. Sub-second precision is dropped.
func NewDateAttribute(traitType string, date time.Time) Attribute {
	return Attribute{
		DisplayType: DisplayTypeDate,
		TraitType:   traitType,
		Value:       NumberValue(date.Unix()),
	}
}

func (a Attribute) WithDisplayType(displayType DisplayType) Attribute {
	a.DisplayType = displayType
	return a
}

func (a Attribute) WithMaxValue(maxValue float64) Attribute {
	v := NumberValue(maxValue)
	a.MaxValue = &v
	return a
}
