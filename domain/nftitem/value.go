package nftitem

import (
	"math"

	"github.com/shopspring/decimal"
	"github.com/x-xyz/opensea-metadata/domain"
	"golang.org/x/xerrors"
)

// AttributeValue is either a StringValue or a NumberValue
type AttributeValue interface {
	isAttributeValue()
}

type StringValue string

func (StringValue) isAttributeValue() {}

// NumberValue is written without a fractional part when it is a whole number,
// otherwise with the shortest decimal that round-trips. Exponent notation is never used.
type NumberValue float64

func (NumberValue) isAttributeValue() {}

// Format returns the json representation of n
func (n NumberValue) Format() (string, error) {
	f := float64(n)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return "", xerrors.Errorf("number %v has no json representation: %w", f, domain.ErrInvalidFormat)
	}
	return decimal.NewFromFloat(f).String(), nil
}

func (n NumberValue) MarshalJSON() ([]byte, error) {
	s, err := n.Format()
	if err != nil {
		return nil, err
	}
	return []byte(s), nil
}
