package menu

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"little-lemon/internal/domain"
	"little-lemon/internal/pkg/patch"
)

var ErrEmptyPatch = errors.New("no menu item field to update")

const (
	MaxTitleLength = 255
	MaxInventory   = 65535
)

// Field hints returned when an update carries nothing to change.
var UpdatableFields = map[string]string{
	"title":     "A string no longer than 255 characters",
	"price":     "A decimal number",
	"inventory": "A number between 0 and 65535",
}

type MenuItem struct {
	id        int64
	title     string
	price     Money
	inventory int
}

// NewMenuItem validates every field and reports all failures together.
func NewMenuItem(title, price string, inventory int) (*MenuItem, error) {
	v := domain.NewValidationError()
	validateTitle(v, title)
	m := validatePrice(v, price)
	validateInventory(v, inventory)
	if err := v.Err(); err != nil {
		return nil, err
	}
	return &MenuItem{title: title, price: m, inventory: inventory}, nil
}

func Reconstruct(id int64, title string, price Money, inventory int) *MenuItem {
	return &MenuItem{id: id, title: title, price: price, inventory: inventory}
}

func (m *MenuItem) ID() int64      { return m.id }
func (m *MenuItem) Title() string  { return m.title }
func (m *MenuItem) Price() Money   { return m.price }
func (m *MenuItem) Inventory() int { return m.inventory }

// Patch lists the fields to overwrite; nil means unchanged.
type Patch struct {
	Title     *string
	Price     *string
	Inventory *int
}

func (p Patch) IsEmpty() bool {
	return p.Title == nil && p.Price == nil && p.Inventory == nil
}

// Apply overwrites the provided fields after validating all of them.
func (m *MenuItem) Apply(p Patch) error {
	if p.IsEmpty() {
		return ErrEmptyPatch
	}

	v := domain.NewValidationError()
	if p.Title != nil {
		validateTitle(v, *p.Title)
	}
	var price Money
	if p.Price != nil {
		price = validatePrice(v, *p.Price)
	}
	if p.Inventory != nil {
		validateInventory(v, *p.Inventory)
	}
	if err := v.Err(); err != nil {
		return err
	}

	m.title = patch.Coalesce(p.Title, m.title)
	m.inventory = patch.Coalesce(p.Inventory, m.inventory)
	if p.Price != nil {
		m.price = price
	}
	return nil
}

func validateTitle(v *domain.ValidationError, title string) {
	switch {
	case strings.TrimSpace(title) == "":
		v.Add("title", "This field may not be blank.")
	case utf8.RuneCountInString(title) > MaxTitleLength:
		v.Add("title", fmt.Sprintf("Ensure this field has no more than %d characters.", MaxTitleLength))
	}
}

func validatePrice(v *domain.ValidationError, price string) Money {
	m, err := ParseMoney(price)
	switch {
	case err == nil:
	case errors.Is(err, ErrPriceNegative):
		v.Add("price", "Ensure this value is greater than or equal to 0.")
	case errors.Is(err, ErrPriceDigits):
		v.Add("price", fmt.Sprintf("Ensure that there are no more than %d digits in total.", priceMaxDigits))
	case errors.Is(err, ErrPricePrecision):
		v.Add("price", fmt.Sprintf("Ensure that there are no more than %d decimal places.", priceDecimals))
	case errors.Is(err, ErrPriceWholeDigits):
		v.Add("price", fmt.Sprintf("Ensure that there are no more than %d digits before the decimal point.", priceMaxIntegers))
	default:
		v.Add("price", "A valid number is required.")
	}
	return m
}

func validateInventory(v *domain.ValidationError, inventory int) {
	switch {
	case inventory < 0:
		v.Add("inventory", "Ensure this value is greater than or equal to 0.")
	case inventory > MaxInventory:
		v.Add("inventory", fmt.Sprintf("Ensure this value is less than or equal to %d.", MaxInventory))
	}
}
