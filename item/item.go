package item

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	// ErrNonPositivePrice is returned by New when price ≤ 0.
	ErrNonPositivePrice = errors.New("item: price must be positive")

	// ErrNonPositiveProfit is returned by New when profit ≤ 0.
	ErrNonPositiveProfit = errors.New("item: profit must be positive")
)

// Item is one purchasable unit. The zero value is not a valid item; use New.
type Item struct {
	name    string
	price   decimal.Decimal
	profit  decimal.Decimal
	benefit decimal.Decimal
}

// New builds an Item and computes its benefit.
//
// Contracts:
//   - price > 0, otherwise ErrNonPositivePrice.
//   - profit > 0 (percent), otherwise ErrNonPositiveProfit.
//
// The division by 100 is a decimal shift, so the benefit is exact.
func New(name string, price, profit decimal.Decimal) (Item, error) {
	if !price.IsPositive() {
		return Item{}, fmt.Errorf("%w: %q has price %s", ErrNonPositivePrice, name, price)
	}
	if !profit.IsPositive() {
		return Item{}, fmt.Errorf("%w: %q has profit %s", ErrNonPositiveProfit, name, profit)
	}

	return Item{
		name:    name,
		price:   price,
		profit:  profit,
		benefit: price.Mul(profit).Shift(-2),
	}, nil
}

// MustNew is like New but panics on invalid input. Intended for fixtures.
func MustNew(name string, price, profit decimal.Decimal) Item {
	it, err := New(name, price, profit)
	if err != nil {
		panic(err)
	}

	return it
}

// FromStrings parses price and profit as decimals and calls New.
func FromStrings(name, price, profit string) (Item, error) {
	p, err := decimal.NewFromString(price)
	if err != nil {
		return Item{}, fmt.Errorf("item: %q price %q: %w", name, price, err)
	}
	pr, err := decimal.NewFromString(profit)
	if err != nil {
		return Item{}, fmt.Errorf("item: %q profit %q: %w", name, profit, err)
	}

	return New(name, p, pr)
}

// Name returns the display name.
func (it Item) Name() string { return it.name }

// Price returns the purchase price.
func (it Item) Price() decimal.Decimal { return it.price }

// Profit returns the profit percentage (e.g. 20 for 20%).
func (it Item) Profit() decimal.Decimal { return it.profit }

// Benefit returns price × profit / 100.
func (it Item) Benefit() decimal.Decimal { return it.benefit }

// String implements fmt.Stringer.
func (it Item) String() string {
	return fmt.Sprintf("%s(price=%s, profit=%s%%, benefit=%s)", it.name, it.price, it.profit, it.benefit)
}
