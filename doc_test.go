package moneyfmt_test

import (
	"fmt"

	"github.com/finform/moneyfmt"
)

// In this example, a formatter bound to the default configuration renders
// prices for a storefront.
func Example() {
	f, err := moneyfmt.New(moneyfmt.Config{
		Currencies: []string{"usd", "eur"},
	})
	if err != nil {
		panic(err)
	}

	fmt.Println(f.Format(1500))
	fmt.Println(f.Format(1550, moneyfmt.WithCurrency("eur"), moneyfmt.WithSymbolPosition(moneyfmt.SymbolAfter), moneyfmt.WithSymbolDelimiter(" ")))
	fmt.Println(f.AmountString(123456700))

	// Output:
	// $15
	// 15,50 €
	// 1 234 567
}

func ExampleFormatter_AmountString() {
	f := moneyfmt.MustNew(moneyfmt.Config{Currencies: []string{"usd"}})

	fmt.Println(f.AmountString(500))
	fmt.Println(f.AmountString(500, moneyfmt.WithDecimalPolicy(moneyfmt.ShowAlways)))
	fmt.Println(f.AmountString(550))

	// Output:
	// 5
	// 5,00
	// 5,50
}

func ExampleFormatter_ParseCents() {
	f := moneyfmt.MustNew(moneyfmt.Config{Currencies: []string{"usd"}})

	c, err := f.ParseCents("1 234,56")
	if err != nil {
		panic(err)
	}
	fmt.Println(c)

	// Output:
	// 123456
}

func ExampleAmountRule_Cents() {
	f := moneyfmt.MustNew(moneyfmt.Config{Currencies: []string{"usd"}})
	rule := f.AmountRuleLimited(0, 1000)

	c, err := rule.Cents("5,00")
	fmt.Println(c, err)

	_, err = rule.Cents("15,00")
	fmt.Println(err)

	// Output:
	// 500 <nil>
	// validating amount "15,00": must be between 0,00 and 10,00: amount out of range
}
