package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/db47h/bigint"
	"github.com/db47h/bigint/context"
)

func demoCmd(env *environment) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Print sample computations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := demo()
			if err != nil {
				return err
			}
			env.log.Debug("demo complete", zap.Int("entries", len(entries)))
			return env.render(entries...)
		},
	}
}

type demoBuilder struct {
	entries []entry
}

func (d *demoBuilder) add(expr string, v interface{}) {
	d.entries = append(d.entries, entry{Expr: expr, Value: fmt.Sprint(v)})
}

// fail records the construction error reported for an invalid input.
func (d *demoBuilder) fail(expr string, err error) {
	d.add(expr, err)
}

// demo runs the sample computations. Valid inputs are built through a
// context so that a single error check covers all of them.
func demo() ([]entry, error) {
	var (
		d   demoBuilder
		ctx context.Context
	)

	// construction
	d.add("Int{}", bigint.Int{})
	d.add(`Parse("-9223372036854775807000")`, ctx.NewString("-9223372036854775807000"))
	d.add("NewFromInt64(123400)", ctx.NewInt64(123400))
	d.add("NewFromSlots([-1 0 0 0 4])", ctx.NewSlots([]int{-1, 0, 0, 0, 4}))

	// construction failures
	_, err := bigint.Parse("1234d3")
	d.fail(`Parse("1234d3")`, err)
	_, err = bigint.Parse("013423")
	d.fail(`Parse("013423")`, err)
	_, err = bigint.NewFromSlots([]int{2, -3, 4})
	d.fail("NewFromSlots([2 -3 4])", err)
	_, err = bigint.NewFromSlots([]int{2, 33, 4})
	d.fail("NewFromSlots([2 33 4])", err)
	_, err = bigint.NewFromSlots([]int{0, 2, 3, 4})
	d.fail("NewFromSlots([0 2 3 4])", err)

	// accessors
	m1 := ctx.NewString("12345")
	d.add("Slots(12345)", m1.Slots())
	d.add("IsNegative(-12)", ctx.NewString("-12").IsNegative())
	d.add("IsNegative(0)", ctx.NewString("0").IsNegative())

	// additions
	binary := func(x, op, y string) {
		a, b := ctx.NewString(x), ctx.NewString(y)
		var r bigint.Int
		switch op {
		case "+":
			r = a.Add(b)
		case "-":
			r = a.Sub(b)
		case "*":
			r = a.Mul(b)
		}
		d.add(x+" "+op+" "+y, r)
	}
	binary("1", "+", "9999")
	binary("15", "+", "-3015")
	binary("-1111", "+", "-9999")

	// subtractions
	binary("352331", "-", "4520")
	binary("200000000000000000000000000000000", "-", "-1111")
	binary("-1111", "-", "200000000000000000000000000000000")
	binary("-10000", "-", "-9997")
	binary("-9997", "-", "-10000")

	// multiplications
	binary("123", "*", "99")
	binary("-99", "*", "99")
	binary("-54321", "*", "-1")

	// negation
	n1 := ctx.NewString("100")
	d.add("-(100)", n1.Neg())
	d.add("IsNegative(-(100))", n1.Neg().IsNegative())
	n2, n3, n4 := ctx.NewString("-2"), ctx.NewString("125"), ctx.NewString("-5")
	d.add("(-(-2) - 125) * -(-5)", n2.Neg().Sub(n3).Mul(n4.Neg()))

	// increment & decrement
	i1 := ctx.NewString("-1")
	d.add("++i1 (i1 = -1)", i1.Inc())
	i2 := ctx.NewString("100000000")
	d.add("i2++ (i2 = 100000000)", i2.PostInc())
	d.add("i2", i2)
	d1 := ctx.NewString("0")
	d.add("--d1 (d1 = 0)", d1.Dec())
	d2 := ctx.NewString("10000000")
	d.add("d2-- (d2 = 10000000)", d2.PostDec())
	d.add("d2", d2)

	// comparisons
	c1, c2, c3 := ctx.NewString("100000199999000"), ctx.NewString("100000199999000"), ctx.NewString("100000019999900")
	d.add("100000199999000 == 100000199999000", c1.Equal(c2))
	d.add("100000199999000 == 100000019999900", c1.Equal(c3))
	d.add("100000199999000 != 100000019999900", !c1.Equal(c3))
	d.add("100000019999900 != 100000019999900", !c3.Equal(c3))
	c7, c8, c9 := ctx.NewString("0"), ctx.NewString("1"), ctx.NewString("1")
	d.add("0 < 1", c7.Less(c8))
	d.add("1 < 0", c8.Less(c7))
	d.add("1 <= 1", c8.LessEq(c9))
	d.add("1 <= 0", c9.LessEq(c7))
	c4, c5, c6 := ctx.NewString("-999"), ctx.NewString("-1000"), ctx.NewString("-999")
	d.add("-999 > -1000", c4.Greater(c5))
	d.add("-1000 > -999", c5.Greater(c4))
	d.add("-999 >= -999", c4.GreaterEq(c6))
	d.add("-1000 >= -999", c5.GreaterEq(c6))

	// copies are independent values
	a1 := ctx.NewString("1234")
	a2 := a1
	a1.Inc()
	d.add("a2 after a2 = a1; ++a1 (a1 = 1234)", a2)

	d.add("1111000000000000000000000000000", ctx.NewString("1111000000000000000000000000000"))

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return d.entries, nil
}
