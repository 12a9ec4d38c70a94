package cli

import (
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/db47h/bigint"
	"github.com/db47h/bigint/math"
)

var binaryOps = map[string]func(x, y bigint.Int) string{
	"+":  func(x, y bigint.Int) string { return x.Add(y).String() },
	"-":  func(x, y bigint.Int) string { return x.Sub(y).String() },
	"*":  func(x, y bigint.Int) string { return x.Mul(y).String() },
	"x":  func(x, y bigint.Int) string { return x.Mul(y).String() },
	"<":  func(x, y bigint.Int) string { return strconv.FormatBool(x.Less(y)) },
	"<=": func(x, y bigint.Int) string { return strconv.FormatBool(x.LessEq(y)) },
	">":  func(x, y bigint.Int) string { return strconv.FormatBool(x.Greater(y)) },
	">=": func(x, y bigint.Int) string { return strconv.FormatBool(x.GreaterEq(y)) },
	"==": func(x, y bigint.Int) string { return strconv.FormatBool(x.Equal(y)) },
	"!=": func(x, y bigint.Int) string { return strconv.FormatBool(!x.Equal(y)) },
}

func opNames() string {
	names := make([]string, 0, len(binaryOps))
	for k := range binaryOps {
		names = append(names, k)
	}
	sort.Strings(names)
	return strings.Join(names, " ")
}

// parse parses an operand, logging invalid ones.
func (env *environment) parse(s string) (bigint.Int, error) {
	x, err := bigint.Parse(s)
	if err != nil {
		kind, _ := bigint.KindOf(err)
		env.log.Warn("invalid operand", zap.String("operand", s), zap.Stringer("kind", kind))
		return x, errors.Wrapf(err, "operand %q", s)
	}
	return x, nil
}

func evalCmd(env *environment) *cobra.Command {
	return &cobra.Command{
		Use:   "eval [--] X OP Y",
		Short: "Evaluate a binary operation",
		Long: "Evaluate X OP Y where OP is one of: " + opNames() + "\n" +
			"Use -- before the operands if X is negative.",
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			op, ok := binaryOps[args[1]]
			if !ok {
				return errors.Errorf("unknown operator %q", args[1])
			}
			x, err := env.parse(args[0])
			if err != nil {
				return err
			}
			y, err := env.parse(args[2])
			if err != nil {
				return err
			}
			expr := strings.Join(args, " ")
			r := op(x, y)
			env.log.Debug("evaluated", zap.String("expr", expr), zap.String("result", r))
			return env.render(entry{Expr: expr, Value: r})
		},
	}
}

func incCmd(env *environment) *cobra.Command {
	return &cobra.Command{
		Use:   "inc [--] X",
		Short: "Print X + 1",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := env.parse(args[0])
			if err != nil {
				return err
			}
			return env.render(entry{Expr: "++" + args[0], Value: x.Inc().String()})
		},
	}
}

func decCmd(env *environment) *cobra.Command {
	return &cobra.Command{
		Use:   "dec [--] X",
		Short: "Print X - 1",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := env.parse(args[0])
			if err != nil {
				return err
			}
			return env.render(entry{Expr: "--" + args[0], Value: x.Dec().String()})
		},
	}
}

func powCmd(env *environment) *cobra.Command {
	return &cobra.Command{
		Use:   "pow [--] X N",
		Short: "Print X raised to the power N",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := env.parse(args[0])
			if err != nil {
				return err
			}
			n, err := strconv.ParseUint(args[1], 10, 64)
			if err != nil {
				return errors.Wrap(err, "exponent")
			}
			return env.render(entry{Expr: args[0] + "^" + args[1], Value: math.Pow(x, n).String()})
		},
	}
}

func factCmd(env *environment) *cobra.Command {
	return &cobra.Command{
		Use:   "fact N",
		Short: "Print N!",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := parseCount(args[0])
			if err != nil {
				return err
			}
			return env.render(entry{Expr: args[0] + "!", Value: math.Factorial(n).String()})
		},
	}
}

func binomCmd(env *environment) *cobra.Command {
	return &cobra.Command{
		Use:   "binom N K",
		Short: "Print the binomial coefficient C(N, K)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := parseCount(args[0])
			if err != nil {
				return err
			}
			k, err := parseCount(args[1])
			if err != nil {
				return err
			}
			return env.render(entry{
				Expr:  "C(" + args[0] + ", " + args[1] + ")",
				Value: math.Binomial(n, k).String(),
			})
		},
	}
}

func parseCount(s string) (int64, error) {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid count %q", s)
	}
	if n < 0 {
		return 0, errors.Errorf("invalid count %q: negative", s)
	}
	return n, nil
}
