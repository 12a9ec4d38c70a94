package cli

import (
	"bytes"
	"regexp"
	"testing"

	. "github.com/onsi/gomega"
	"github.com/onsi/gomega/gbytes"
	"gopkg.in/yaml.v2"

	"github.com/db47h/bigint"
)

// run executes the root command with args and returns its standard output.
func run(args ...string) (string, *gbytes.Buffer, error) {
	var out bytes.Buffer
	errOut := gbytes.NewBuffer()
	root := NewRootCommand(&out)
	root.SetErr(errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), errOut, err
}

func TestEval(t *testing.T) {
	gt := NewGomegaWithT(t)

	for _, td := range []struct {
		args []string
		out  string
	}{
		{[]string{"eval", "1", "+", "9999"}, "1 + 9999 = 10000\n"},
		{[]string{"eval", "--", "15", "+", "-3015"}, "15 + -3015 = -3000\n"},
		{[]string{"eval", "--", "-10000", "-", "-9997"}, "-10000 - -9997 = -3\n"},
		{[]string{"eval", "123", "x", "99"}, "123 x 99 = 12177\n"},
		{[]string{"eval", "--", "-54321", "*", "-1"}, "-54321 * -1 = 54321\n"},
		{[]string{"eval", "--", "-999", ">", "-1000"}, "-999 > -1000 = true\n"},
		{[]string{"eval", "100000199999000", "==", "100000019999900"}, "100000199999000 == 100000019999900 = false\n"},
		{[]string{"eval", "1", "<=", "1"}, "1 <= 1 = true\n"},
	} {
		out, _, err := run(td.args...)
		gt.Expect(err).NotTo(HaveOccurred())
		gt.Expect(out).To(Equal(td.out))
	}
}

func TestEvalYAML(t *testing.T) {
	gt := NewGomegaWithT(t)

	out, _, err := run("-o", "yaml", "eval", "352331", "-", "4520")
	gt.Expect(err).NotTo(HaveOccurred())

	var entries []entry
	gt.Expect(yaml.Unmarshal([]byte(out), &entries)).To(Succeed())
	gt.Expect(entries).To(ConsistOf(entry{Expr: "352331 - 4520", Value: "347811"}))
}

func TestEvalErrors(t *testing.T) {
	gt := NewGomegaWithT(t)

	out, logs, err := run("--log-encoding", "json", "eval", "013423", "+", "1")
	gt.Expect(err).To(MatchError(bigint.ErrLeadingZero))
	gt.Expect(err.Error()).To(ContainSubstring(`operand "013423"`))
	gt.Expect(out).To(BeEmpty())
	gt.Expect(logs).To(gbytes.Say(`"msg":"invalid operand"`))

	_, _, err = run("eval", "1", "/", "2")
	gt.Expect(err).To(MatchError(`unknown operator "/"`))

	_, _, err = run("eval", "1", "+", "1234d3")
	gt.Expect(err).To(MatchError(bigint.ErrNotNumerical))

	_, _, err = run("eval", "1", "+")
	gt.Expect(err).To(HaveOccurred())

	_, _, err = run("--log-level", "loud", "eval", "1", "+", "1")
	gt.Expect(err).To(MatchError(ContainSubstring(`invalid log level "loud"`)))
}

func TestIncDec(t *testing.T) {
	gt := NewGomegaWithT(t)

	out, _, err := run("inc", "--", "-1")
	gt.Expect(err).NotTo(HaveOccurred())
	gt.Expect(out).To(Equal("++-1 = 0\n"))

	out, _, err = run("inc", "99")
	gt.Expect(err).NotTo(HaveOccurred())
	gt.Expect(out).To(Equal("++99 = 100\n"))

	out, _, err = run("dec", "0")
	gt.Expect(err).NotTo(HaveOccurred())
	gt.Expect(out).To(Equal("--0 = -1\n"))

	out, _, err = run("dec", "10000000")
	gt.Expect(err).NotTo(HaveOccurred())
	gt.Expect(out).To(Equal("--10000000 = 9999999\n"))
}

func TestCombinatorics(t *testing.T) {
	gt := NewGomegaWithT(t)

	out, _, err := run("pow", "2", "100")
	gt.Expect(err).NotTo(HaveOccurred())
	gt.Expect(out).To(Equal("2^100 = 1267650600228229401496703205376\n"))

	out, _, err = run("pow", "--", "-3", "3")
	gt.Expect(err).NotTo(HaveOccurred())
	gt.Expect(out).To(Equal("-3^3 = -27\n"))

	out, _, err = run("fact", "20")
	gt.Expect(err).NotTo(HaveOccurred())
	gt.Expect(out).To(Equal("20! = 2432902008176640000\n"))

	out, _, err = run("binom", "52", "5")
	gt.Expect(err).NotTo(HaveOccurred())
	gt.Expect(out).To(Equal("C(52, 5) = 2598960\n"))

	_, _, err = run("fact", "--", "-1")
	gt.Expect(err).To(MatchError(ContainSubstring("negative")))

	_, _, err = run("pow", "2", "x")
	gt.Expect(err).To(MatchError(ContainSubstring("exponent")))
}

func TestDemo(t *testing.T) {
	gt := NewGomegaWithT(t)

	out, _, err := run("demo")
	gt.Expect(err).NotTo(HaveOccurred())

	buf := gbytes.BufferWithBytes([]byte(out))
	for _, line := range []string{
		"Int{} = 0",
		`Parse("-9223372036854775807000") = -9223372036854775807000`,
		"NewFromInt64(123400) = 123400",
		"NewFromSlots([-1 0 0 0 4]) = -10004",
		`Parse("1234d3") = bigint: input is not numerical at offset 4 in "1234d3"`,
		`Parse("013423") = bigint: leading zero at offset 0 in "013423"`,
		`NewFromSlots([2 -3 4]) = bigint: negative slot other than the first at offset 1 in "[2 -3 4]"`,
		`NewFromSlots([2 33 4]) = bigint: slot is not a single digit at offset 1 in "[2 33 4]"`,
		`NewFromSlots([0 2 3 4]) = bigint: leading zero at offset 0 in "[0 2 3 4]"`,
		"Slots(12345) = [1 2 3 4 5]",
		"IsNegative(-12) = true",
		"IsNegative(0) = false",
		"1 + 9999 = 10000",
		"15 + -3015 = -3000",
		"-1111 + -9999 = -11110",
		"352331 - 4520 = 347811",
		"200000000000000000000000000000000 - -1111 = 200000000000000000000000000001111",
		"-1111 - 200000000000000000000000000000000 = -200000000000000000000000000001111",
		"-10000 - -9997 = -3",
		"-9997 - -10000 = 3",
		"123 * 99 = 12177",
		"-99 * 99 = -9801",
		"-54321 * -1 = 54321",
		"-(100) = -100",
		"(-(-2) - 125) * -(-5) = -615",
		"++i1 (i1 = -1) = 0",
		"i2++ (i2 = 100000000) = 100000000",
		"i2 = 100000001",
		"--d1 (d1 = 0) = -1",
		"d2-- (d2 = 10000000) = 10000000",
		"d2 = 9999999",
		"100000199999000 == 100000199999000 = true",
		"100000199999000 == 100000019999900 = false",
		"0 < 1 = true",
		"1 < 0 = false",
		"-999 > -1000 = true",
		"-1000 >= -999 = false",
		"a2 after a2 = a1; ++a1 (a1 = 1234) = 1234",
		"1111000000000000000000000000000 = 1111000000000000000000000000000",
	} {
		gt.Expect(buf).To(gbytes.Say(regexp.QuoteMeta(line)))
	}
}
