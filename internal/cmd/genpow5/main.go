// Command genpow5 generates the table of 128-bit power-of-five mantissas
// used by the Eisel-Lemire fast path.
package main

import (
	"bytes"
	"fmt"
	"go/format"
	"math/big"
	"os"

	"github.com/spf13/cobra"
)

var (
	output string
	minExp int
	maxExp int
)

var rootCmd = &cobra.Command{
	Use:   "genpow5",
	Short: "Generate the power-of-five table",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if minExp > maxExp {
			return fmt.Errorf("genpow5: --min %d is greater than --max %d", minExp, maxExp)
		}
		src, err := generate(minExp, maxExp)
		if err != nil {
			return err
		}
		if output == "" || output == "-" {
			_, err = cmd.OutOrStdout().Write(src)
			return err
		}
		return os.WriteFile(output, src, 0o644)
	},
}

func init() {
	rootCmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")
	rootCmd.Flags().IntVar(&minExp, "min", -342, "smallest exponent")
	rootCmd.Flags().IntVar(&maxExp, "max", 308, "largest exponent")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func generate(first, last int) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, `// Code generated by "go run ./internal/cmd/genpow5"; DO NOT EDIT.`)
	fmt.Fprintln(&buf)
	fmt.Fprintln(&buf, "package fastfloat")
	fmt.Fprintln(&buf)
	fmt.Fprintln(&buf, "const (")
	fmt.Fprintf(&buf, "\tpowersOfFiveMinExp10 = %d\n", first)
	fmt.Fprintf(&buf, "\tpowersOfFiveMaxExp10 = %d\n", last)
	fmt.Fprintln(&buf, ")")
	fmt.Fprintln(&buf)
	fmt.Fprintln(&buf, "// powersOfFive[q-powersOfFiveMinExp10] is the 128-bit mantissa of 5^q,")
	fmt.Fprintln(&buf, "// shifted so that the most significant bit is set and rounded down.")
	fmt.Fprintln(&buf, "var powersOfFive = [...]powerOfFive{")
	mask := new(big.Int).Lsh(big.NewInt(1), 64)
	mask.Sub(mask, big.NewInt(1))
	for q := first; q <= last; q++ {
		m := mantissa(q)
		hi := new(big.Int).Rsh(m, 64)
		lo := new(big.Int).And(m, mask)
		fmt.Fprintf(&buf, "\t{0x%016x, 0x%016x}, // 5^%d\n", hi.Uint64(), lo.Uint64(), q)
	}
	fmt.Fprintln(&buf, "}")
	return format.Source(buf.Bytes())
}

// mantissa returns floor(5^q * 2^k) for the k that puts it in [2^127, 2^128).
func mantissa(q int) *big.Int {
	five := big.NewInt(5)
	if q >= 0 {
		m := new(big.Int).Exp(five, big.NewInt(int64(q)), nil)
		if n := m.BitLen(); n > 128 {
			return m.Rsh(m, uint(n-128))
		}
		return m.Lsh(m, uint(128-m.BitLen()))
	}
	p := new(big.Int).Exp(five, big.NewInt(int64(-q)), nil)
	m := new(big.Int).Lsh(big.NewInt(1), uint(127+p.BitLen()))
	return m.Quo(m, p)
}
