package exactcalc_test

import (
	"testing"

	"github.com/zephyrtronium/exactcalc"
)

func FuzzParse(f *testing.F) {
	f.Add("2+3*4")
	f.Add("2(3+4)")
	f.Add("sqrt(8)/2^(1/3)")
	f.Add("1..2")
	f.Add("((")
	f.Add("1×2")
	p := exactcalc.New()
	f.Fuzz(func(t *testing.T, s string) {
		p.Parse(s)
	})
}
