package gnuplot_test

import (
	"fmt"

	"github.com/katalvlaran/bicross/bignum"
	"github.com/katalvlaran/bicross/cross"
	"github.com/katalvlaran/bicross/gnuplot"
)

// ExampleScript renders the recurrence for a single hand-built pivot.
func ExampleScript() {
	pivots := []cross.Point{
		{X: bignum.NewFloat(0.5, 64), Y: bignum.NewFloat(-0.25, 64)},
	}

	script, err := gnuplot.Script(pivots, gnuplot.DefaultOptions())
	if err != nil {
		fmt.Println("emit:", err)
		return
	}
	fmt.Print(script)

	// Output:
	// f(x,y)=sin((1-x)/2*acos((1+y)/2))/sqrt(1-((y+1)/2)**2)
	// e0(x,y)=f(x,y)
	// x1=0.5
	// y1=-0.25
	// d1=e0(x1,y1)
	// e1(x,y)=e0(x,y)-e0(x1,y)*e0(x,y1)/d1
	// splot [-1:1][-1:1] e1(x,y)
}
