// Package key prints the board symbol legend.
package key

import (
	"context"
	"fmt"

	"github.com/fatih/color"

	"pxgdaily/pkg/printers"
)

type Key struct{}

// Do renders the board symbols and their meanings to stdout.
func (k *Key) Do(ctx context.Context) error {
	_, _ = fmt.Fprintln(color.Output, "")
	pp := printers.PrettyPrint{}
	pp.Legend()
	return nil
}
