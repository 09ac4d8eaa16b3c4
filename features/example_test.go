// SPDX-License-Identifier: EPL-2.0

package features_test

import (
	"fmt"
	"os"

	"github.com/ik5/audnoise/features"
)

func ExampleMelExtractor_Extract() {
	e := features.NewMelExtractor()

	// 1.25 s of silence at 16 kHz gives two full frames and a short one.
	table, err := e.Extract(make([]float32, 20000), 16000)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(table.Len(), len(table.Columns))
	// Output: 3 148
}

func ExampleTable_WriteCSV() {
	table := &features.Table{
		Columns: []string{"mfcc_0", "mel_0"},
		Rows:    [][]float64{{-12.5, 0.003}},
	}
	_ = table.WriteCSV(os.Stdout)
	// Output:
	// mfcc_0,mel_0
	// -12.5,0.003
}
