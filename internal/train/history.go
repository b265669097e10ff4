package train

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// WriteHistoryCSV writes the loss histories of a Result as CSV with columns
// phase,step,loss. Training steps come first, then validation steps, each
// numbered from 0 within its phase.
func WriteHistoryCSV(w io.Writer, res *Result) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"phase", "step", "loss"}); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for i, loss := range res.TrainLoss {
		rec := []string{"train", strconv.Itoa(i), strconv.FormatFloat(loss, 'g', -1, 64)}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("write train row %d: %w", i, err)
		}
	}
	for i, loss := range res.ValLoss {
		rec := []string{"val", strconv.Itoa(i), strconv.FormatFloat(loss, 'g', -1, 64)}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("write val row %d: %w", i, err)
		}
	}
	cw.Flush()
	return cw.Error()
}
