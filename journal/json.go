package journal

import (
	"encoding/json"
	"io"

	"github.com/spreadkit/spreadbook/fifo"
	"github.com/spreadkit/spreadbook/trade"
)

// Export is the JSON export envelope: the raw trade log plus the books
// derived from it at export time.
type Export struct {
	Trades []trade.Trade `json:"trades"`
	Books  []fifo.Book   `json:"books,omitempty"`
}

// WriteJSON exports trades and derived books.
func WriteJSON(w io.Writer, exp Export) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(exp)
}
