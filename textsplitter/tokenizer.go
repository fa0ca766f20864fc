package textsplitter

import (
	"fmt"

	"github.com/pkoukk/tiktoken-go"
)

// Tokenizer counts tokens for chunk statistics. Sizing stays in
// characters everywhere; token counts are informational.
type Tokenizer interface {
	CountTokens(text string) int
}

type tiktokenTokenizer struct {
	encoder *tiktoken.Tiktoken
}

// NewTiktokenTokenizer returns a Tokenizer backed by a tiktoken encoding
// such as "cl100k_base". Loading an encoding may fetch its vocabulary on
// first use, so this is opt-in.
func NewTiktokenTokenizer(encoding string) (Tokenizer, error) {
	encoder, err := tiktoken.GetEncoding(encoding)
	if err != nil {
		return nil, fmt.Errorf("load tiktoken encoding %q: %w", encoding, err)
	}
	return &tiktokenTokenizer{encoder: encoder}, nil
}

func (t *tiktokenTokenizer) CountTokens(text string) int {
	return len(t.encoder.Encode(text, nil, nil))
}

type estimatorTokenizer struct{}

// NewEstimatorTokenizer returns a Tokenizer that approximates token counts
// from character length. Good enough for logging when no encoding is
// configured.
func NewEstimatorTokenizer() Tokenizer {
	return estimatorTokenizer{}
}

func (estimatorTokenizer) CountTokens(text string) int {
	return len(text) / defaultEstimationRatio
}
