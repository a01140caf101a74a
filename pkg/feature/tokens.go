package feature

import (
	"sync"

	"github.com/pkoukk/tiktoken-go"
)

// The encoding is fetched once; without network access the estimate is
// simply unavailable.
var encoding = sync.OnceValues(func() (*tiktoken.Tiktoken, error) {
	return tiktoken.EncodingForModel("gpt-4-0613")
})

// promptTokens returns a best-effort token estimate for text, or -1 when no
// encoding is available. Used for log instrumentation only; never gates a
// request.
func promptTokens(text string) int {
	enc, err := encoding()
	if err != nil {
		return -1
	}
	return len(enc.Encode(text, nil, nil))
}
