package codegen

import (
	"regexp"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var rewardCodePattern = regexp.MustCompile(`^[A-HJ-NP-Z2-9]{5}-[A-HJ-NP-Z2-9]{5}$`)

func TestGenerator_RewardCodeFormat(t *testing.T) {
	g := NewGenerator()

	for i := 0; i < 200; i++ {
		code, err := g.RewardCode()
		require.NoError(t, err)
		assert.Regexp(t, rewardCodePattern, code)
		assert.False(t, strings.ContainsAny(code, "01IO"))
	}
}

func TestGenerator_RewardCodeConcurrentDistinct(t *testing.T) {
	g := NewGenerator()

	const workers, perWorker = 40, 250
	var (
		mu   sync.Mutex
		seen = make(map[string]struct{}, workers*perWorker)
		wg   sync.WaitGroup
	)

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				code, err := g.RewardCode()
				if err != nil {
					t.Error(err)
					return
				}
				mu.Lock()
				seen[code] = struct{}{}
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	// 32^10 possible codes; a collision among 10,000 draws is vanishingly unlikely
	assert.Len(t, seen, workers*perWorker)
}

func TestGenerator_NumericCode(t *testing.T) {
	g := NewGenerator()

	t.Run("should zero pad to the requested length", func(t *testing.T) {
		for i := 0; i < 100; i++ {
			code, err := g.NumericCode(6)
			require.NoError(t, err)
			assert.Regexp(t, `^[0-9]{6}$`, code)
		}
	})

	t.Run("should reject lengths out of range", func(t *testing.T) {
		for _, digits := range []int{0, -1, 19} {
			_, err := g.NumericCode(digits)
			assert.ErrorIs(t, err, ErrInvalidDigits)
		}
	})
}
