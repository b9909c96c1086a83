package trafficgen

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cooleradmin/internal/domain"
)

type captureIntake struct {
	mu   sync.Mutex
	subs []domain.ProductSubmission
}

func (c *captureIntake) SubmitProduct(ctx context.Context, sub domain.ProductSubmission) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.subs = append(c.subs, sub)
	return nil
}

func (c *captureIntake) count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.subs)
}

func TestGeneratorPayloadShape(t *testing.T) {
	gen := NewGenerator([]string{"cust_1", "cust_2"})

	seen := map[string]bool{}
	for i := 0; i < 200; i++ {
		sub := gen.Next()
		assert.NotEmpty(t, sub.SubmissionID)
		assert.False(t, seen[sub.SubmissionID], "submission ids must be unique")
		seen[sub.SubmissionID] = true
		assert.Contains(t, []string{"cust_1", "cust_2"}, sub.CustomerID)
		assert.NotEmpty(t, sub.Name)
		assert.NotEmpty(t, sub.Category)
		assert.Equal(t, "trafficgen", sub.Source)
		assert.GreaterOrEqual(t, sub.Confidence, 0.0)
		assert.LessOrEqual(t, sub.Confidence, 1.0)
	}
}

func TestGeneratorEmitsCorruptSubmissions(t *testing.T) {
	gen := NewGenerator(nil)

	var corrupted int
	for i := 0; i < 500; i++ {
		sub := gen.Next()
		if sub.SKU == "" || sub.PriceCents < 0 || sub.WeightGrams == 1_000_000 {
			corrupted++
		}
	}
	// one in ten on average; 500 draws make zero hits vanishingly unlikely
	assert.Greater(t, corrupted, 0)
	assert.Less(t, corrupted, 250)
}

func TestRunSubmitsAndStopsOnCancel(t *testing.T) {
	intake := &captureIntake{}
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		Run(ctx, intake, NewGenerator(nil), 2, 10*time.Millisecond)
		close(done)
	}()

	require.Eventually(t, func() bool { return intake.count() >= 3 }, 2*time.Second, 5*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("workers did not stop after cancellation")
	}
}

func TestRunNoWorkersReturnsImmediately(t *testing.T) {
	intake := &captureIntake{}
	Run(context.Background(), intake, nil, 0, time.Millisecond)
	assert.Zero(t, intake.count())
}
