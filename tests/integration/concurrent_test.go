package integration

import (
	"fmt"
	"net/http"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ateliedalu/caixa/tests/testutil"
)

// Concurrent writers must never lose an update: every insert lands, and the
// recomputed balances stay consistent with the full entry set.
func TestConcurrentInserts_NoLostUpdates(t *testing.T) {
	srv := testutil.NewTestServer(t)

	const writers = 10
	const perWriter = 5

	var wg sync.WaitGroup
	errs := make(chan error, writers*perWriter)

	for w := 0; w < writers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < perWriter; i++ {
				rec := doJSON(t, srv.Router, http.MethodPost, "/api/v1/caixa", map[string]any{
					"data":      fmt.Sprintf("2024-06-%02d", i+1),
					"valor":     10,
					"tipo":      "entrada",
					"descricao": fmt.Sprintf("writer %d insert %d", w, i),
				})
				if rec.Code != http.StatusCreated {
					errs <- fmt.Errorf("writer %d insert %d: status %d: %s", w, i, rec.Code, rec.Body.String())
				}
			}
		}(w)
	}

	wg.Wait()
	close(errs)
	for err := range errs {
		t.Error(err)
	}

	listing := listEntries(t, srv.Router, "caixa")
	require.Len(t, listing.Entries, writers*perWriter)
	require.Equal(t, "500", listing.Balance.String())

	// Balances accumulate entry by entry in chronological order.
	for i := 1; i < len(listing.Entries); i++ {
		prev := listing.Entries[i-1].Balance
		got := listing.Entries[i].Balance
		require.Equal(t, "10", got.Sub(prev.Decimal).String(), "entry %d", i)
	}
}
