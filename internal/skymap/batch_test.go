package skymap

import (
	"context"
	"errors"
	"testing"

	"github.com/litescript/ls-skymap/internal/astro"
	"github.com/litescript/ls-skymap/internal/catalog"
)

func TestRenderAll(t *testing.T) {
	cat := catalog.Default()
	reqs := []Request{
		{Observer: astro.Observer{LatDeg: 40.7128, LonDeg: -74.0060, Name: "New York City"}, Time: fixedEpoch},
		{Observer: astro.Observer{LatDeg: 35.6762, LonDeg: 139.6503, Name: "Tokyo"}, Time: fixedEpoch},
		{Observer: astro.Observer{LatDeg: -33.8688, LonDeg: 151.2093, Name: "Sydney"}, Time: fixedEpoch},
		{Observer: astro.Observer{LatDeg: 99, LonDeg: 0, Name: "Nowhere"}, Time: fixedEpoch},
	}

	results := RenderAll(context.Background(), cat, reqs, 2)
	if len(results) != len(reqs) {
		t.Fatalf("got %d results, want %d", len(results), len(reqs))
	}

	// Results keep request order.
	for i, res := range results {
		if res.Request.Observer.Name != reqs[i].Observer.Name {
			t.Errorf("result %d is for %q, want %q", i, res.Request.Observer.Name, reqs[i].Observer.Name)
		}
	}

	for _, res := range results[:3] {
		if res.Err != nil {
			t.Errorf("%s: unexpected error %v", res.Request.Observer.Name, res.Err)
		}
		if res.Scene == nil || len(res.Scene.Points) == 0 {
			t.Errorf("%s: empty scene", res.Request.Observer.Name)
		}
	}

	bad := results[3]
	if bad.Err == nil {
		t.Fatal("invalid observer should produce a result error")
	}
	if !errors.Is(bad.Err, astro.ErrInvalidCoordinate) {
		t.Errorf("error should wrap ErrInvalidCoordinate: %v", bad.Err)
	}
}

func TestRenderAll_DefaultWorkers(t *testing.T) {
	cat := catalog.Default()
	reqs := []Request{
		{Observer: astro.Observer{LatDeg: 51.5074, LonDeg: -0.1278, Name: "London"}, Time: fixedEpoch},
	}
	results := RenderAll(context.Background(), cat, reqs, 0)
	if len(results) != 1 || results[0].Err != nil {
		t.Fatalf("RenderAll with default workers failed: %+v", results)
	}
}

func TestRenderAll_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	cat := catalog.Default()
	reqs := make([]Request, 8)
	for i := range reqs {
		reqs[i] = Request{Observer: astro.Observer{LatDeg: 0, LonDeg: 0}, Time: fixedEpoch}
	}

	results := RenderAll(ctx, cat, reqs, 2)
	canceled := 0
	for _, res := range results {
		if errors.Is(res.Err, context.Canceled) {
			canceled++
		}
	}
	if canceled == 0 {
		t.Error("expected at least one request abandoned after cancellation")
	}
}
