package quotes

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"
)

func TestFetchMarketPrices_BothBooks(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/book" {
			t.Errorf("expected path /book, got %s", r.URL.Path)
		}

		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Query().Get("token_id") {
		case "yes-token":
			// Levels deliberately unsorted: best bid is the max, best ask the min.
			_, _ = w.Write([]byte(`{
				"bids":[{"price":"0.31","size":"50"},{"price":"0.33","size":"100"},{"price":"0.30","size":"10"}],
				"asks":[{"price":"0.37","size":"20"},{"price":"0.35","size":"80"}]
			}`))
		case "no-token":
			_, _ = w.Write([]byte(`{
				"bids":[{"price":"0.63","size":"40"}],
				"asks":[{"price":"0.66","size":"25"}]
			}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	logger, _ := zap.NewDevelopment()
	client := NewClient(server.URL, logger)

	mp, err := client.FetchMarketPrices(context.Background(), "yes-token", "no-token")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if mp.BestBidYes == nil || *mp.BestBidYes != 0.33 {
		t.Errorf("expected best YES bid 0.33, got %v", mp.BestBidYes)
	}
	if mp.BestAskYes == nil || *mp.BestAskYes != 0.35 {
		t.Errorf("expected best YES ask 0.35, got %v", mp.BestAskYes)
	}
	if mp.BestBidNo == nil || *mp.BestBidNo != 0.63 {
		t.Errorf("expected best NO bid 0.63, got %v", mp.BestBidNo)
	}
	if mp.BestAskNo == nil || *mp.BestAskNo != 0.66 {
		t.Errorf("expected best NO ask 0.66, got %v", mp.BestAskNo)
	}
}

func TestFetchMarketPrices_MissingNoBook(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("token_id") == "yes-token" {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"bids":[{"price":"0.50","size":"10"}],"asks":[]}`))
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	logger, _ := zap.NewDevelopment()
	client := NewClient(server.URL, logger)

	mp, err := client.FetchMarketPrices(context.Background(), "yes-token", "no-token")
	if err != nil {
		t.Fatalf("expected missing NO book to be recoverable, got %v", err)
	}

	if mp.BestBidYes == nil || *mp.BestBidYes != 0.50 {
		t.Errorf("expected YES bid 0.50, got %v", mp.BestBidYes)
	}
	if mp.BestAskYes != nil {
		t.Errorf("expected nil YES ask for empty side, got %v", *mp.BestAskYes)
	}
	if mp.BestBidNo != nil || mp.BestAskNo != nil {
		t.Error("expected nil NO quotes when the NO book is unavailable")
	}
}

func TestFetchMarketPrices_YesBookRequired(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	logger, _ := zap.NewDevelopment()
	client := NewClient(server.URL, logger)

	_, err := client.FetchMarketPrices(context.Background(), "yes-token", "no-token")
	if err == nil {
		t.Fatal("expected error when the YES book is unavailable")
	}
}

func TestStreamApplyAndSnapshot(t *testing.T) {
	logger, _ := zap.NewDevelopment()
	stream := NewStream(StreamConfig{Logger: logger}, []string{"yes-token", "no-token"})

	stream.apply(&bookMessage{
		EventType: "book",
		AssetID:   "yes-token",
		Bids:      []bookLevel{{Price: "0.33", Size: "100"}, {Price: "0.32", Size: "50"}},
		Asks:      []bookLevel{{Price: "0.35", Size: "80"}},
	})

	mp, ok := stream.Snapshot("yes-token", "no-token")
	if !ok {
		t.Fatal("expected snapshot after applying a book message")
	}

	if mp.BestBidYes == nil || *mp.BestBidYes != 0.33 {
		t.Errorf("expected YES bid 0.33, got %v", mp.BestBidYes)
	}
	if mp.BestAskYes == nil || *mp.BestAskYes != 0.35 {
		t.Errorf("expected YES ask 0.35, got %v", mp.BestAskYes)
	}
	if mp.BestBidNo != nil {
		t.Error("expected nil NO bid before any NO update")
	}

	// Non-book events are ignored.
	stream.apply(&bookMessage{EventType: "last_trade_price", AssetID: "yes-token"})

	mp, _ = stream.Snapshot("yes-token", "no-token")
	if mp.BestBidYes == nil || *mp.BestBidYes != 0.33 {
		t.Error("expected book state unchanged by non-book events")
	}
}

func TestStreamSnapshot_Empty(t *testing.T) {
	logger, _ := zap.NewDevelopment()
	stream := NewStream(StreamConfig{Logger: logger}, nil)

	_, ok := stream.Snapshot("yes-token", "no-token")
	if ok {
		t.Error("expected no snapshot before any update")
	}
}
