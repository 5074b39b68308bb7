package search

import (
	"context"
	"errors"
	"testing"

	"github.com/synapse-hq/synapse/internal/vectorstore"
)

type fakeEmbedder struct {
	calls int
	fail  bool
}

func (f *fakeEmbedder) EmbedBatch(_ context.Context, texts []string) ([][]float32, error) {
	f.calls++
	if f.fail {
		return nil, errors.New("embedder down")
	}
	vecs := make([][]float32, len(texts))
	for i := range vecs {
		vecs[i] = make([]float32, 384)
	}
	return vecs, nil
}

func (f *fakeEmbedder) Dimensions() int { return 384 }
func (f *fakeEmbedder) Name() string    { return "fake" }

type fakeStore struct {
	searches int
	lastQ    vectorstore.Query
	hits     []vectorstore.Hit
	fail     bool
}

func (f *fakeStore) InsertMany(context.Context, []vectorstore.Chunk) error { return nil }

func (f *fakeStore) SimilaritySearch(_ context.Context, q vectorstore.Query) ([]vectorstore.Hit, error) {
	f.searches++
	f.lastQ = q
	if f.fail {
		return nil, vectorstore.ErrUnavailable
	}
	return f.hits, nil
}

func (f *fakeStore) Count() int                            { return 0 }
func (f *fakeStore) Persist(context.Context, string) error { return nil }
func (f *fakeStore) Load(context.Context, string) error    { return nil }

func TestSearchBlankQueryShortCircuits(t *testing.T) {
	for _, query := range []string{"", "   ", "\t\n"} {
		emb := &fakeEmbedder{}
		store := &fakeStore{}
		p := NewPlanner(emb, store)

		hits, err := p.Search(context.Background(), Params{Query: query, Threshold: 0.5, Limit: 10})
		if err != nil {
			t.Errorf("Search(%q) error: %v", query, err)
		}
		if len(hits) != 0 {
			t.Errorf("Search(%q) returned %d hits, want 0", query, len(hits))
		}
		if emb.calls != 0 || store.searches != 0 {
			t.Errorf("Search(%q) made external calls: embedder=%d store=%d", query, emb.calls, store.searches)
		}
	}
}

func TestSearchValidation(t *testing.T) {
	tests := []struct {
		name   string
		params Params
	}{
		{"negative threshold", Params{Query: "q", Threshold: -0.1, Limit: 10}},
		{"threshold above one", Params{Query: "q", Threshold: 1.5, Limit: 10}},
		{"zero limit", Params{Query: "q", Threshold: 0.5, Limit: 0}},
		{"negative limit", Params{Query: "q", Threshold: 0.5, Limit: -3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			emb := &fakeEmbedder{}
			store := &fakeStore{}
			p := NewPlanner(emb, store)

			_, err := p.Search(context.Background(), tt.params)
			if !errors.Is(err, ErrInvalidQuery) {
				t.Errorf("Search() error = %v, want ErrInvalidQuery", err)
			}
			if emb.calls != 0 || store.searches != 0 {
				t.Errorf("invalid params still reached embedder=%d store=%d", emb.calls, store.searches)
			}
		})
	}
}

func TestSearchPassesParams(t *testing.T) {
	emb := &fakeEmbedder{}
	store := &fakeStore{hits: []vectorstore.Hit{
		{Chunk: vectorstore.Chunk{ID: "1", Source: "a.txt"}, Similarity: 0.9},
	}}
	p := NewPlanner(emb, store)

	hits, err := p.Search(context.Background(), Params{
		Query: "launch plan", Threshold: 0.7, Limit: 5, Topic: "Strategy", Project: "Project X",
	})
	if err != nil {
		t.Fatalf("Search() error: %v", err)
	}
	if len(hits) != 1 {
		t.Fatalf("Search() returned %d hits, want 1", len(hits))
	}
	if emb.calls != 1 {
		t.Errorf("embedder called %d times, want 1", emb.calls)
	}
	q := store.lastQ
	if q.Threshold != 0.7 || q.Limit != 5 || q.Topic != "Strategy" || q.Project != "Project X" {
		t.Errorf("store query = %+v, params not forwarded", q)
	}
	if len(q.Vector) != 384 {
		t.Errorf("query vector has %d dims, want 384", len(q.Vector))
	}
}

func TestSearchEmbedderFailure(t *testing.T) {
	emb := &fakeEmbedder{fail: true}
	store := &fakeStore{}
	p := NewPlanner(emb, store)

	_, err := p.Search(context.Background(), Params{Query: "q", Threshold: 0.5, Limit: 10})
	if err == nil {
		t.Fatal("Search() succeeded with failing embedder")
	}
	if store.searches != 0 {
		t.Error("store searched despite embedding failure")
	}
}

func TestSearchStoreFailure(t *testing.T) {
	emb := &fakeEmbedder{}
	store := &fakeStore{fail: true}
	p := NewPlanner(emb, store)

	_, err := p.Search(context.Background(), Params{Query: "q", Threshold: 0.5, Limit: 10})
	if !errors.Is(err, vectorstore.ErrUnavailable) {
		t.Errorf("Search() error = %v, want wrapped ErrUnavailable", err)
	}
}
