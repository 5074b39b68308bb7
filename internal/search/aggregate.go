package search

import (
	"math"
	"sort"

	"github.com/synapse-hq/synapse/internal/vectorstore"
)

// Aggregate converts raw store hits into the client-facing response:
// similarities become percentages, hits are grouped per source file, and
// files rank by their single best chunk. Ties between files break by
// name, ascending.
func Aggregate(query string, hits []vectorstore.Hit) *Response {
	results := make([]Hit, 0, len(hits))
	for _, h := range hits {
		results = append(results, toHit(h))
	}
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Similarity > results[j].Similarity
	})

	groups := map[string]*FileGroup{}
	var order []string
	for _, r := range results {
		g, ok := groups[r.FileName]
		if !ok {
			g = &FileGroup{
				FileName: r.FileName,
				Topic:    r.Topic,
				Project:  r.Project,
			}
			groups[r.FileName] = g
			order = append(order, r.FileName)
		}
		if r.Similarity > g.BestSimilarity {
			g.BestSimilarity = r.Similarity
		}
		g.Chunks = append(g.Chunks, r)
	}

	files := make([]FileGroup, 0, len(order))
	for _, name := range order {
		files = append(files, *groups[name])
	}
	sort.SliceStable(files, func(i, j int) bool {
		if files[i].BestSimilarity != files[j].BestSimilarity {
			return files[i].BestSimilarity > files[j].BestSimilarity
		}
		return files[i].FileName < files[j].FileName
	})

	return &Response{
		Query:        query,
		Results:      results,
		Files:        files,
		TotalResults: len(results),
		TotalFiles:   len(files),
	}
}

func toHit(h vectorstore.Hit) Hit {
	return Hit{
		ID:         h.Chunk.ID,
		Content:    h.Chunk.Content,
		FileName:   h.Chunk.Source,
		Topic:      optional(h.Chunk.Topic),
		Project:    optional(h.Chunk.Project),
		ChunkIndex: h.Chunk.Index,
		Similarity: Percent(h.Similarity),
	}
}

// Percent converts a [0,1] similarity to a percentage rounded to two
// decimal places.
func Percent(sim float32) float64 {
	return math.Round(float64(sim)*10000) / 100
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
