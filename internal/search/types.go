// Package search plans similarity queries against the vector store and
// aggregates chunk hits into per-file groups for presentation.
package search

// Request is the JSON body accepted by the search endpoint and the MCP
// search tool. Pointer fields distinguish "absent" from zero values so
// server defaults can apply.
type Request struct {
	Query     string   `json:"query"`
	Threshold *float64 `json:"match_threshold,omitempty"`
	Limit     *int     `json:"match_count,omitempty"`
	Topic     string   `json:"topic,omitempty"`
	Project   string   `json:"project,omitempty"`
}

// Hit is one matching chunk as presented to clients. Similarity is a
// percentage rounded to two decimals. Topic and project are null when
// the chunk is untagged.
type Hit struct {
	ID         string  `json:"id"`
	Content    string  `json:"content"`
	FileName   string  `json:"file_name"`
	Topic      *string `json:"topic"`
	Project    *string `json:"project"`
	ChunkIndex int     `json:"chunk_index"`
	Similarity float64 `json:"similarity"`
}

// FileGroup collects every hit from one source file, ranked by its best
// chunk.
type FileGroup struct {
	FileName       string  `json:"file_name"`
	Topic          *string `json:"topic"`
	Project        *string `json:"project"`
	BestSimilarity float64 `json:"best_similarity"`
	Chunks         []Hit   `json:"chunks"`
}

// Response is the full search result: the flat ranked hit list plus the
// same hits grouped by file.
type Response struct {
	Query        string      `json:"query"`
	Results      []Hit       `json:"results"`
	Files        []FileGroup `json:"files"`
	TotalResults int         `json:"total_results"`
	TotalFiles   int         `json:"total_files"`
}
