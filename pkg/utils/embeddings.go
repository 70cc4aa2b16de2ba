package utils

import (
	"hash/fnv"
	"math"
	"strings"

	"github.com/pgvector/pgvector-go"
)

// EmbeddingDimensions is the width of the prompt-reuse vectors. Must match
// the vector(...) column type on PlanGeneration.
const EmbeddingDimensions = 384

// PromptEmbedding builds a cheap hash-based vector for a prompt. It is not a
// semantic embedding: two prompts only land near each other when they share
// most of their words, which is exactly the property the reuse cache needs —
// reuse on near-identical requests, a miss on anything else — without paying
// for an embedding API call.
func PromptEmbedding(text string) pgvector.Vector {
	text = strings.ToLower(strings.TrimSpace(text))
	words := strings.Fields(text)

	vector := make([]float32, EmbeddingDimensions)
	for _, word := range words {
		hash := hashWord(word)
		for i := 0; i < EmbeddingDimensions; i++ {
			influence := math.Sin(float64(hash+uint32(i))) * 0.1
			vector[i] += float32(influence)
		}
	}

	magnitude := float32(0)
	for _, val := range vector {
		magnitude += val * val
	}
	magnitude = float32(math.Sqrt(float64(magnitude)))
	if magnitude > 0 {
		for i := range vector {
			vector[i] /= magnitude
		}
	}

	return pgvector.NewVector(vector)
}

func hashWord(word string) uint32 {
	h := fnv.New32a()
	h.Write([]byte(word))
	return h.Sum32()
}
