package bowling

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

type scoreVector struct {
	Description string `json:"description"`
	Rolls       []int  `json:"rolls"`
	Expected    int    `json:"expected"`
}

func TestScoreGoldenVectors(t *testing.T) {
	vectors, err := loadScoreVectors()
	if err != nil {
		t.Fatalf("Failed to load golden vectors: %v", err)
	}

	for _, v := range vectors {
		t.Run(v.Description, func(t *testing.T) {
			g := New()
			for _, pins := range v.Rolls {
				if err := g.RecordRoll(pins); err != nil {
					t.Fatalf("RecordRoll(%d) failed: %v", pins, err)
				}
			}
			if got := g.ComputeScore(); got != v.Expected {
				t.Errorf("expected score %d, got %d", v.Expected, got)
			}
		})
	}
}

func loadScoreVectors() ([]scoreVector, error) {
	path := filepath.Join("..", "..", "testdata", "score_vectors.json")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var vectors []scoreVector
	err = json.Unmarshal(data, &vectors)
	return vectors, err
}
