package models

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func TestComparisonResult_JSONShape(t *testing.T) {
	result := ComparisonResult{
		ID:         "abc-123",
		PageCountA: 2,
		PageCountB: 1,
		Pages: []PageComparison{
			{PageNumber: 1, Differences: []DiffLine{{Kind: DiffCommon, Content: "same"}}},
			{PageNumber: 2, Differences: []DiffLine{{Kind: DiffPageOnlyA, Content: "extra page"}}},
		},
		MetadataDiff:    []MetadataEntry{},
		SimilarityScore: 50,
		CreatedAt:       time.Now(),
	}

	raw, err := json.Marshal(result)
	if err != nil {
		t.Fatalf("failed to marshal: %v", err)
	}

	body := string(raw)
	for _, key := range []string{
		`"id"`, `"page_count_a"`, `"page_count_b"`, `"pages"`,
		`"metadata_diff"`, `"similarity_score"`, `"page_number"`,
		`"differences"`, `"kind"`, `"content"`,
	} {
		if !strings.Contains(body, key) {
			t.Errorf("expected JSON to contain %s", key)
		}
	}

	if !strings.Contains(body, `"page_only_in_a"`) {
		t.Error("expected page-only marker kind to serialize as page_only_in_a")
	}
	if strings.Contains(body, `"metadata_diff":null`) {
		t.Error("an empty metadata diff should serialize as [], not null")
	}
}

func TestMetadataEntry_AbsentValueSerializesAsNull(t *testing.T) {
	v := "T"
	raw, err := json.Marshal(MetadataEntry{Key: "Title", ValueB: &v})
	if err != nil {
		t.Fatalf("failed to marshal: %v", err)
	}

	if string(raw) != `{"key":"Title","value_a":null,"value_b":"T"}` {
		t.Errorf("unexpected serialization: %s", raw)
	}
}
