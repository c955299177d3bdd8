package compat

import (
	"testing"

	"skincare-assistant-be/internal/catalog"
)

func TestMatchResolution(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		wantFound    []string // expected keys, in order
		wantNotFound []string
	}{
		{
			name:      "exact names",
			input:     "Retinol\nVitamin C\nNiacinamide",
			wantFound: []string{"retinol", "vitamin_c", "niacinamide"},
		},
		{
			name:         "nothing recognized",
			input:        "xyz123",
			wantFound:    nil,
			wantNotFound: []string{"xyz123"},
		},
		{
			name:         "empty lines stay as empty unmatched tokens",
			input:        "Retinol\n\nxyz",
			wantFound:    []string{"retinol"},
			wantNotFound: []string{"", "xyz"},
		},
		{
			name:      "first match wins on shared substring",
			input:     "acid",
			wantFound: []string{"vitamin_c"}, // "l-ascorbic acid" precedes "hyaluronic acid"
		},
		{
			name:      "key substring matches too",
			input:     "hyaluronic_a",
			wantFound: []string{"hyaluronic_acid"},
		},
		{
			name:      "case and whitespace insensitive",
			input:     "  NIACINAMIDE  ",
			wantFound: []string{"niacinamide"},
		},
		{
			name:      "duplicates kept",
			input:     "retinol\nRetinol",
			wantFound: []string{"retinol", "retinol"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Match(catalog.Ingredients, tt.input)

			if len(result.Found) != len(tt.wantFound) {
				t.Fatalf("Found = %d records, want %d", len(result.Found), len(tt.wantFound))
			}
			for i, key := range tt.wantFound {
				if result.Found[i].Key != key {
					t.Errorf("Found[%d].Key = %q, want %q", i, result.Found[i].Key, key)
				}
			}

			if len(result.NotFound) != len(tt.wantNotFound) {
				t.Fatalf("NotFound = %v, want %v", result.NotFound, tt.wantNotFound)
			}
			for i, token := range tt.wantNotFound {
				if result.NotFound[i] != token {
					t.Errorf("NotFound[%d] = %q, want %q", i, result.NotFound[i], token)
				}
			}
		})
	}
}

func TestMatchPairs(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantPairs [][2]string // expected (A.Key, B.Key), in order
	}{
		{
			name:  "mutual conflict reported once per direction",
			input: "Retinol\nVitamin C\nNiacinamide",
			wantPairs: [][2]string{
				{"retinol", "vitamin_c"},
				{"vitamin_c", "retinol"},
			},
		},
		{
			name:      "no conflicts",
			input:     "Niacinamide\nHyaluronic Acid",
			wantPairs: nil,
		},
		{
			name:      "duplicate resolutions of one record never self-pair",
			input:     "retinol\nRetinol",
			wantPairs: nil,
		},
		{
			name:      "single ingredient has no pairs",
			input:     "Retinol",
			wantPairs: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Match(catalog.Ingredients, tt.input)

			if len(result.Pairs) != len(tt.wantPairs) {
				t.Fatalf("Pairs = %d, want %d", len(result.Pairs), len(tt.wantPairs))
			}
			for i, want := range tt.wantPairs {
				got := [2]string{result.Pairs[i].A.Key, result.Pairs[i].B.Key}
				if got != want {
					t.Errorf("Pairs[%d] = %v, want %v", i, got, want)
				}
			}
		})
	}
}
