// Package testhelpers holds golden-file helpers shared by formatter tests.
package testhelpers

import (
	"testing"

	"github.com/sebdah/goldie/v2"
)

// JSONGoldie returns a goldie instance for JSON formatter output.
func JSONGoldie(t *testing.T) *goldie.Goldie {
	t.Helper()
	return goldie.New(t, goldie.WithNameSuffix(".gold.json"))
}

// DOTGoldie returns a goldie instance for DOT formatter output.
func DOTGoldie(t *testing.T) *goldie.Goldie {
	t.Helper()
	return goldie.New(t, goldie.WithNameSuffix(".gold.dot"))
}

// MermaidGoldie returns a goldie instance for Mermaid formatter output.
func MermaidGoldie(t *testing.T) *goldie.Goldie {
	t.Helper()
	return goldie.New(t, goldie.WithNameSuffix(".gold.mmd"))
}
