package model

import (
	"time"

	"github.com/google/uuid"
)

// Run ties an input set, its settings and the outcome together for save/load.
type Run struct {
	ID         string      `json:"id"`
	Name       string      `json:"name"`
	CreatedAt  string      `json:"created_at"`
	Rectangles []Rectangle `json:"rectangles"`
	Settings   Settings    `json:"settings"`
	Result     *Result     `json:"result,omitempty"`
}

func NewRun(name string, rects []Rectangle, settings Settings) Run {
	if name == "" {
		name = "Untitled"
	}
	if rects == nil {
		rects = []Rectangle{}
	}
	return Run{
		ID:         uuid.New().String()[:8],
		Name:       name,
		CreatedAt:  time.Now().UTC().Format(time.RFC3339),
		Rectangles: rects,
		Settings:   settings,
	}
}
