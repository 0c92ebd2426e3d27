package domain

import "time"

// Revision is a snapshot of a blueprint taken right before it was rewritten
type Revision struct {
	ID        int64     `json:"id" yaml:"id"`
	Path      string    `json:"path" yaml:"path"`
	Op        string    `json:"op" yaml:"op"`           // add, move, save, init or restore
	Summary   string    `json:"summary" yaml:"summary"` // one-line description of the change
	Content   string    `json:"-" yaml:"-"`
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`
}
