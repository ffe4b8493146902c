package domain

import (
	"github.com/google/uuid"
)

// Sector is a top-level taxonomy classification.
type Sector struct {
	ID   uuid.UUID
	Name string
}

// Subsector is a second-level taxonomy classification under a sector.
type Subsector struct {
	ID       uuid.UUID
	SectorID uuid.UUID
	Name     string
}
