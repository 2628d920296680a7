package store

import (
	"context"

	"github.com/nagulan1506/real-estate-app/models"
)

// Static is the read-only demo catalog. It backs every catalog read while
// the persistent store is unreachable, and any read where the live query
// fails or comes back empty.
type Static struct{}

func NewStatic() *Static { return &Static{} }

func (s *Static) ListProperties(_ context.Context, f Filter) ([]models.Property, error) {
	return f.Apply(mockProperties), nil
}

func (s *Static) GetProperty(_ context.Context, id string) (*models.Property, error) {
	for i := range mockProperties {
		if mockProperties[i].ID == id {
			p := mockProperties[i]
			return &p, nil
		}
	}
	return nil, ErrNotFound
}

func (s *Static) ListAgents(_ context.Context) ([]models.Agent, error) {
	out := make([]models.Agent, len(mockAgents))
	copy(out, mockAgents)
	return out, nil
}

func (s *Static) GetAgent(_ context.Context, id string) (*models.Agent, error) {
	for i := range mockAgents {
		if mockAgents[i].ID == id {
			a := mockAgents[i]
			return &a, nil
		}
	}
	return nil, ErrNotFound
}

func (s *Static) ListPropertiesByAgent(_ context.Context, agentID string) ([]models.Property, error) {
	ids := mockAgentProperties[agentID]
	var out []models.Property
	for _, p := range mockProperties {
		for _, id := range ids {
			if p.ID == id {
				out = append(out, p)
				break
			}
		}
	}
	return out, nil
}

func (s *Static) Counts(_ context.Context) (int64, int64, int64, error) {
	return int64(len(mockProperties)), int64(len(mockAgents)), 0, nil
}
