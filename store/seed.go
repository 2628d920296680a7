package store

import (
	"context"
	"log"
	"time"
)

// Seed populates a reachable but empty live store with the demo catalog,
// so a fresh database serves the same records as the fallback path.
// Failures are logged by the caller and never fatal.
func (f *Fallback) Seed(ctx context.Context) error {
	if !f.available {
		return nil
	}
	m, ok := f.live.(*Mongo)
	if !ok {
		return nil
	}
	return m.seedDemo(ctx)
}

func (m *Mongo) seedDemo(ctx context.Context) error {
	props, agents, _, err := m.Counts(ctx)
	if err != nil {
		return err
	}
	if props > 0 || agents > 0 {
		return nil
	}

	now := time.Now()
	// Demo ids are replaced with real ObjectID hex; keep the
	// agent -> property associations intact.
	agentIDs := make(map[string]string, len(mockAgents))
	for _, a := range mockAgents {
		demoID := a.ID
		a.ID = newID()
		a.CreatedAt = now
		a.UpdatedAt = now
		agentIDs[demoID] = a.ID
		if _, err := m.agents().InsertOne(ctx, a); err != nil {
			return err
		}
	}

	propertyAgents := make(map[string]string)
	for demoAgent, props := range mockAgentProperties {
		for _, p := range props {
			propertyAgents[p] = agentIDs[demoAgent]
		}
	}
	for _, p := range mockProperties {
		demoID := p.ID
		p.ID = newID()
		p.AgentID = propertyAgents[demoID]
		p.CreatedAt = now
		p.UpdatedAt = now
		if _, err := m.properties().InsertOne(ctx, p); err != nil {
			return err
		}
	}

	log.Println("Seeded demo agents and properties")
	return nil
}
