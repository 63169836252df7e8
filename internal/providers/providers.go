// Package providers manages the external travel-data tool connections the
// planning agent draws on. Connections are established sequentially before the
// agent call; any failure marks the whole agent path unavailable so the engine
// can fall back to synthesis.
package providers

import (
	"context"
	"fmt"
	"log"
	"time"
)

// Connector is a single tool-provider connection capability
type Connector interface {
	Name() string
	Kind() string // flights | hotels | activities | search
	Connect(ctx context.Context) error
}

// Pool establishes all tool-provider connections for one planning request
type Pool interface {
	ConnectAll(ctx context.Context) error
}

// Registry is the default Pool: a fixed set of connectors tried in order
// within a single connection deadline.
type Registry struct {
	connectors []Connector
	timeout    time.Duration
}

// NewRegistry creates a registry over the given connectors. A zero timeout
// defaults to 60 seconds.
func NewRegistry(timeout time.Duration, connectors ...Connector) *Registry {
	if timeout == 0 {
		timeout = 60 * time.Second
	}
	return &Registry{connectors: connectors, timeout: timeout}
}

// ConnectAll connects every provider sequentially under one deadline. The
// first failure aborts; callers treat that as "agent path unavailable", not an
// outward error.
func (r *Registry) ConnectAll(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	for _, c := range r.connectors {
		if err := c.Connect(ctx); err != nil {
			return fmt.Errorf("connect %s (%s): %w", c.Name(), c.Kind(), err)
		}
		log.Printf("providers: connected %s (%s)", c.Name(), c.Kind())
	}
	return nil
}

// Simulated is a stand-in connector for a travel-data provider. It honors
// context cancellation but otherwise always connects after a short delay.
type Simulated struct {
	ProviderName string
	ProviderKind string
	Delay        time.Duration
}

func (s *Simulated) Name() string { return s.ProviderName }
func (s *Simulated) Kind() string { return s.ProviderKind }

func (s *Simulated) Connect(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(s.Delay):
		return nil
	}
}

// DefaultConnectors returns the simulated provider set mirroring the real
// integrations: accommodation, flight and activity marketplaces.
func DefaultConnectors() []Connector {
	specs := []struct{ name, kind string }{
		{"airbnb", "hotels"},
		{"booking", "hotels"},
		{"expedia", "flights"},
		{"skyscanner", "flights"},
		{"google-flights", "flights"},
		{"viator", "activities"},
		{"getyourguide", "activities"},
	}

	connectors := make([]Connector, 0, len(specs))
	for _, s := range specs {
		connectors = append(connectors, &Simulated{
			ProviderName: s.name,
			ProviderKind: s.kind,
			Delay:        50 * time.Millisecond,
		})
	}
	return connectors
}
