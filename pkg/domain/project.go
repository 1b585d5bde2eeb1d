package domain

import "github.com/google/uuid"

// ProjectID identifies the project (tenant) that owns discoveries, certificates
// and installations.
type ProjectID uuid.UUID

func (id ProjectID) String() string { return uuid.UUID(id).String() }

// GatewayID identifies a network gateway used to reach private networks.
type GatewayID uuid.UUID

func (id GatewayID) String() string { return uuid.UUID(id).String() }
