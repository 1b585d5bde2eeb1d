// Package gateway defines how scans reach networks that are only accessible
// through a customer deployed gateway.
package gateway

import (
	"context"
	"pkidiscovery/pkg/domain"
)

// Protocol is the transport tunneled to the target.
type Protocol string

const (
	ProtocolTCP Protocol = "tcp"
)

// ConnectionDetails identifies an authorized relay session to one target.
type ConnectionDetails struct {
	GatewayID  domain.GatewayID
	TargetHost string
	TargetPort int
	// RelayAddr is the host:port of the relay accepting CONNECT requests.
	RelayAddr string
	// Token authorizes the session on the relay.
	Token string
}

// Service opens tunnels through gateways.
//
//go:generate mockgen -package mockgateway -source=interface.go -destination=mock/mockgateway.go *
type Service interface {
	// ConnectionDetails asks the relay for a session to host:port through the
	// gateway. It returns nil details when the gateway cannot reach the target.
	ConnectionDetails(ctx context.Context,
		gatewayID domain.GatewayID,
		host string,
		port int) (*ConnectionDetails, error)
	// WithTunnel exposes the target on a loopback port for the duration of fn.
	WithTunnel(ctx context.Context,
		details ConnectionDetails,
		protocol Protocol,
		fn func(ctx context.Context, localPort int) error) error
	// GatewayName returns the display name of a gateway.
	GatewayName(ctx context.Context, gatewayID domain.GatewayID) (string, error)
}
