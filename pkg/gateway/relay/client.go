// Package relay provides a gateway.Service backed by a gateway relay. The
// relay exposes a small JSON control API to look up gateways and authorize
// sessions, and accepts HTTP CONNECT requests for authorized sessions.
package relay

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"pkidiscovery/pkg/domain"
	"pkidiscovery/pkg/gateway"
	"pkidiscovery/pkg/logger"
	"pkidiscovery/pkg/serrors"
	"strconv"
	"strings"

	"github.com/sourcegraph/conc"
	"go.uber.org/zap"
)

// Client talks to the relay control API and fulfills gateway.Service.
// It is safe for concurrent use.
type Client struct {
	httpClient *http.Client
	baseURL    *url.URL
	token      string
	dialer     net.Dialer
}

var _ gateway.Service = (*Client)(nil)

// New constructs a Client for the relay at baseURL.
func New(httpClient *http.Client, baseURL string, token string) (*Client, error) {
	u, err := url.Parse(strings.TrimSuffix(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("could not parse relay url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("relay url must be absolute: %q", baseURL)
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    u,
		token:      token,
	}, nil
}

func (c *Client) do(ctx context.Context, method string, path string, body any, out any) error {
	var reqBody io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("could not marshal request: %w", err)
		}
		reqBody = strings.NewReader(string(b))
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL.String()+path, reqBody)
	if err != nil {
		return fmt.Errorf("could not create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return serrors.Wrap(serrors.ErrUnavailable, err, "could not reach gateway relay")
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("could not read response body: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return serrors.With(serrors.ErrNotFound, "gateway relay: %s", strings.TrimSpace(string(b)))
	case resp.StatusCode == http.StatusServiceUnavailable || resp.StatusCode == http.StatusBadGateway:
		return serrors.With(serrors.ErrUnavailable, "gateway relay: %s", strings.TrimSpace(string(b)))
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return fmt.Errorf("gateway relay returned %d: %s", resp.StatusCode, strings.TrimSpace(string(b)))
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(b, out); err != nil {
		return fmt.Errorf("could not decode response: %w", err)
	}

	return nil
}

// GatewayName fetches the gateway display name.
func (c *Client) GatewayName(ctx context.Context, gatewayID domain.GatewayID) (string, error) {
	var res struct {
		Name string `json:"name"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/v1/gateways/"+gatewayID.String(), nil, &res); err != nil {
		return "", err
	}

	return res.Name, nil
}

// ConnectionDetails authorizes a session to host:port. A relay answering
// without a relay address means the gateway cannot reach the target, which is
// reported as nil details.
func (c *Client) ConnectionDetails(ctx context.Context,
	gatewayID domain.GatewayID,
	host string,
	port int) (*gateway.ConnectionDetails, error) {
	type sessionReq struct {
		TargetHost string `json:"targetHost"`
		TargetPort int    `json:"targetPort"`
		Protocol   string `json:"protocol"`
	}
	var res struct {
		RelayAddr string `json:"relayAddr"`
		Token     string `json:"token"`
	}

	err := c.do(ctx, http.MethodPost, "/api/v1/gateways/"+gatewayID.String()+"/sessions", sessionReq{
		TargetHost: host,
		TargetPort: port,
		Protocol:   string(gateway.ProtocolTCP),
	}, &res)
	if err != nil {
		return nil, err
	}
	if res.RelayAddr == "" {
		return nil, nil
	}

	return &gateway.ConnectionDetails{
		GatewayID:  gatewayID,
		TargetHost: host,
		TargetPort: port,
		RelayAddr:  res.RelayAddr,
		Token:      res.Token,
	}, nil
}

// WithTunnel listens on an ephemeral loopback port and forwards every
// accepted connection through a CONNECT session on the relay. The listener and
// all forwarded connections are closed once fn returns.
func (c *Client) WithTunnel(ctx context.Context,
	details gateway.ConnectionDetails,
	protocol gateway.Protocol,
	fn func(ctx context.Context, localPort int) error) error {
	if protocol != gateway.ProtocolTCP {
		return serrors.With(serrors.ErrBadRequest, "unsupported tunnel protocol %q", protocol)
	}

	var lc net.ListenConfig
	listener, err := lc.Listen(ctx, "tcp", "127.0.0.1:0")
	if err != nil {
		return fmt.Errorf("could not listen for tunnel: %w", err)
	}

	tunnelCtx, cancel := context.WithCancel(ctx)
	var wg conc.WaitGroup
	wg.Go(func() {
		c.accept(tunnelCtx, listener, details, &wg)
	})

	port := listener.Addr().(*net.TCPAddr).Port
	fnErr := fn(tunnelCtx, port)

	cancel()
	_ = listener.Close()
	wg.Wait()

	return fnErr
}

func (c *Client) accept(ctx context.Context, listener net.Listener, details gateway.ConnectionDetails, wg *conc.WaitGroup) {
	for {
		local, err := listener.Accept()
		if err != nil {
			if !errors.Is(err, net.ErrClosed) {
				logger.Warn(ctx, "tunnel listener stopped", zap.Error(err))
			}

			return
		}

		wg.Go(func() {
			c.forward(ctx, local, details)
		})
	}
}

func (c *Client) forward(ctx context.Context, local net.Conn, details gateway.ConnectionDetails) {
	defer func() {
		_ = local.Close()
	}()

	remote, err := c.connect(ctx, details)
	if err != nil {
		logger.Debug(ctx, "could not open relay session",
			zap.String("relay", details.RelayAddr),
			zap.String("target", details.TargetHost),
			zap.Error(err))

		return
	}
	defer func() {
		_ = remote.Close()
	}()

	// closing both ends on cancellation unblocks the copies below
	stop := context.AfterFunc(ctx, func() {
		_ = local.Close()
		_ = remote.Close()
	})
	defer stop()

	var wg conc.WaitGroup
	wg.Go(func() {
		_, _ = io.Copy(remote, local)
		closeWrite(remote)
	})
	wg.Go(func() {
		_, _ = io.Copy(local, remote)
		closeWrite(local)
	})
	wg.Wait()
}

// connect dials the relay and establishes the CONNECT session. Bytes the relay
// sent after its response are preserved in the returned connection.
func (c *Client) connect(ctx context.Context, details gateway.ConnectionDetails) (net.Conn, error) {
	conn, err := c.dialer.DialContext(ctx, "tcp", details.RelayAddr)
	if err != nil {
		return nil, fmt.Errorf("could not dial relay: %w", err)
	}

	target := net.JoinHostPort(details.TargetHost, strconv.Itoa(details.TargetPort))
	req := &http.Request{
		Method: http.MethodConnect,
		URL:    &url.URL{Opaque: target},
		Host:   target,
		Header: http.Header{"Proxy-Authorization": []string{"Bearer " + details.Token}},
	}
	if err := req.Write(conn); err != nil {
		_ = conn.Close()

		return nil, fmt.Errorf("could not write connect request: %w", err)
	}

	br := bufio.NewReader(conn)
	resp, err := http.ReadResponse(br, req)
	if err != nil {
		_ = conn.Close()

		return nil, fmt.Errorf("could not read connect response: %w", err)
	}
	_ = resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		_ = conn.Close()

		return nil, fmt.Errorf("relay refused session: %s", resp.Status)
	}

	return &bufferedConn{Conn: conn, r: br}, nil
}

type bufferedConn struct {
	net.Conn
	r *bufio.Reader
}

func (b *bufferedConn) Read(p []byte) (int, error) {
	return b.r.Read(p)
}

func (b *bufferedConn) CloseWrite() error {
	if cw, ok := b.Conn.(interface{ CloseWrite() error }); ok {
		return cw.CloseWrite()
	}

	return nil
}

func closeWrite(conn net.Conn) {
	if cw, ok := conn.(interface{ CloseWrite() error }); ok {
		_ = cw.CloseWrite()
	}
}
