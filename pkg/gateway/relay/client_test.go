package relay_test

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net"
	"net/http"
	"pkidiscovery/pkg/domain"
	"pkidiscovery/pkg/gateway"
	"pkidiscovery/pkg/gateway/relay"
	"pkidiscovery/pkg/serrors"
	"strconv"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// rtFunc allows using a function as an http.RoundTripper.
type rtFunc func(*http.Request) (*http.Response, error)

func (f rtFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

func newTestClient(t *testing.T, fn rtFunc) *relay.Client {
	t.Helper()

	c, err := relay.New(&http.Client{Transport: fn}, "https://relay.example.com/", "test-token")
	require.NoError(t, err)

	return c
}

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

func TestNew_InvalidURL(t *testing.T) {
	_, err := relay.New(http.DefaultClient, "relay.example.com", "token")
	require.Error(t, err)
}

func TestClient_GatewayName(t *testing.T) {
	gatewayID := domain.GatewayID(uuid.New())
	c := newTestClient(t, func(r *http.Request) (*http.Response, error) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "relay.example.com", r.URL.Host)
		require.Equal(t, "/api/v1/gateways/"+gatewayID.String(), r.URL.Path)
		require.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))

		return jsonResponse(http.StatusOK, `{"name":"dc-east"}`), nil
	})

	name, err := c.GatewayName(context.Background(), gatewayID)
	require.NoError(t, err)
	require.Equal(t, "dc-east", name)
}

func TestClient_GatewayName_Errors(t *testing.T) {
	cases := []struct {
		name   string
		status int
		err    error
	}{
		{name: "not found", status: http.StatusNotFound, err: serrors.ErrNotFound},
		{name: "unavailable", status: http.StatusServiceUnavailable, err: serrors.ErrUnavailable},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := newTestClient(t, func(*http.Request) (*http.Response, error) {
				return jsonResponse(tc.status, "nope"), nil
			})

			_, err := c.GatewayName(context.Background(), domain.GatewayID(uuid.New()))
			require.ErrorIs(t, err, tc.err)
		})
	}

	c := newTestClient(t, func(*http.Request) (*http.Response, error) {
		return nil, errors.New("connection refused")
	})
	_, err := c.GatewayName(context.Background(), domain.GatewayID(uuid.New()))
	require.ErrorIs(t, err, serrors.ErrUnavailable)

	c = newTestClient(t, func(*http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusInternalServerError, "boom"), nil
	})
	_, err = c.GatewayName(context.Background(), domain.GatewayID(uuid.New()))
	require.ErrorContains(t, err, "500")
}

func TestClient_ConnectionDetails(t *testing.T) {
	gatewayID := domain.GatewayID(uuid.New())
	c := newTestClient(t, func(r *http.Request) (*http.Response, error) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/v1/gateways/"+gatewayID.String()+"/sessions", r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "10.0.0.5", body["targetHost"])
		require.EqualValues(t, 8443, body["targetPort"])
		require.Equal(t, "tcp", body["protocol"])

		return jsonResponse(http.StatusOK, `{"relayAddr":"relay.example.com:9000","token":"session"}`), nil
	})

	details, err := c.ConnectionDetails(context.Background(), gatewayID, "10.0.0.5", 8443)
	require.NoError(t, err)
	require.Equal(t, &gateway.ConnectionDetails{
		GatewayID:  gatewayID,
		TargetHost: "10.0.0.5",
		TargetPort: 8443,
		RelayAddr:  "relay.example.com:9000",
		Token:      "session",
	}, details)
}

func TestClient_ConnectionDetails_Unreachable(t *testing.T) {
	c := newTestClient(t, func(*http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusOK, `{}`), nil
	})

	details, err := c.ConnectionDetails(context.Background(), domain.GatewayID(uuid.New()), "10.0.0.5", 443)
	require.NoError(t, err)
	require.Nil(t, details)
}

// startEcho runs a TCP server echoing everything back.
func startEcho(t *testing.T) string {
	t.Helper()

	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { _ = l.Close() })

	go func() {
		for {
			conn, err := l.Accept()
			if err != nil {
				return
			}
			go func() {
				defer func() { _ = conn.Close() }()
				_, _ = io.Copy(conn, conn)
			}()
		}
	}()

	return l.Addr().String()
}

// startRelay runs a minimal CONNECT proxy accepting the given token only.
func startRelay(t *testing.T, token string) string {
	t.Helper()

	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { _ = l.Close() })

	go func() {
		for {
			conn, err := l.Accept()
			if err != nil {
				return
			}
			go func() {
				defer func() { _ = conn.Close() }()

				br := bufio.NewReader(conn)
				req, err := http.ReadRequest(br)
				if err != nil || req.Method != http.MethodConnect {
					return
				}
				if req.Header.Get("Proxy-Authorization") != "Bearer "+token {
					_, _ = io.WriteString(conn, "HTTP/1.1 403 Forbidden\r\n\r\n")

					return
				}

				target, err := net.Dial("tcp", req.Host)
				if err != nil {
					_, _ = io.WriteString(conn, "HTTP/1.1 502 Bad Gateway\r\n\r\n")

					return
				}
				defer func() { _ = target.Close() }()

				_, _ = io.WriteString(conn, "HTTP/1.1 200 Connection Established\r\n\r\n")
				go func() { _, _ = io.Copy(target, br) }()
				_, _ = io.Copy(conn, target)
			}()
		}
	}()

	return l.Addr().String()
}

func tunnelDetails(t *testing.T, relayAddr string, target string, token string) gateway.ConnectionDetails {
	t.Helper()

	host, portStr, err := net.SplitHostPort(target)
	require.NoError(t, err)
	port, err := strconv.Atoi(portStr)
	require.NoError(t, err)

	return gateway.ConnectionDetails{
		GatewayID:  domain.GatewayID(uuid.New()),
		TargetHost: host,
		TargetPort: port,
		RelayAddr:  relayAddr,
		Token:      token,
	}
}

func TestClient_WithTunnel(t *testing.T) {
	echo := startEcho(t)
	relayAddr := startRelay(t, "session")
	c := newTestClient(t, nil)

	err := c.WithTunnel(context.Background(), tunnelDetails(t, relayAddr, echo, "session"), gateway.ProtocolTCP,
		func(ctx context.Context, localPort int) error {
			var d net.Dialer
			conn, err := d.DialContext(ctx, "tcp", net.JoinHostPort("127.0.0.1", strconv.Itoa(localPort)))
			if err != nil {
				return err
			}
			defer func() { _ = conn.Close() }()

			if _, err := io.WriteString(conn, "ping"); err != nil {
				return err
			}
			buf := make([]byte, 4)
			if _, err := io.ReadFull(conn, buf); err != nil {
				return err
			}
			require.Equal(t, "ping", string(buf))

			return nil
		})
	require.NoError(t, err)
}

func TestClient_WithTunnel_Refused(t *testing.T) {
	echo := startEcho(t)
	relayAddr := startRelay(t, "session")
	c := newTestClient(t, nil)

	err := c.WithTunnel(context.Background(), tunnelDetails(t, relayAddr, echo, "wrong"), gateway.ProtocolTCP,
		func(ctx context.Context, localPort int) error {
			var d net.Dialer
			conn, err := d.DialContext(ctx, "tcp", net.JoinHostPort("127.0.0.1", strconv.Itoa(localPort)))
			if err != nil {
				return err
			}
			defer func() { _ = conn.Close() }()

			// the tunnel drops the local side when the relay refuses
			_, err = conn.Read(make([]byte, 1))

			return err
		})
	require.ErrorIs(t, err, io.EOF)
}

func TestClient_WithTunnel_PropagatesCallbackError(t *testing.T) {
	c := newTestClient(t, nil)
	boom := errors.New("boom")

	err := c.WithTunnel(context.Background(), gateway.ConnectionDetails{RelayAddr: "127.0.0.1:1"}, gateway.ProtocolTCP,
		func(context.Context, int) error { return boom })
	require.ErrorIs(t, err, boom)

	err = c.WithTunnel(context.Background(), gateway.ConnectionDetails{}, gateway.Protocol("udp"),
		func(context.Context, int) error { return nil })
	require.ErrorIs(t, err, serrors.ErrBadRequest)
}
