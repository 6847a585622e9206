// Package rcon implements a minimal client for the Source RCON protocol as
// spoken by Minecraft-family servers: little-endian length-prefixed packets
// over TCP, a password handshake, then request/response text exchange.
package rcon

import (
	"context"
	"encoding/binary"
	"fmt"
	"io"
	"net"
	"strings"
	"time"

	"github.com/craftcon/craftcon/internal/cerrors"
)

// Packet types. The server reuses 2 for both exec requests and auth
// responses; direction disambiguates.
const (
	typeResponseValue int32 = 0
	typeExecCommand   int32 = 2
	typeAuthResponse  int32 = 2
	typeAuth          int32 = 3
)

const (
	// packetOverhead is id + type + two NUL terminators
	packetOverhead = 10
	// maxRequestBody is the largest payload a client may send
	maxRequestBody = 1446
	// maxPacketSize bounds what we accept from the server
	maxPacketSize = 4110
)

// DefaultTimeout bounds each network round-trip.
const DefaultTimeout = 10 * time.Second

// Client is an authenticated RCON session. It is not safe for concurrent
// use; the interactive shell issues one command at a time.
type Client struct {
	conn    net.Conn
	addr    string
	timeout time.Duration
	nextID  int32
}

// Option configures a Client
type Option func(*Client)

// WithTimeout sets the per-round-trip deadline.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.timeout = d }
}

// Dial connects to addr, performs the auth handshake, and returns a ready
// session. A rejected password yields a *cerrors.AuthError.
func Dial(ctx context.Context, addr, password string, opts ...Option) (*Client, error) {
	var d net.Dialer
	conn, err := d.DialContext(ctx, "tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", addr, err)
	}

	c := &Client{conn: conn, addr: addr, timeout: DefaultTimeout, nextID: 1}
	for _, opt := range opts {
		opt(c)
	}

	if err := c.auth(password); err != nil {
		_ = conn.Close()
		return nil, err
	}
	return c, nil
}

// Exec sends one command and returns the server's full text response,
// reassembling multi-packet responses via a sentinel request.
func (c *Client) Exec(cmd string) (string, error) {
	if err := c.conn.SetDeadline(time.Now().Add(c.timeout)); err != nil {
		return "", cerrors.NewProtocolError("exec", "failed to set deadline", err)
	}

	id := c.id()
	sentinel := c.id()
	if err := c.writePacket(id, typeExecCommand, cmd); err != nil {
		return "", err
	}
	// The server answers the bare ResponseValue request only after all
	// fragments of the real response, which marks the end of the stream.
	if err := c.writePacket(sentinel, typeResponseValue, ""); err != nil {
		return "", err
	}

	var body strings.Builder
	for {
		rid, typ, payload, err := c.readPacket()
		if err != nil {
			return "", err
		}
		if typ != typeResponseValue {
			continue
		}
		switch rid {
		case id:
			body.WriteString(payload)
		case sentinel:
			return body.String(), nil
		default:
			return "", cerrors.NewProtocolError("exec",
				fmt.Sprintf("unexpected response id %d", rid), nil)
		}
	}
}

// Addr returns the remote address this session is connected to.
func (c *Client) Addr() string {
	return c.addr
}

// Close terminates the session.
func (c *Client) Close() error {
	return c.conn.Close()
}

func (c *Client) auth(password string) error {
	if err := c.conn.SetDeadline(time.Now().Add(c.timeout)); err != nil {
		return cerrors.NewProtocolError("auth", "failed to set deadline", err)
	}

	id := c.id()
	if err := c.writePacket(id, typeAuth, password); err != nil {
		return err
	}
	for {
		rid, typ, _, err := c.readPacket()
		if err != nil {
			return err
		}
		// Some servers send an empty ResponseValue before the auth verdict.
		if typ != typeAuthResponse {
			continue
		}
		if rid == -1 {
			return cerrors.NewAuthError(c.addr, "authentication rejected")
		}
		if rid != id {
			return cerrors.NewProtocolError("auth",
				fmt.Sprintf("auth response id %d does not match request id %d", rid, id), nil)
		}
		return nil
	}
}

func (c *Client) id() int32 {
	id := c.nextID
	c.nextID++
	return id
}

func (c *Client) writePacket(id, typ int32, body string) error {
	if len(body) > maxRequestBody {
		return cerrors.NewProtocolError("write",
			fmt.Sprintf("request body of %d bytes exceeds protocol limit", len(body)), nil)
	}
	buf := make([]byte, 4+packetOverhead+len(body))
	binary.LittleEndian.PutUint32(buf[0:4], uint32(packetOverhead+len(body)))
	binary.LittleEndian.PutUint32(buf[4:8], uint32(id))
	binary.LittleEndian.PutUint32(buf[8:12], uint32(typ))
	copy(buf[12:], body)
	// trailing two NULs are already zero
	if _, err := c.conn.Write(buf); err != nil {
		return cerrors.NewProtocolError("write", "failed to send packet", err)
	}
	return nil
}

func (c *Client) readPacket() (id, typ int32, body string, err error) {
	var length int32
	if err := binary.Read(c.conn, binary.LittleEndian, &length); err != nil {
		return 0, 0, "", cerrors.NewProtocolError("read", "failed to read packet length", err)
	}
	if length < packetOverhead || length > maxPacketSize {
		return 0, 0, "", cerrors.NewProtocolError("read",
			fmt.Sprintf("invalid packet length %d", length), nil)
	}
	payload := make([]byte, length)
	if _, err := io.ReadFull(c.conn, payload); err != nil {
		return 0, 0, "", cerrors.NewProtocolError("read", "failed to read packet body", err)
	}
	id = int32(binary.LittleEndian.Uint32(payload[0:4]))
	typ = int32(binary.LittleEndian.Uint32(payload[4:8]))
	body = string(payload[8 : length-2])
	return id, typ, body, nil
}
