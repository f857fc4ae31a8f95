// SPDX-License-Identifier: MIT
// SPDX-FileCopyrightText: 2023 wavebroker contributors
// SPDX-FileContributor: wavebroker

package mqtt

import (
	"net"
	"testing"

	"github.com/wavebroker/mqtt/packets"
	"github.com/stretchr/testify/require"
)

// newTestServer returns a new server instance configured for use in tests.
func newTestServer() *Server {
	s := New(nil)
	return s
}

// newTestClient returns a server, a client attached to one end of an in-memory
// pipe, and the other end of the pipe for simulating wire traffic in tests.
func newTestClient() (*Client, net.Conn, *Server) {
	s := newTestServer()
	r, w := net.Pipe()
	cl := s.NewClient(r, "testing", "test", false)
	return cl, w, s
}

func TestNewClient(t *testing.T) {
	cl, _, s := newTestClient()
	require.NotNil(t, cl)
	require.Equal(t, "test", cl.ID)
	require.Equal(t, "testing", cl.Net.Listener)
	require.False(t, cl.Net.Inline)
	require.NotNil(t, cl.State.Inflight)
	require.NotNil(t, cl.State.Subscriptions)
	require.NotNil(t, cl.State.TopicAliases)
	require.Equal(t, defaultKeepalive, cl.State.Keepalive)
	require.Equal(t, defaultClientProtocolVersion, cl.Properties.ProtocolVersion)
	require.NotNil(t, cl.Net.Conn)
	require.NotNil(t, cl.deps)
	require.Equal(t, s.Log, cl.deps.log)
}

func TestNewClientInline(t *testing.T) {
	s := newTestServer()
	cl := s.NewClient(nil, LocalListener, "inline-test", true)
	require.True(t, cl.Net.Inline)
	require.Nil(t, cl.Net.Conn)
}

func TestClientParseConnect(t *testing.T) {
	cl, _, _ := newTestClient()
	pk := packets.Packet{
		ProtocolVersion: 4,
		Connect: packets.ConnectParams{
			ClientIdentifier: "mochi",
			Username:         []byte("user"),
			Clean:            true,
			Keepalive:        30,
			WillFlag:         true,
			WillTopic:        "a/b/c",
			WillPayload:      []byte("bye"),
			WillQos:          1,
			WillRetain:       true,
		},
	}

	cl.ParseConnect("testing", pk)
	require.Equal(t, "mochi", cl.ID)
	require.Equal(t, []byte("user"), cl.Properties.Username)
	require.True(t, cl.Properties.Clean)
	require.Equal(t, uint16(30), cl.State.Keepalive)
	require.Equal(t, uint32(1), cl.Properties.Will.Flag)
	require.Equal(t, "a/b/c", cl.Properties.Will.TopicName)
	require.Equal(t, []byte("bye"), cl.Properties.Will.Payload)
	require.Equal(t, byte(1), cl.Properties.Will.Qos)
	require.True(t, cl.Properties.Will.Retain)
}

func TestClientParseConnectGeneratesID(t *testing.T) {
	cl, _, _ := newTestClient()
	pk := packets.Packet{Connect: packets.ConnectParams{Clean: true}}
	cl.ParseConnect("testing", pk)
	require.NotEmpty(t, cl.ID)
}

func TestClientNextPacketID(t *testing.T) {
	cl, _, _ := newTestClient()
	i, err := cl.NextPacketID()
	require.NoError(t, err)
	require.Equal(t, uint32(1), i)

	i, err = cl.NextPacketID()
	require.NoError(t, err)
	require.Equal(t, uint32(2), i)
}

func TestClientWritePacketClosed(t *testing.T) {
	cl, _, _ := newTestClient()
	cl.Stop(nil)
	err := cl.WritePacket(packets.Packet{
		FixedHeader: packets.FixedHeader{Type: packets.Pingresp},
	})
	require.ErrorIs(t, err, ErrConnectionClosed)
}

func TestClientStopIsIdempotent(t *testing.T) {
	cl, _, _ := newTestClient()
	cl.Stop(nil)
	cl.Stop(nil)
	require.True(t, cl.Closed())
}

func TestClientClearInflights(t *testing.T) {
	cl, _, _ := newTestClient()
	cl.State.Inflight.Set(packets.Packet{PacketID: 1})
	cl.State.Inflight.Set(packets.Packet{PacketID: 2})
	cl.ClearInflights()
	require.Equal(t, 0, cl.State.Inflight.Len())
}

func TestClientIsTakenOver(t *testing.T) {
	cl, _, _ := newTestClient()
	require.False(t, cl.IsTakenOver())
	cl.State.isTakenOver.Store(true)
	require.True(t, cl.IsTakenOver())
}
