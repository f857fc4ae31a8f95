// SPDX-License-Identifier: MIT
// SPDX-FileCopyrightText: 2023 wavebroker contributors
// SPDX-FileContributor: wavebroker

package mqtt

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"net"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/xid"

	"github.com/wavebroker/mqtt/packets"
)

var (
	// ErrConnectionClosed indicates that the client connection (tcp/ws) is closed.
	ErrConnectionClosed = errors.New("connection not open")

	// defaultKeepalive is the default keepalive time in seconds, if none is otherwise specified.
	defaultKeepalive uint16 = 10

	// defaultClientProtocolVersion is the mqtt protocol version assumed for a client
	// before their CONNECT packet has been parsed.
	defaultClientProtocolVersion byte = 4
)

// Will contains the last will and testament details for a client connection.
type Will struct {
	Payload           []byte                 // the message payload to transmit
	User              []packets.UserProperty // any user properties to attach to the will message
	TopicName         string                 // the topic the will message shall be sent to
	Flag              uint32                 // indicate whether will is set
	WillDelayInterval uint32                 // the number of seconds to delay the publication of the client's will
	Qos               byte                   // the quality of service desired
	Retain            bool                   // indicate whether the will message should be retained
}

// ClientProperties contains a limited set of the mqtt v5 properties specific
// to a client connection.
type ClientProperties struct {
	Props           packets.Properties // MQTT v5 properties, most of which can be changed with hooks
	Will            Will               // a will message to be sent on disconnection
	Username        []byte             // the username the client authenticated with
	ProtocolVersion byte               // the mqtt protocol version of the client
	Clean           bool               // indicates the client requested clean start/session in their connect packet
}

// ClientConnection contains the connection transport and metadata for a client.
type ClientConnection struct {
	Conn     net.Conn  // the net.Conn used to establish the connection
	Inline   bool      // indicate if the client is the built-in inline client
	bconn    *bufio.ReadWriter
	Listener string // the id of the listener the client is connected to
	Remote   string // the remote address of the client
}

// outboundBufferSize is the default size for the outbound packet write channel buffer.
const outboundBufferSize = 1024 * 10

// ClientState tracks the state and status of a client's session.
type ClientState struct {
	Inflight        *Inflight      // a map of in-flight qos messages
	Subscriptions   *Subscriptions // a map of the subscription filters a client maintains
	TopicAliases    TopicAliases   // a map of topic aliases known by the client
	disconnected    int64          // the time the client disconnected, for calculating expiry
	outbound        chan *packets.Packet
	isTakenOver     atomic.Bool // indicate that the client has been taken over by a new connection
	Keepalive       uint16      // the number of seconds the connection can wait
	ServerKeepalive bool        // keepalive was set by the server
	outboundQty     int32       // number of messages currently in the outbound queue
	stopOnce        sync.Once
	stopCause       atomic.Value // the reason the client connection was stopped, if any
	endOnce         sync.Once
	done            chan struct{}
}

// Client is an MQTT client connected to the server, or one which is being used
// to deliver messages to subscribers (inline client).
type Client struct {
	deps        *serverDeps
	ID          string
	Net         ClientConnection
	Properties  ClientProperties
	State       ClientState
	packetID    uint32
	connectedAt int64
}

// newClient returns a new instance of Client. This is an internal function which
// expects all the necessary parameters to be parsed and configured correctly, use
// Server.NewClient for a friendlier version if you are wanting to create inline clients.
func newClient(c net.Conn, o *serverDeps) *Client {
	cl := &Client{
		deps: o,
		Net: ClientConnection{
			Conn: c,
		},
		Properties: ClientProperties{
			ProtocolVersion: defaultClientProtocolVersion,
		},
		State: ClientState{
			Inflight:      NewInflights(),
			Subscriptions: NewSubscriptions(),
			TopicAliases:  NewTopicAliases(o.options.Capabilities.TopicAliasMaximum),
			Keepalive:     defaultKeepalive,
			outbound:      make(chan *packets.Packet, outboundBufferSize),
			done:          make(chan struct{}),
		},
	}

	if c != nil {
		cl.Net.bconn = bufio.NewReadWriter(
			bufio.NewReaderSize(c, o.options.ClientNetReadBufferSize),
			bufio.NewWriterSize(c, o.options.ClientNetWriteBufferSize),
		)
		cl.Net.Remote = c.RemoteAddr().String()
	} else {
		cl.Net.Remote = "inline"
		cl.Net.bconn = bufio.NewReadWriter(bufio.NewReader(bytes.NewReader(nil)), bufio.NewWriter(io.Discard))
	}

	cl.ID = xid.New().String()
	cl.State.Inflight.ResetReceiveQuota(int32(o.options.Capabilities.ReceiveMaximum))
	cl.State.Inflight.ResetSendQuota(int32(o.options.Capabilities.ReceiveMaximum))

	return cl
}

// ParseConnect populates the client properties using the connect packet, and
// marks the client as belonging to the specified listener.
func (cl *Client) ParseConnect(listener string, pk packets.Packet) {
	cl.Net.Listener = listener
	cl.ID = pk.Connect.ClientIdentifier
	if cl.ID == "" {
		cl.ID = xid.New().String()
	}

	cl.Properties.Username = pk.Connect.Username
	cl.Properties.Clean = pk.Connect.Clean
	cl.Properties.ProtocolVersion = pk.ProtocolVersion
	cl.Properties.Props = pk.Properties.Copy(false)

	cl.State.Keepalive = pk.Connect.Keepalive

	if pk.Connect.WillFlag {
		atomic.StoreUint32(&cl.Properties.Will.Flag, 1)
		cl.Properties.Will.TopicName = pk.Connect.WillTopic
		cl.Properties.Will.Payload = pk.Connect.WillPayload
		cl.Properties.Will.Qos = pk.Connect.WillQos
		cl.Properties.Will.Retain = pk.Connect.WillRetain
		cl.Properties.Will.User = pk.Connect.WillProperties.User
		cl.Properties.Will.WillDelayInterval = pk.Connect.WillProperties.WillDelayInterval
	}

	cl.connectedAt = time.Now().Unix()
}

// refreshDeadline refreshes the read/write deadline for the net.Conn connection.
func (cl *Client) refreshDeadline(keepalive uint16) {
	if cl.Net.Conn == nil {
		return
	}

	var expiry time.Time
	if keepalive > 0 {
		expiry = time.Now().Add(time.Duration(keepalive+(keepalive/2)) * time.Second) // [MQTT-3.1.2-24]
	}

	_ = cl.Net.Conn.SetDeadline(expiry)
}

// NextPacketID returns the next available packet id for the client, looping back
// to 1 if the maximum allowed packet id has been exhausted.
func (cl *Client) NextPacketID() (uint32, error) {
	i := atomic.LoadUint32(&cl.packetID)
	if i >= uint32(cl.deps.options.Capabilities.maximumPacketID) || i == 0 {
		atomic.StoreUint32(&cl.packetID, 1)
		return 1, nil
	}

	return atomic.AddUint32(&cl.packetID, 1), nil
}

// ReadFixedHeader reads in the values of the next packet's fixed header.
func (cl *Client) ReadFixedHeader(fh *packets.FixedHeader) error {
	p, err := cl.Net.bconn.ReadByte()
	if err != nil {
		return err
	}

	err = fh.Decode(p)
	if err != nil {
		return err
	}

	n, _, err := packets.DecodeLength(cl.Net.bconn.Reader)
	if err != nil {
		return err
	}
	fh.Remaining = n

	return nil
}

// ReadPacket reads the remaining buffer into an MQTT packet.
func (cl *Client) ReadPacket(fh *packets.FixedHeader) (pk packets.Packet, err error) {
	pk.FixedHeader = *fh
	pk.ProtocolVersion = cl.Properties.ProtocolVersion

	if pk.FixedHeader.Remaining > 0 {
		buf := make([]byte, pk.FixedHeader.Remaining)
		n, err := io.ReadFull(cl.Net.bconn, buf)
		if err != nil {
			return pk, err
		}

		atomic.AddInt64(&cl.deps.info.BytesReceived, int64(n))
		if err := pk.Decode(buf); err != nil {
			return pk, err
		}
	} else if err = pk.Decode(nil); err != nil {
		return pk, err
	}

	pk, err = cl.deps.hooks.OnPacketRead(cl, pk)
	if err != nil {
		return pk, err
	}

	return pk, nil
}

// Read loops forever reading new packets from a client connection until
// the client is disconnected, and calls the provided callback for every
// packet which is read.
func (cl *Client) Read(callback func(*Client, packets.Packet) error) error {
	for {
		if cl.Closed() {
			return nil
		}

		cl.refreshDeadline(cl.State.Keepalive)

		fh := new(packets.FixedHeader)
		err := cl.ReadFixedHeader(fh)
		if err != nil {
			return err
		}

		pk, err := cl.ReadPacket(fh)
		if err != nil {
			return err
		}

		err = callback(cl, pk)
		if err != nil {
			return err
		}
	}
}

// WritePacket encodes and writes a packet to the client.
func (cl *Client) WritePacket(pk packets.Packet) error {
	if cl.Closed() {
		return ErrConnectionClosed
	}

	pk.ProtocolVersion = cl.Properties.ProtocolVersion
	pk.Mods.AllowResponseInfo = cl.deps.options.Capabilities.Compatibilities.AlwaysReturnResponseInfo
	pk.Mods.MaxSize = cl.deps.options.Capabilities.MaximumPacketSize

	pk = cl.deps.hooks.OnPacketEncode(cl, pk)

	buf := new(bytes.Buffer)
	err := pk.Encode(buf)
	if err != nil {
		return err
	}

	nb := buf.Bytes()
	if cl.Net.Conn == nil {
		return ErrConnectionClosed
	}

	n, err := cl.Net.bconn.Write(nb)
	if err != nil {
		return err
	}

	if err := cl.Net.bconn.Flush(); err != nil {
		return err
	}

	atomic.AddInt64(&cl.deps.info.BytesSent, int64(n))
	atomic.AddInt64(&cl.deps.info.PacketsSent, 1)
	if pk.FixedHeader.Type == packets.Publish {
		atomic.AddInt64(&cl.deps.info.MessagesSent, 1)
	}

	cl.deps.hooks.OnPacketSent(cl, pk, nb)

	return nil
}

// WriteLoop ranges over the client's outbound channel, writing any packets
// which are received to the client connection.
func (cl *Client) WriteLoop() {
	for {
		select {
		case <-cl.State.done:
			return
		case pk := <-cl.State.outbound:
			if err := cl.WritePacket(*pk); err != nil {
				cl.deps.log.Debug("failed publishing packet", "error", err, "client", cl.ID, "packet", pk)
			}
			atomic.AddInt32(&cl.State.outboundQty, -1)
		}
	}
}

// Closed returns true if the client connection has been closed.
func (cl *Client) Closed() bool {
	select {
	case <-cl.State.done:
		return true
	default:
		return false
	}
}

// IsTakenOver returns true if the client has been superseded by a new connection
// using the same client id.
func (cl *Client) IsTakenOver() bool {
	return cl.State.isTakenOver.Load()
}

// StopCause returns the reason the client connection was closed, if any.
func (cl *Client) StopCause() error {
	if v, ok := cl.State.stopCause.Load().(error); ok {
		return v
	}
	return nil
}

// StopTime returns the unix time at which the client was disconnected, or 0
// if the client is still connected.
func (cl *Client) StopTime() int64 {
	return atomic.LoadInt64(&cl.State.disconnected)
}

// Stop closes the client connection and cleans up any outbound resources, ensuring
// the client is only stopped once regardless of how many times it is called.
func (cl *Client) Stop(err error) {
	cl.State.stopOnce.Do(func() {
		if err != nil {
			cl.State.stopCause.Store(err)
		}

		if cl.Net.Conn != nil {
			_ = cl.Net.Conn.Close()
		}

		atomic.StoreInt64(&cl.State.disconnected, time.Now().Unix())
	})

	cl.State.endOnce.Do(func() {
		close(cl.State.done)
	})
}

// ClearInflights deletes all inflight messages for the client.
func (cl *Client) ClearInflights() {
	for _, tk := range cl.State.Inflight.GetAll(false) {
		cl.State.Inflight.Delete(tk.PacketID)
	}
}

// ClearExpiredInflights deletes any inflight messages which have exceeded their
// expiry interval, and returns the packet ids of the messages deleted.
func (cl *Client) ClearExpiredInflights(now, maximumMessageExpiryInterval int64) []uint16 {
	deleted := []uint16{}
	for _, tk := range cl.State.Inflight.GetAll(false) {
		expiry := tk.Expiry
		if expiry == 0 && maximumMessageExpiryInterval > 0 {
			expiry = tk.Created + maximumMessageExpiryInterval
		}

		if expiry > 0 && now > expiry {
			if cl.State.Inflight.Delete(tk.PacketID) {
				deleted = append(deleted, tk.PacketID)
			}
		}
	}

	return deleted
}

// ResendInflightMessages attempts to resend any pending inflight messages to a
// reconnecting client. If force is true, inflight messages will be resent even
// if their quota has already been exceeded, which is used to empty the queue.
func (cl *Client) ResendInflightMessages(force bool) error {
	if cl.State.Inflight.Len() == 0 {
		return nil
	}

	for _, tk := range cl.State.Inflight.GetAll(false) {
		if tk.FixedHeader.Type == packets.Publish {
			tk.FixedHeader.Dup = true
		}

		if tk.FixedHeader.Type == packets.Pubrel {
			tk.FixedHeader.Dup = false
		}

		if !force && atomic.LoadInt32(&cl.State.Inflight.sendQuota) == 0 {
			continue
		}

		err := cl.WritePacket(tk)
		if err != nil {
			return err
		}

		cl.deps.hooks.OnQosPublish(cl, tk, tk.Created, 0)
	}

	return nil
}
