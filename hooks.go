// SPDX-License-Identifier: MIT
// SPDX-FileCopyrightText: 2022 wavebroker contributors
// SPDX-FileContributor: wavebroker, thedevop, dgduncan

package mqtt

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/wavebroker/mqtt/hooks/storage"
	"github.com/wavebroker/mqtt/packets"
	"github.com/wavebroker/mqtt/system"
)

const (
	SetOptions byte = iota
	OnSysInfoTick
	OnStarted
	OnStopped
	OnConnectAuthenticate
	OnACLCheck
	OnConnect
	OnSessionEstablish
	OnSessionEstablished
	OnDisconnect
	OnAuthPacket
	OnPacketRead
	OnPacketEncode
	OnPacketSent
	OnPacketProcessed
	OnSubscribe
	OnSubscribed
	OnSelectSubscribers
	OnUnsubscribe
	OnUnsubscribed
	OnPublish
	OnPublished
	OnPublishDropped
	OnRetainMessage
	OnRetainPublished
	OnQosPublish
	OnQosComplete
	OnQosDropped
	OnPacketIDExhausted
	OnWill
	OnWillSent
	OnClientExpired
	OnRetainedExpired
	StoredClients
	StoredSubscriptions
	StoredInflightMessages
	StoredRetainedMessages
	StoredSysInfo
)

var (
	// ErrInvalidConfigType indicates a different Type of config value was expected to what was received.
	ErrInvalidConfigType = errors.New("invalid config type provided")
)

// Hook provides an interface of handlers for different events which occur
// during the lifecycle of the broker.
type Hook interface {
	ID() string
	Provides(b byte) bool
	Init(config any) error
	Stop() error
	SetOpts(l *slog.Logger, o *HookOptions)
	OnStarted()
	OnStopped()
	OnConnectAuthenticate(cl *Client, pk packets.Packet) bool
	OnACLCheck(cl *Client, topic string, write bool) bool
	OnSysInfoTick(*system.Info)
	OnConnect(cl *Client, pk packets.Packet) error
	OnSessionEstablish(cl *Client, pk packets.Packet)
	OnSessionEstablished(cl *Client, pk packets.Packet)
	OnDisconnect(cl *Client, err error, expire bool)
	OnAuthPacket(cl *Client, pk packets.Packet) (packets.Packet, error)
	OnPacketRead(cl *Client, pk packets.Packet) (packets.Packet, error) // triggers when a new packet is received by a client, but before packet validation
	OnPacketEncode(cl *Client, pk packets.Packet) packets.Packet        // modify a packet before it is byte-encoded and written to the client
	OnPacketSent(cl *Client, pk packets.Packet, b []byte)               // triggers when packet bytes have been written to the client
	OnPacketProcessed(cl *Client, pk packets.Packet, err error)         // triggers after a packet from the client been processed (handled)
	OnSubscribe(cl *Client, pk packets.Packet) packets.Packet
	OnSubscribed(cl *Client, pk packets.Packet, reasonCodes []byte)
	OnSelectSubscribers(subs *Subscribers, pk packets.Packet) *Subscribers
	OnUnsubscribe(cl *Client, pk packets.Packet) packets.Packet
	OnUnsubscribed(cl *Client, pk packets.Packet)
	OnPublish(cl *Client, pk packets.Packet) (packets.Packet, error)
	OnPublished(cl *Client, pk packets.Packet)
	OnPublishDropped(cl *Client, pk packets.Packet)
	OnRetainMessage(cl *Client, pk packets.Packet, r int64)
	OnRetainPublished(cl *Client, pk packets.Packet)
	OnQosPublish(cl *Client, pk packets.Packet, sent int64, resends int)
	OnQosComplete(cl *Client, pk packets.Packet)
	OnQosDropped(cl *Client, pk packets.Packet)
	OnPacketIDExhausted(cl *Client, pk packets.Packet)
	OnWill(cl *Client, will Will) (Will, error)
	OnWillSent(cl *Client, pk packets.Packet)
	OnClientExpired(cl *Client)
	OnRetainedExpired(filter string)
	StoredClients() ([]storage.Client, error)
	StoredSubscriptions() ([]storage.Subscription, error)
	StoredInflightMessages() ([]storage.Message, error)
	StoredRetainedMessages() ([]storage.Message, error)
	StoredSysInfo() (storage.SystemInfo, error)
}

// HookOptions contains values which are inherited from the server on initialisation.
type HookOptions struct {
	Capabilities *Capabilities
}

// HookLoadConfig defines the configuration for a hook loaded from config,
// such as a config file. The Hook is instantiated by the caller (there
// is no way to instantiate a hook implementation purely from config data)
// and the Config value is passed to it as the hook's initialisation options.
type HookLoadConfig struct {
	Hook   Hook
	Config any
}

// Hooks holds every Hook attached to a Server and dispatches lifecycle
// events to whichever of them declare support for a given event via
// Provides.
type Hooks struct {
	Log        *slog.Logger   // logger shared with attached hooks
	chain      atomic.Value   // holds the current []Hook snapshot
	shutdown   sync.WaitGroup // tracks outstanding Stop() calls
	count      int64          // number of hooks attached
	sync.Mutex                // guards Add against concurrent registration
}

// Len returns the number of hooks added.
func (h *Hooks) Len() int64 {
	return atomic.LoadInt64(&h.count)
}

// Provides reports whether any attached hook declares support for one of
// the given event ids.
func (h *Hooks) Provides(events ...byte) bool {
	for _, hook := range h.GetAll() {
		for _, event := range events {
			if hook.Provides(event) {
				return true
			}
		}
	}

	return false
}

// Add registers and initializes a new hook.
func (h *Hooks) Add(hook Hook, config any) error {
	h.Lock()
	defer h.Unlock()

	if err := hook.Init(config); err != nil {
		return fmt.Errorf("failed initialising %s hook: %w", hook.ID(), err)
	}

	current, _ := h.chain.Load().([]Hook)
	h.chain.Store(append(current, hook))
	atomic.AddInt64(&h.count, 1)
	h.shutdown.Add(1)

	return nil
}

// GetAll returns the current slice of attached hooks.
func (h *Hooks) GetAll() []Hook {
	current, _ := h.chain.Load().([]Hook)
	return current
}

// Stop asks every attached hook to shut down and waits for them all to finish.
func (h *Hooks) Stop() {
	go func() {
		for _, hook := range h.GetAll() {
			h.Log.Info("stopping hook", "hook", hook.ID())
			if err := hook.Stop(); err != nil {
				h.Log.Debug("problem stopping hook", "error", err, "hook", hook.ID())
			}

			h.shutdown.Done()
		}
	}()

	h.shutdown.Wait()
}

// notify runs fn against every attached hook that declares support for
// event, in attachment order. It is the shared body behind the many
// fire-and-forget (no return value) dispatch methods below.
func (h *Hooks) notify(event byte, fn func(Hook)) {
	for _, hook := range h.GetAll() {
		if hook.Provides(event) {
			fn(hook)
		}
	}
}

// OnSysInfoTick is called when the $SYS topic values are published out.
func (h *Hooks) OnSysInfoTick(sys *system.Info) {
	h.notify(OnSysInfoTick, func(hook Hook) { hook.OnSysInfoTick(sys) })
}

// OnStarted is called when the server has successfully started.
func (h *Hooks) OnStarted() {
	h.notify(OnStarted, func(hook Hook) { hook.OnStarted() })
}

// OnStopped is called when the server has successfully stopped.
func (h *Hooks) OnStopped() {
	h.notify(OnStopped, func(hook Hook) { hook.OnStopped() })
}

// OnConnect runs every attached hook's connection check in attachment order,
// stopping at the first one that rejects the connection with a packets.Code.
func (h *Hooks) OnConnect(cl *Client, pk packets.Packet) error {
	for _, hook := range h.GetAll() {
		if !hook.Provides(OnConnect) {
			continue
		}
		if err := hook.OnConnect(cl, pk); err != nil {
			return err
		}
	}
	return nil
}

// OnSessionEstablish is called right after a new client connects and authenticates and right before
// the session is established and CONNACK is sent.
func (h *Hooks) OnSessionEstablish(cl *Client, pk packets.Packet) {
	h.notify(OnSessionEstablish, func(hook Hook) { hook.OnSessionEstablish(cl, pk) })
}

// OnSessionEstablished is called when a new client establishes a session (after OnConnect).
func (h *Hooks) OnSessionEstablished(cl *Client, pk packets.Packet) {
	h.notify(OnSessionEstablished, func(hook Hook) { hook.OnSessionEstablished(cl, pk) })
}

// OnDisconnect is called when a client is disconnected for any reason.
func (h *Hooks) OnDisconnect(cl *Client, err error, expire bool) {
	h.notify(OnDisconnect, func(hook Hook) { hook.OnDisconnect(cl, err, expire) })
}

// OnPacketRead lets every attached hook inspect or rewrite an inbound packet
// before it reaches packet processing. A hook that rejects the packet with
// ErrRejectPacket short-circuits the chain and returns the original, unmodified
// packet; any other hook error is skipped over without logging, and that
// hook's returned packet is discarded.
func (h *Hooks) OnPacketRead(cl *Client, pk packets.Packet) (packets.Packet, error) {
	modified := pk
	for _, hook := range h.GetAll() {
		if !hook.Provides(OnPacketRead) {
			continue
		}

		next, err := hook.OnPacketRead(cl, modified)
		if err != nil {
			if errors.Is(err, packets.ErrRejectPacket) {
				h.Log.Debug("packet rejected", "hook", hook.ID(), "packet", modified)
				return pk, err
			}
			continue
		}

		modified = next
	}

	return modified, nil
}

// OnAuthPacket lets every attached hook rewrite an AUTH packet in sequence,
// for brokers implementing their own enhanced-authentication exchange.
func (h *Hooks) OnAuthPacket(cl *Client, pk packets.Packet) (packets.Packet, error) {
	modified := pk
	for _, hook := range h.GetAll() {
		if !hook.Provides(OnAuthPacket) {
			continue
		}

		next, err := hook.OnAuthPacket(cl, modified)
		if err != nil {
			return pk, err
		}

		modified = next
	}

	return modified, nil
}

// OnPacketEncode runs immediately before a packet is byte-encoded and
// written out, letting each attached hook rewrite it in sequence.
func (h *Hooks) OnPacketEncode(cl *Client, pk packets.Packet) packets.Packet {
	for _, hook := range h.GetAll() {
		if hook.Provides(OnPacketEncode) {
			pk = hook.OnPacketEncode(cl, pk)
		}
	}

	return pk
}

// OnPacketProcessed is called when a packet has been received and successfully handled by the broker.
func (h *Hooks) OnPacketProcessed(cl *Client, pk packets.Packet, err error) {
	h.notify(OnPacketProcessed, func(hook Hook) { hook.OnPacketProcessed(cl, pk, err) })
}

// OnPacketSent is called when a packet has been sent to a client. It takes a bytes parameter
// containing the bytes sent.
func (h *Hooks) OnPacketSent(cl *Client, pk packets.Packet, b []byte) {
	h.notify(OnPacketSent, func(hook Hook) { hook.OnPacketSent(cl, pk, b) })
}

// OnSubscribe runs before a Subscribe packet is processed, letting each
// attached hook rewrite the subscription values in attachment order.
func (h *Hooks) OnSubscribe(cl *Client, pk packets.Packet) packets.Packet {
	for _, hook := range h.GetAll() {
		if hook.Provides(OnSubscribe) {
			pk = hook.OnSubscribe(cl, pk)
		}
	}
	return pk
}

// OnSubscribed is called when a client subscribes to one or more filters.
func (h *Hooks) OnSubscribed(cl *Client, pk packets.Packet, reasonCodes []byte) {
	h.notify(OnSubscribed, func(hook Hook) { hook.OnSubscribed(cl, pk, reasonCodes) })
}

// OnSelectSubscribers is called when subscribers have been collected for a topic, but before
// shared subscription subscribers have been selected. This hook can be used to programmatically
// remove or add clients to a publish to subscribers process, or to select the subscriber for a shared
// group in a custom manner (such as based on client id, ip, etc).
func (h *Hooks) OnSelectSubscribers(subs *Subscribers, pk packets.Packet) *Subscribers {
	for _, hook := range h.GetAll() {
		if hook.Provides(OnSelectSubscribers) {
			subs = hook.OnSelectSubscribers(subs, pk)
		}
	}
	return subs
}

// OnUnsubscribe runs before an Unsubscribe packet is processed, letting each
// attached hook rewrite the unsubscription values in attachment order.
func (h *Hooks) OnUnsubscribe(cl *Client, pk packets.Packet) packets.Packet {
	for _, hook := range h.GetAll() {
		if hook.Provides(OnUnsubscribe) {
			pk = hook.OnUnsubscribe(cl, pk)
		}
	}
	return pk
}

// OnUnsubscribed is called when a client unsubscribes from one or more filters.
func (h *Hooks) OnUnsubscribed(cl *Client, pk packets.Packet) {
	h.notify(OnUnsubscribed, func(hook Hook) { hook.OnUnsubscribed(cl, pk) })
}

// OnPublish runs before an incoming Publish packet is processed, letting
// each attached hook rewrite it in sequence. Any hook error - rejection via
// ErrRejectPacket or otherwise - aborts the chain and is returned as-is,
// along with the original, unmodified packet.
func (h *Hooks) OnPublish(cl *Client, pk packets.Packet) (packets.Packet, error) {
	modified := pk
	for _, hook := range h.GetAll() {
		if !hook.Provides(OnPublish) {
			continue
		}

		next, err := hook.OnPublish(cl, modified)
		if err != nil {
			if errors.Is(err, packets.ErrRejectPacket) {
				h.Log.Debug("publish packet rejected", "error", err, "hook", hook.ID(), "packet", modified)
			} else {
				h.Log.Error("publish packet error", "error", err, "hook", hook.ID(), "packet", modified)
			}
			return pk, err
		}
		modified = next
	}

	return modified, nil
}

// OnPublished is called when a client has published a message to subscribers.
func (h *Hooks) OnPublished(cl *Client, pk packets.Packet) {
	h.notify(OnPublished, func(hook Hook) { hook.OnPublished(cl, pk) })
}

// OnPublishDropped is called when a message to a client was dropped instead of delivered
// such as when a client is too slow to respond.
func (h *Hooks) OnPublishDropped(cl *Client, pk packets.Packet) {
	h.notify(OnPublishDropped, func(hook Hook) { hook.OnPublishDropped(cl, pk) })
}

// OnRetainMessage is called then a published message is retained.
func (h *Hooks) OnRetainMessage(cl *Client, pk packets.Packet, r int64) {
	h.notify(OnRetainMessage, func(hook Hook) { hook.OnRetainMessage(cl, pk, r) })
}

// OnRetainPublished is called when a retained message is published.
func (h *Hooks) OnRetainPublished(cl *Client, pk packets.Packet) {
	h.notify(OnRetainPublished, func(hook Hook) { hook.OnRetainPublished(cl, pk) })
}

// OnQosPublish is called when a publish packet with Qos >= 1 is issued to a subscriber -
// that is, when a new inflight message is created or resent. Typically used to persist it.
func (h *Hooks) OnQosPublish(cl *Client, pk packets.Packet, sent int64, resends int) {
	h.notify(OnQosPublish, func(hook Hook) { hook.OnQosPublish(cl, pk, sent, resends) })
}

// OnQosComplete is called when an inflight message's Qos flow resolves. Typically used to
// remove it from a store.
func (h *Hooks) OnQosComplete(cl *Client, pk packets.Packet) {
	h.notify(OnQosComplete, func(hook Hook) { hook.OnQosComplete(cl, pk) })
}

// OnQosDropped is called when an inflight message's Qos flow expires or is abandoned.
// Typically used to remove it from a store.
func (h *Hooks) OnQosDropped(cl *Client, pk packets.Packet) {
	h.notify(OnQosDropped, func(hook Hook) { hook.OnQosDropped(cl, pk) })
}

// OnPacketIDExhausted is called when the client runs out of unused packet ids to
// assign to a packet.
func (h *Hooks) OnPacketIDExhausted(cl *Client, pk packets.Packet) {
	h.notify(OnPacketIDExhausted, func(hook Hook) { hook.OnPacketIDExhausted(cl, pk) })
}

// OnWill is called when a client disconnects and publishes an LWT message. This method
// differs from OnWillSent in that it allows you to modify the LWT message before it is
// published. The return values of the hook methods are passed-through in the order
// the hooks were attached.
func (h *Hooks) OnWill(cl *Client, will Will) Will {
	for _, hook := range h.GetAll() {
		if hook.Provides(OnWill) {
			mlwt, err := hook.OnWill(cl, will)
			if err != nil {
				h.Log.Error("parse will error",
					"error", err,
					"hook", hook.ID(),
					"will", will)
				continue
			}
			will = mlwt
		}
	}

	return will
}

// OnWillSent is called when an LWT message has been issued from a disconnecting client.
func (h *Hooks) OnWillSent(cl *Client, pk packets.Packet) {
	h.notify(OnWillSent, func(hook Hook) { hook.OnWillSent(cl, pk) })
}

// OnClientExpired is called when a client session has expired and should be deleted.
func (h *Hooks) OnClientExpired(cl *Client) {
	h.notify(OnClientExpired, func(hook Hook) { hook.OnClientExpired(cl) })
}

// OnRetainedExpired is called when a retained message has expired and should be deleted.
func (h *Hooks) OnRetainedExpired(filter string) {
	h.notify(OnRetainedExpired, func(hook Hook) { hook.OnRetainedExpired(filter) })
}

// StoredClients returns all clients, e.g. from a persistent store, is used to
// populate the server clients list before start.
func (h *Hooks) StoredClients() (v []storage.Client, err error) {
	for _, hook := range h.GetAll() {
		if hook.Provides(StoredClients) {
			v, err := hook.StoredClients()
			if err != nil {
				h.Log.Error("failed to load clients", "error", err, "hook", hook.ID())
				return v, err
			}

			if len(v) > 0 {
				return v, nil
			}
		}
	}

	return
}

// StoredSubscriptions returns all subcriptions, e.g. from a persistent store, and is
// used to populate the server subscriptions list before start.
func (h *Hooks) StoredSubscriptions() (v []storage.Subscription, err error) {
	for _, hook := range h.GetAll() {
		if hook.Provides(StoredSubscriptions) {
			v, err := hook.StoredSubscriptions()
			if err != nil {
				h.Log.Error("failed to load subscriptions", "error", err, "hook", hook.ID())
				return v, err
			}

			if len(v) > 0 {
				return v, nil
			}
		}
	}

	return
}

// StoredInflightMessages returns all inflight messages, e.g. from a persistent store,
// and is used to populate the restored clients with inflight messages before start.
func (h *Hooks) StoredInflightMessages() (v []storage.Message, err error) {
	for _, hook := range h.GetAll() {
		if hook.Provides(StoredInflightMessages) {
			v, err := hook.StoredInflightMessages()
			if err != nil {
				h.Log.Error("failed to load inflight messages", "error", err, "hook", hook.ID())
				return v, err
			}

			if len(v) > 0 {
				return v, nil
			}
		}
	}

	return
}

// StoredRetainedMessages returns all retained messages, e.g. from a persistent store,
// and is used to populate the server topics with retained messages before start.
func (h *Hooks) StoredRetainedMessages() (v []storage.Message, err error) {
	for _, hook := range h.GetAll() {
		if hook.Provides(StoredRetainedMessages) {
			v, err := hook.StoredRetainedMessages()
			if err != nil {
				h.Log.Error("failed to load retained messages", "error", err, "hook", hook.ID())
				return v, err
			}

			if len(v) > 0 {
				return v, nil
			}
		}
	}

	return
}

// StoredSysInfo returns a set of system info values.
func (h *Hooks) StoredSysInfo() (v storage.SystemInfo, err error) {
	for _, hook := range h.GetAll() {
		if hook.Provides(StoredSysInfo) {
			v, err := hook.StoredSysInfo()
			if err != nil {
				h.Log.Error("failed to load $SYS info", "error", err, "hook", hook.ID())
				return v, err
			}

			if v.Version != "" {
				return v, nil
			}
		}
	}

	return
}

// OnConnectAuthenticate is called when a user attempts to authenticate with the server.
// An implementation of this method MUST be used to allow or deny access to the
// server (see hooks/auth/allow_all or basic). It can be used in custom hooks to
// check connecting users against an existing user database.
func (h *Hooks) OnConnectAuthenticate(cl *Client, pk packets.Packet) bool {
	for _, hook := range h.GetAll() {
		if hook.Provides(OnConnectAuthenticate) {
			if ok := hook.OnConnectAuthenticate(cl, pk); ok {
				return true
			}
		}
	}

	return false
}

// OnACLCheck is called when a user attempts to publish or subscribe to a topic filter.
// An implementation of this method MUST be used to allow or deny access to the
// (see hooks/auth/allow_all or basic). It can be used in custom hooks to
// check publishing and subscribing users against an existing permissions or roles database.
func (h *Hooks) OnACLCheck(cl *Client, topic string, write bool) bool {
	for _, hook := range h.GetAll() {
		if hook.Provides(OnACLCheck) {
			if ok := hook.OnACLCheck(cl, topic, write); ok {
				return true
			}
		}
	}

	return false
}

// HookBase is a no-op implementation of Hook, embedded by every concrete
// hook so it only has to implement the handful of methods it actually
// cares about. Provides must be overridden or the hook will never fire.
type HookBase struct {
	Hook
	Log  *slog.Logger
	Opts *HookOptions
}

func (h *HookBase) ID() string { return "base" }

func (h *HookBase) Provides(b byte) bool { return false }

func (h *HookBase) Init(config any) error { return nil }

// SetOpts propagates server-owned values to the hook; the server calls this
// itself during Add and it should not be invoked manually.
func (h *HookBase) SetOpts(l *slog.Logger, opts *HookOptions) {
	h.Log = l
	h.Opts = opts
}

func (h *HookBase) Stop() error { return nil }

func (h *HookBase) OnStarted() {}
func (h *HookBase) OnStopped() {}
func (h *HookBase) OnSysInfoTick(*system.Info) {}

func (h *HookBase) OnConnectAuthenticate(cl *Client, pk packets.Packet) bool { return false }
func (h *HookBase) OnACLCheck(cl *Client, topic string, write bool) bool    { return false }

func (h *HookBase) OnConnect(cl *Client, pk packets.Packet) error { return nil }
func (h *HookBase) OnSessionEstablish(cl *Client, pk packets.Packet)   {}
func (h *HookBase) OnSessionEstablished(cl *Client, pk packets.Packet) {}
func (h *HookBase) OnDisconnect(cl *Client, err error, expire bool)    {}

func (h *HookBase) OnAuthPacket(cl *Client, pk packets.Packet) (packets.Packet, error) {
	return pk, nil
}

func (h *HookBase) OnPacketRead(cl *Client, pk packets.Packet) (packets.Packet, error) {
	return pk, nil
}

func (h *HookBase) OnPacketEncode(cl *Client, pk packets.Packet) packets.Packet { return pk }
func (h *HookBase) OnPacketSent(cl *Client, pk packets.Packet, b []byte)        {}
func (h *HookBase) OnPacketProcessed(cl *Client, pk packets.Packet, err error)  {}

func (h *HookBase) OnSubscribe(cl *Client, pk packets.Packet) packets.Packet { return pk }
func (h *HookBase) OnSubscribed(cl *Client, pk packets.Packet, reasonCodes []byte) {}

func (h *HookBase) OnSelectSubscribers(subs *Subscribers, pk packets.Packet) *Subscribers {
	return subs
}

func (h *HookBase) OnUnsubscribe(cl *Client, pk packets.Packet) packets.Packet { return pk }
func (h *HookBase) OnUnsubscribed(cl *Client, pk packets.Packet)               {}

func (h *HookBase) OnPublish(cl *Client, pk packets.Packet) (packets.Packet, error) {
	return pk, nil
}

func (h *HookBase) OnPublished(cl *Client, pk packets.Packet)                   {}
func (h *HookBase) OnPublishDropped(cl *Client, pk packets.Packet)              {}
func (h *HookBase) OnRetainMessage(cl *Client, pk packets.Packet, r int64)      {}
func (h *HookBase) OnRetainPublished(cl *Client, pk packets.Packet)            {}
func (h *HookBase) OnQosPublish(cl *Client, pk packets.Packet, sent int64, resends int) {}
func (h *HookBase) OnQosComplete(cl *Client, pk packets.Packet)                 {}
func (h *HookBase) OnQosDropped(cl *Client, pk packets.Packet)                 {}
func (h *HookBase) OnPacketIDExhausted(cl *Client, pk packets.Packet)          {}

// OnWill is called when a disconnecting client publishes an LWT message,
// and may rewrite it before OnWillSent fires.
func (h *HookBase) OnWill(cl *Client, will Will) (Will, error) { return will, nil }

func (h *HookBase) OnWillSent(cl *Client, pk packets.Packet) {}
func (h *HookBase) OnClientExpired(cl *Client)                {}
func (h *HookBase) OnRetainedExpired(topic string)             {}

// The Stored* methods back a persistent-storage hook; the zero value
// (nil slice, no error) tells the caller this hook has nothing stored.
func (h *HookBase) StoredClients() ([]storage.Client, error)             { return nil, nil }
func (h *HookBase) StoredSubscriptions() ([]storage.Subscription, error) { return nil, nil }
func (h *HookBase) StoredInflightMessages() ([]storage.Message, error)   { return nil, nil }
func (h *HookBase) StoredRetainedMessages() ([]storage.Message, error)   { return nil, nil }
func (h *HookBase) StoredSysInfo() (storage.SystemInfo, error)           { return storage.SystemInfo{}, nil }
