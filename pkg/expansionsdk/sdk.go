// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ExtraPlaceholders Contributors

// Package expansionsdk defines the contract between a placeholder
// expansion binary and the host's placeholder engine.
//
// Expansions run as separate processes supervised through the
// HashiCorp go-plugin framework over its net/rpc protocol. The host
// launches the expansion binary, performs the handshake, and calls
// Resolve for every placeholder carrying the expansion's identifier.
//
// Example usage:
//
//	package main
//
//	import "github.com/shedux/extraplaceholders/pkg/expansionsdk"
//
//	type StaticExpansion struct{}
//
//	func (StaticExpansion) Info() expansionsdk.Info {
//		return expansionsdk.Info{Identifier: "static", Version: "1.0.0"}
//	}
//
//	func (StaticExpansion) Resolve(_ expansionsdk.PlayerRef, params string) (string, bool) {
//		if params == "answer" {
//			return "42", true
//		}
//		return "", false
//	}
//
//	func (StaticExpansion) Reload() (time.Duration, error) { return 0, nil }
//
//	func main() {
//		expansionsdk.Serve(StaticExpansion{})
//	}
package expansionsdk

import (
	"errors"
	"net/rpc"
	"time"

	hashiplug "github.com/hashicorp/go-plugin"
)

// PlayerRef identifies the viewer a placeholder resolves against.
type PlayerRef struct {
	// ID is the player's stable identity (a UUID in raw byte form).
	ID [16]byte
	// Name is the display name, empty when unknown.
	Name string
	// Connected reports whether the player has an active session.
	Connected bool
}

// Info describes an expansion to the host.
type Info struct {
	// Identifier is the placeholder prefix the host routes to this
	// expansion, e.g. "extraplaceholders".
	Identifier string
	Author     string
	Version    string
	// Persist keeps the expansion loaded across host placeholder-engine
	// reloads.
	Persist bool
}

// Expansion is the interface an expansion binary implements.
type Expansion interface {
	// Info is called once after the handshake.
	Info() Info

	// Resolve handles one placeholder request. params is the text
	// between the identifier and the closing delimiter. A false second
	// return leaves the placeholder untouched in the source text.
	Resolve(player PlayerRef, params string) (string, bool)

	// Reload re-reads the expansion's configuration, returning the
	// elapsed load time for the host's admin feedback.
	Reload() (time.Duration, error)
}

// HandshakeConfig is the go-plugin handshake configuration.
// Both host and expansions must use the same values.
var HandshakeConfig = hashiplug.HandshakeConfig{
	ProtocolVersion:  1,
	MagicCookieKey:   "EXTRAPLACEHOLDERS_PLUGIN",
	MagicCookieValue: "extraplaceholders-v1",
}

// PluginName is the key expansions register under in the go-plugin
// plugin map.
const PluginName = "expansion"

// Serve starts the expansion server. This should be called from
// main(). It blocks and never returns under normal operation.
func Serve(impl Expansion) {
	if impl == nil {
		panic("expansionsdk: impl cannot be nil")
	}
	hashiplug.Serve(&hashiplug.ServeConfig{
		HandshakeConfig: HandshakeConfig,
		Plugins: map[string]hashiplug.Plugin{
			PluginName: &Plugin{Impl: impl},
		},
	})
}

// Plugin implements go-plugin's Plugin interface over net/rpc.
type Plugin struct {
	// Impl is the served expansion; only the plugin process sets it.
	Impl Expansion
}

// Server returns the RPC server side. Implements hashiplug.Plugin.
func (p *Plugin) Server(*hashiplug.MuxBroker) (any, error) {
	return &rpcServer{impl: p.Impl}, nil
}

// Client returns the host-side proxy. Implements hashiplug.Plugin.
func (p *Plugin) Client(_ *hashiplug.MuxBroker, c *rpc.Client) (any, error) {
	return &Client{rpc: c}, nil
}

// ResolveArgs is the wire form of a Resolve call.
type ResolveArgs struct {
	Player PlayerRef
	Params string
}

// ResolveReply is the wire form of a Resolve result.
type ResolveReply struct {
	Output  string
	Handled bool
}

// ReloadReply is the wire form of a Reload result. Errors cross the
// boundary as strings; net/rpc cannot carry arbitrary error values.
type ReloadReply struct {
	ElapsedNanos int64
	Err          string
}

type rpcServer struct {
	impl Expansion
}

func (s *rpcServer) Info(_ any, reply *Info) error {
	*reply = s.impl.Info()
	return nil
}

func (s *rpcServer) Resolve(args ResolveArgs, reply *ResolveReply) error {
	out, handled := s.impl.Resolve(args.Player, args.Params)
	*reply = ResolveReply{Output: out, Handled: handled}
	return nil
}

func (s *rpcServer) Reload(_ any, reply *ReloadReply) error {
	elapsed, err := s.impl.Reload()
	reply.ElapsedNanos = int64(elapsed)
	if err != nil {
		reply.Err = err.Error()
	}
	return nil
}

// Client is the host-side proxy for a served expansion. It implements
// Expansion over the RPC connection.
type Client struct {
	rpc *rpc.Client
}

// Info implements Expansion. A transport failure yields a zero Info.
func (c *Client) Info() Info {
	var reply Info
	if err := c.rpc.Call("Plugin.Info", new(any), &reply); err != nil {
		return Info{}
	}
	return reply
}

// Resolve implements Expansion. A transport failure reads as
// unhandled, keeping the placeholder visible instead of erroring the
// host's render path.
func (c *Client) Resolve(player PlayerRef, params string) (string, bool) {
	var reply ResolveReply
	args := ResolveArgs{Player: player, Params: params}
	if err := c.rpc.Call("Plugin.Resolve", args, &reply); err != nil {
		return "", false
	}
	return reply.Output, reply.Handled
}

// Reload implements Expansion.
func (c *Client) Reload() (time.Duration, error) {
	var reply ReloadReply
	if err := c.rpc.Call("Plugin.Reload", new(any), &reply); err != nil {
		return 0, err
	}
	if reply.Err != "" {
		return time.Duration(reply.ElapsedNanos), errors.New(reply.Err)
	}
	return time.Duration(reply.ElapsedNanos), nil
}
