package main

import (
	"net"
)

//Client holds a session with a lobby
type Client struct {
	Lobby *Lobby //The lobby that's hosting this client

	//The actual client details
	Addr    *net.UDPAddr
	SteamID uint64
	Index   int //The index of the client in the lobby
	Closed  bool
}

//NewClient returns a new client
func NewClient(lobby *Lobby, addr *net.UDPAddr, steamID uint64, index int) *Client {
	return &Client{
		Lobby:   lobby,
		Addr:    addr,
		SteamID: steamID,
		Index:   index,
	}
}

//Close closes a client
func (client *Client) Close() {
	if client.Closed {
		return
	}
	client.Addr = nil
	client.Closed = true
}

//IsClosed returns if the client is closed
func (client *Client) IsClosed() bool {
	return client.Closed
}

//IsAdmin returns whether the client may run admin commands
func (client *Client) IsAdmin() bool {
	if client.Lobby == nil || client.Lobby.Config == nil {
		return false
	}
	return client.Lobby.Config.IsAdmin(client.SteamID)
}

func (client *Client) String() string {
	return steamUsername(client.SteamID) + "@" + client.Addr.String()
}
