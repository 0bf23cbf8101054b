package main

import (
	"github.com/pkg/errors"
)

func pongPacket(ping *Packet) *Packet {
	packetPingResponse := NewPacket(packetTypePingResponse, channelSession, 0)
	if data := ping.Bytes(); len(data) > 0 {
		packetPingResponse.Grow(int64(len(data)))
		packetPingResponse.WriteBytesNext(data)
	}
	return packetPingResponse
}

//ClientInit adds the client that sent the packet to the lobby and sends it every spawned target
func (lobby *Lobby) ClientInit(packet *Packet) (*Client, error) {
	lobby.Lock()
	defer lobby.Unlock()

	if !lobby.Running {
		return nil, errors.New("lobby is closed")
	}
	if lobby.IsFull() {
		return nil, errors.New("lobby has reached max capacity")
	}
	if client := lobby.GetClientByAddr(packet.Src); client != nil {
		return nil, errors.New("client is already in this lobby")
	}

	steamID := packet.SteamID
	if packet.Len() >= 8 {
		steamID = packet.ReadU64LENext(1)[0]
	}

	client := NewClient(lobby, packet.Src, steamID, len(lobby.Clients))

	packetClientJoined := NewPacket(packetTypeClientJoined, channelSession, 0)
	packetClientJoined.Grow(9)
	packetClientJoined.WriteByteNext(byte(client.Index))
	packetClientJoined.WriteU64LENext([]uint64{steamID})
	lobby.Broadcast(packetClientJoined, nil) //Tell everyone else before the new client is listening

	lobby.Clients = append(lobby.Clients, client)

	spawned := make([]*NetworkTarget, 0, len(lobby.Objects))
	for _, toy := range lobby.Toys.List() {
		if target, ok := toy.Base().(*NetworkTarget); ok && target.IsSpawned() {
			spawned = append(spawned, target)
		}
	}

	packetClientInit := NewPacket(packetTypeClientInit, channelSession, 0)
	packetClientInit.Grow(4)
	packetClientInit.WriteByteNext(0x1)                //Set to 1 to accept connection
	packetClientInit.WriteByteNext(byte(client.Index)) //Position in the client list
	packetClientInit.WriteU16LENext([]uint16{uint16(len(spawned))})
	lobby.SendTo(packetClientInit, client.Addr)

	for _, target := range spawned {
		lobby.SendTo(target.spawnPacket(), client.Addr)
	}

	log.Info("Client ", client, " joined lobby as client ", client.Index)
	return client, nil
}

//ClientLeave removes a client from the lobby
func (lobby *Lobby) ClientLeave(client *Client) {
	for i := 0; i < len(lobby.Clients); i++ {
		if lobby.Clients[i] == client {
			lobby.Clients = append(lobby.Clients[:i], lobby.Clients[i+1:]...)
			break
		}
	}
	for i := 0; i < len(lobby.Clients); i++ {
		lobby.Clients[i].Index = i
	}

	log.Info("Client ", client, " left lobby")
	client.Close()
}
