package main

import (
	"net"

	swearfilter "github.com/JoshuaDoes/gofuckyourself"
)

type sentPacket struct {
	Packet *Packet
	Addr   string
}

type capture struct {
	sent []sentPacket
}

func (c *capture) send(packet *Packet, addr *net.UDPAddr) {
	//Round trip through the wire format so tests read payloads from the start
	parsed, err := NewPacketFromBytes(packet.AsBytes())
	if err != nil {
		panic(err)
	}
	c.sent = append(c.sent, sentPacket{parsed, addr.String()})
}

func (c *capture) types() []packetType {
	types := make([]packetType, 0, len(c.sent))
	for _, s := range c.sent {
		types = append(types, s.Packet.Type)
	}
	return types
}

func (c *capture) last(pkType packetType) *Packet {
	for i := len(c.sent) - 1; i >= 0; i-- {
		if c.sent[i].Packet.Type == pkType {
			return c.sent[i].Packet
		}
	}
	return nil
}

func (c *capture) reset() {
	c.sent = nil
}

func newTestLobby(cfg *Config, filter *swearfilter.SwearFilter) (*Lobby, *capture) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	c := &capture{}
	return newLobby(cfg, filter, c.send), c
}

func testAddr(port int) *net.UDPAddr {
	return &net.UDPAddr{IP: net.IPv4(127, 0, 0, 1), Port: port}
}

func joinTestClient(lobby *Lobby, port int, steamID uint64) *Client {
	packet := NewPacket(packetTypeClientRequestingIndex, channelSession, 0)
	packet.Grow(8)
	packet.WriteU64LENext([]uint64{steamID})

	parsed, err := NewPacketFromBytes(packet.AsBytes())
	if err != nil {
		panic(err)
	}
	parsed.Src = testAddr(port)

	client, err := lobby.ClientInit(parsed)
	if err != nil {
		panic(err)
	}
	return client
}

//clientPacket builds a packet as if it had been read from the client's socket
func clientPacket(client *Client, pkType packetType, write func(p *Packet)) *Packet {
	packet := NewPacket(pkType, channelObjects, client.SteamID)
	if write != nil {
		write(packet)
	}

	parsed, err := NewPacketFromBytes(packet.AsBytes())
	if err != nil {
		panic(err)
	}
	parsed.Src = client.Addr
	return parsed
}
