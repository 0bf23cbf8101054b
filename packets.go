package main

import (
	"encoding/binary"
	"fmt"
	"net"
	"time"

	"github.com/pkg/errors"
	crunch "github.com/superwhiskers/crunch/v3"
)

const (
	packetHeaderSize  = 5 //Timestamp and type
	packetTrailerSize = 9 //Steam ID and channel
)

const (
	channelSession = 0 //Joining, leaving, pings
	channelObjects = 1 //Object spawns, updates and target events
	channelChat    = 2 //Player chat and command replies
)

//Packet holds a packet to or from a client
type Packet struct {
	*crunch.Buffer //Holds the payload, and provides additional methods to directly read and write on it

	Timestamp uint32       //The timestamp of the packet
	Src       *net.UDPAddr //The source UDP socket where this packet came from, nil if sending a packet
	Channel   int          //The channel for this packet to travel through
	SteamID   uint64       //The Steam ID of the user who sent this packet
	Type      packetType   //The type of the packet
}

//NewPacket returns an empty packet ready to be written to
func NewPacket(pkType packetType, channel int, steamID uint64) *Packet {
	return &Packet{
		Buffer:    crunch.NewBuffer(make([]byte, 0)),
		Timestamp: uint32(time.Now().Unix()),
		Channel:   channel,
		SteamID:   steamID,
		Type:      pkType,
	}
}

//NewPacketFromBytes parses a raw packet as read from the socket
func NewPacketFromBytes(data []byte) (*Packet, error) {
	if len(data) < packetHeaderSize+packetTrailerSize {
		return nil, errors.Errorf("packet too short: %d bytes", len(data))
	}

	trailer := len(data) - packetTrailerSize
	payload := make([]byte, trailer-packetHeaderSize)
	copy(payload, data[packetHeaderSize:trailer])

	return &Packet{
		Buffer:    crunch.NewBuffer(payload),
		Timestamp: binary.LittleEndian.Uint32(data[0:4]),
		Channel:   int(data[len(data)-1]),
		SteamID:   binary.LittleEndian.Uint64(data[trailer : trailer+8]),
		Type:      packetType(data[4]),
	}, nil
}

//Len returns the size of the payload
func (p *Packet) Len() int {
	return int(p.ByteCapacity())
}

//AsBytes returns the packet as it should be written to the socket
func (p *Packet) AsBytes() []byte {
	array := make([]byte, 0, packetHeaderSize+p.Len()+packetTrailerSize)

	timestamp := make([]byte, 4)
	binary.LittleEndian.PutUint32(timestamp, uint32(time.Now().Unix()))

	steamID := make([]byte, 8)
	binary.LittleEndian.PutUint64(steamID, p.SteamID)

	array = append(array, timestamp...)    //Timestamp of the packet
	array = append(array, byte(p.Type))    //Type of the packet
	array = append(array, p.Bytes()...)    //Packet data
	array = append(array, steamID...)      //Steam ID of the source user
	array = append(array, byte(p.Channel)) //Channel for packet to travel
	return array
}

//ShouldLog returns false for packets that are too frequent to log
func (p *Packet) ShouldLog() bool {
	switch p.Type {
	case packetTypePing, packetTypePingResponse, packetTypeObjectTransform:
		return false
	}
	return true
}

func (p *Packet) String() string {
	return fmt.Sprintf("[@%s-%d %s] %s: %s %v", p.Src, p.Channel, time.Unix(int64(p.Timestamp), 0).String(), steamUsername(p.SteamID), p.Type, p.Bytes())
}

type packetType byte

const (
	packetTypePing packetType = iota
	packetTypePingResponse
	packetTypeClientJoined
	packetTypeClientRequestingAccepting
	packetTypeClientAccepted
	packetTypeClientInit
	packetTypeClientRequestingIndex
	packetTypePlayerTalked
	packetTypeObjectSpawned
	packetTypeObjectDestroyed
	packetTypeObjectUpdate
	packetTypeObjectTransform
	packetTypeTargetInfo
	packetTypeTargetHit
	packetTypeTargetCleared
	packetTypeClientTargetDamage
	packetTypeKickPlayer
)

func (pkType packetType) String() string {
	switch pkType {
	case packetTypePing:
		return "ping"
	case packetTypePingResponse:
		return "pingResponse"
	case packetTypeClientJoined:
		return "clientJoined"
	case packetTypeClientRequestingAccepting:
		return "clientRequestingAccepting"
	case packetTypeClientAccepted:
		return "clientAccepted"
	case packetTypeClientInit:
		return "clientInit"
	case packetTypeClientRequestingIndex:
		return "clientRequestingIndex"
	case packetTypePlayerTalked:
		return "playerTalked"
	case packetTypeObjectSpawned:
		return "objectSpawned"
	case packetTypeObjectDestroyed:
		return "objectDestroyed"
	case packetTypeObjectUpdate:
		return "objectUpdate"
	case packetTypeObjectTransform:
		return "objectTransform"
	case packetTypeTargetInfo:
		return "targetInfo"
	case packetTypeTargetHit:
		return "targetHit"
	case packetTypeTargetCleared:
		return "targetCleared"
	case packetTypeClientTargetDamage:
		return "clientTargetDamage"
	case packetTypeKickPlayer:
		return "kickPlayer"
	}

	return fmt.Sprintf("unknown(%d)", byte(pkType))
}
