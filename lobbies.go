package main

import (
	"net"
	"sync"

	swearfilter "github.com/JoshuaDoes/gofuckyourself"
	"github.com/pkg/errors"

	"github.com/StickFightDev/ShootingTargetSrv/toys"
)

//Lobby holds a group of clients sharing the same shooting range.
//
//The lobby is the host of its targets: every packet is handled with the lobby locked, and every
//method that touches clients or objects expects the lock to be held by the caller.
type Lobby struct {
	sync.Mutex

	Config *Config                  //The server configuration
	Filter *swearfilter.SwearFilter //The chat filter, nil to allow everything

	//Session
	Running bool
	Clients []*Client
	Objects map[uint16]*NetworkTarget //Every instantiated target by network ID
	Toys    *toys.Registry            //The plugin wrappers of the targets

	nextObjectID uint16
	send         func(packet *Packet, addr *net.UDPAddr)
}

//NewLobby returns a new lobby for the server with its range already placed
func NewLobby(srv *Server) (*Lobby, error) {
	lobby := newLobby(srv.Config, srv.Filter, srv.SendPacket)

	if srv.Range != nil {
		lobby.Lock()
		_, err := srv.Range.Place(lobby.Toys)
		lobby.Unlock()
		if err != nil {
			return nil, errors.Wrap(err, "place range")
		}
	}

	log.Debug("Created lobby with ", len(lobby.Objects), " targets")
	return lobby, nil
}

func newLobby(cfg *Config, filter *swearfilter.SwearFilter, send func(*Packet, *net.UDPAddr)) *Lobby {
	lobby := &Lobby{
		Config:  cfg,
		Filter:  filter,
		Running: true,
		Clients: make([]*Client, 0),
		Objects: make(map[uint16]*NetworkTarget),
		send:    send,
	}
	lobby.Toys = toys.NewRegistry(lobby)
	return lobby
}

//IsRunning returns true if the lobby is running
func (lobby *Lobby) IsRunning() bool {
	return lobby.Running
}

//Close destroys every target and kicks every client
func (lobby *Lobby) Close() {
	lobby.Lock()
	defer lobby.Unlock()

	if !lobby.Running {
		return
	}

	for _, toy := range lobby.Toys.List() {
		toy.Destroy()
	}
	for _, target := range lobby.Objects {
		lobby.Destroy(target) //Never wrapped by a toy
	}
	for _, client := range lobby.Clients {
		lobby.SendTo(NewPacket(packetTypeKickPlayer, channelSession, 0), client.Addr)
		client.Close()
	}
	lobby.Clients = nil
	lobby.Running = false
}

//SendTo sends a packet to a single address
func (lobby *Lobby) SendTo(packet *Packet, addr *net.UDPAddr) {
	if addr == nil || lobby.send == nil {
		return
	}
	lobby.send(packet, addr)
}

//Broadcast sends a packet to every client, except the one at the except address
func (lobby *Lobby) Broadcast(packet *Packet, except *net.UDPAddr) {
	for _, client := range lobby.Clients {
		if client.IsClosed() {
			continue
		}
		if except != nil && client.Addr.String() == except.String() {
			continue
		}
		lobby.SendTo(packet, client.Addr)
	}
}

//GetClientCount returns how many clients are connected
func (lobby *Lobby) GetClientCount() int {
	return len(lobby.Clients)
}

//IsFull returns whether the lobby has room for another client
func (lobby *Lobby) IsFull() bool {
	return lobby.GetClientCount() >= lobby.Config.MaxClients
}

//GetClientByAddr returns the client at the address
func (lobby *Lobby) GetClientByAddr(addr *net.UDPAddr) *Client {
	for _, client := range lobby.Clients {
		if !client.IsClosed() && client.Addr.String() == addr.String() {
			return client
		}
	}
	return nil
}

//Handle handles a packet from one of the lobby's clients
func (lobby *Lobby) Handle(packet *Packet) {
	lobby.Lock()
	defer lobby.Unlock()

	client := lobby.GetClientByAddr(packet.Src)
	if client == nil {
		log.Warn("Lobby received packet from unknown client ", packet.Src)
		return
	}

	switch packet.Type {
	case packetTypePing:
		lobby.SendTo(pongPacket(packet), client.Addr)
	case packetTypePingResponse:
	case packetTypePlayerTalked:
		lobby.onPlayerTalked(client, packet)
	case packetTypeClientTargetDamage:
		lobby.onClientTargetDamage(client, packet)
	case packetTypeKickPlayer:
		lobby.ClientLeave(client)
	default:
		log.Error("Unhandled packet from ", client, ": ", packet)
	}
}

//Instantiate creates an unspawned target from a prefab
func (lobby *Lobby) Instantiate(prefab toys.Prefab) (toys.ShootingTarget, error) {
	geometry, ok := targetGeometries[prefab.Name]
	if !ok {
		return nil, errors.Errorf("unknown prefab %s", prefab.Name)
	}

	networkID, err := lobby.nextNetworkID()
	if err != nil {
		return nil, err
	}

	target := newNetworkTarget(lobby, networkID, prefab, geometry)
	lobby.Objects[networkID] = target
	log.Trace("Instantiated ", target.Name(), " as object ", networkID)
	return target, nil
}

//Spawn announces a target to every client
func (lobby *Lobby) Spawn(target toys.ShootingTarget) {
	networkTarget := lobby.networkTarget(target)
	if networkTarget == nil || networkTarget.spawned {
		return
	}

	networkTarget.spawned = true
	lobby.Broadcast(networkTarget.spawnPacket(), nil)
	log.Trace("Spawned object ", networkTarget.NetworkID)
}

//UnSpawn removes a target from every client without destroying it
func (lobby *Lobby) UnSpawn(target toys.ShootingTarget) {
	networkTarget := lobby.networkTarget(target)
	if networkTarget == nil || !networkTarget.spawned {
		return
	}

	networkTarget.spawned = false
	packetObjectDestroyed := NewPacket(packetTypeObjectDestroyed, channelObjects, 0)
	packetObjectDestroyed.Grow(2)
	packetObjectDestroyed.WriteU16LENext([]uint16{networkTarget.NetworkID})
	lobby.Broadcast(packetObjectDestroyed, nil)
	log.Trace("Unspawned object ", networkTarget.NetworkID)
}

//Destroy unspawns a target and forgets it
func (lobby *Lobby) Destroy(target toys.ShootingTarget) {
	networkTarget := lobby.networkTarget(target)
	if networkTarget == nil {
		return
	}

	lobby.UnSpawn(networkTarget)
	networkTarget.stopResetTimer()
	delete(lobby.Objects, networkTarget.NetworkID)
	log.Trace("Destroyed object ", networkTarget.NetworkID)
}

//GetToy returns the plugin wrapper of the target with the network ID
func (lobby *Lobby) GetToy(networkID uint16) *toys.ShootingTargetToy {
	target, ok := lobby.Objects[networkID]
	if !ok {
		return nil
	}
	return lobby.Toys.Get(target)
}

func (lobby *Lobby) networkTarget(target toys.ShootingTarget) *NetworkTarget {
	networkTarget, ok := target.(*NetworkTarget)
	if !ok || networkTarget.Lobby != lobby {
		log.Error("Lobby can't manage foreign target ", target.Name())
		return nil
	}
	return networkTarget
}

func (lobby *Lobby) nextNetworkID() (uint16, error) {
	for i := 0; i < 1<<16; i++ {
		lobby.nextObjectID++
		if lobby.nextObjectID == 0 {
			continue //0 is never a valid object
		}
		if _, taken := lobby.Objects[lobby.nextObjectID]; !taken {
			return lobby.nextObjectID, nil
		}
	}
	return 0, errors.New("lobby has run out of network IDs")
}
