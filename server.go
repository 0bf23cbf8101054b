package main

import (
	"net"
	"runtime"
	"sync"

	swearfilter "github.com/JoshuaDoes/gofuckyourself"
	"github.com/pkg/errors"
)

const maxBufferSize = 8192

//Server holds a shooting range dedicated server
type Server struct {
	sync.Mutex

	Addr   string
	Config *Config
	Range  *Range //The range placed in every new lobby, nil for empty lobbies

	//Session
	Running bool
	Sock    *net.UDPConn
	Lobbies []*Lobby
	Filter  *swearfilter.SwearFilter
}

//NewServer returns a new server for the configuration
func NewServer(cfg *Config) (*Server, error) {
	srv := &Server{
		Addr:    cfg.Address,
		Config:  cfg,
		Lobbies: make([]*Lobby, 0),
	}

	if len(cfg.Swears) > 0 {
		srv.Filter = swearfilter.NewSwearFilter(true, cfg.Swears...)
	}

	if cfg.Range != "" {
		r, err := LoadRange(cfg.Range)
		if err != nil {
			return nil, err
		}
		srv.Range = r
	}

	return srv, nil
}

//IsRunning returns true if the server is currently running
func (srv *Server) IsRunning() bool {
	srv.Lock()
	defer srv.Unlock()
	return srv.Running
}

//Start opens the socket and starts reading packets
func (srv *Server) Start() error {
	udpAddr, err := net.ResolveUDPAddr("udp4", srv.Addr)
	if err != nil {
		return errors.Wrapf(err, "resolve %s", srv.Addr)
	}
	log.Trace("Resolved UDP address for udp4 address ", srv.Addr)

	sock, err := net.ListenUDP("udp4", udpAddr)
	if err != nil {
		return errors.Wrapf(err, "listen on %s", udpAddr)
	}
	log.Trace("Listening on UDP address ", udpAddr)

	srv.Lock()
	srv.Sock = sock
	srv.Running = true
	srv.Unlock()
	log.Info("Server is running on ", udpAddr)

	for i := 0; i < runtime.NumCPU(); i++ {
		go srv.ReadPackets()
	}
	return nil
}

//Close closes every lobby and the socket
func (srv *Server) Close() {
	srv.Lock()
	defer srv.Unlock()

	if !srv.Running {
		return
	}
	log.Info("Closing server!")

	for _, lobby := range srv.Lobbies {
		lobby.Close()
	}
	srv.Lobbies = nil

	srv.Running = false
	srv.Sock.Close()
}

//ReadPackets reads packets until the server is closed
func (srv *Server) ReadPackets() {
	for srv.IsRunning() {
		buffer := make([]byte, maxBufferSize)

		//Block until a packet is read into the buffer
		n, addr, err := srv.Sock.ReadFromUDP(buffer)
		if err != nil {
			if srv.IsRunning() {
				log.Error(addr, ": ", err)
			}
			continue
		}

		go srv.Handle(buffer[:n], addr)
	}
}

//SendPacket sends a packet to a destination address
func (srv *Server) SendPacket(packet *Packet, addr *net.UDPAddr) {
	if srv.Sock == nil {
		return //Not started
	}
	if _, err := srv.Sock.WriteToUDP(packet.AsBytes(), addr); err != nil {
		log.Error("unable to send ", packet.Type, " to ", addr, ": ", err)
		return
	}

	if packet.ShouldLog() {
		log.Trace("Sent to ", addr, ": ", packet)
	}
}

//Handle handles a raw packet for the server
func (srv *Server) Handle(buffer []byte, addr *net.UDPAddr) {
	packet, err := NewPacketFromBytes(buffer)
	if err != nil {
		log.Error("unable to create packet from bytes to handle: ", err)
		return
	}
	packet.Src = addr

	if packet.ShouldLog() {
		log.Trace("Received from ", addr, ": ", packet)
	}

	if lobby := srv.GetLobbyByAddr(addr); lobby != nil {
		lobby.Handle(packet)
		return
	}

	switch packet.Type {
	case packetTypePing:
		srv.SendPacket(pongPacket(packet), addr)

	case packetTypeClientRequestingAccepting:
		srv.ClientAccept(addr)

	case packetTypeClientRequestingIndex:
		lobby, err := srv.FindLobby()
		if err != nil {
			log.Error("unable to find a lobby: ", err)
			srv.ClientReject(addr, err.Error())
			return
		}
		if _, err := lobby.ClientInit(packet); err != nil {
			log.Error("unable to init client into lobby: ", err)
			srv.ClientReject(addr, err.Error())
		}

	case packetTypeKickPlayer:
		//Just so we handle this if the client isn't in a lobby yet

	default:
		log.Error("Unhandled packet from ", addr, ": ", packet)
	}
}

//ClientAccept accepts a client
func (srv *Server) ClientAccept(addr *net.UDPAddr) {
	srv.SendPacket(NewPacket(packetTypeClientAccepted, channelSession, 0), addr)
	log.Debug("Accepted client ", addr)
}

//ClientReject rejects a client
func (srv *Server) ClientReject(addr *net.UDPAddr, reason string) {
	packetClientInit := NewPacket(packetTypeClientInit, channelSession, 0)
	packetClientInit.Grow(1 + int64(len(reason)))
	packetClientInit.WriteByteNext(0) //Anything but 1 refuses the connection
	packetClientInit.WriteBytesNext([]byte(reason))
	srv.SendPacket(packetClientInit, addr)
	log.Debug("Rejected client ", addr, " with reason: ", reason)
}

//FindLobby returns a lobby with room for another client, creating one if needed
func (srv *Server) FindLobby() (*Lobby, error) {
	srv.Lock()
	defer srv.Unlock()

	for _, lobby := range srv.Lobbies {
		lobby.Lock()
		full := !lobby.IsRunning() || lobby.IsFull()
		lobby.Unlock()
		if !full {
			return lobby, nil
		}
	}

	if len(srv.Lobbies) >= srv.Config.MaxLobbies {
		return nil, errors.New("server has reached max lobbies")
	}

	lobby, err := NewLobby(srv)
	if err != nil {
		return nil, err
	}
	srv.Lobbies = append(srv.Lobbies, lobby)
	return lobby, nil
}

//GetLobbyByAddr returns the lobby that the address is found in
func (srv *Server) GetLobbyByAddr(addr *net.UDPAddr) *Lobby {
	srv.Lock()
	defer srv.Unlock()

	for _, lobby := range srv.Lobbies {
		lobby.Lock()
		client := lobby.GetClientByAddr(addr)
		lobby.Unlock()
		if client != nil {
			return lobby
		}
	}

	//We didn't find the lobby, they must be new!
	return nil
}
