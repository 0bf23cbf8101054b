package main

import (
	"github.com/StickFightDev/ShootingTargetSrv/toys"
)

//onClientTargetDamage handles a client reporting that it hit a target
func (lobby *Lobby) onClientTargetDamage(client *Client, packet *Packet) {
	if packet.Len() < 19 {
		log.Warn("Client ", client, " sent a short target damage packet")
		return
	}

	networkID := packet.ReadU16LENext(1)[0]
	values := packet.ReadF32LENext(4)
	damageType := DamageType(packet.ReadByteNext())

	toy := lobby.GetToy(networkID)
	if toy == nil {
		log.Warn("Client ", client, " damaged unknown target ", networkID)
		return
	}

	handler := DamageHandler{SteamID: client.SteamID, Type: damageType}
	hit := toys.Vector3{X: values[1], Y: values[2], Z: values[3]}
	if !toy.Damage(values[0], handler, hit) {
		log.Trace("Target ", networkID, " rejected ", handler)
	}
}
