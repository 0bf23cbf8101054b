package main

import (
	"time"

	"github.com/StickFightDev/ShootingTargetSrv/toys"
)

//autoResetUnit is how long one unit of a target's auto reset time lasts
var autoResetUnit = time.Second

//targetGeometry holds the per-prefab defaults of a shooting target
type targetGeometry struct {
	BullseyeOffset toys.Vector3 //The bullseye position relative to the target's origin, before scaling and rotation
	BullseyeRadius float32      //The radius of the bullseye at unit scale
	MaxHealth      int          //The max health of a fresh target
}

var targetGeometries = map[string]targetGeometry{
	toys.SportTargetPrefab.Name:  {toys.Vector3{X: 0, Y: 1.6, Z: 0}, 0.08, 100},
	toys.DboyTargetPrefab.Name:   {toys.Vector3{X: 0, Y: 1.55, Z: 0.05}, 0.12, 150},
	toys.BinaryTargetPrefab.Name: {toys.Vector3{X: 0, Y: 1.3, Z: 0}, 0.1, 100},
}

//NetworkTarget holds a shooting target synced across the clients of a lobby
type NetworkTarget struct {
	Lobby     *Lobby      //The lobby that owns this target
	NetworkID uint16      //The object sync ID to track this target
	Prefab    toys.Prefab //The prefab this target was instantiated from

	name     string
	geometry targetGeometry
	spawned  bool

	position toys.Vector3
	rotation toys.Quaternion
	scale    toys.Vector3

	maxHealth     int
	health        float32
	autoResetTime int
	synced        bool
	resetTimer    *time.Timer
}

func newNetworkTarget(lobby *Lobby, networkID uint16, prefab toys.Prefab, geometry targetGeometry) *NetworkTarget {
	return &NetworkTarget{
		Lobby:     lobby,
		NetworkID: networkID,
		Prefab:    prefab,
		name:      prefab.InstanceName(),
		geometry:  geometry,
		rotation:  toys.QuaternionIdentity,
		scale:     toys.VectorOne,
		maxHealth: geometry.MaxHealth,
		health:    float32(geometry.MaxHealth),
	}
}

//Name returns the instance name of the target
func (t *NetworkTarget) Name() string {
	return t.name
}

//IsSpawned returns whether clients know about the target
func (t *NetworkTarget) IsSpawned() bool {
	return t.spawned
}

//Position returns the position of the target
func (t *NetworkTarget) Position() toys.Vector3 {
	return t.position
}

//SetPosition moves the target
func (t *NetworkTarget) SetPosition(position toys.Vector3) {
	t.position = position
	t.sendTransform()
}

//Rotation returns the rotation of the target
func (t *NetworkTarget) Rotation() toys.Quaternion {
	return t.rotation
}

//SetRotation rotates the target
func (t *NetworkTarget) SetRotation(rotation toys.Quaternion) {
	t.rotation = rotation
	t.sendTransform()
}

//Scale returns the local scale of the target
func (t *NetworkTarget) Scale() toys.Vector3 {
	return t.scale
}

//SetScale sets the local scale, clients only see it after the next spawn
func (t *NetworkTarget) SetScale(scale toys.Vector3) {
	t.scale = scale
}

//MaxHealth returns the max health of the target
func (t *NetworkTarget) MaxHealth() int {
	return t.maxHealth
}

//SetMaxHealth sets the max health of the target
func (t *NetworkTarget) SetMaxHealth(maxHealth int) {
	t.maxHealth = maxHealth
}

//Health returns the remaining health of the target
func (t *NetworkTarget) Health() float32 {
	return t.health
}

//SetHealth sets the remaining health of the target
func (t *NetworkTarget) SetHealth(health float32) {
	t.health = health
}

//AutoResetTime returns the seconds before a destroyed target clears itself
func (t *NetworkTarget) AutoResetTime() int {
	return t.autoResetTime
}

//SetAutoResetTime sets the seconds before a destroyed target clears itself
func (t *NetworkTarget) SetAutoResetTime(seconds int) {
	t.autoResetTime = seconds
}

//Synced returns whether the target is in sync mode
func (t *NetworkTarget) Synced() bool {
	return t.synced
}

//SetSynced sets the sync mode and replicates it to clients
func (t *NetworkTarget) SetSynced(synced bool) {
	t.synced = synced

	if !t.spawned {
		return
	}
	packetObjectUpdate := NewPacket(packetTypeObjectUpdate, channelObjects, 0)
	packetObjectUpdate.Grow(3)
	packetObjectUpdate.WriteU16LENext([]uint16{t.NetworkID})
	packetObjectUpdate.WriteByteNext(boolByte(synced))
	t.Lobby.Broadcast(packetObjectUpdate, nil)
}

//BullseyePosition returns the world position of the bullseye
func (t *NetworkTarget) BullseyePosition() toys.Vector3 {
	return t.position.Add(t.rotation.Rotate(t.geometry.BullseyeOffset.Mul(t.scale)))
}

//BullseyeRadius returns the radius of the bullseye, scaled with the largest axis of the target
func (t *NetworkTarget) BullseyeRadius() float32 {
	scale := t.scale.X
	if t.scale.Y > scale {
		scale = t.scale.Y
	}
	if t.scale.Z > scale {
		scale = t.scale.Z
	}
	return t.geometry.BullseyeRadius * scale
}

//SendInfo tells every client the current max health and auto reset time
func (t *NetworkTarget) SendInfo(maxHealth, autoResetTime int) {
	if !t.spawned {
		log.Trace("Not sending info for unspawned target ", t.NetworkID)
		return
	}

	packetTargetInfo := NewPacket(packetTypeTargetInfo, channelObjects, 0)
	packetTargetInfo.Grow(10)
	packetTargetInfo.WriteU16LENext([]uint16{t.NetworkID})
	packetTargetInfo.WriteI32LENext([]int32{int32(maxHealth), int32(autoResetTime)})
	t.Lobby.Broadcast(packetTargetInfo, nil)
}

//ClearTarget restores the target's health and cancels a pending auto reset
func (t *NetworkTarget) ClearTarget() {
	t.stopResetTimer()
	t.health = float32(t.maxHealth)

	if !t.spawned {
		return
	}
	packetTargetCleared := NewPacket(packetTypeTargetCleared, channelObjects, 0)
	packetTargetCleared.Grow(6)
	packetTargetCleared.WriteU16LENext([]uint16{t.NetworkID})
	packetTargetCleared.WriteF32LENext([]float32{t.health})
	t.Lobby.Broadcast(packetTargetCleared, nil)
}

//Damage applies damage at the exact hit location and returns whether it was applied
func (t *NetworkTarget) Damage(damage float32, handler toys.DamageHandler, exactHit toys.Vector3) bool {
	if !(damage > 0) || !t.spawned {
		return false //Also rejects NaN
	}
	if t.synced && t.health <= 0 {
		return false //Already destroyed, waiting for a reset
	}

	bullseye := exactHit.Distance(t.BullseyePosition()) <= t.BullseyeRadius()
	if t.synced {
		t.health -= damage
		if t.health <= 0 {
			t.health = 0
			t.scheduleReset()
		}
	}

	attackerID := uint64(0)
	if handler != nil {
		attackerID = handler.AttackerID()
	}

	packetTargetHit := NewPacket(packetTypeTargetHit, channelObjects, attackerID)
	packetTargetHit.Grow(23)
	packetTargetHit.WriteU16LENext([]uint16{t.NetworkID})
	packetTargetHit.WriteF32LENext([]float32{damage, exactHit.X, exactHit.Y, exactHit.Z, t.health})
	packetTargetHit.WriteByteNext(boolByte(bullseye))
	t.Lobby.Broadcast(packetTargetHit, nil)

	log.Debug("Target ", t.NetworkID, " took ", damage, " damage from ", steamUsername(attackerID), ", bullseye: ", bullseye, ", health: ", t.health)
	return true
}

//scheduleReset clears the target after its auto reset time, must be called with the lobby locked
func (t *NetworkTarget) scheduleReset() {
	t.stopResetTimer()
	if t.autoResetTime <= 0 {
		return
	}

	var timer *time.Timer
	timer = time.AfterFunc(time.Duration(t.autoResetTime)*autoResetUnit, func() {
		t.Lobby.Lock()
		defer t.Lobby.Unlock()

		if t.resetTimer != timer {
			return //Cleared or rescheduled in the meantime
		}
		log.Trace("Auto resetting target ", t.NetworkID)
		t.ClearTarget()
	})
	t.resetTimer = timer
}

func (t *NetworkTarget) stopResetTimer() {
	if t.resetTimer != nil {
		t.resetTimer.Stop()
		t.resetTimer = nil
	}
}

func (t *NetworkTarget) sendTransform() {
	if !t.spawned {
		return
	}

	packetObjectTransform := NewPacket(packetTypeObjectTransform, channelObjects, 0)
	packetObjectTransform.Grow(30)
	packetObjectTransform.WriteU16LENext([]uint16{t.NetworkID})
	packetObjectTransform.WriteF32LENext([]float32{
		t.position.X, t.position.Y, t.position.Z,
		t.rotation.X, t.rotation.Y, t.rotation.Z, t.rotation.W,
	})
	t.Lobby.Broadcast(packetObjectTransform, nil)
}

//spawnPacket returns the packet that announces this target to clients
func (t *NetworkTarget) spawnPacket() *Packet {
	assetID := t.Prefab.AssetID

	packetObjectSpawned := NewPacket(packetTypeObjectSpawned, channelObjects, 0)
	packetObjectSpawned.Grow(71)
	packetObjectSpawned.WriteU16LENext([]uint16{t.NetworkID})
	packetObjectSpawned.WriteBytesNext(assetID[:])
	packetObjectSpawned.WriteF32LENext([]float32{
		t.position.X, t.position.Y, t.position.Z,
		t.rotation.X, t.rotation.Y, t.rotation.Z, t.rotation.W,
		t.scale.X, t.scale.Y, t.scale.Z,
	})
	packetObjectSpawned.WriteByteNext(boolByte(t.synced))
	packetObjectSpawned.WriteI32LENext([]int32{int32(t.maxHealth)})
	packetObjectSpawned.WriteF32LENext([]float32{t.health})
	packetObjectSpawned.WriteI32LENext([]int32{int32(t.autoResetTime)})
	return packetObjectSpawned
}

func boolByte(b bool) byte {
	if b {
		return 1
	}
	return 0
}
