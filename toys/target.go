package toys

import "github.com/pkg/errors"

//ErrNotSynced is returned when health values are written to a target that is not in sync mode
var ErrNotSynced = errors.New("target is not in sync mode")

//AdminToyType is the kind of admin toy
type AdminToyType byte

const (
	AdminToyUnknown AdminToyType = iota
	AdminToyShootingTarget
)

//DamageHandler describes who or what dealt damage to a target
type DamageHandler interface {
	AttackerID() uint64 //The Steam ID of the attacker, 0 for the world
	Reason() string     //A human readable cause of the damage
}

//ShootingTarget is the host-owned networked shooting target
type ShootingTarget interface {
	Name() string //The instance name, <prefab name>(Clone)

	Position() Vector3
	SetPosition(Vector3)
	Rotation() Quaternion
	SetRotation(Quaternion)
	Scale() Vector3
	SetScale(Vector3)

	MaxHealth() int
	SetMaxHealth(int)
	Health() float32
	SetHealth(float32)
	AutoResetTime() int
	SetAutoResetTime(int)
	Synced() bool
	SetSynced(bool)

	BullseyePosition() Vector3
	BullseyeRadius() float32

	//SendInfo tells every client the current max health and auto reset time
	SendInfo(maxHealth, autoResetTime int)
	//ClearTarget resets the target to its default state
	ClearTarget()
	//Damage applies damage at the exact hit location and returns whether it was applied
	Damage(damage float32, handler DamageHandler, exactHit Vector3) bool
}

//Host is the engine that owns and replicates shooting targets
type Host interface {
	Instantiate(prefab Prefab) (ShootingTarget, error)
	Spawn(target ShootingTarget)
	UnSpawn(target ShootingTarget)
	Destroy(target ShootingTarget)
}

//ShootingTargetToy wraps a ShootingTarget for plugins
type ShootingTargetToy struct {
	base       ShootingTarget
	host       Host
	registry   *Registry
	targetType ShootingTargetType
}

func newShootingTargetToy(target ShootingTarget, host Host, registry *Registry) *ShootingTargetToy {
	return &ShootingTargetToy{
		base:       target,
		host:       host,
		registry:   registry,
		targetType: typeFromInstanceName(target.Name()),
	}
}

//Base returns the host object this toy wraps
func (toy *ShootingTargetToy) Base() ShootingTarget {
	return toy.base
}

//Type returns the type of the target, derived from the prefab it was instantiated from
func (toy *ShootingTargetToy) Type() ShootingTargetType {
	return toy.targetType
}

//ToyType returns the admin toy type
func (toy *ShootingTargetToy) ToyType() AdminToyType {
	return AdminToyShootingTarget
}

//Position returns the position of the target
func (toy *ShootingTargetToy) Position() Vector3 {
	return toy.base.Position()
}

//SetPosition moves the target
func (toy *ShootingTargetToy) SetPosition(position Vector3) {
	toy.base.SetPosition(position)
}

//Rotation returns the rotation of the target
func (toy *ShootingTargetToy) Rotation() Quaternion {
	return toy.base.Rotation()
}

//SetRotation rotates the target
func (toy *ShootingTargetToy) SetRotation(rotation Quaternion) {
	toy.base.SetRotation(rotation)
}

//Scale returns the local scale of the target
func (toy *ShootingTargetToy) Scale() Vector3 {
	return toy.base.Scale()
}

//SetScale rescales the target, clients only pick up a new scale when the object is spawned again
func (toy *ShootingTargetToy) SetScale(scale Vector3) {
	toy.host.UnSpawn(toy.base)
	toy.base.SetScale(scale)
	toy.host.Spawn(toy.base)
}

//BullseyePosition returns the world position of the bullseye
func (toy *ShootingTargetToy) BullseyePosition() Vector3 {
	return toy.base.BullseyePosition()
}

//BullseyeRadius returns the radius of the bullseye
func (toy *ShootingTargetToy) BullseyeRadius() float32 {
	return toy.base.BullseyeRadius()
}

//MaxHealth returns the max health of the target
func (toy *ShootingTargetToy) MaxHealth() int {
	return toy.base.MaxHealth()
}

//SetMaxHealth sets the max health of the target and tells clients about it
func (toy *ShootingTargetToy) SetMaxHealth(maxHealth int) error {
	if !toy.IsSynced() {
		return errors.Wrap(ErrNotSynced, "set max health")
	}

	toy.base.SetMaxHealth(maxHealth)
	toy.base.SendInfo(toy.MaxHealth(), toy.AutoResetTime())
	return nil
}

//Health returns the remaining health of the target
func (toy *ShootingTargetToy) Health() float32 {
	return toy.base.Health()
}

//SetHealth sets the remaining health of the target
func (toy *ShootingTargetToy) SetHealth(health float32) error {
	if !toy.IsSynced() {
		return errors.Wrap(ErrNotSynced, "set health")
	}

	toy.base.SetHealth(health)
	return nil
}

//AutoResetTime returns the seconds before a destroyed target resets itself, 0 to never reset
func (toy *ShootingTargetToy) AutoResetTime() int {
	return toy.base.AutoResetTime()
}

//SetAutoResetTime sets the auto reset time, negative values are stored as 0
func (toy *ShootingTargetToy) SetAutoResetTime(seconds int) error {
	if !toy.IsSynced() {
		return errors.Wrap(ErrNotSynced, "set auto reset time")
	}

	if seconds < 0 {
		seconds = 0
	}
	toy.base.SetAutoResetTime(seconds)
	toy.base.SendInfo(toy.MaxHealth(), toy.AutoResetTime())
	return nil
}

//IsSynced returns whether the target is in sync mode
func (toy *ShootingTargetToy) IsSynced() bool {
	return toy.base.Synced()
}

//SetSynced puts the target in or out of sync mode
func (toy *ShootingTargetToy) SetSynced(synced bool) {
	toy.base.SetSynced(synced)
}

//Clear clears the target and resets its health
func (toy *ShootingTargetToy) Clear() {
	toy.base.ClearTarget()
}

//Damage damages the target with the given damage, handler and hit location, returning whether the damage was applied
func (toy *ShootingTargetToy) Damage(damage float32, handler DamageHandler, exactHit Vector3) bool {
	return toy.base.Damage(damage, handler, exactHit)
}

//Spawn announces the target to clients
func (toy *ShootingTargetToy) Spawn() {
	toy.host.Spawn(toy.base)
}

//UnSpawn hides the target from clients without destroying it
func (toy *ShootingTargetToy) UnSpawn() {
	toy.host.UnSpawn(toy.base)
}

//Destroy destroys the target and forgets this toy
func (toy *ShootingTargetToy) Destroy() {
	toy.host.Destroy(toy.base)
	if toy.registry != nil {
		toy.registry.Remove(toy)
	}
}

func (toy *ShootingTargetToy) String() string {
	return toy.targetType.String() + " shooting target " + toy.base.Name()
}
