package main

import "fmt"

//DamageType is the type of damage being dealt to a target
type DamageType byte

const (
	damageTypeFirearm DamageType = iota
	damageTypeMelee
	damageTypeExplosion
	damageTypeAdmin
	damageTypeOther
)

func (damageType DamageType) String() string {
	switch damageType {
	case damageTypeFirearm:
		return "Firearm"
	case damageTypeMelee:
		return "Melee"
	case damageTypeExplosion:
		return "Explosion"
	case damageTypeAdmin:
		return "Admin"
	case damageTypeOther:
		return "Other"
	default:
		return "Unknown"
	}
}

//DamageHandler holds who dealt damage to a target and how
type DamageHandler struct {
	SteamID uint64     //The Steam ID of the attacker
	Type    DamageType //The type of damage dealt
}

//AttackerID returns the Steam ID of the attacker
func (handler DamageHandler) AttackerID() uint64 {
	return handler.SteamID
}

//Reason returns the type of damage as text
func (handler DamageHandler) Reason() string {
	return handler.Type.String()
}

func (handler DamageHandler) String() string {
	return fmt.Sprintf("%s damage from %s", handler.Type, steamUsername(handler.SteamID))
}
