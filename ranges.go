package main

import (
	"encoding/json"
	"io/ioutil"

	"github.com/pkg/errors"

	"github.com/StickFightDev/ShootingTargetSrv/toys"
)

//Range holds a shooting range layout that gets placed in every new lobby
type Range struct {
	Name    string          `json:"name"`    //The name of the range
	Targets []*PlacedTarget `json:"targets"` //The pre-placed targets
}

//PlacedTarget holds a pre-placed target of a range
type PlacedTarget struct {
	Type          toys.ShootingTargetType `json:"type"`          //Sport, ClassD or Binary
	Position      toys.Vector3            `json:"position"`      //The position of the target
	Rotation      toys.Vector3            `json:"rotation"`      //The rotation of the target as euler angles in degrees
	Scale         *toys.Vector3           `json:"scale"`         //The scale of the target, nil for (1, 1, 1)
	Synced        bool                    `json:"synced"`        //If the target starts in sync mode
	MaxHealth     int                     `json:"maxHealth"`     //The max health of the target, 0 for the prefab default, needs sync mode
	AutoResetTime int                     `json:"autoResetTime"` //The seconds before a destroyed target resets, needs sync mode
	Hidden        bool                    `json:"hidden"`        //If the target starts unspawned
}

//LoadRange loads a range layout from a JSON file
func LoadRange(path string) (*Range, error) {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read range %s", path)
	}

	r := &Range{}
	if err := json.Unmarshal(data, r); err != nil {
		return nil, errors.Wrapf(err, "parse range %s", path)
	}

	for i, placed := range r.Targets {
		if placed == nil {
			return nil, errors.Errorf("range %s: target %d is empty", path, i)
		}
		if !placed.Synced && (placed.MaxHealth != 0 || placed.AutoResetTime != 0) {
			return nil, errors.Errorf("range %s: target %d sets health values without sync mode", path, i)
		}
	}

	log.Debug("Loaded range ", r.Name, " with ", len(r.Targets), " targets")
	return r, nil
}

//Place creates every target of the range through the registry
func (r *Range) Place(registry *toys.Registry) ([]*toys.ShootingTargetToy, error) {
	placed := make([]*toys.ShootingTargetToy, 0, len(r.Targets))

	for i, target := range r.Targets {
		opts := []toys.CreateOption{
			toys.WithPosition(target.Position),
			toys.WithRotation(target.Rotation),
		}
		if target.Scale != nil {
			opts = append(opts, toys.WithScale(*target.Scale))
		}
		if target.Hidden {
			opts = append(opts, toys.WithoutSpawn())
		}

		toy, err := registry.Create(target.Type, opts...)
		if err != nil {
			return placed, errors.Wrapf(err, "target %d", i)
		}
		placed = append(placed, toy)

		if !target.Synced {
			continue
		}
		toy.SetSynced(true)
		if target.MaxHealth > 0 {
			if err := toy.SetMaxHealth(target.MaxHealth); err != nil {
				return placed, errors.Wrapf(err, "target %d", i)
			}
			if err := toy.SetHealth(float32(target.MaxHealth)); err != nil {
				return placed, errors.Wrapf(err, "target %d", i)
			}
		}
		if err := toy.SetAutoResetTime(target.AutoResetTime); err != nil {
			return placed, errors.Wrapf(err, "target %d", i)
		}
	}

	return placed, nil
}
