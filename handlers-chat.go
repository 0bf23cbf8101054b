package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/StickFightDev/ShootingTargetSrv/toys"
)

const commandPrefix = "!target"

//onPlayerTalked filters a chat message, then either runs it as a target command or relays it
func (lobby *Lobby) onPlayerTalked(client *Client, packet *Packet) {
	message := strings.TrimSpace(string(packet.Bytes()))
	if message == "" {
		return
	}

	if lobby.Filter != nil {
		swears, err := lobby.Filter.Check(message)
		if err != nil {
			log.Error("unable to filter message from ", client, ": ", err)
			return
		}
		if len(swears) > 0 {
			log.Warn("Dropped message from ", client, " for saying ", swears)
			return
		}
	}

	fields := strings.Fields(message)
	if fields[0] != commandPrefix {
		relay := NewPacket(packetTypePlayerTalked, channelChat, client.SteamID)
		relay.Grow(int64(len(message)))
		relay.WriteBytesNext([]byte(message))
		lobby.Broadcast(relay, client.Addr)
		return
	}

	var reply string
	if !client.IsAdmin() {
		log.Warn("Client ", client, " tried to run a target command without permission")
		reply = "You are not allowed to manage targets"
	} else {
		var err error
		reply, err = lobby.runTargetCommand(client, fields[1:])
		if err != nil {
			reply = "Error: " + err.Error()
		}
	}

	lobby.SendTo(chatPacket(reply), client.Addr)
}

func chatPacket(message string) *Packet {
	packetPlayerTalked := NewPacket(packetTypePlayerTalked, channelChat, 0)
	packetPlayerTalked.Grow(int64(len(message)))
	packetPlayerTalked.WriteBytesNext([]byte(message))
	return packetPlayerTalked
}

//runTargetCommand runs a target command for a client and returns the reply to send back
func (lobby *Lobby) runTargetCommand(client *Client, args []string) (string, error) {
	if len(args) == 0 {
		return "Usage: " + commandPrefix + " <create|list|clear|damage|sync|maxhp|hp|reset|scale|destroy> ...", nil
	}

	command, args := strings.ToLower(args[0]), args[1:]
	log.Info("Client ", client, " ran target command ", command, " ", args)

	switch command {
	case "create":
		return lobby.commandCreate(args)
	case "list":
		return lobby.commandList(), nil
	}

	if len(args) == 0 {
		return "", errors.Errorf("%s needs a target ID", command)
	}
	networkID, err := strconv.ParseUint(args[0], 10, 16)
	if err != nil {
		return "", errors.Errorf("invalid target ID %q", args[0])
	}
	toy := lobby.GetToy(uint16(networkID))
	if toy == nil {
		return "", errors.Errorf("no target with ID %d", networkID)
	}
	args = args[1:]

	switch command {
	case "clear":
		toy.Clear()
		return fmt.Sprintf("Cleared target %d", networkID), nil

	case "damage":
		amount, err := parseFloats(args, 1)
		if err != nil {
			return "", err
		}
		handler := DamageHandler{SteamID: client.SteamID, Type: damageTypeAdmin}
		if !toy.Damage(amount[0], handler, toy.BullseyePosition()) {
			return fmt.Sprintf("Target %d rejected the damage", networkID), nil
		}
		return fmt.Sprintf("Target %d has %.1f health left", networkID, toy.Health()), nil

	case "sync":
		if len(args) != 1 {
			return "", errors.New("sync needs on or off")
		}
		synced, err := parseSwitch(args[0])
		if err != nil {
			return "", err
		}
		toy.SetSynced(synced)
		return fmt.Sprintf("Target %d sync mode: %v", networkID, synced), nil

	case "maxhp", "hp", "reset":
		if len(args) != 1 {
			return "", errors.Errorf("%s needs a value", command)
		}
		value, err := strconv.Atoi(args[0])
		if err != nil {
			return "", errors.Errorf("invalid value %q", args[0])
		}
		switch command {
		case "maxhp":
			err = toy.SetMaxHealth(value)
		case "hp":
			err = toy.SetHealth(float32(value))
		case "reset":
			err = toy.SetAutoResetTime(value)
		}
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("Target %d: max health %d, health %.1f, auto reset %ds", networkID, toy.MaxHealth(), toy.Health(), toy.AutoResetTime()), nil

	case "scale":
		scale, err := parseFloats(args, 3)
		if err != nil {
			return "", err
		}
		toy.SetScale(toys.Vector3{X: scale[0], Y: scale[1], Z: scale[2]})
		return fmt.Sprintf("Scaled target %d to %v", networkID, toy.Scale()), nil

	case "destroy":
		toy.Destroy()
		return fmt.Sprintf("Destroyed target %d", networkID), nil
	}

	return "", errors.Errorf("unknown command %q", command)
}

//commandCreate handles: create <type> [x y z [rx ry rz [sx sy sz]]]
func (lobby *Lobby) commandCreate(args []string) (string, error) {
	if len(args) == 0 {
		return "", errors.New("create needs a target type")
	}
	targetType, err := toys.ParseShootingTargetType(args[0])
	if err != nil {
		return "", err
	}

	values, err := parseFloats(args[1:], len(args)-1)
	if err != nil {
		return "", err
	}
	if len(values)%3 != 0 || len(values) > 9 {
		return "", errors.New("create takes up to three vectors of three values")
	}

	opts := make([]toys.CreateOption, 0, 3)
	for i := 0; i < len(values); i += 3 {
		v := toys.Vector3{X: values[i], Y: values[i+1], Z: values[i+2]}
		switch i {
		case 0:
			opts = append(opts, toys.WithPosition(v))
		case 3:
			opts = append(opts, toys.WithRotation(v))
		case 6:
			opts = append(opts, toys.WithScale(v))
		}
	}

	toy, err := lobby.Toys.Create(targetType, opts...)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Created %s target %d", toy.Type(), toy.Base().(*NetworkTarget).NetworkID), nil
}

func (lobby *Lobby) commandList() string {
	list := lobby.Toys.List()
	if len(list) == 0 {
		return "No targets"
	}

	lines := make([]string, 0, len(list))
	for _, toy := range list {
		target, ok := toy.Base().(*NetworkTarget)
		if !ok {
			continue
		}
		lines = append(lines, fmt.Sprintf("%d: %s %.1f/%d synced=%v", target.NetworkID, toy.Type(), toy.Health(), toy.MaxHealth(), toy.IsSynced()))
	}
	return strings.Join(lines, "\n")
}

func parseFloats(args []string, count int) ([]float32, error) {
	if len(args) != count {
		return nil, errors.Errorf("expected %d values, got %d", count, len(args))
	}

	values := make([]float32, count)
	for i, arg := range args {
		value, err := strconv.ParseFloat(arg, 32)
		if err != nil {
			return nil, errors.Errorf("invalid number %q", arg)
		}
		values[i] = float32(value)
	}
	return values, nil
}

func parseSwitch(arg string) (bool, error) {
	switch strings.ToLower(arg) {
	case "on", "true", "1":
		return true, nil
	case "off", "false", "0":
		return false, nil
	}
	return false, errors.Errorf("expected on or off, got %q", arg)
}
