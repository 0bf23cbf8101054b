package toys

import (
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

//instanceSuffix is appended by the host to the prefab name of every instantiated object
const instanceSuffix = "(Clone)"

//Prefab holds a networked prefab that the host knows how to instantiate
type Prefab struct {
	Name    string    //The name of the prefab, instances are named Name+"(Clone)"
	AssetID uuid.UUID //The asset ID clients use to look the prefab up
}

//InstanceName returns the name the host gives to an instance of this prefab
func (p Prefab) InstanceName() string {
	return p.Name + instanceSuffix
}

var (
	//SportTargetPrefab is the prefab for the sport shooting target
	SportTargetPrefab = Prefab{"sportTargetPrefab", uuid.MustParse("7b8a3b8e-5a31-4e44-8a6e-3e9f1b2c4d01")}
	//DboyTargetPrefab is the prefab for the Class-D shooting target
	DboyTargetPrefab = Prefab{"dboyTargetPrefab", uuid.MustParse("7b8a3b8e-5a31-4e44-8a6e-3e9f1b2c4d02")}
	//BinaryTargetPrefab is the prefab for the binary shooting target
	BinaryTargetPrefab = Prefab{"binaryTargetPrefab", uuid.MustParse("7b8a3b8e-5a31-4e44-8a6e-3e9f1b2c4d03")}
)

//ShootingTargetType is the kind of shooting target
type ShootingTargetType byte

const (
	ShootingTargetUnknown ShootingTargetType = iota
	ShootingTargetSport
	ShootingTargetClassD
	ShootingTargetBinary
)

var typeLookup = map[string]ShootingTargetType{
	SportTargetPrefab.Name:  ShootingTargetSport,
	DboyTargetPrefab.Name:   ShootingTargetClassD,
	BinaryTargetPrefab.Name: ShootingTargetBinary,
}

func (t ShootingTargetType) String() string {
	switch t {
	case ShootingTargetSport:
		return "Sport"
	case ShootingTargetClassD:
		return "ClassD"
	case ShootingTargetBinary:
		return "Binary"
	default:
		return "Unknown"
	}
}

//Prefab returns the prefab used to create targets of this type, Sport for anything unrecognized
func (t ShootingTargetType) Prefab() Prefab {
	switch t {
	case ShootingTargetClassD:
		return DboyTargetPrefab
	case ShootingTargetBinary:
		return BinaryTargetPrefab
	default:
		return SportTargetPrefab
	}
}

//ParseShootingTargetType returns the target type matching name, ignoring case
func ParseShootingTargetType(name string) (ShootingTargetType, error) {
	switch strings.ToLower(name) {
	case "sport":
		return ShootingTargetSport, nil
	case "classd", "dboy":
		return ShootingTargetClassD, nil
	case "binary":
		return ShootingTargetBinary, nil
	}
	return ShootingTargetUnknown, errors.Errorf("unknown shooting target type %q", name)
}

//MarshalText implements encoding.TextMarshaler
func (t ShootingTargetType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

//UnmarshalText implements encoding.TextUnmarshaler
func (t *ShootingTargetType) UnmarshalText(text []byte) error {
	parsed, err := ParseShootingTargetType(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

//typeFromInstanceName classifies an instance by the prefab it was instantiated from
func typeFromInstanceName(name string) ShootingTargetType {
	if len(name) < len(instanceSuffix) {
		return ShootingTargetUnknown
	}

	if t, ok := typeLookup[name[:len(name)-len(instanceSuffix)]]; ok {
		return t
	}
	return ShootingTargetUnknown
}
