package toys

import "github.com/pkg/errors"

type sentInfo struct {
	MaxHealth, AutoResetTime int
}

type fakeTarget struct {
	name          string
	position      Vector3
	rotation      Quaternion
	scale         Vector3
	maxHealth     int
	health        float32
	autoResetTime int
	synced        bool
	bullseye      Vector3
	radius        float32

	sent     []sentInfo
	cleared  int
	accept   bool
	damages  []float32
	spawned  bool
	spawns   int
	unspawns int
	//Scale as seen by the last spawn
	spawnedScale Vector3
}

func newFakeTarget(name string) *fakeTarget {
	return &fakeTarget{
		name:      name,
		rotation:  QuaternionIdentity,
		scale:     VectorOne,
		maxHealth: 10,
		health:    10,
		synced:    true,
		accept:    true,
		radius:    0.25,
	}
}

func (t *fakeTarget) Name() string                  { return t.name }
func (t *fakeTarget) Position() Vector3             { return t.position }
func (t *fakeTarget) SetPosition(v Vector3)         { t.position = v }
func (t *fakeTarget) Rotation() Quaternion          { return t.rotation }
func (t *fakeTarget) SetRotation(q Quaternion)      { t.rotation = q }
func (t *fakeTarget) Scale() Vector3                { return t.scale }
func (t *fakeTarget) SetScale(v Vector3)            { t.scale = v }
func (t *fakeTarget) MaxHealth() int                { return t.maxHealth }
func (t *fakeTarget) SetMaxHealth(v int)            { t.maxHealth = v }
func (t *fakeTarget) Health() float32               { return t.health }
func (t *fakeTarget) SetHealth(v float32)           { t.health = v }
func (t *fakeTarget) AutoResetTime() int            { return t.autoResetTime }
func (t *fakeTarget) SetAutoResetTime(v int)        { t.autoResetTime = v }
func (t *fakeTarget) Synced() bool                  { return t.synced }
func (t *fakeTarget) SetSynced(v bool)              { t.synced = v }
func (t *fakeTarget) BullseyePosition() Vector3     { return t.bullseye }
func (t *fakeTarget) BullseyeRadius() float32       { return t.radius }
func (t *fakeTarget) SendInfo(maxHealth, reset int) { t.sent = append(t.sent, sentInfo{maxHealth, reset}) }
func (t *fakeTarget) ClearTarget()                  { t.cleared++; t.health = float32(t.maxHealth) }

func (t *fakeTarget) Damage(damage float32, handler DamageHandler, exactHit Vector3) bool {
	t.damages = append(t.damages, damage)
	return t.accept
}

type fakeHost struct {
	instantiated []Prefab
	destroyed    []ShootingTarget
	failWith     error
}

func (h *fakeHost) Instantiate(prefab Prefab) (ShootingTarget, error) {
	if h.failWith != nil {
		return nil, h.failWith
	}
	h.instantiated = append(h.instantiated, prefab)
	return newFakeTarget(prefab.InstanceName()), nil
}

func (h *fakeHost) Spawn(target ShootingTarget) {
	t := target.(*fakeTarget)
	t.spawned = true
	t.spawns++
	t.spawnedScale = t.scale
}

func (h *fakeHost) UnSpawn(target ShootingTarget) {
	t := target.(*fakeTarget)
	t.spawned = false
	t.unspawns++
}

func (h *fakeHost) Destroy(target ShootingTarget) {
	h.UnSpawn(target)
	h.destroyed = append(h.destroyed, target)
}

type fakeDamage struct{}

func (fakeDamage) AttackerID() uint64 { return 76561197960287930 }
func (fakeDamage) Reason() string     { return "test" }

var errNoPrefab = errors.New("prefab not loaded")
