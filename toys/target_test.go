package toys

import (
	"testing"

	. "github.com/onsi/gomega"
	"github.com/pkg/errors"
)

func newSyncedToy() (*ShootingTargetToy, *fakeTarget, *fakeHost) {
	host := &fakeHost{}
	target := newFakeTarget(SportTargetPrefab.InstanceName())
	return NewRegistry(host).Get(target), target, host
}

func TestSetHealthValuesRequireSync(t *testing.T) {
	g := NewWithT(t)

	toy, target, _ := newSyncedToy()
	toy.SetSynced(false)

	err := toy.SetMaxHealth(50)
	g.Expect(errors.Is(err, ErrNotSynced)).To(BeTrue())
	err = toy.SetHealth(5)
	g.Expect(errors.Is(err, ErrNotSynced)).To(BeTrue())
	err = toy.SetAutoResetTime(3)
	g.Expect(errors.Is(err, ErrNotSynced)).To(BeTrue())

	g.Expect(target.maxHealth).To(Equal(10))
	g.Expect(target.health).To(BeNumerically("==", 10))
	g.Expect(target.autoResetTime).To(Equal(0))
	g.Expect(target.sent).To(BeEmpty())

	toy.SetScale(Vector3{2, 2, 2})
	toy.SetSynced(true)
	g.Expect(toy.IsSynced()).To(BeTrue())
	g.Expect(toy.SetHealth(5)).To(Succeed())
}

func TestSetAutoResetTimeClamps(t *testing.T) {
	g := NewWithT(t)

	toy, target, _ := newSyncedToy()
	g.Expect(toy.SetAutoResetTime(-5)).To(Succeed())
	g.Expect(toy.AutoResetTime()).To(Equal(0))
	g.Expect(target.sent).To(Equal([]sentInfo{{10, 0}}))

	g.Expect(toy.SetAutoResetTime(7)).To(Succeed())
	g.Expect(target.autoResetTime).To(Equal(7))
}

func TestSendInfoBroadcasts(t *testing.T) {
	g := NewWithT(t)

	toy, target, _ := newSyncedToy()

	g.Expect(toy.SetHealth(3.5)).To(Succeed())
	g.Expect(target.sent).To(BeEmpty())
	g.Expect(toy.Health()).To(BeNumerically("==", 3.5))

	g.Expect(toy.SetMaxHealth(200)).To(Succeed())
	g.Expect(target.sent).To(Equal([]sentInfo{{200, 0}}))

	g.Expect(toy.SetAutoResetTime(4)).To(Succeed())
	g.Expect(target.sent).To(Equal([]sentInfo{{200, 0}, {200, 4}}))

	toy.SetSynced(false)
	g.Expect(target.sent).To(HaveLen(2))
}

func TestSetScaleRespawns(t *testing.T) {
	g := NewWithT(t)

	toy, target, _ := newSyncedToy()
	toy.SetScale(Vector3{3, 1, 3})

	g.Expect(target.unspawns).To(Equal(1))
	g.Expect(target.spawns).To(Equal(1))
	g.Expect(target.spawned).To(BeTrue())
	g.Expect(target.spawnedScale).To(Equal(Vector3{3, 1, 3}))
	g.Expect(toy.Scale()).To(Equal(Vector3{3, 1, 3}))
}

func TestDamagePassesThrough(t *testing.T) {
	g := NewWithT(t)

	toy, target, _ := newSyncedToy()
	g.Expect(toy.Damage(50, fakeDamage{}, Vector3{0, 1, 0})).To(BeTrue())

	target.accept = false
	g.Expect(toy.Damage(50, fakeDamage{}, Vector3{0, 1, 0})).To(BeFalse())
	g.Expect(target.damages).To(Equal([]float32{50, 50}))
}

func TestClear(t *testing.T) {
	g := NewWithT(t)

	toy, target, _ := newSyncedToy()
	g.Expect(toy.SetHealth(1)).To(Succeed())
	toy.Clear()

	g.Expect(target.cleared).To(Equal(1))
	g.Expect(toy.Health()).To(BeNumerically("==", 10))
}

func TestBullseye(t *testing.T) {
	g := NewWithT(t)

	toy, target, _ := newSyncedToy()
	target.bullseye = Vector3{1, 1.5, 0}

	g.Expect(toy.BullseyePosition()).To(Equal(Vector3{1, 1.5, 0}))
	g.Expect(toy.BullseyeRadius()).To(BeNumerically("==", 0.25))
}

func TestDestroyForgetsToy(t *testing.T) {
	g := NewWithT(t)

	toy, target, host := newSyncedToy()
	registry := toy.registry
	g.Expect(registry.Len()).To(Equal(1))

	toy.Destroy()
	g.Expect(registry.Len()).To(Equal(0))
	g.Expect(host.destroyed).To(ConsistOf(target))
	g.Expect(target.spawned).To(BeFalse())
}
