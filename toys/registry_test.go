package toys

import (
	"testing"

	. "github.com/onsi/gomega"
	"github.com/pkg/errors"
)

func TestCreateTypes(t *testing.T) {
	g := NewWithT(t)

	for _, targetType := range []ShootingTargetType{ShootingTargetSport, ShootingTargetClassD, ShootingTargetBinary} {
		toy, err := NewRegistry(&fakeHost{}).Create(targetType)
		g.Expect(err).NotTo(HaveOccurred())
		g.Expect(toy.Type()).To(Equal(targetType))
		g.Expect(toy.ToyType()).To(Equal(AdminToyShootingTarget))
	}
}

func TestCreateUnknownDefaultsToSport(t *testing.T) {
	g := NewWithT(t)

	host := &fakeHost{}
	registry := NewRegistry(host)

	toy, err := registry.Create(ShootingTargetUnknown)
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(toy.Type()).To(Equal(ShootingTargetSport))

	toy, err = registry.Create(ShootingTargetType(42))
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(toy.Type()).To(Equal(ShootingTargetSport))
	g.Expect(host.instantiated).To(Equal([]Prefab{SportTargetPrefab, SportTargetPrefab}))
}

func TestCreateDefaults(t *testing.T) {
	g := NewWithT(t)

	toy, err := NewRegistry(&fakeHost{}).Create(ShootingTargetBinary, WithoutSpawn())
	g.Expect(err).NotTo(HaveOccurred())

	target := toy.Base().(*fakeTarget)
	g.Expect(toy.Position()).To(Equal(VectorZero))
	g.Expect(toy.Rotation()).To(Equal(QuaternionIdentity))
	g.Expect(toy.Scale()).To(Equal(VectorOne))
	g.Expect(target.spawned).To(BeFalse())
	g.Expect(target.spawns).To(Equal(0))
}

func TestCreateClassDPlacedAndSpawned(t *testing.T) {
	g := NewWithT(t)

	registry := NewRegistry(&fakeHost{})
	toy, err := registry.Create(ShootingTargetClassD,
		WithPosition(Vector3{1, 2, 3}),
		WithRotation(Vector3{0, 90, 0}),
		WithScale(Vector3{2, 2, 2}),
	)
	g.Expect(err).NotTo(HaveOccurred())

	target := toy.Base().(*fakeTarget)
	g.Expect(toy.Type()).To(Equal(ShootingTargetClassD))
	g.Expect(toy.Position()).To(Equal(Vector3{1, 2, 3}))
	g.Expect(toy.Scale()).To(Equal(Vector3{2, 2, 2}))
	g.Expect(toy.Rotation().Y).To(BeNumerically("~", 0.7071, 1e-4))
	g.Expect(target.spawned).To(BeTrue())
	g.Expect(target.spawns).To(Equal(1))
	g.Expect(target.spawnedScale).To(Equal(Vector3{2, 2, 2}))
	g.Expect(registry.Get(target)).To(BeIdenticalTo(toy))
}

func TestCreateInstantiateError(t *testing.T) {
	g := NewWithT(t)

	registry := NewRegistry(&fakeHost{failWith: errNoPrefab})
	toy, err := registry.Create(ShootingTargetSport)
	g.Expect(toy).To(BeNil())
	g.Expect(errors.Cause(err)).To(Equal(errNoPrefab))
	g.Expect(registry.Len()).To(Equal(0))
}

func TestGetNil(t *testing.T) {
	g := NewWithT(t)
	g.Expect(NewRegistry(&fakeHost{}).Get(nil)).To(BeNil())
}

func TestGetTypedNil(t *testing.T) {
	g := NewWithT(t)

	registry := NewRegistry(&fakeHost{})
	var target *fakeTarget
	g.Expect(registry.Get(target)).To(BeNil())
	g.Expect(registry.Len()).To(Equal(0))
}

func TestGetRegistersOnFirstWrap(t *testing.T) {
	g := NewWithT(t)

	registry := NewRegistry(&fakeHost{})
	target := newFakeTarget(BinaryTargetPrefab.InstanceName())

	_, ok := registry.Lookup(target)
	g.Expect(ok).To(BeFalse())

	first := registry.Get(target)
	second := registry.Get(target)
	g.Expect(second).To(BeIdenticalTo(first))
	g.Expect(first.Type()).To(Equal(ShootingTargetBinary))
	g.Expect(registry.Len()).To(Equal(1))

	other := registry.Get(newFakeTarget(BinaryTargetPrefab.InstanceName()))
	g.Expect(other).NotTo(BeIdenticalTo(first))
	g.Expect(registry.List()).To(Equal([]*ShootingTargetToy{first, other}))
}

func TestRemove(t *testing.T) {
	g := NewWithT(t)

	registry := NewRegistry(&fakeHost{})
	toy := registry.Get(newFakeTarget("x"))

	g.Expect(registry.Remove(toy)).To(BeTrue())
	g.Expect(registry.Remove(toy)).To(BeFalse())
	g.Expect(registry.List()).To(BeEmpty())
}
