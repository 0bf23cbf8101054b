package toys

import (
	"reflect"
	"sync"

	"github.com/pkg/errors"
)

//Registry holds the live shooting target toys of a host, at most one per host object
type Registry struct {
	sync.RWMutex

	host  Host
	toys  map[ShootingTarget]*ShootingTargetToy
	order []*ShootingTargetToy
}

//NewRegistry returns an empty registry for toys owned by host
func NewRegistry(host Host) *Registry {
	return &Registry{
		host: host,
		toys: make(map[ShootingTarget]*ShootingTargetToy),
	}
}

type createOptions struct {
	position Vector3
	rotation Vector3
	scale    Vector3
	spawn    bool
}

//CreateOption changes how Create sets up a new target
type CreateOption func(*createOptions)

//WithPosition places the new target at position
func WithPosition(position Vector3) CreateOption {
	return func(o *createOptions) { o.position = position }
}

//WithRotation rotates the new target by euler angles in degrees
func WithRotation(euler Vector3) CreateOption {
	return func(o *createOptions) { o.rotation = euler }
}

//WithScale scales the new target
func WithScale(scale Vector3) CreateOption {
	return func(o *createOptions) { o.scale = scale }
}

//WithoutSpawn leaves the new target unspawned
func WithoutSpawn() CreateOption {
	return func(o *createOptions) { o.spawn = false }
}

//Create instantiates a new shooting target of the given type, unrecognized types create a Sport target
func (r *Registry) Create(targetType ShootingTargetType, opts ...CreateOption) (*ShootingTargetToy, error) {
	o := &createOptions{
		position: VectorZero,
		rotation: VectorZero,
		scale:    VectorOne,
		spawn:    true,
	}
	for _, opt := range opts {
		opt(o)
	}

	prefab := targetType.Prefab()
	target, err := r.host.Instantiate(prefab)
	if err != nil {
		return nil, errors.Wrapf(err, "instantiate %s", prefab.Name)
	}

	toy := newShootingTargetToy(target, r.host, r)
	toy.SetPosition(o.position)
	toy.SetRotation(QuaternionEuler(o.rotation))
	target.SetScale(o.scale) //Not spawned yet, so there's nothing to respawn

	if o.spawn {
		toy.Spawn()
	}

	r.Add(toy)
	log.Debug("Created ", toy, " at ", o.position)
	return toy, nil
}

//Get returns the toy wrapping target, wrapping and registering it if it isn't known yet
func (r *Registry) Get(target ShootingTarget) *ShootingTargetToy {
	if isNilTarget(target) {
		return nil
	}

	r.Lock()
	defer r.Unlock()

	if toy, ok := r.toys[target]; ok {
		return toy
	}

	toy := newShootingTargetToy(target, r.host, r)
	r.add(toy)
	log.Trace("Wrapped existing ", toy)
	return toy
}

//isNilTarget catches both an untyped nil and a nil pointer wrapped in the interface
func isNilTarget(target ShootingTarget) bool {
	if target == nil {
		return true
	}
	v := reflect.ValueOf(target)
	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return v.IsNil()
	}
	return false
}

//Lookup returns the toy wrapping target without creating one
func (r *Registry) Lookup(target ShootingTarget) (*ShootingTargetToy, bool) {
	r.RLock()
	defer r.RUnlock()

	toy, ok := r.toys[target]
	return toy, ok
}

//Add registers a toy, replacing any toy already registered for the same target
func (r *Registry) Add(toy *ShootingTargetToy) {
	r.Lock()
	defer r.Unlock()
	r.add(toy)
}

func (r *Registry) add(toy *ShootingTargetToy) {
	if old, ok := r.toys[toy.base]; ok {
		r.removeOrdered(old)
	}
	toy.registry = r
	r.toys[toy.base] = toy
	r.order = append(r.order, toy)
}

//Remove forgets a toy, returning false if it wasn't registered
func (r *Registry) Remove(toy *ShootingTargetToy) bool {
	r.Lock()
	defer r.Unlock()

	if registered, ok := r.toys[toy.base]; !ok || registered != toy {
		return false
	}
	delete(r.toys, toy.base)
	r.removeOrdered(toy)
	return true
}

func (r *Registry) removeOrdered(toy *ShootingTargetToy) {
	for i := 0; i < len(r.order); i++ {
		if r.order[i] == toy {
			r.order = append(r.order[:i], r.order[i+1:]...)
			return
		}
	}
}

//List returns every registered toy in the order they were registered
func (r *Registry) List() []*ShootingTargetToy {
	r.RLock()
	defer r.RUnlock()

	list := make([]*ShootingTargetToy, len(r.order))
	copy(list, r.order)
	return list
}

//Len returns how many toys are registered
func (r *Registry) Len() int {
	r.RLock()
	defer r.RUnlock()
	return len(r.toys)
}
