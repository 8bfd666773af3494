package entity

// Cloneable is implemented by concrete entities that support DeepClone.
// CreateInstanceForClone must return a blank instance of the same concrete
// type built on the same clock; it copies no fields.
type Cloneable[T any] interface {
	Entity
	CreateInstanceForClone() T
}

// DeepClone returns a new entity of the source's concrete type carrying a copy
// of its identity, audit info, registry version and validation messages, and
// the same clock. Afterwards neither instance observes the other's changes.
//
// Concrete entities copy their own fields on top of the returned instance.
func DeepClone[T Cloneable[T]](source T) T {
	instance := source.CreateInstanceForClone()
	src, dst := source.EntityBase(), instance.EntityBase()

	dst.clock = src.clock
	dst.id = src.id
	dst.tenantID = src.tenantID
	dst.auditableInfo = src.auditableInfo.clone()
	dst.registryVersion = src.registryVersion
	dst.validationInfo = *src.validationInfo.DeepClone()

	return instance
}
