package domain

import "sync/atomic"

// Counter es el contador compartido por todo el proceso. Todas sus
// operaciones son atómicas entre sí; no hay read-modify-write desde fuera.
type Counter struct {
	value atomic.Uint64
}

func NewCounter() *Counter {
	return &Counter{}
}

// Increment devuelve el valor resultante.
func (c *Counter) Increment() uint64 {
	return c.value.Add(1)
}

func (c *Counter) Load() uint64 {
	return c.value.Load()
}

func (c *Counter) Store(v uint64) {
	c.value.Store(v)
}
