// Package sound plays the short effects that mark eating and crashing.
package sound

// Player is implemented by every audio backend.
type Player interface {
	Eat()
	Crash()
	// Music starts or pauses the background loop where the backend has one.
	Music(on bool)
	Close()
}

// Nop is the silent player used with -mute or when no device is available.
type Nop struct{}

func (Nop) Eat() {}
func (Nop) Crash() {}
func (Nop) Music(bool) {}
func (Nop) Close() {}
