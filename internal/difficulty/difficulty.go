// Package difficulty holds the named speed profiles a game can start with.
package difficulty

import "time"

// Profile is a named tick rate and the growth step tied to it.
type Profile struct {
	Name           string
	TicksPerSecond int
	GrowthStep     int
}

// Default is the profile a session starts from before any selection.
const Default = "normal"

var profiles = []Profile{
	{Name: "easy", TicksPerSecond: 7, GrowthStep: 3},
	{Name: "normal", TicksPerSecond: 10, GrowthStep: 4},
	{Name: "hard", TicksPerSecond: 13, GrowthStep: 5},
}

// Resolve looks up a profile by name. Unknown names report false and the
// caller is expected to keep whatever profile it already has.
func Resolve(name string) (Profile, bool) {
	for _, p := range profiles {
		if p.Name == name {
			return p, true
		}
	}
	return Profile{}, false
}

// MustResolve is Resolve for names known at compile time.
func MustResolve(name string) Profile {
	p, ok := Resolve(name)
	if !ok {
		panic("difficulty: unknown profile " + name)
	}
	return p
}

// Names lists profiles from slowest to fastest.
func Names() []string {
	out := make([]string, len(profiles))
	for i, p := range profiles {
		out[i] = p.Name
	}
	return out
}

// Next returns the profile name after name, wrapping around.
func Next(name string) string {
	for i, p := range profiles {
		if p.Name == name {
			return profiles[(i+1)%len(profiles)].Name
		}
	}
	return Default
}

// Interval is the delay between two ticks: 1000/TicksPerSecond ms.
func (p Profile) Interval() time.Duration {
	if p.TicksPerSecond <= 0 {
		return time.Second
	}
	return time.Second / time.Duration(p.TicksPerSecond)
}
