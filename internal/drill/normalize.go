package drill

import "github.com/nihongo-drills/katsuyo"

// Matches reports whether given is an acceptable spelling of want.
func Matches(given, want string) bool {
	return katsuyo.Normalize(given) == katsuyo.Normalize(want)
}
