package rope

import "knot-chain/pkg/core"

// RandomCommands returns n commands with uniformly chosen directions and counts
// in [1, maxCount]. The same seed always yields the same stream.
func RandomCommands(rng *core.RNG, n, maxCount int) []Command {
	if n <= 0 {
		return nil
	}
	if maxCount < 1 {
		maxCount = 1
	}
	dirs := Directions()
	cmds := make([]Command, n)
	for i := range cmds {
		cmds[i] = Command{
			Dir:   dirs[rng.IntN(len(dirs))],
			Count: rng.Between(1, maxCount),
		}
	}
	return cmds
}
